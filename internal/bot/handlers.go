package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"playlistbot/internal/musicapi"
	"playlistbot/internal/playlist"

	"github.com/bwmarrin/discordgo"
)

const (
	ctrlPauseID  = "ctrl_pause"
	ctrlResumeID = "ctrl_resume"
	ctrlStopID   = "ctrl_stop"
	ctrlLeaveID  = "ctrl_leave"
)

var errMissingOption = errors.New("missing option")

type playlistRequest struct {
	Sub    string
	Artist string
	Title  string
}

func parsePlaylistCommand(data discordgo.ApplicationCommandInteractionData) (playlistRequest, error) {
	if len(data.Options) == 0 {
		return playlistRequest{}, errMissingOption
	}
	sub := data.Options[0]
	req := playlistRequest{Sub: sub.Name}
	for _, o := range sub.Options {
		if o.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		switch o.Name {
		case "artist":
			req.Artist = strings.TrimSpace(o.StringValue())
		case "title":
			req.Title = strings.TrimSpace(o.StringValue())
		}
	}

	switch req.Sub {
	case subAdd:
		if req.Artist == "" || req.Title == "" {
			return req, fmt.Errorf("%w: artist and title", errMissingOption)
		}
	case subRemove, subPlay:
		if req.Artist == "" {
			return req, fmt.Errorf("%w: artist", errMissingOption)
		}
	}
	return req, nil
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {

	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		if data.Name != playlistCmd {
			return
		}
		if i.GuildID == "" || i.Member == nil {
			replyText(s, i, "Playlists live in servers, not DMs.")
			return
		}
		req, err := parsePlaylistCommand(data)
		if err != nil {
			replyText(s, i, "Give me an artist (and a title for `add`).")
			return
		}
		if req.Sub == subPlay {
			b.handlePlay(s, i, req.Artist)
			return
		}
		embed, err := b.applyPlaylist(i.GuildID, req)
		if errors.Is(err, playlist.ErrNoSuchArtist) {
			replyText(s, i, notOnPlaylist(req.Artist))
			return
		}
		if err != nil {
			replyText(s, i, err.Error())
			return
		}
		replyEmbed(s, i, embed)

	case discordgo.InteractionMessageComponent:
		switch i.MessageComponentData().CustomID {
		case ctrlPauseID:
			b.handleControl(s, i, "pause")
		case ctrlResumeID:
			b.handleControl(s, i, "resume")
		case ctrlStopID:
			b.handleControl(s, i, "stop")
		case ctrlLeaveID:
			b.handleControl(s, i, "leave")
		}
	}
}

// applyPlaylist runs add, remove and show against the guild's playlist and
// returns the embed to reply with.
func (b *Bot) applyPlaylist(guildID string, req playlistRequest) (*discordgo.MessageEmbed, error) {
	switch req.Sub {
	case subAdd:
		b.playlists.Update(guildID, req.Artist, req.Title)
		log.Printf("guild %s: %s -> %q", guildID, req.Artist, req.Title)
		return PlaylistEmbed(b.playlists.Snapshot(guildID), fmt.Sprintf("Set **%s** to **%s**.", req.Artist, req.Title)), nil
	case subRemove:
		if err := b.playlists.Remove(guildID, req.Artist); err != nil {
			return nil, fmt.Errorf("remove %q: %w", req.Artist, err)
		}
		log.Printf("guild %s: removed %s", guildID, req.Artist)
		return PlaylistEmbed(b.playlists.Snapshot(guildID), fmt.Sprintf("Removed **%s**.", req.Artist)), nil
	case subShow:
		return PlaylistEmbed(b.playlists.Snapshot(guildID), ""), nil
	}
	return nil, fmt.Errorf("unknown subcommand %q", req.Sub)
}

func notOnPlaylist(artist string) string {
	return fmt.Sprintf("**%s** is not on the playlist.", artist)
}

func (b *Bot) handlePlay(s *discordgo.Session, i *discordgo.InteractionCreate, artist string) {
	if b.api == nil {
		replyText(s, i, "Playback is not configured.")
		return
	}
	title, err := b.playlists.Get(i.GuildID, artist)
	if err != nil {
		replyText(s, i, notOnPlaylist(artist))
		return
	}

	vcID, err := b.userVoiceChannelID(i.GuildID, i.Member.User.ID)
	if err != nil || vcID == "" {
		replyText(s, i, "Join a **voice channel** first, then use `/playlist play` again.")
		return
	}

	// Ack quickly, the lookup can be slow
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})

	song, err := b.api.FindTrack(artist, title)
	if errors.Is(err, musicapi.ErrNoMatch) {
		editReplyText(s, i, fmt.Sprintf("Couldn't find **%s** by **%s**.", title, artist))
		return
	}
	if err != nil {
		editReplyText(s, i, "API error: "+err.Error())
		return
	}
	stream := song.PlayableURL()
	if stream == "" {
		editReplyText(s, i, "No playable audio URL found for this track.")
		return
	}

	requestedBy := "@" + i.Member.User.Username
	if err := b.pm.Start(i.GuildID, vcID, stream, song, requestedBy); err != nil {
		editReplyText(s, i, "Playback error: "+err.Error())
		return
	}

	embed := NowPlayingEmbed(song, UIState{
		Status:      "Playing",
		VoiceChanID: vcID,
		RequestedBy: requestedBy,
	})
	comps := PlayerControls(false)
	_, _ = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &comps,
	})
}

func (b *Bot) handleControl(s *discordgo.Session, i *discordgo.InteractionCreate, action string) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})

	guildID := i.GuildID

	switch action {
	case "pause":
		b.pm.Pause(guildID)
	case "resume":
		b.pm.Resume(guildID)
	case "stop":
		b.pm.Stop(guildID)
	case "leave":
		b.pm.Stop(guildID)
		b.pm.Leave(guildID)
	}

	info, ok := b.pm.TrackInfo(guildID)
	if !ok {
		stopped := StoppedEmbed()
		_, _ = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds:     &[]*discordgo.MessageEmbed{stopped},
			Components: &[]discordgo.MessageComponent{},
		})
		return
	}

	status := "Playing"
	if info.Paused {
		status = "Paused"
	}
	embed := NowPlayingEmbed(info.Song, UIState{
		Status:      status,
		VoiceChanID: info.VoiceChanID,
		RequestedBy: info.RequestedBy,
	})
	comps := PlayerControls(info.Paused)

	_, _ = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &comps,
	})
}
