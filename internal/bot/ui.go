package bot

import (
	"fmt"
	"strings"

	"playlistbot/internal/musicapi"
	"playlistbot/internal/playlist"

	"github.com/bwmarrin/discordgo"
)

// Discord blurple
const uiColor = 0x5865F2

// Discord caps embeds at 25 fields.
const maxEmbedFields = 25

type UIState struct {
	Status      string
	VoiceChanID string
	RequestedBy string
}

// PlaylistEmbed lists the playlist one field per artist, sorted by artist.
func PlaylistEmbed(p playlist.Playlist, note string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🎧 Playlist",
		Description: note,
		Color:       uiColor,
	}

	artists := playlist.Artists(p)
	if len(artists) == 0 {
		embed.Description = strings.TrimSpace(note + "\nThe playlist is empty. Use `/playlist add`.")
		return embed
	}

	for n, a := range artists {
		if n == maxEmbedFields {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  truncate(orUnknown(a, "(blank)"), 256),
			Value: truncate(orUnknown(p[a], "(blank)"), 1024),
		})
	}

	footer := fmt.Sprintf("%d artist(s)", len(artists))
	if len(artists) > maxEmbedFields {
		footer += fmt.Sprintf(", showing first %d", maxEmbedFields)
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	return embed
}

func NowPlayingEmbed(s *musicapi.Song, ui UIState) *discordgo.MessageEmbed {
	title := orUnknown(s.Title, "Unknown Title")
	artist := orUnknown(s.Artist, "Unknown Artist")
	status := orUnknown(ui.Status, "Playing")

	embed := &discordgo.MessageEmbed{
		Title:       "🎶 Now Playing",
		Description: fmt.Sprintf("**%s**\n\n**Status:** `%s`", artist, status),
		Color:       uiColor,
		URL:         s.Link,
	}
	if s.Image != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: s.Image}
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Track", Value: fmt.Sprintf("**%s**", title)},
		{Name: "Voice", Value: mentionChannel(ui.VoiceChanID), Inline: true},
		{Name: "Requested by", Value: orUnknown(ui.RequestedBy, "`unknown`"), Inline: true},
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: "Pause/Resume toggles • Stop ends playback • Leave disconnects",
	}
	return embed
}

func StoppedEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Player",
		Description: "**Status:** `Stopped`",
		Color:       uiColor,
	}
}

// PlayerControls returns two rows: Pause/Resume toggle + Stop, then Leave.
func PlayerControls(isPaused bool) []discordgo.MessageComponent {
	toggle := discordgo.Button{
		CustomID: ctrlPauseID,
		Label:    "Pause",
		Style:    discordgo.PrimaryButton,
		Emoji:    &discordgo.ComponentEmoji{Name: "⏸️"},
	}
	if isPaused {
		toggle = discordgo.Button{
			CustomID: ctrlResumeID,
			Label:    "Resume",
			Style:    discordgo.SuccessButton,
			Emoji:    &discordgo.ComponentEmoji{Name: "▶️"},
		}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			toggle,
			discordgo.Button{
				CustomID: ctrlStopID,
				Label:    "Stop",
				Style:    discordgo.DangerButton,
				Emoji:    &discordgo.ComponentEmoji{Name: "⏹️"},
			},
		}},
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: ctrlLeaveID,
				Label:    "Leave",
				Style:    discordgo.SecondaryButton,
				Emoji:    &discordgo.ComponentEmoji{Name: "🚪"},
			},
		}},
	}
}

func mentionChannel(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return "`unknown`"
	}
	return "<#" + id + ">"
}

func orUnknown(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}
