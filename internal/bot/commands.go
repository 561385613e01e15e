package bot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

const (
	playlistCmd = "playlist"

	subAdd    = "add"
	subRemove = "remove"
	subShow   = "show"
	subPlay   = "play"
)

func artistOption(desc string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "artist",
		Description: desc,
		Required:    true,
	}
}

func playlistCommand(withPlay bool) *discordgo.ApplicationCommand {
	subs := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subAdd,
			Description: "Set the song for an artist (replaces any existing one)",
			Options: []*discordgo.ApplicationCommandOption{
				artistOption("Artist name"),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "title",
					Description: "Song title",
					Required:    true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subRemove,
			Description: "Remove an artist from the playlist",
			Options:     []*discordgo.ApplicationCommandOption{artistOption("Artist to remove")},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subShow,
			Description: "Show this server's playlist",
		},
	}
	if withPlay {
		subs = append(subs, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        subPlay,
			Description: "Play an artist's song in your voice channel",
			Options:     []*discordgo.ApplicationCommandOption{artistOption("Artist to play")},
		})
	}

	return &discordgo.ApplicationCommand{
		Name:        playlistCmd,
		Description: "Artist -> song playlist",
		Options:     subs,
	}
}

func (b *Bot) registerCommands() error {
	cmd := playlistCommand(b.api != nil)
	appID := b.dg.State.User.ID

	// empty GuildID registers globally
	if _, err := b.dg.ApplicationCommandCreate(appID, b.cfg.GuildID, cmd); err != nil {
		return fmt.Errorf("register /%s: %w", cmd.Name, err)
	}
	log.Printf("Registered /%s (%d subcommands)", cmd.Name, len(cmd.Options))
	return nil
}
