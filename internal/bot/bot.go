package bot

import (
	"log"

	"playlistbot/internal/musicapi"
	"playlistbot/internal/playlist"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	cfg Config
	dg  *discordgo.Session
	api *musicapi.Client // nil when MUSIC_API_BASE is unset

	playlists *playlist.Registry
	pm        *PlaybackManager
}

func New(cfg Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		cfg:       cfg,
		dg:        dg,
		playlists: playlist.NewRegistry(),
	}
	if cfg.MusicAPIBase != "" {
		b.api = musicapi.New(cfg.MusicAPIBase, cfg.MusicPrefix)
	}
	b.pm = NewPlaybackManager(dg, cfg.FFmpegPath)

	return b, nil
}

// Playlists exposes the guild playlists, e.g. for the health server.
func (b *Bot) Playlists() *playlist.Registry {
	return b.playlists
}

func (b *Bot) Start() error {
	// VoiceStates tells us which channel the caller is in
	b.dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates

	b.dg.AddHandler(b.onReady)
	b.dg.AddHandler(b.onInteractionCreate)

	if err := b.dg.Open(); err != nil {
		return err
	}

	return b.registerCommands()
}

func (b *Bot) Close() error {
	b.pm.StopAll()
	return b.dg.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("Logged in as %s", s.State.User.String())
}
