package bot

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	Token        string
	GuildID      string
	MusicAPIBase string // empty disables /playlist play
	MusicPrefix  string
	FFmpegPath   string
	HealthPort   string
}

func LoadConfigFromEnv() (Config, error) {
	token := strings.TrimSpace(os.Getenv("DISCORD_TOKEN"))
	if token == "" {
		return Config{}, errors.New("DISCORD_TOKEN missing")
	}

	prefix := strings.TrimSpace(os.Getenv("MUSIC_API_PREFIX"))
	if prefix == "" {
		prefix = "/api"
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	return Config{
		Token:        token,
		GuildID:      strings.TrimSpace(os.Getenv("GUILD_ID")),
		MusicAPIBase: strings.TrimRight(strings.TrimSpace(os.Getenv("MUSIC_API_BASE")), "/"),
		MusicPrefix:  prefix,
		FFmpegPath:   envOr("FFMPEG_PATH", "ffmpeg"),
		HealthPort:   envOr("PORT", "10000"),
	}, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
