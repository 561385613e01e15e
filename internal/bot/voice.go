package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"playlistbot/internal/audio"
)

func (b *Bot) userVoiceChannelID(guildID, userID string) (string, error) {
	// State cache first, then the API
	if g, err := b.dg.State.Guild(guildID); err == nil {
		for _, vs := range g.VoiceStates {
			if vs.UserID == userID && vs.ChannelID != "" {
				return vs.ChannelID, nil
			}
		}
	}

	g, err := b.dg.Guild(guildID)
	if err != nil {
		return "", err
	}
	for _, vs := range g.VoiceStates {
		if vs.UserID == userID && vs.ChannelID != "" {
			return vs.ChannelID, nil
		}
	}
	return "", errors.New("user not in a voice channel")
}

// ffmpegArgs decodes url to raw s16le PCM at the rate and channel count
// the Opus encoder expects, written to stdout.
func ffmpegArgs(url string) []string {
	return []string{
		"-reconnect", "1",
		"-reconnect_streamed", "1",
		"-reconnect_delay_max", "5",
		"-i", url,
		"-f", "s16le",
		"-ar", fmt.Sprint(audio.SampleRate),
		"-ac", fmt.Sprint(audio.Channels),
		"pipe:1",
	}
}

func playURL(ctx context.Context, ffmpeg string, p *Player, url string) error {
	// give the voice connection a moment to be ready
	select {
	case <-time.After(300 * time.Millisecond):
	case <-ctx.Done():
		return audio.ErrStopped
	}

	ff := exec.CommandContext(ctx, ffmpeg, ffmpegArgs(url)...)
	stdout, err := ff.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := ff.StderrPipe()
	if err != nil {
		return err
	}
	if err := ff.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}
	defer func() { _ = ff.Process.Kill() }()

	// ffmpeg blocks if stderr is not drained
	go func() { _, _ = io.Copy(io.Discard, stderr) }()

	vc := p.vc
	_ = vc.Speaking(true)
	defer func() { _ = vc.Speaking(false) }()

	if err := audio.Stream(ctx, stdout, vc.OpusSend, p); err != nil {
		return err
	}
	_ = ff.Wait()
	return nil
}
