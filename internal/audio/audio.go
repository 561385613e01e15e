// Package audio turns raw PCM into Opus frames for a Discord voice connection.
package audio

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"layeh.com/gopus"
)

const (
	SampleRate   = 48000
	Channels     = 2
	FrameSize    = 960  // 20ms @ 48kHz
	MaxOpusBytes = 4000 // max packet size
)

var (
	ErrStopped     = errors.New("stopped")
	ErrSendTimeout = errors.New("opus send timeout (voice not ready)")
)

// SendTimeout bounds how long Stream waits on the output channel.
var SendTimeout = 2 * time.Second

// Gate blocks while playback is paused. It returns an error once ctx is done.
type Gate interface {
	Wait(ctx context.Context) error
}

// Stream reads s16le stereo PCM from src, encodes each 20ms frame to Opus and
// sends it on out. It returns nil on a clean EOF.
func Stream(ctx context.Context, src io.Reader, out chan<- []byte, gate Gate) error {
	enc, err := gopus.NewEncoder(SampleRate, Channels, gopus.Audio)
	if err != nil {
		return fmt.Errorf("opus encoder: %w", err)
	}

	reader := bufio.NewReaderSize(src, 1<<20)
	pcm := make([]int16, FrameSize*Channels)

	for {
		select {
		case <-ctx.Done():
			return ErrStopped
		default:
		}

		if gate != nil {
			if err := gate.Wait(ctx); err != nil {
				return err
			}
		}

		if err := ReadFrame(reader, pcm); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return fmt.Errorf("read pcm: %w", err)
		}

		packet, err := enc.Encode(pcm, FrameSize, MaxOpusBytes)
		if err != nil {
			return fmt.Errorf("opus encode: %w", err)
		}

		select {
		case out <- packet:
		case <-ctx.Done():
			return ErrStopped
		case <-time.After(SendTimeout):
			return ErrSendTimeout
		}
	}
}

// ReadFrame fills dst with little-endian int16 samples from r.
func ReadFrame(r io.Reader, dst []int16) error {
	buf := make([]byte, len(dst)*2)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
	}
	return nil
}
