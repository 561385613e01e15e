package bot

import (
	"context"
	"log"
	"sync"
	"time"

	"playlistbot/internal/audio"
	"playlistbot/internal/musicapi"

	"github.com/bwmarrin/discordgo"
)

type PlaybackManager struct {
	dg     *discordgo.Session
	ffmpeg string

	startMu sync.Mutex // serializes Start
	mu      sync.Mutex
	players map[string]*Player // guildID -> player
}

// handoffTimeout bounds how long Start waits for the previous track to wind down.
var handoffTimeout = 5 * time.Second

func NewPlaybackManager(dg *discordgo.Session, ffmpeg string) *PlaybackManager {
	return &PlaybackManager{
		dg:      dg,
		ffmpeg:  ffmpeg,
		players: make(map[string]*Player),
	}
}

// NowPlaying describes a guild's current track.
type NowPlaying struct {
	Song        *musicapi.Song
	RequestedBy string
	VoiceChanID string
	Paused      bool
}

type Player struct {
	vcID string
	vc   *discordgo.VoiceConnection

	song        *musicapi.Song
	requestedBy string

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{} // closed when the playback goroutine exits

	mu     sync.Mutex
	paused bool
	cond   *sync.Cond
}

func newPlayer(vcID string, song *musicapi.Song, requestedBy string) *Player {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Player{
		vcID:        vcID,
		song:        song,
		requestedBy: requestedBy,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

func (pm *PlaybackManager) Start(guildID, vcID, url string, song *musicapi.Song, requestedBy string) error {
	pm.startMu.Lock()
	defer pm.startMu.Unlock()

	// Take over the guild's voice connection: the previous player gives up
	// ownership, so its goroutine won't disconnect the shared connection.
	pm.mu.Lock()
	prev := pm.players[guildID]
	delete(pm.players, guildID)
	pm.mu.Unlock()
	if prev != nil {
		prev.stop()
		select {
		case <-prev.done:
		case <-time.After(handoffTimeout):
			log.Printf("guild %s: previous track did not stop in %s", guildID, handoffTimeout)
		}
	}

	vc, err := pm.dg.ChannelVoiceJoin(guildID, vcID, false, true)
	if err != nil {
		return err
	}

	p := newPlayer(vcID, song, requestedBy)
	p.vc = vc

	pm.mu.Lock()
	pm.players[guildID] = p
	pm.mu.Unlock()

	go func() {
		defer close(p.done)
		log.Printf("guild %s: playing %q by %s", guildID, song.Title, song.Artist)
		if err := playURL(p.ctx, pm.ffmpeg, p, url); err != nil {
			log.Printf("guild %s: playback ended: %v", guildID, err)
		}
		if pm.release(guildID, p) {
			_ = vc.Disconnect()
		}
	}()

	return nil
}

// release drops p from the guild if it is still the guild's player and
// reports whether it was. Only the owner may disconnect the voice connection.
func (pm *PlaybackManager) release(guildID string, p *Player) bool {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	if pm.players[guildID] != p {
		return false
	}
	delete(pm.players, guildID)
	return true
}

func (pm *PlaybackManager) Pause(guildID string) {
	if p := pm.get(guildID); p != nil {
		p.setPaused(true)
	}
}

func (pm *PlaybackManager) Resume(guildID string) {
	if p := pm.get(guildID); p != nil {
		p.setPaused(false)
	}
}

func (pm *PlaybackManager) Stop(guildID string) {
	if p := pm.get(guildID); p != nil {
		p.stop()
	}
}

func (pm *PlaybackManager) Leave(guildID string) {
	if p := pm.get(guildID); p != nil && p.vc != nil {
		_ = p.vc.Disconnect()
	}
}

func (pm *PlaybackManager) StopAll() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	for _, p := range pm.players {
		p.stop()
		if p.vc != nil {
			_ = p.vc.Disconnect()
		}
	}
	pm.players = make(map[string]*Player)
}

// TrackInfo reports the guild's current track. A stopped player that is
// still winding down has no current track.
func (pm *PlaybackManager) TrackInfo(guildID string) (NowPlaying, bool) {
	p := pm.get(guildID)
	if p == nil || p.song == nil || p.ctx.Err() != nil {
		return NowPlaying{}, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return NowPlaying{
		Song:        p.song,
		RequestedBy: p.requestedBy,
		VoiceChanID: p.vcID,
		Paused:      p.paused,
	}, true
}

func (pm *PlaybackManager) get(guildID string) *Player {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return pm.players[guildID]
}

func (p *Player) setPaused(v bool) {
	p.mu.Lock()
	p.paused = v
	p.mu.Unlock()
	p.cond.Broadcast()
}

func (p *Player) stop() {
	// cancel under mu so a paused Wait either sees ctx done or gets woken
	p.mu.Lock()
	p.cancel()
	p.mu.Unlock()
	p.cond.Broadcast()
}

// Wait blocks while the player is paused. It implements audio.Gate.
func (p *Player) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.paused {
		if ctx.Err() != nil {
			return audio.ErrStopped
		}
		p.cond.Wait()
	}
	return nil
}
