package playlist

import (
	"errors"
	"sync"
)

var ErrNoSuchArtist = errors.New("artist not on playlist")

// Registry keeps one playlist per guild.
type Registry struct {
	mu        sync.Mutex
	playlists map[string]Playlist // guildID -> playlist
}

func NewRegistry() *Registry {
	return &Registry{
		playlists: make(map[string]Playlist),
	}
}

// Update sets the song for artist in the guild's playlist.
func (r *Registry) Update(guildID, artist, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playlists[guildID] = Update(r.lookup(guildID), artist, title)
}

func (r *Registry) Remove(guildID, artist string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !Remove(r.lookup(guildID), artist) {
		return ErrNoSuchArtist
	}
	return nil
}

func (r *Registry) Get(guildID, artist string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if title, ok := r.lookup(guildID)[artist]; ok {
		return title, nil
	}
	return "", ErrNoSuchArtist
}

// Snapshot returns a copy of the guild's playlist that is safe to read
// without holding the lock.
func (r *Registry) Snapshot(guildID string) Playlist {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Clone(r.lookup(guildID))
}

// Len returns the number of guilds with a playlist.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.playlists)
}

// lookup must be called with r.mu held.
func (r *Registry) lookup(guildID string) Playlist {
	p, ok := r.playlists[guildID]
	if !ok {
		p = Seed()
		r.playlists[guildID] = p
	}
	return p
}
