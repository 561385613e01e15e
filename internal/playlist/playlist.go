// Package playlist holds the artist -> song title mapping the bot edits.
package playlist

import "sort"

// SeedArtist and SeedTitle make up the entry every new playlist starts with.
const (
	SeedArtist = "LilDurk"
	SeedTitle  = "Chiraqimony"
)

// Playlist maps an artist name to a single song title.
type Playlist map[string]string

// Seed returns a fresh playlist holding only the seed entry.
func Seed() Playlist {
	return Playlist{SeedArtist: SeedTitle}
}

// Update sets p[artist] = title and returns p. The mapping is mutated in place;
// a nil playlist is allocated first.
func Update(p Playlist, artist, title string) Playlist {
	if p == nil {
		p = make(Playlist)
	}
	p[artist] = title
	return p
}

// Remove deletes the entry for artist and reports whether one was there.
func Remove(p Playlist, artist string) bool {
	if _, ok := p[artist]; !ok {
		return false
	}
	delete(p, artist)
	return true
}

// Artists returns the artist names in p, sorted.
func Artists(p Playlist) []string {
	out := make([]string, 0, len(p))
	for a := range p {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// Clone returns a copy of p.
func Clone(p Playlist) Playlist {
	out := make(Playlist, len(p))
	for a, t := range p {
		out[a] = t
	}
	return out
}
