package musicapi

// Song is one track as returned by the music API, after normalization.
type Song struct {
	ID        string
	Title     string
	Artist    string
	Image     string
	Link      string
	StreamURL string // direct audio stream, when the API provides one
}

// PlayableURL returns the stream URL, falling back to the page link.
func (s Song) PlayableURL() string {
	if s.StreamURL != "" {
		return s.StreamURL
	}
	return s.Link
}
