package musicapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

var ErrNoMatch = errors.New("no matching song")

type Client struct {
	Base   string
	Prefix string
	http   *http.Client
}

func New(base, prefix string) *Client {
	return &Client{
		Base:   strings.TrimRight(base, "/"),
		Prefix: "/" + strings.Trim(prefix, "/"),
		http:   &http.Client{Timeout: 12 * time.Second},
	}
}

func (c *Client) SearchSongs(query string) ([]Song, error) {
	u, err := c.endpoint("search", "songs")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	raw, err := c.getJSON(u.String())
	if err != nil {
		return nil, err
	}
	return NormalizeSearchSongs(raw)
}

func (c *Client) GetSongByID(id string) (*Song, error) {
	u, err := c.endpoint("songs", id)
	if err != nil {
		return nil, err
	}

	raw, err := c.getJSON(u.String())
	if err != nil {
		return nil, err
	}
	s, err := NormalizeSongDetail(raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindTrack searches for title by artist. A result whose artist matches
// (case-insensitively) wins; otherwise the first result is used.
func (c *Client) FindTrack(artist, title string) (*Song, error) {
	results, err := c.SearchSongs(strings.TrimSpace(title + " " + artist))
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", title, err)
	}
	if len(results) == 0 {
		return nil, ErrNoMatch
	}

	pick := results[0]
	for _, s := range results {
		if strings.EqualFold(strings.TrimSpace(s.Artist), strings.TrimSpace(artist)) {
			pick = s
			break
		}
	}

	// search results often omit the stream URL
	if pick.StreamURL == "" && pick.ID != "" {
		if d, err := c.GetSongByID(pick.ID); err == nil && d.PlayableURL() != "" {
			return d, nil
		}
	}
	return &pick, nil
}

func (c *Client) endpoint(parts ...string) (*url.URL, error) {
	u, err := url.Parse(c.Base)
	if err != nil {
		return nil, fmt.Errorf("music api base: %w", err)
	}
	u.Path = path.Join(append([]string{u.Path, c.Prefix}, parts...)...)
	return u, nil
}

func (c *Client) getJSON(fullURL string) (any, error) {
	resp, err := c.http.Get(fullURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api status %d", resp.StatusCode)
	}

	var v any
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
