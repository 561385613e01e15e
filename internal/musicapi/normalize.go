package musicapi

import (
	"errors"
	"strings"
)

var errShape = errors.New("could not parse response (JSON shape not recognized)")

// NormalizeSearchSongs accepts a bare array, {data: [...]},
// {data: {results: [...]}} or {results: [...]}.
func NormalizeSearchSongs(raw any) ([]Song, error) {
	switch t := raw.(type) {
	case []any:
		return songsFrom(t), nil
	case map[string]any:
		if arr, ok := t["data"].([]any); ok {
			return songsFrom(arr), nil
		}
		if d, ok := t["data"].(map[string]any); ok {
			if arr, ok := d["results"].([]any); ok {
				return songsFrom(arr), nil
			}
		}
		if arr, ok := t["results"].([]any); ok {
			return songsFrom(arr), nil
		}
	}
	return nil, errShape
}

// NormalizeSongDetail accepts {data: {...}}, {data: [{...}]} or a bare object.
func NormalizeSongDetail(raw any) (Song, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Song{}, errShape
	}
	switch d := obj["data"].(type) {
	case map[string]any:
		return songFrom(d), nil
	case []any:
		if len(d) > 0 {
			if first, ok := d[0].(map[string]any); ok {
				return songFrom(first), nil
			}
		}
	}
	return songFrom(obj), nil
}

func songsFrom(arr []any) []Song {
	out := make([]Song, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if s := songFrom(obj); s.ID != "" && s.Title != "" {
			out = append(out, s)
		}
	}
	return out
}

func songFrom(obj map[string]any) Song {
	s := Song{
		ID:        firstString(obj, "id", "song_id", "_id"),
		Title:     firstString(obj, "title", "name", "song_name"),
		Artist:    firstString(obj, "artist", "artists", "primaryArtists", "primary_artists", "subtitle", "song_artist"),
		Link:      firstString(obj, "link", "url", "perma_url"),
		Image:     firstString(obj, "image", "thumbnail", "cover"),
		StreamURL: firstString(obj, "stream", "stream_url", "audio", "audio_url", "download_url", "downloadUrl"),
	}
	if s.Artist == "" {
		s.Artist = nestedArtist(obj)
	}
	s.Artist = cleanArtist(s.Artist)

	// [{quality, url}] lists: the last entry is the best quality
	if s.Image == "" {
		s.Image = lastURL(obj["image"])
	}
	if s.StreamURL == "" {
		s.StreamURL = lastURL(obj["downloadUrl"])
	}
	if s.StreamURL == "" {
		s.StreamURL = lastURL(obj["download_url"])
	}
	return s
}

func firstString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok {
			return s
		}
	}
	return ""
}

func lastURL(v any) string {
	arr, _ := v.([]any)
	var last string
	for _, it := range arr {
		if m, ok := it.(map[string]any); ok {
			if u, ok := m["url"].(string); ok && u != "" {
				last = u
			}
		}
	}
	return last
}

// nestedArtist handles artists: [{name}], artists: {primary|all: [{name}]}
// and primaryArtists: [{name}].
func nestedArtist(obj map[string]any) string {
	lists := []any{obj["artists"], obj["primaryArtists"]}
	if m, ok := obj["artists"].(map[string]any); ok {
		lists = append(lists, m["primary"], m["all"])
	}
	for _, l := range lists {
		if name := firstName(l); name != "" {
			return name
		}
	}
	return ""
}

func firstName(v any) string {
	arr, _ := v.([]any)
	for _, it := range arr {
		if m, ok := it.(map[string]any); ok {
			if name, ok := m["name"].(string); ok && strings.TrimSpace(name) != "" {
				return strings.TrimSpace(name)
			}
		}
	}
	return ""
}

// cleanArtist strips "Artist • Album" and "Artist - Something" suffixes.
func cleanArtist(s string) string {
	s = strings.TrimSpace(s)
	for _, sep := range []string{"•", " - "} {
		if i := strings.Index(s, sep); i >= 0 {
			return strings.TrimSpace(s[:i])
		}
	}
	return s
}
