package musicapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestNormalizeSearchSongsShapes(t *testing.T) {
	item := `{"id":"1","title":"Hotline Bling","artist":"Drake"}`
	cases := map[string]string{
		"array":        `[` + item + `]`,
		"data array":   `{"data":[` + item + `]}`,
		"data results": `{"data":{"results":[` + item + `]}}`,
		"results":      `{"results":[` + item + `]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			songs, err := NormalizeSearchSongs(decode(t, body))
			require.NoError(t, err)
			require.Len(t, songs, 1)
			assert.Equal(t, "Drake", songs[0].Artist)
			assert.Equal(t, "Hotline Bling", songs[0].Title)
		})
	}
}

func TestNormalizeSearchSongsUnknownShape(t *testing.T) {
	_, err := NormalizeSearchSongs(decode(t, `{"songs":[]}`))
	assert.Error(t, err)
}

func TestNormalizeSearchSongsSkipsIncomplete(t *testing.T) {
	songs, err := NormalizeSearchSongs(decode(t, `[{"id":"1"},{"title":"x"},"junk",{"id":"2","name":"Chiraqimony"}]`))
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, "2", songs[0].ID)
}

func TestNormalizeSongDetail(t *testing.T) {
	raw := decode(t, `{"data":[{
		"id":"9",
		"name":"Chiraqimony",
		"subtitle":"LilDurk • Love Songs 4 The Streets",
		"image":[{"quality":"50x50","url":"small.jpg"},{"quality":"500x500","url":"big.jpg"}],
		"downloadUrl":[{"quality":"96kbps","url":"low.mp4"},{"quality":"320kbps","url":"high.mp4"}]
	}]}`)

	s, err := NormalizeSongDetail(raw)
	require.NoError(t, err)
	assert.Equal(t, Song{
		ID:        "9",
		Title:     "Chiraqimony",
		Artist:    "LilDurk",
		Image:     "big.jpg",
		StreamURL: "high.mp4",
	}, s)
}

func TestNestedArtist(t *testing.T) {
	raw := decode(t, `{"id":"1","title":"t","artists":{"primary":[{"name":"  "},{"name":"Drake"}]}}`)
	s, err := NormalizeSongDetail(raw)
	require.NoError(t, err)
	assert.Equal(t, "Drake", s.Artist)
}

func TestCleanArtist(t *testing.T) {
	assert.Equal(t, "Drake", cleanArtist(" Drake - Views "))
	assert.Equal(t, "Drake", cleanArtist("Drake • Views"))
	assert.Equal(t, "Drake", cleanArtist("Drake"))
	assert.Equal(t, "", cleanArtist(""))
}

func TestPlayableURL(t *testing.T) {
	assert.Equal(t, "s", Song{StreamURL: "s", Link: "l"}.PlayableURL())
	assert.Equal(t, "l", Song{Link: "l"}.PlayableURL())
}
