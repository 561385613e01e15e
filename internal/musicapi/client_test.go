package musicapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, search string, songs map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search/songs", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("query") == "" {
			http.Error(w, "missing query", http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, search)
	})
	for id, body := range songs {
		body := body
		mux.HandleFunc("/api/songs/"+id, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, body)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSearchSongs(t *testing.T) {
	srv := newTestServer(t, `{"data":{"results":[{"id":"1","title":"Hotline Bling","artist":"Drake"}]}}`, nil)

	songs, err := New(srv.URL+"/", "api/").SearchSongs("hotline")
	require.NoError(t, err)
	require.Len(t, songs, 1)
	assert.Equal(t, "1", songs[0].ID)
}

func TestGetSongByIDStatus(t *testing.T) {
	srv := newTestServer(t, `[]`, nil)

	_, err := New(srv.URL, "/api").GetSongByID("missing")
	assert.EqualError(t, err, "api status 404")
}

func TestFindTrackPrefersArtist(t *testing.T) {
	srv := newTestServer(t, `[
		{"id":"1","title":"Hotline Bling","artist":"Cover Band","stream_url":"cover.mp3"},
		{"id":"2","title":"Hotline Bling","artist":"drake","stream_url":"drake.mp3"}
	]`, nil)

	s, err := New(srv.URL, "/api").FindTrack("Drake", "Hotline Bling")
	require.NoError(t, err)
	assert.Equal(t, "2", s.ID)
	assert.Equal(t, "drake.mp3", s.PlayableURL())
}

func TestFindTrackFetchesDetail(t *testing.T) {
	srv := newTestServer(t,
		`[{"id":"9","title":"Chiraqimony","artist":"LilDurk"}]`,
		map[string]string{"9": `{"data":{"id":"9","title":"Chiraqimony","artist":"LilDurk","download_url":"full.mp4"}}`},
	)

	s, err := New(srv.URL, "/api").FindTrack("LilDurk", "Chiraqimony")
	require.NoError(t, err)
	assert.Equal(t, "full.mp4", s.StreamURL)
}

func TestFindTrackNoMatch(t *testing.T) {
	srv := newTestServer(t, `[]`, nil)

	_, err := New(srv.URL, "/api").FindTrack("Nobody", "Nothing")
	assert.ErrorIs(t, err, ErrNoMatch)
}
