package bot

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"playlistbot/internal/playlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestHealthHandler(t *testing.T) {
	reg := playlist.NewRegistry()
	h := healthHandler(reg)

	code, body := get(t, h, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	reg.Update("g1", "Drake", "Hotline Bling")
	reg.Update("g2", "Drake", "Hotline Bling")
	_, body = get(t, h, "/stats")
	assert.Equal(t, "guilds 2\n", body)
}
