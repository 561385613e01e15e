package playlist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateInsertsEntry(t *testing.T) {
	p := Seed()
	got := Update(p, "Drake", "Hotline Bling")

	want := Playlist{"LilDurk": "Chiraqimony", "Drake": "Hotline Bling"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("playlist mismatch (-want +got):\n%s", diff)
	}
	// mutated in place
	assert.Equal(t, "Hotline Bling", p["Drake"])
}

func TestUpdateLastWriteWins(t *testing.T) {
	p := Seed()
	Update(p, "Drake", "Hotline Bling")
	Update(p, "Drake", "God's Plan")

	assert.Equal(t, "God's Plan", p["Drake"])
	assert.Len(t, p, 2)
}

func TestUpdateNil(t *testing.T) {
	p := Update(nil, "Drake", "Hotline Bling")
	require.NotNil(t, p)
	assert.Equal(t, Playlist{"Drake": "Hotline Bling"}, p)
}

func TestUpdateAcceptsEmptyValues(t *testing.T) {
	p := Update(Seed(), "", "")
	title, ok := p[""]
	assert.True(t, ok)
	assert.Equal(t, "", title)
}

func TestRemoveUsesArtistValue(t *testing.T) {
	p := Seed()
	p["artistName"] = "literal"

	assert.True(t, Remove(p, "LilDurk"))
	assert.NotContains(t, p, "LilDurk")
	assert.Equal(t, "literal", p["artistName"])
}

func TestRemoveMissing(t *testing.T) {
	p := Seed()
	assert.False(t, Remove(p, "Drake"))
	assert.Equal(t, Seed(), p)

	assert.False(t, Remove(nil, "Drake"))
}

func TestArtistsSorted(t *testing.T) {
	p := Seed()
	Update(p, "Drake", "Hotline Bling")
	Update(p, "Adele", "Hello")

	assert.Equal(t, []string{"Adele", "Drake", "LilDurk"}, Artists(p))
	assert.Empty(t, Artists(Playlist{}))
}

func TestCloneIsIndependent(t *testing.T) {
	p := Seed()
	c := Clone(p)
	Update(c, "Drake", "Hotline Bling")

	assert.NotContains(t, p, "Drake")
	assert.Contains(t, c, "LilDurk")
}
