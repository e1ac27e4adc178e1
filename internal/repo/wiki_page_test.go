package repo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWikiPagePageURL(t *testing.T) {
	r, err := NewWikiPage(testConfig("https://oldschool.runescape.wiki/", "", ""), testClient())
	require.NoError(t, err)

	tests := map[string]string{
		"Dragon bones":         "https://oldschool.runescape.wiki/w/Dragon_bones",
		"Item_9999":            "https://oldschool.runescape.wiki/w/Item_9999",
		"Ahrim's hood":         "https://oldschool.runescape.wiki/w/Ahrim%27s_hood",
		"Rune platebody (g)":   "https://oldschool.runescape.wiki/w/Rune_platebody_%28g%29",
		"Kalphite Queen/Drops": "https://oldschool.runescape.wiki/w/Kalphite_Queen%2FDrops",
	}
	for name, want := range tests {
		assert.Equal(t, want, r.PageURL(name), name)
	}
}

func TestWikiPageGetPage(t *testing.T) {
	var gotUA, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("<html><h1>Dragon bones</h1></html>"))
	}))
	defer srv.Close()

	r, err := NewWikiPage(testConfig(srv.URL, "", ""), testClient())
	require.NoError(t, err)

	body, err := r.GetPage(context.Background(), r.PageURL("Dragon bones"))
	require.NoError(t, err)
	assert.Equal(t, "<html><h1>Dragon bones</h1></html>", body)
	assert.Equal(t, "clog-test/1.0", gotUA)
	assert.Equal(t, "/w/Dragon_bones", gotPath)
}

func TestWikiPageNon200IsError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r, err := NewWikiPage(testConfig(srv.URL, "", ""), testClient())
	require.NoError(t, err)

	_, err = r.GetPage(context.Background(), r.PageURL("Missing page"))
	assert.True(t, errors.Is(err, ErrUpstreamStatus))
	assert.Equal(t, 1, calls, "requests are never retried")
}
