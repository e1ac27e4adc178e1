package test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
)

const mappingBody = `[
  {"id": 1234, "name": "Dragon bones"},
  {"id": 4242, "name": "Missing page"}
]`

const dragonBonesPage = `<!DOCTYPE html>
<html><body>
<h1 id="firstHeading" class="firstHeading"><span class="mw-page-title-main">Dragon bones</span></h1>
<h2><span class="mw-headline">Item sources</span></h2>
<table class="wikitable sortable filterable item-drops">
<thead><tr><th>Source</th><th>Quantity</th><th>Rarity</th><th>Notes</th></tr></thead>
<tbody>
<tr><td><a href="/w/Hill_giant">Hill giant</a></td><td>1</td><td>1/128<sup class="reference">[1]</sup></td><td>Rare drop</td></tr>
<tr><td><a href="/w/Baby_blue_dragon">Baby blue dragon</a></td><td>1</td><td>1/2</td><td></td></tr>
</tbody>
</table>
</body></html>`

const hillGiantOverride = `{
  "name": "Hill giant",
  "dropTableSections": [
    {"header": "Other", "items": [{"itemId": 1234, "rarity": "1/128"}]}
  ]
}`

// fakeUpstreams serves the item mapping and a tiny wiki.
type fakeUpstreams struct {
	mapping  *httptest.Server
	wiki     *httptest.Server
	wikiHits atomic.Int32
}

func newFakeUpstreams() *fakeUpstreams {
	u := &fakeUpstreams{}
	pages := map[string]string{
		"/w/Dragon_bones": dragonBonesPage,
		"/w/Item_9999":    `<html><body><p>Nothing here yet.</p></body></html>`,
	}

	u.mapping = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mappingBody))
	}))
	u.wiki = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.wikiHits.Add(1)
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(page))
	}))

	return u
}

func (u *fakeUpstreams) Close() {
	u.mapping.Close()
	u.wiki.Close()
}

// configure points the application at the fake upstreams through its environment.
func (u *fakeUpstreams) configure(overrideDir string) error {
	if err := os.WriteFile(filepath.Join(overrideDir, "hill_giant.json"), []byte(hillGiantOverride), 0o644); err != nil {
		return err
	}

	env := map[string]string{
		"CLOG_MAPPING_URL":      u.mapping.URL,
		"CLOG_WIKI_BASE_URL":    u.wiki.URL,
		"CLOG_WIKI_RATE_LIMIT":  "1000",
		"CLOG_WIKI_RATE_BURST":  "1000",
		"CLOG_OVERRIDE_DIR":     overrideDir,
		"CLOG_UPSTREAM_TIMEOUT": "5s",
		"CLOG_SENTRY_DSN":       "",
	}
	for k, v := range env {
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
