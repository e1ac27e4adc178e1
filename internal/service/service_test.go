package service

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/collectionlog/backend/internal/app/appconfig"
	modelcache "github.com/collectionlog/backend/internal/model/cache"
	"github.com/collectionlog/backend/internal/repo"
)

// upstreams fakes the mapping service and the wiki.
type upstreams struct {
	mapping *httptest.Server
	wiki    *httptest.Server

	mappingStatus atomic.Int32
	mappingHits   atomic.Int32
	wikiHits      atomic.Int32

	mu    sync.Mutex
	pages map[string]string
	// gate, when set, blocks wiki responses until closed
	gate chan struct{}
}

// hold blocks wiki responses until the returned release func is called.
func (u *upstreams) hold() (release func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	gate := make(chan struct{})
	u.gate = gate
	return func() { close(gate) }
}

func (u *upstreams) waitGate() {
	u.mu.Lock()
	gate := u.gate
	u.mu.Unlock()
	if gate != nil {
		<-gate
	}
}

func (u *upstreams) setPage(path, page string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.pages[path] = page
}

func (u *upstreams) page(path string) (string, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	page, ok := u.pages[path]
	return page, ok
}

func newUpstreams(t *testing.T, mappingBody string, pages map[string]string) *upstreams {
	t.Helper()
	u := &upstreams{pages: map[string]string{}}
	for path, page := range pages {
		u.pages[path] = page
	}
	u.mappingStatus.Store(http.StatusOK)

	u.mapping = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mappingHits.Add(1)
		if status := int(u.mappingStatus.Load()); status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mappingBody))
	}))
	t.Cleanup(u.mapping.Close)

	u.wiki = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.wikiHits.Add(1)
		u.waitGate()
		page, ok := u.page(r.URL.Path)
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(u.wiki.Close)

	return u
}

type testServices struct {
	caches      *modelcache.Registry
	itemMapping *ItemMapping
	itemDrops   *ItemDrops
	health      *Health
}

func newTestServices(t *testing.T, u *upstreams, overrides map[string]string, opts ...func(*appconfig.Config)) *testServices {
	t.Helper()

	dir := t.TempDir()
	for name, content := range overrides {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			WikiBaseURL:      u.wiki.URL,
			WikiUserAgent:    "clog-test/1.0",
			WikiRateLimit:    1000,
			WikiRateBurst:    1000,
			MappingURL:       u.mapping.URL,
			UpstreamTimeout:  5 * time.Second,
			OverrideDir:      dir,
			ExtractorVersion: "v1",
		},
	}
	for _, opt := range opts {
		opt(conf)
	}
	client := &http.Client{Timeout: conf.UpstreamTimeout}

	wikiPage, err := repo.NewWikiPage(conf, client)
	require.NoError(t, err)
	extractor, err := NewExtractor(conf)
	require.NoError(t, err)

	caches := modelcache.New()
	itemMapping := NewItemMapping(repo.NewItemMapping(conf, client), caches)
	itemDrops := NewItemDrops(
		conf,
		itemMapping,
		wikiPage,
		repo.NewOverride(conf, wikiPage),
		extractor,
		caches,
		otel.GetTracerProvider(),
	)

	return &testServices{
		caches:      caches,
		itemMapping: itemMapping,
		itemDrops:   itemDrops,
		health:      NewHealth(itemMapping, itemDrops),
	}
}
