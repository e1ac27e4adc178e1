package repo

import (
	"net/http"
	"time"

	"github.com/collectionlog/backend/internal/app/appconfig"
)

func testConfig(wikiBaseURL, mappingURL, overrideDir string) *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			WikiBaseURL:     wikiBaseURL,
			WikiUserAgent:   "clog-test/1.0",
			WikiRateLimit:   100,
			WikiRateBurst:   100,
			MappingURL:      mappingURL,
			UpstreamTimeout: 2 * time.Second,
			OverrideDir:     overrideDir,
		},
	}
}

func testClient() *http.Client {
	return &http.Client{Timeout: 2 * time.Second}
}
