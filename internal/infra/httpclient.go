package infra

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/collectionlog/backend/internal/app/appconfig"
)

// HTTPClient is the single client shared by every outbound upstream call.
// Requests are never retried; the timeout bounds each attempt.
func HTTPClient(conf *appconfig.Config) *http.Client {
	log.Debug().
		Dur("timeout", conf.UpstreamTimeout).
		Msg("creating upstream http client")

	return &http.Client{
		Timeout: conf.UpstreamTimeout,
	}
}
