package appconfig

import (
	"time"

	"github.com/collectionlog/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9020"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is an optional path of a rotated log file that receives JSON logs in addition to stdout.
	LogFile string `split_words:"true"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"stdout" validate:"dive,oneof=jaeger otlp stdout"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0" validate:"gte=0,lte=1"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// WikiBaseURL is the origin of the wiki that item pages are fetched from.
	WikiBaseURL string `required:"true" split_words:"true" default:"https://oldschool.runescape.wiki" validate:"url"`

	// WikiUserAgent identifies this service to the wiki and the mapping service.
	WikiUserAgent string `required:"true" split_words:"true" default:"collection-log-backend/1.0 (+https://github.com/collectionlog/backend)"`

	// WikiRateLimit is the sustained number of outbound wiki requests per second.
	WikiRateLimit float64 `split_words:"true" default:"2" validate:"gt=0"`

	// WikiRateBurst is the number of wiki requests allowed to burst above WikiRateLimit.
	WikiRateBurst int `split_words:"true" default:"4" validate:"gte=1"`

	// MappingURL returns a JSON array of {id, name} objects for every known item.
	MappingURL string `required:"true" split_words:"true" default:"https://prices.runescape.wiki/api/v1/osrs/mapping" validate:"url"`

	// UpstreamTimeout bounds every outbound request. Requests are never retried.
	UpstreamTimeout time.Duration `required:"true" split_words:"true" default:"10s" validate:"gt=0"`

	// OverrideDir is the directory of curated monster drop table JSON files.
	OverrideDir string `split_words:"true" default:"data/monsters"`

	// ExtractorVersion selects the wiki page extraction strategy.
	ExtractorVersion string `required:"true" split_words:"true" default:"v1" validate:"extractorversion"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
