package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "clogbackend"
)

var (
	UpstreamFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "upstream", "fetch_duration_seconds"),
		Help:    "Duration of upstream fetches in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"upstream", "outcome"})
	ItemDropsCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "item_drops", "cache_lookups_total"),
		Help: "Item drops cache lookups by result: hit, miss (built by this caller) or shared (waited on a concurrent build)",
	}, []string{"result"})
	ItemDropsBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "item_drops", "build_duration_seconds"),
		Help:    "Duration of item drops builds in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"outcome"})
	ExtractedDropSources = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "item_drops", "sources"),
		Help:    "Number of drop sources per item by origin",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
	}, []string{"origin"})
)

// Outcome maps an error to a low-cardinality metric label.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
