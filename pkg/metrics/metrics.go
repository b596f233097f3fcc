// Package metrics holds the Prometheus instrumentation of the service.
//
//	parentsguide_rating_computations_total{outcome}  engine runs: ok | degraded | failed
//	parentsguide_rating_cache_total{result}          memo lookups: hit | miss
//	parentsguide_upstream_fetch_total{op,result}     IMDb requests by operation
//	parentsguide_unmapped_certificates_total         certificate strings with no numeric age
//	parentsguide_gate_decisions_total{decision}      allow | block
//	parentsguide_http_requests_total{method,path,status}
//	parentsguide_http_request_duration_seconds{method,path}
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var RatingComputations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parentsguide_rating_computations_total",
	Help: "Rating engine computations by outcome.",
}, []string{"outcome"})

var RatingCache = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parentsguide_rating_cache_total",
	Help: "Rating cache lookups by result.",
}, []string{"result"})

var UpstreamFetch = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parentsguide_upstream_fetch_total",
	Help: "Upstream advisory source requests by operation and result.",
}, []string{"op", "result"})

var UnmappedCertificates = promauto.NewCounter(prometheus.CounterOpts{
	Name: "parentsguide_unmapped_certificates_total",
	Help: "Certificate strings that could not be normalized to an age.",
})

var GateDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parentsguide_gate_decisions_total",
	Help: "Age gate decisions.",
}, []string{"decision"})

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "parentsguide_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "path", "status"})

var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "parentsguide_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path"})

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
