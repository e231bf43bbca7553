// Package metrics holds the Prometheus collectors of the server and small
// helpers that record into them. Collectors are registered with the default
// registry on import and exposed by [Handler].
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine call outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geowaqf_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geowaqf_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "route"},
	)

	EngineRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geowaqf_engine_requests_total",
			Help: "Total number of Earth Engine REST calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	EngineRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geowaqf_engine_request_duration_seconds",
			Help:    "Earth Engine REST call latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 45},
		},
		[]string{"operation"},
	)

	RegionResolved = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "geowaqf_region_resolved",
			Help: "1 when the district and province boundaries were resolved at startup",
		},
	)
)

// RecordHTTPRequest records one served request. route is the chi route
// pattern, never the raw path, to keep label cardinality bounded.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordEngineCall records one outbound REST call.
func RecordEngineCall(operation string, duration time.Duration, err error) {
	EngineRequestsTotal.WithLabelValues(operation, outcome(err)).Inc()
	EngineRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetRegionResolved publishes the startup boundary state.
func SetRegionResolved(ok bool) {
	if ok {
		RegionResolved.Set(1)
		return
	}
	RegionResolved.Set(0)
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// context.DeadlineExceeded and net timeouts both satisfy it.
type timeout interface {
	Timeout() bool
}

func outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	var t timeout
	if errors.As(err, &t) && t.Timeout() {
		return OutcomeTimeout
	}

	return OutcomeError
}
