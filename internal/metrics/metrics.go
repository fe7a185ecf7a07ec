// Package metrics defines Prometheus metrics for the gateway.
//
// Metric naming follows Prometheus conventions:
//   - posgw_ prefix for all custom metrics
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Login outcome labels.
const (
	OutcomeSuccess            = "success"
	OutcomeMissingFields      = "missing_fields"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeBackendError       = "backend_error"
)

var (
	// LoginsTotal counts login attempts by terminal outcome.
	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posgw_logins_total",
			Help: "Total number of login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// BackendRequestDurationSeconds is a histogram of outbound backend
	// call duration by endpoint.
	BackendRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "posgw_backend_request_duration_seconds",
			Help:    "Duration of backend API calls in seconds.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	// ProxyRequestsTotal counts proxied API requests by response status class.
	ProxyRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posgw_proxy_requests_total",
			Help: "Total proxied backend requests by status class.",
		},
		[]string{"status_class"},
	)
)

func init() {
	prometheus.MustRegister(
		LoginsTotal,
		BackendRequestDurationSeconds,
		ProxyRequestsTotal,
	)
}

// RecordLogin records a terminal login outcome.
func RecordLogin(outcome string) {
	LoginsTotal.WithLabelValues(outcome).Inc()
}

// RecordBackendRequest records the duration of one outbound backend call.
func RecordBackendRequest(endpoint string, duration time.Duration) {
	BackendRequestDurationSeconds.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordProxyRequest records a proxied request by its response status class
// (e.g., "2xx", "5xx").
func RecordProxyRequest(statusClass string) {
	ProxyRequestsTotal.WithLabelValues(statusClass).Inc()
}
