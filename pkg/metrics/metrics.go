// Package metrics registers the service's prometheus collectors and
// exposes the scrape handler wired in by the HTTP layer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReadingsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "greenhouse_readings_recorded_total",
			Help: "Total number of environmental readings persisted",
		},
	)

	IssuesOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "greenhouse_issues_opened_total",
			Help: "Total number of issues opened from out-of-range readings",
		},
	)

	IssuesResolved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "greenhouse_issues_resolved_total",
			Help: "Total number of issues resolved",
		},
	)

	NotificationsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "greenhouse_notifications_sent_total",
			Help: "Total number of alert notifications delivered",
		},
	)

	NotificationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greenhouse_notification_failures_total",
			Help: "Total number of notification dispatches skipped or failed",
		},
		[]string{"reason"}, // "no_recipients" or "send_failed"
	)

	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "greenhouse_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "greenhouse_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		ReadingsRecorded,
		IssuesOpened,
		IssuesResolved,
		NotificationsSent,
		NotificationFailures,
		HTTPRequestCounter,
		RequestDuration,
	)
}

// Handler returns the prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// TrackRequest records one finished HTTP request.
func TrackRequest(endpoint, method, status string, started time.Time) {
	labels := prometheus.Labels{"endpoint": endpoint, "method": method, "status": status}
	RequestDuration.With(labels).Observe(time.Since(started).Seconds())
	HTTPRequestCounter.With(labels).Inc()
}
