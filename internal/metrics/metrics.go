package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CallbackOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_auth_callback_total",
		Help: "Auth callback visits by outcome",
	}, []string{"outcome"})

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portal_backend_request_duration_seconds",
		Help:    "Latency of contest backend requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	ThemeChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_theme_changes_total",
		Help: "Theme preference changes by resulting variant",
	}, []string{"variant"})

	RecoveredPanics = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_recovered_panics_total",
		Help: "Handler panics caught by the recover middleware",
	})
)

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
