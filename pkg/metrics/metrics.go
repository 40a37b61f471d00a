package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoginAttempts records code-exchange attempts by result (success|failure).
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftwish_login_attempts_total",
			Help: "Total number of code login attempts",
		},
		[]string{"result"},
	)

	// ActiveSessions tracks sessions currently held in the registry.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "giftwish_active_sessions",
			Help: "Number of active sessions",
		},
	)

	// ClaimsCreated counts inserted claims by status (PLANNING|BOUGHT).
	ClaimsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "giftwish_claims_created_total",
			Help: "Total number of claims recorded",
		},
		[]string{"status"},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "giftwish_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
