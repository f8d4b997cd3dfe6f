package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ExportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume_builder", Name: "exports_total", Help: "Exports by format and outcome."},
		[]string{"format", "outcome"},
	)
	ExportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "resume_builder",
			Name:      "export_duration_seconds",
			Help:      "Time spent producing an export, including the wait for the mount slot.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"format"},
	)
	MountsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "resume_builder", Name: "mounts_active", Help: "Off-screen mounts currently held."},
	)
	AIFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume_builder", Name: "ai_fallbacks_total", Help: "Generation failures answered with fallback text."},
		[]string{"kind"},
	)
	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume_builder", Name: "rate_limited_total", Help: "Requests rejected by the per-client rate limiter."},
		[]string{"route"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ExportsTotal)
	reg.MustRegister(ExportDuration)
	reg.MustRegister(MountsActive)
	reg.MustRegister(AIFallbacks)
	reg.MustRegister(RateLimited)
}
