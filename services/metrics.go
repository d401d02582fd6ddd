package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcomes, used as the "outcome" label of animals_fetch_total.
const (
	OutcomeOK             = "ok"
	OutcomeEmpty          = "empty"
	OutcomeMissingKey     = "missing_key"
	OutcomeTransportError = "transport_error"
	OutcomeBadStatus      = "bad_status"
	OutcomeDecodeError    = "decode_error"
)

// FetchMetrics counts outbound lookups against the animals API.
type FetchMetrics struct {
	fetches  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewFetchMetrics registers the collectors on reg. A nil reg gives working
// collectors that are simply never exported.
func NewFetchMetrics(reg prometheus.Registerer) *FetchMetrics {
	m := &FetchMetrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "animals",
			Name:      "fetch_total",
			Help:      "Lookups against the animals API by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "animals",
			Name:      "fetch_duration_seconds",
			Help:      "Latency of outbound animals API calls.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.fetches, m.duration)
	}
	return m
}

func (m *FetchMetrics) observe(outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(outcome).Inc()
	if !started.IsZero() {
		m.duration.Observe(time.Since(started).Seconds())
	}
}
