// Package metrics exposes batch statistics as Prometheus collectors.
package metrics

import (
	"context"

	"github.com/aretw0/termgen/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by the engine's lifecycle hooks.
type Metrics struct {
	TermsGenerated prometheus.Counter
	TermTokens     prometheus.Histogram
	TermDepth      prometheus.Histogram
	BatchDuration  *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TermsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "termgen_terms_generated_total",
			Help: "Total number of generated terms",
		}),
		TermTokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "termgen_term_tokens",
			Help:    "Number of tokens per generated term",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		TermDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "termgen_term_depth",
			Help:    "Nesting depth of generated terms",
			Buckets: prometheus.LinearBuckets(0, 1, 9),
		}),
		BatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "termgen_batch_duration_seconds",
			Help: "Duration of completed batches",
		}, []string{"destination"}),
	}
	reg.MustRegister(m.TermsGenerated, m.TermTokens, m.TermDepth, m.BatchDuration)
	return m
}

// Hooks returns lifecycle hooks recording into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTerm: func(_ context.Context, e *domain.TermEvent) {
			m.TermsGenerated.Inc()
			m.TermTokens.Observe(float64(e.Tokens))
			m.TermDepth.Observe(float64(e.Depth))
		},
		OnBatchDone: func(_ context.Context, e *domain.BatchEvent) {
			dest := e.Destination
			if dest == "" {
				dest = "none"
			}
			m.BatchDuration.WithLabelValues(dest).Observe(e.Duration.Seconds())
		},
	}
}
