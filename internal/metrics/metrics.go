// Package metrics defines the Prometheus collectors for split calculations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "splitwiser"

// Metrics holds the collectors recorded by the split service.
type Metrics struct {
	registry *prometheus.Registry

	Calculations        *prometheus.CounterVec
	CalculationDuration prometheus.Histogram
	SessionCorrections  prometheus.Counter
	SplitFallbacks      prometheus.Counter
	CurrencyFallbacks   prometheus.Counter
}

// New registers the collectors, plus the Go runtime and process collectors,
// on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Calculations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Split calculations by result (ok, invalid).",
		}, []string{"result"}),
		CalculationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Time spent computing a split summary.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		SessionCorrections: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_corrections_total",
			Help:      "Calculations that needed a session-wide rounding correction.",
		}),
		SplitFallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_fallbacks_total",
			Help:      "Items split equally because their percentage or exact assignments were invalid.",
		}),
		CurrencyFallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "currency_fallbacks_total",
			Help:      "Receipts converted 1:1 for lack of an exchange rate.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
