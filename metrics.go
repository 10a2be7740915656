package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the site. Each instance owns
// its registry so tests can build several apps side by side.
type Metrics struct {
	Registry *prometheus.Registry

	FilterSelections *prometheus.CounterVec
	PageSelections   prometheus.Counter
	EmptyResults     prometheus.Counter
	ActiveSessions   prometheus.Gauge
	ContactMessages  *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		FilterSelections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_filter_selections_total",
			Help: "Project filter selections by category",
		}, []string{"category"}),
		PageSelections: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_page_selections_total",
			Help: "Project page selections",
		}),
		EmptyResults: factory.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_filter_empty_results_total",
			Help: "Filter selections that matched no project",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "portfolio_active_sessions",
			Help: "Page-sessions currently held in memory",
		}),
		ContactMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_messages_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveFilter records a filter selection. Unknown tags share one label
// value to keep cardinality bounded.
func (m *Metrics) ObserveFilter(category string, known bool, filtered int) {
	if !known {
		category = "unknown"
	}
	m.FilterSelections.WithLabelValues(category).Inc()
	if filtered == 0 {
		m.EmptyResults.Inc()
	}
}
