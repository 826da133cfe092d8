package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seo-optimizer/discoverability/analyzer"
)

// Metrics records analysis and HTTP metrics with Prometheus
type Metrics struct {
	registry *prometheus.Registry

	analysesTotal    *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	findingsTotal    *prometheus.CounterVec
	chartFailures    *prometheus.CounterVec
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// New creates metrics registered on their own registry
func New(namespace string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of page analyses by outcome",
		},
		[]string{"outcome"},
	)

	m.analysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Time taken to fetch and analyze a page",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
		},
		[]string{"outcome"},
	)

	m.findingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_total",
			Help:      "Findings produced by axis and polarity",
		},
		[]string{"axis", "polarity"},
	)

	m.chartFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_failures_total",
			Help:      "Charts that could not be rendered",
		},
		[]string{"chart"},
	)

	m.requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	m.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	m.registry.MustRegister(
		m.analysesTotal,
		m.analysisDuration,
		m.findingsTotal,
		m.chartFailures,
		m.requestsTotal,
		m.requestDuration,
	)
	return m
}

// RecordAnalysis counts one finished analysis and its findings
func (m *Metrics) RecordAnalysis(result *analyzer.Result, duration time.Duration) {
	outcome := string(result.Outcome)
	m.analysesTotal.WithLabelValues(outcome).Inc()
	m.analysisDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	for _, f := range result.Findings {
		m.findingsTotal.WithLabelValues(string(f.Axis), string(f.Polarity)).Inc()
	}
}

// RecordChartFailure counts a chart that failed to render
func (m *Metrics) RecordChartFailure(chart string) {
	m.chartFailures.WithLabelValues(chart).Inc()
}

// RecordRequest counts one HTTP request
func (m *Metrics) RecordRequest(route, method, status string, duration time.Duration) {
	m.requestsTotal.WithLabelValues(route, method, status).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// Handler serves the metrics in Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
