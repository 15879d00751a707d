package logger

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const metricsNamespace = "hockey_stats"

// Metrics tracks crawl counters and fetch timings on a private Prometheus registry.
// A fresh Metrics is created per run so repeated runs in tests never share state.
type Metrics struct {
	registry      *prometheus.Registry
	pagesFetched  prometheus.Counter
	fetchFailures prometheus.Counter
	recordsParsed prometheus.Counter
	fetchDuration prometheus.Histogram
}

// NewMetrics creates a metrics tracker with all collectors registered at zero.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pagesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pages_fetched_total",
			Help:      "Pages fetched with a non-empty body.",
		}),
		fetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_failures_total",
			Help:      "Fetches that returned a non-200 status or a transport error.",
		}),
		recordsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "records_parsed_total",
			Help:      "Table rows parsed into records.",
		}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_duration_seconds",
			Help:      "Wall time spent on each page fetch.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.pagesFetched, m.fetchFailures, m.recordsParsed, m.fetchDuration)
	return m
}

// ObserveFetch records the duration of one fetch and whether it produced content
func (m *Metrics) ObserveFetch(d time.Duration, ok bool) {
	m.fetchDuration.Observe(d.Seconds())
	if ok {
		m.pagesFetched.Inc()
	} else {
		m.fetchFailures.Inc()
	}
}

// AddRecords adds n parsed records
func (m *Metrics) AddRecords(n int) {
	m.recordsParsed.Add(float64(n))
}

// Snapshot gathers the registry into a flat map keyed by metric name.
// Histograms contribute "<name>_count" and "<name>_sum" entries.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metrics: %w", err)
	}

	snapshot := make(map[string]float64)
	for _, mf := range families {
		name := mf.GetName()
		for _, metric := range mf.GetMetric() {
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				snapshot[name] = metric.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				snapshot[name] = metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				snapshot[name+"_count"] = float64(h.GetSampleCount())
				snapshot[name+"_sum"] = h.GetSampleSum()
			}
		}
	}
	return snapshot, nil
}
