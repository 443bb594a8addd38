package metrics

import "github.com/prometheus/client_golang/prometheus"

// FulfillmentMetrics exposes counters/histograms for intent fulfillment.
type FulfillmentMetrics struct {
	requestsTotal *prometheus.CounterVec
	fetchLatency  *prometheus.HistogramVec
	fetchErrors   prometheus.Counter
}

func NewFulfillmentMetrics(reg prometheus.Registerer) *FulfillmentMetrics {
	m := &FulfillmentMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "frontdesk",
			Subsystem: "fulfillment",
			Name:      "requests_total",
			Help:      "Total fulfillment requests by intent and outcome kind",
		}, []string{"intent", "outcome"}),
		fetchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "frontdesk",
			Subsystem: "sheets",
			Name:      "fetch_seconds",
			Help:      "Latency of Google Sheets range fetches",
			Buckets:   prometheus.DefBuckets,
		}, []string{"range"}),
		fetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frontdesk",
			Subsystem: "sheets",
			Name:      "fetch_errors_total",
			Help:      "Total failed Google Sheets fetches",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.fetchLatency, m.fetchErrors)
	return m
}

func (m *FulfillmentMetrics) ObserveRequest(intent, outcome string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(intent, outcome).Inc()
}

func (m *FulfillmentMetrics) ObserveFetch(rangeSpec string, seconds float64) {
	if m == nil {
		return
	}
	m.fetchLatency.WithLabelValues(rangeSpec).Observe(seconds)
}

func (m *FulfillmentMetrics) ObserveFetchError() {
	if m == nil {
		return
	}
	m.fetchErrors.Inc()
}
