package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллектор prometheus-метрик HTTP слоя
type Metrics struct {
	serviceName string

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New создает и регистрирует коллектор метрик в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"service", "method", "path", "status"},
		),

		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
	}
}

// ObserveRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveRequest(method, path, status string, durationSeconds float64) {
	m.RequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.RequestDuration.WithLabelValues(m.serviceName, method, path).Observe(durationSeconds)
}
