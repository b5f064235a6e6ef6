package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "devdash"

// Metrics - метрики HTTP API и выдачи списков в собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	matched  *prometheus.HistogramVec
	empty    *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of API requests by operation and status",
		}, []string{"operation", "method", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "API request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		matched: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "list_matched_records",
			Help:      "Number of records left after filtering a list",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}, []string{"kind"}),
		empty: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "list_empty_total",
			Help:      "Number of list pages rendered with an empty state",
		}, []string{"kind", "state"}),
	}
}

// Middleware считает запросы и их длительность по OperationID
func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		op := "unknown"
		if o := ctx.Operation(); o != nil {
			op = o.OperationID
		}
		status := ctx.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(op, ctx.Method(), strconv.Itoa(status)).Inc()
		m.latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}

// ObservePage фиксирует размер выдачи и пустые состояния
func (m *Metrics) ObservePage(kind string, matched int, empty string) {
	m.matched.WithLabelValues(kind).Observe(float64(matched))
	if empty != "" {
		m.empty.WithLabelValues(kind, empty).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
