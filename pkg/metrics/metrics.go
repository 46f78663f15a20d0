package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records per-endpoint request counts and latencies
type HTTPMetrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
}

// NewHTTPMetrics creates and registers request metrics under the given namespace
func NewHTTPMetrics(namespace string, reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// client-side quantiles for p50/p90/p95/p99
		requestSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Namespace: namespace,
				Name:      "request_duration_summary",
				Help:      "Summary of request durations with percentiles",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
	}

	reg.MustRegister(m.requestCounter, m.requestLatency, m.requestSummary)
	return m
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Wrap records metrics for next under the route template endpoint
func (m *HTTPMetrics) Wrap(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		m.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		m.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		m.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// ShopMetrics holds the business counters of the storefront backend
type ShopMetrics struct {
	OrdersPlaced  prometheus.Counter
	OrderValue    prometheus.Histogram
	Registrations prometheus.Counter
	TotalProducts prometheus.Gauge
}

// NewShopMetrics creates and registers the business metrics
func NewShopMetrics(namespace string, reg prometheus.Registerer) *ShopMetrics {
	m := &ShopMetrics{
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed",
		}),
		OrderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_value",
			Help:      "Order totals in store currency",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Total number of registered users",
		}),
		TotalProducts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_products",
			Help:      "Total number of products in the catalog",
		}),
	}

	reg.MustRegister(m.OrdersPlaced, m.OrderValue, m.Registrations, m.TotalProducts)
	return m
}
