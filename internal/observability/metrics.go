package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// Metrics holds all Prometheus metric instruments.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SourceRefreshTotal *prometheus.CounterVec
	RecomputeTotal     prometheus.Counter
	RecordsTotal       prometheus.Gauge
	RecordsFiltered    prometheus.Gauge
}

// InitMetrics registers all instruments with the given registerer.
func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metreg_http_requests_total",
			Help: "HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "metreg_http_request_duration_seconds",
			Help:    "HTTP request duration.",
			Buckets: httpDurationBuckets,
		}, []string{"method", "path"}),
		SourceRefreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metreg_source_refresh_total",
			Help: "Record source refresh attempts by result.",
		}, []string{"result"}),
		RecomputeTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "metreg_view_recompute_total",
			Help: "View projection recomputation passes.",
		}),
		RecordsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "metreg_records_total",
			Help: "Equipment records in the source collection.",
		}),
		RecordsFiltered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "metreg_records_filtered",
			Help: "Equipment records passing the active view filters.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SourceRefreshTotal,
		m.RecomputeTotal,
		m.RecordsTotal,
		m.RecordsFiltered,
	)
	return m
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// statusRecorder captures the response status for metric labels.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records request counts and durations around the handler.
func (m *Metrics) MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
