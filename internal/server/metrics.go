// Package server provides the HTTP API of the digit calculator.
package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes server-level counters in Prometheus format. Evaluation
// counters and latencies are recorded by the calculator package.
type Metrics struct {
	handler http.Handler
}

var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "digitcalc_http_active_requests",
		Help: "Current number of HTTP requests being served",
	})
	totalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "digitcalc_http_requests_total",
		Help: "HTTP requests served, by path and status code",
	}, []string{"path", "code"})
)

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		handler: promhttp.Handler(),
	}
}

// IncrementActiveRequests marks a request as in flight.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
}

// DecrementActiveRequests marks a request as done and counts it.
func (m *Metrics) DecrementActiveRequests(path string, code int) {
	activeRequests.Dec()
	totalRequests.WithLabelValues(path, strconv.Itoa(code)).Inc()
}

// WritePrometheus writes metrics in Prometheus text format to the HTTP response.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// handleMetrics is the HTTP handler for the /metrics endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "", "Method not allowed")
		return
	}

	s.metrics.WritePrometheus(w, r)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware tracks active requests and counts them by status.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		s.metrics.IncrementActiveRequests()
		defer func() { s.metrics.DecrementActiveRequests(r.URL.Path, rec.code) }()
		next(rec, r)
	}
}
