package metrics

import (
	"encoding/json"
	"net/http"

	"contactbook/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Auth metrics

	RegistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactbook",
		Name:      "registrations_total",
		Help:      "Total registration attempts, by outcome.",
	}, []string{"outcome"})

	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactbook",
		Name:      "logins_total",
		Help:      "Total login attempts, by outcome.",
	}, []string{"outcome"})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "contactbook",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactbook",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		RegistrationsTotal,
		LoginsTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer serves /metrics plus the liveness and readiness probes on the
// internal port, away from the public API.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, http.StatusOK, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := checker.Readiness(r.Context())
		status := http.StatusOK
		if result.Status != "up" {
			status = http.StatusServiceUnavailable
		}
		writeHealth(w, status, result)
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, status int, result health.HealthResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}
