package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires up every endpoint. API routes get rate limiting, request
// IDs, and request observation; /healthz and /metrics stay unwrapped.
func NewRouter(
	impact *ImpactHandler,
	reference *ReferenceHandler,
	limiter *RateLimiter,
) *mux.Router {

	r := mux.NewRouter()

	middleware := []mux.MiddlewareFunc{
		func(next http.Handler) http.Handler { return RateLimitMiddleware(limiter, next) },
		RequestIDMiddleware,
		ObserveMiddleware,
	}

	api := r.PathPrefix("/impact").Subrouter()
	api.Use(middleware...)
	api.HandleFunc("/calculate", impact.Calculate).Methods(http.MethodPost)
	api.HandleFunc("/sensitivity", impact.Sensitivity).Methods(http.MethodPost)
	api.HandleFunc("/scenarios", impact.CompareScenarios).Methods(http.MethodPost)

	ref := r.PathPrefix("/reference").Subrouter()
	ref.Use(middleware...)
	ref.HandleFunc("/scenarios", reference.Scenarios).Methods(http.MethodGet)
	ref.HandleFunc("/sources", reference.Sources).Methods(http.MethodGet)
	ref.HandleFunc("/ranges", reference.Ranges).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
