// Package router assembles the HTTP API surface.
package router

import (
	"net/http"

	"github.com/intelia/rfpaccel/adapter/http/workflow"
)

// New constructs an http.Handler exposing the workflow API.
//
// Workflow endpoints are mounted under /v1/api/workflow/… and /healthz
// answers liveness probes.
func New(svc workflow.Service) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/v1/api/workflow/run", workflow.New(svc))
	mux.Handle("/v1/api/workflow/status", workflow.NewStatus(svc))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return WithCORS(mux)
}

// WithCORS adds cross-origin headers and answers preflight requests so
// the API can be called from browser tooling.
func WithCORS(next http.Handler) http.Handler {
	if next == nil {
		return nil
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
