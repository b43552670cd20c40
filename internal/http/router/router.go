// Package router registers every HTTP route of the service.
package router

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/customer-search/internal/http/handlers/customer"
	"github.com/aanand-mishra/customer-search/internal/http/handlers/page"
	"github.com/aanand-mishra/customer-search/internal/http/middleware"
	"github.com/aanand-mishra/customer-search/internal/metrics"
	"github.com/aanand-mishra/customer-search/internal/utils/response"
)

// New returns the root handler:
//
//	GET /               search page
//	GET /api/customers  filter API
//	GET /healthz        liveness
//	GET /metrics        Prometheus
func New(log *slog.Logger, pageDeps page.Deps) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", middleware.Instrument("/", page.Search(pageDeps)))
	mux.Handle("GET /api/customers", middleware.Instrument("/api/customers", customer.Search(pageDeps.Store)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, response.StatusResponse{Status: response.StatusOK})
	})
	mux.Handle("GET /metrics", metrics.Handler())

	return middleware.RequestID(log, mux)
}
