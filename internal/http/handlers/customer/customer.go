// Package customer contains the HTTP handlers of the customer filter API.
//
// Handlers are built by factory functions that capture their dependencies:
//
//	router.HandleFunc("GET /api/customers", customer.Search(store))
package customer

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/customer-search/internal/http/middleware"
	"github.com/aanand-mishra/customer-search/internal/metrics"
	"github.com/aanand-mishra/customer-search/internal/storage"
	"github.com/aanand-mishra/customer-search/internal/types"
	"github.com/aanand-mishra/customer-search/internal/utils/response"
)

// FetchFailed is the fixed body message of a failed search.
const FetchFailed = "Failed to fetch customers"

// FilterFromRequest reads the optional filter parameters. Absent and empty
// parameters impose no constraint.
func FilterFromRequest(r *http.Request) storage.Filter {
	q := r.URL.Query()
	return storage.Filter{
		FirstName:   q.Get("firstName"),
		LastName:    q.Get("lastName"),
		DateOfBirth: q.Get("dateOfBirth"),
	}
}

// Search handles GET /api/customers
//
// Query parameters (all optional):
//
//	firstName    case-insensitive substring
//	lastName     case-insensitive substring
//	dateOfBirth  exact ISO date, e.g. 1990-06-15
//
// Success response (200 OK): JSON array of customers, [] when none match.
//
// Error response (500): {"error": "Failed to fetch customers"}
func Search(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.Logger(r.Context())
		filter := FilterFromRequest(r)

		log.Info("searching customers",
			slog.String("firstName", filter.FirstName),
			slog.String("lastName", filter.LastName),
			slog.String("dateOfBirth", filter.DateOfBirth))

		customers, err := store.SearchCustomers(r.Context(), filter)
		if err != nil {
			log.Error("error fetching customers", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.Error(FetchFailed))
			return
		}

		if customers == nil {
			customers = []types.Customer{}
		}

		metrics.ObserveResults("api", len(customers))
		log.Info("customers found", slog.Int("count", len(customers)))

		response.WriteJSON(w, http.StatusOK, customers)
	}
}
