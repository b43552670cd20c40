// Package page serves the HTML search page.
package page

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/customer-search/internal/fields"
	"github.com/aanand-mishra/customer-search/internal/http/middleware"
	"github.com/aanand-mishra/customer-search/internal/metrics"
	"github.com/aanand-mishra/customer-search/internal/render"
	"github.com/aanand-mishra/customer-search/internal/render/htmlview"
	"github.com/aanand-mishra/customer-search/internal/storage"
)

const (
	// Banner messages for a store failure on the initial load and on a search.
	LoadFailed   = "Failed to load customers. Please try again."
	SearchFailed = "An error occurred while searching. Please try again."
)

// Deps are the collaborators of the page handler.
type Deps struct {
	Store    storage.Storage
	Registry *fields.Registry
	View     *htmlview.Renderer
	Title    string
	Subtitle string

	// Now is the reference clock for ages; time.Now when nil.
	Now func() time.Time
}

// Search handles GET /
//
// The query string is the form submission. A request without any non-empty
// search value is the initial load and lists every customer.
func Search(deps Deps) http.HandlerFunc {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log := middleware.Logger(r.Context())

		searchFields := deps.Registry.SearchFields()
		values := render.Collect(searchFields, r.URL.Query())
		initial := !render.HasValues(values)

		p := htmlview.Page{
			Title:     deps.Title,
			Subtitle:  deps.Subtitle,
			Form:      render.NewForm(searchFields, values, false),
			BusyLabel: render.SubmitBusyLabel,
		}

		customers, err := deps.Store.SearchCustomers(r.Context(), filterFrom(values))
		if err != nil {
			log.Error("failed to load customers",
				slog.Bool("initial", initial),
				slog.String("error", err.Error()))
			p.Error = SearchFailed
			if initial {
				p.Error = LoadFailed
			}
			customers = nil
		} else {
			metrics.ObserveResults("page", len(customers))
		}

		p.Table = render.NewTable(deps.Registry.ResultFields(), customers, now())
		p.Count = len(customers)
		p.Summary = htmlview.Summary(len(customers))

		var buf bytes.Buffer
		if err := deps.View.Render(&buf, p); err != nil {
			log.Error("failed to render page", slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", deps.View.ContentType())
		w.WriteHeader(http.StatusOK)
		buf.WriteTo(w)
	}
}

// filterFrom maps collected form values onto the store filter. Values of
// search fields the store cannot filter on are ignored.
func filterFrom(values map[string]string) storage.Filter {
	return storage.Filter{
		FirstName:   values["firstName"],
		LastName:    values["lastName"],
		DateOfBirth: values["dateOfBirth"],
	}
}
