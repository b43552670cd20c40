// Package storage defines the record store contract the HTTP layer talks to.
//
// Handlers depend only on Storage, so the backing store (the records file or
// a SQLite database) is chosen in main and tests pass a fake.
package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/aanand-mishra/customer-search/internal/types"
)

// ErrUnavailable is returned when the underlying records cannot be read or
// parsed.
var ErrUnavailable = errors.New("record store unavailable")

// Storage is the customer filter service.
type Storage interface {
	// SearchCustomers returns the customers matching f in the store's
	// natural order. A filter with no constraints returns every customer.
	// No matches is an empty slice and a nil error.
	SearchCustomers(ctx context.Context, f Filter) ([]types.Customer, error)
}

// Filter holds the optional search constraints. Empty fields impose none.
type Filter struct {
	FirstName   string
	LastName    string
	DateOfBirth string
}

// IsZero reports whether the filter has no constraints.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Matches applies the filter to one customer: names match case-insensitively
// by substring, the date of birth by exact equality with the stored string.
func (f Filter) Matches(c types.Customer) bool {
	if f.FirstName != "" && !containsFold(c.FirstName, f.FirstName) {
		return false
	}
	if f.LastName != "" && !containsFold(c.LastName, f.LastName) {
		return false
	}
	if f.DateOfBirth != "" && c.DateOfBirth != f.DateOfBirth {
		return false
	}
	return true
}

// Apply returns the customers matching f, preserving their order. The result
// is never nil.
func (f Filter) Apply(customers []types.Customer) []types.Customer {
	out := make([]types.Customer, 0, len(customers))
	for _, c := range customers {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
