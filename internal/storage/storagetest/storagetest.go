// Package storagetest holds the filter cases every storage.Storage
// implementation must pass.
package storagetest

import (
	"github.com/aanand-mishra/customer-search/internal/storage"
	"github.com/aanand-mishra/customer-search/internal/types"
)

// Customers returns the records the cases are written against, in store
// order. Each call returns a fresh slice.
func Customers() []types.Customer {
	return []types.Customer{
		{ID: "1", FirstName: "Jon", LastName: "Smith", DateOfBirth: "1990-06-15", MaritalStatus: types.Single,
			Phones: []types.Phone{{ID: "p1", Type: types.PhoneMobile, Number: "(555) 123-4567", IsPrimary: true}}},
		{ID: "2", FirstName: "Jonathan", LastName: "Doe", DateOfBirth: "1985-01-02", MaritalStatus: types.Married,
			Addresses: []types.Address{{ID: "a1", Type: types.AddressHome, Street: "1 Elm St", City: "Austin", State: "TX", ZipCode: "73301"}}},
		{ID: "3", FirstName: "Mary", LastName: "Jonson", DateOfBirth: "1990-06-15", MaritalStatus: types.Widowed},
		{ID: "4", FirstName: "Élise", LastName: "Ölander", DateOfBirth: "1978-03-09", MaritalStatus: types.Divorced},
	}
}

// Case is one filter and the ids it must return, in order.
type Case struct {
	Name   string
	Filter storage.Filter
	Want   []string
}

// FilterCases covers case folding (including non-ASCII letters), substring
// matching, exact dates and order preservation.
var FilterCases = []Case{
	{"no constraints", storage.Filter{}, []string{"1", "2", "3", "4"}},
	{"first name lower case", storage.Filter{FirstName: "jon"}, []string{"1", "2"}},
	{"first name upper case", storage.Filter{FirstName: "JON"}, []string{"1", "2"}},
	{"last name substring", storage.Filter{LastName: "on"}, []string{"3"}},
	{"accented first name lower case", storage.Filter{FirstName: "élise"}, []string{"4"}},
	{"accented last name upper case", storage.Filter{LastName: "ÖLAND"}, []string{"4"}},
	{"date exact", storage.Filter{DateOfBirth: "1990-06-15"}, []string{"1", "3"}},
	{"date partial does not match", storage.Filter{DateOfBirth: "1990"}, []string{}},
	{"combined", storage.Filter{FirstName: "jon", DateOfBirth: "1990-06-15"}, []string{"1"}},
	{"percent is literal", storage.Filter{FirstName: "%"}, []string{}},
	{"no match", storage.Filter{FirstName: "zed"}, []string{}},
}

// IDs lists the ids of customers in order. The result is never nil.
func IDs(customers []types.Customer) []string {
	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}
	return ids
}
