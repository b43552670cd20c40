package render

import (
	"time"

	"github.com/aanand-mishra/customer-search/internal/fields"
	"github.com/aanand-mishra/customer-search/internal/types"
)

const (
	// Empty-state copy shown when no customer matches.
	EmptyTitle   = "No customers found"
	EmptyMessage = "Try adjusting your search criteria or add a new customer."
)

// Table is the view model of the results table. When Empty is set the
// caller shows the empty-state block and Headers and Rows are nil.
type Table struct {
	Empty   bool
	Headers []Header
	Rows    []Row
}

// Header is one column heading, keyed by the descriptor name.
type Header struct {
	Name  string
	Label string
}

// Row is one customer; Key is the record id.
type Row struct {
	Key   string
	Cells []Cell
}

// NewTable builds one column per descriptor in display order and one row
// per record in the order given. now is the reference date for ages.
func NewTable(descriptors []types.FieldDescriptor, records []types.Customer, now time.Time) Table {
	if len(records) == 0 {
		return Table{Empty: true}
	}

	sorted := fields.Sorted(descriptors)

	headers := make([]Header, len(sorted))
	for i, f := range sorted {
		headers[i] = Header{Name: f.Name, Label: f.Label}
	}

	rows := make([]Row, len(records))
	for i, c := range records {
		cells := make([]Cell, len(sorted))
		for j, f := range sorted {
			cells[j] = FormatterFor(f.Name).Cell(f, c, now)
		}
		rows[i] = Row{Key: c.ID, Cells: cells}
	}

	return Table{Headers: headers, Rows: rows}
}
