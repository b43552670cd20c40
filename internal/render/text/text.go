// Package text paints the results table view model as aligned plain text
// for the terminal.
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aanand-mishra/customer-search/internal/render"
)

// WriteTable writes t as tab-aligned columns, or the empty-state message.
func WriteTable(w io.Writer, t render.Table) error {
	if t.Empty {
		_, err := fmt.Fprintf(w, "%s\n%s\n", render.EmptyTitle, render.EmptyMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	labels := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		labels[i] = h.Label
	}
	fmt.Fprintln(tw, strings.Join(labels, "\t"))

	for _, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = Cell(c)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// Cell flattens one cell to a single line.
func Cell(c render.Cell) string {
	switch c.Kind {
	case render.CellName:
		return fmt.Sprintf("%s (ID: %s)", c.Text, c.SecureID)
	case render.CellDate:
		return fmt.Sprintf("%s (%d years old)", c.Text, c.Age)
	case render.CellAddresses:
		parts := make([]string, len(c.Addresses))
		for i, a := range c.Addresses {
			parts[i] = fmt.Sprintf("%s, %s [%s]", a.Street, a.Locality, a.Type)
		}
		return strings.Join(parts, "; ")
	case render.CellContacts:
		parts := make([]string, len(c.Contacts))
		for i, ct := range c.Contacts {
			label := ct.Type
			if ct.Primary {
				label += ", Primary"
			}
			parts[i] = fmt.Sprintf("%s [%s]", ct.Text, label)
		}
		return strings.Join(parts, "; ")
	default:
		return c.Text
	}
}
