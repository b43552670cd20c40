package render_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aanand-mishra/customer-search/internal/fields"
	"github.com/aanand-mishra/customer-search/internal/render"
	"github.com/aanand-mishra/customer-search/internal/types"
)

var refNow = time.Date(2024, time.June, 14, 12, 0, 0, 0, time.UTC)

func sampleCustomer() types.Customer {
	return types.Customer{
		ID:            "1",
		FirstName:     "John",
		LastName:      "Doe",
		DateOfBirth:   "1990-06-15",
		MaritalStatus: types.Married,
		SecureID:      "***-**-1234",
		Addresses: []types.Address{
			{ID: "a1", Type: types.AddressHome, Street: "123 Main St", City: "Springfield", State: "IL", ZipCode: "62701"},
		},
		Phones: []types.Phone{
			{ID: "p1", Type: types.PhoneHome, Number: "(555) 111-2222"},
			{ID: "p2", Type: types.PhoneMobile, Number: "(555) 123-4567", IsPrimary: true},
		},
		Emails: []types.Email{
			{ID: "e1", Type: types.EmailPersonal, Address: "john@example.com", IsPrimary: true},
		},
	}
}

func TestNewTableEmpty(t *testing.T) {
	table := render.NewTable(fields.MustDefault().ResultFields(), nil, refNow)

	if diff := cmp.Diff(render.Table{Empty: true}, table); diff != "" {
		t.Fatalf("empty table mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTableDefaultColumns(t *testing.T) {
	table := render.NewTable(fields.MustDefault().ResultFields(), []types.Customer{sampleCustomer()}, refNow)

	wantHeaders := []render.Header{
		{Name: "fullName", Label: "Name"},
		{Name: "dateOfBirth", Label: "Date of Birth"},
		{Name: "primaryPhone", Label: "Primary Phone"},
		{Name: "primaryEmail", Label: "Primary Email"},
	}
	if diff := cmp.Diff(wantHeaders, table.Headers); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}

	wantRows := []render.Row{{
		Key: "1",
		Cells: []render.Cell{
			{Field: "fullName", Kind: render.CellName, Initials: "JD", Text: "John Doe", SecureID: "***-**-1234"},
			{Field: "dateOfBirth", Kind: render.CellDate, Text: "Jun 15, 1990", Age: 33},
			{Field: "primaryPhone", Kind: render.CellLink, Href: "tel:5551234567", Text: "(555) 123-4567"},
			{Field: "primaryEmail", Kind: render.CellLink, Href: "mailto:john@example.com", Text: "john@example.com"},
		},
	}}
	if diff := cmp.Diff(wantRows, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTableColumnOrderIsStable(t *testing.T) {
	descriptors := []types.FieldDescriptor{
		{Name: "lastName", Label: "Last", Order: 2},
		{Name: "firstName", Label: "First", Order: 1},
		{Name: "maritalStatus", Label: "Status", Order: 2},
		{Name: "id", Label: "ID", Order: 0},
	}

	table := render.NewTable(descriptors, []types.Customer{sampleCustomer()}, refNow)

	var got []string
	for _, h := range table.Headers {
		got = append(got, h.Name)
	}
	want := []string{"id", "firstName", "lastName", "maritalStatus"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("column order mismatch (-want +got):\n%s", diff)
	}
	if cell := table.Rows[0].Cells[3]; cell.Text != "Married" {
		t.Fatalf("maritalStatus cell = %+v", cell)
	}
}

func TestAge(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", time.Date(2024, time.June, 14, 23, 59, 0, 0, time.UTC), 33},
		{"on birthday", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), 34},
		{"later in year", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 34},
		{"earlier month", time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC), 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render.Age(birth, tt.now); got != tt.want {
				t.Fatalf("Age = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDateOfBirthCell(t *testing.T) {
	field := types.FieldDescriptor{Name: "dateOfBirth"}

	tests := []struct {
		name string
		dob  string
		want render.Cell
	}{
		{"empty", "", render.Cell{Field: "dateOfBirth", Kind: render.CellText, Text: "N/A"}},
		{"unparseable", "15/06/1990", render.Cell{Field: "dateOfBirth", Kind: render.CellText, Text: "15/06/1990"}},
		{"timestamp", "1985-01-02T00:00:00Z", render.Cell{Field: "dateOfBirth", Kind: render.CellDate, Text: "Jan 2, 1985", Age: 39}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := types.Customer{DateOfBirth: tt.dob}
			got := render.FormatDateOfBirth.Cell(field, c, refNow)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("cell mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrimaryContactCells(t *testing.T) {
	phoneField := types.FieldDescriptor{Name: "primaryPhone"}
	emailField := types.FieldDescriptor{Name: "primaryEmail"}

	t.Run("no primary", func(t *testing.T) {
		c := types.Customer{
			Phones: []types.Phone{{Number: "555-0000"}},
			Emails: []types.Email{{Address: "a@example.com"}},
		}
		if got := render.FormatPrimaryPhone.Cell(phoneField, c, refNow); got.Text != "N/A" || got.Kind != render.CellText {
			t.Fatalf("phone cell = %+v", got)
		}
		if got := render.FormatPrimaryEmail.Cell(emailField, c, refNow); got.Text != "N/A" || got.Kind != render.CellText {
			t.Fatalf("email cell = %+v", got)
		}
	})

	t.Run("first primary wins", func(t *testing.T) {
		c := types.Customer{
			Phones: []types.Phone{
				{Number: "555-0000"},
				{Number: "+1 (555) 0101", IsPrimary: true},
				{Number: "555-0202", IsPrimary: true},
			},
		}
		got := render.FormatPrimaryPhone.Cell(phoneField, c, refNow)
		want := render.Cell{Field: "primaryPhone", Kind: render.CellLink, Href: "tel:15550101", Text: "+1 (555) 0101"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("cell mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFieldCellShapes(t *testing.T) {
	c := sampleCustomer()

	tests := []struct {
		name  string
		field types.FieldDescriptor
		cust  types.Customer
		want  render.Cell
	}{
		{
			name:  "addresses",
			field: types.FieldDescriptor{Name: "addresses", Shape: types.ShapeAddresses},
			cust:  c,
			want: render.Cell{Field: "addresses", Kind: render.CellAddresses, Addresses: []render.AddressBlock{
				{Street: "123 Main St", Locality: "Springfield, IL 62701", Type: "Home"},
			}},
		},
		{
			name:  "phones",
			field: types.FieldDescriptor{Name: "phones", Shape: types.ShapePhones},
			cust:  c,
			want: render.Cell{Field: "phones", Kind: render.CellContacts, Contacts: []render.Contact{
				{Href: "tel:5551112222", Text: "(555) 111-2222", Type: "Home"},
				{Href: "tel:5551234567", Text: "(555) 123-4567", Primary: true, Type: "Mobile"},
			}},
		},
		{
			name:  "emails",
			field: types.FieldDescriptor{Name: "emails", Shape: types.ShapeEmails},
			cust:  c,
			want: render.Cell{Field: "emails", Kind: render.CellContacts, Contacts: []render.Contact{
				{Href: "mailto:john@example.com", Text: "john@example.com", Primary: true, Type: "Personal"},
			}},
		},
		{
			name:  "generic list",
			field: types.FieldDescriptor{Name: "phones", Shape: types.ShapeList},
			cust:  c,
			want:  render.Cell{Field: "phones", Kind: render.CellText, Text: "(555) 111-2222, (555) 123-4567"},
		},
		{
			name:  "empty list",
			field: types.FieldDescriptor{Name: "addresses", Shape: types.ShapeAddresses},
			cust:  types.Customer{},
			want:  render.Cell{Field: "addresses", Kind: render.CellText, Text: "N/A"},
		},
		{
			name:  "scalar",
			field: types.FieldDescriptor{Name: "secureId"},
			cust:  c,
			want:  render.Cell{Field: "secureId", Kind: render.CellText, Text: "***-**-1234"},
		},
		{
			name:  "unknown name",
			field: types.FieldDescriptor{Name: "loyaltyTier"},
			cust:  c,
			want:  render.Cell{Field: "loyaltyTier", Kind: render.CellText, Text: "N/A"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render.FormatterFor(tt.field.Name).Cell(tt.field, tt.cust, refNow)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("cell mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatterFor(t *testing.T) {
	cases := map[string]render.Formatter{
		"fullName":     render.FormatFullName,
		"primaryPhone": render.FormatPrimaryPhone,
		"primaryEmail": render.FormatPrimaryEmail,
		"dateOfBirth":  render.FormatDateOfBirth,
		"firstName":    render.FormatField,
		"":             render.FormatField,
	}
	for name, want := range cases {
		if got := render.FormatterFor(name); got != want {
			t.Errorf("FormatterFor(%q) = %v, want %v", name, got, want)
		}
	}
}
