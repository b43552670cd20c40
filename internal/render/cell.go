package render

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aanand-mishra/customer-search/internal/types"
)

// NotAvailable is shown for missing values and empty lists.
const NotAvailable = "N/A"

// Cell kinds. Plain strings so templates can compare them directly.
const (
	CellText      = "text"
	CellName      = "name"
	CellLink      = "link"
	CellDate      = "date"
	CellAddresses = "addresses"
	CellContacts  = "contacts"
)

// dateLayout is the short en-US date shown in the table.
const dateLayout = "Jan 2, 2006"

// Cell is one formatted table cell. Which fields are set depends on Kind:
//
//	text       Text
//	name       Initials, Text (full name), SecureID
//	link       Href, Text
//	date       Text (formatted date), Age
//	addresses  Addresses
//	contacts   Contacts
type Cell struct {
	Field     string
	Kind      string
	Text      string
	Href      string
	Initials  string
	SecureID  string
	Age       int
	Addresses []AddressBlock
	Contacts  []Contact
}

// AddressBlock is one address stacked as street, locality and type.
type AddressBlock struct {
	Street   string
	Locality string
	Type     string
}

// Contact is one phone or email entry with its link target.
type Contact struct {
	Href    string
	Text    string
	Primary bool
	Type    string
}

// Formatter is the closed set of cell formatting variants.
type Formatter int

const (
	// FormatField looks the descriptor name up on the record.
	FormatField Formatter = iota
	FormatFullName
	FormatPrimaryPhone
	FormatPrimaryEmail
	FormatDateOfBirth
)

var formattersByName = map[string]Formatter{
	"fullName":     FormatFullName,
	"primaryPhone": FormatPrimaryPhone,
	"primaryEmail": FormatPrimaryEmail,
	"dateOfBirth":  FormatDateOfBirth,
}

// FormatterFor returns the variant for a field name, FormatField when the
// name has no dedicated formatting.
func FormatterFor(name string) Formatter {
	if f, ok := formattersByName[name]; ok {
		return f
	}
	return FormatField
}

// String returns the field name the formatter is registered under.
func (f Formatter) String() string {
	switch f {
	case FormatFullName:
		return "fullName"
	case FormatPrimaryPhone:
		return "primaryPhone"
	case FormatPrimaryEmail:
		return "primaryEmail"
	case FormatDateOfBirth:
		return "dateOfBirth"
	default:
		return "field"
	}
}

// Cell formats one field of a customer.
func (f Formatter) Cell(field types.FieldDescriptor, c types.Customer, now time.Time) Cell {
	var cell Cell
	switch f {
	case FormatFullName:
		cell = fullNameCell(c)
	case FormatPrimaryPhone:
		cell = primaryPhoneCell(c)
	case FormatPrimaryEmail:
		cell = primaryEmailCell(c)
	case FormatDateOfBirth:
		cell = dateOfBirthCell(c.DateOfBirth, now)
	default:
		cell = fieldCell(field, c)
	}
	cell.Field = field.Name
	return cell
}

func fullNameCell(c types.Customer) Cell {
	return Cell{
		Kind:     CellName,
		Initials: initial(c.FirstName) + initial(c.LastName),
		Text:     c.FirstName + " " + c.LastName,
		SecureID: c.SecureID,
	}
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

// PrimaryPhone returns the first phone flagged primary.
func PrimaryPhone(phones []types.Phone) (types.Phone, bool) {
	for _, p := range phones {
		if p.IsPrimary {
			return p, true
		}
	}
	return types.Phone{}, false
}

// PrimaryEmail returns the first email flagged primary.
func PrimaryEmail(emails []types.Email) (types.Email, bool) {
	for _, e := range emails {
		if e.IsPrimary {
			return e, true
		}
	}
	return types.Email{}, false
}

func primaryPhoneCell(c types.Customer) Cell {
	p, ok := PrimaryPhone(c.Phones)
	if !ok {
		return textCell(NotAvailable)
	}
	return Cell{Kind: CellLink, Href: TelHref(p.Number), Text: p.Number}
}

func primaryEmailCell(c types.Customer) Cell {
	e, ok := PrimaryEmail(c.Emails)
	if !ok {
		return textCell(NotAvailable)
	}
	return Cell{Kind: CellLink, Href: MailtoHref(e.Address), Text: e.Address}
}

func dateOfBirthCell(dob string, now time.Time) Cell {
	if dob == "" {
		return textCell(NotAvailable)
	}
	birth, err := ParseDate(dob)
	if err != nil {
		return textCell(dob)
	}
	return Cell{
		Kind: CellDate,
		Text: birth.Format(dateLayout),
		Age:  Age(birth, now),
	}
}

// ParseDate accepts an ISO date, or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Age is the number of completed years between birth and now, compared on
// calendar fields.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

func fieldCell(field types.FieldDescriptor, c types.Customer) Cell {
	value, ok := c.Field(field.Name)
	if !ok || value == nil {
		return textCell(NotAvailable)
	}

	switch v := value.(type) {
	case []types.Address:
		if len(v) == 0 {
			return textCell(NotAvailable)
		}
		if field.Shape == types.ShapeAddresses {
			return addressesCell(v)
		}
		return textCell(join(v))
	case []types.Phone:
		if len(v) == 0 {
			return textCell(NotAvailable)
		}
		if field.Shape == types.ShapePhones {
			return phonesCell(v)
		}
		return textCell(join(v))
	case []types.Email:
		if len(v) == 0 {
			return textCell(NotAvailable)
		}
		if field.Shape == types.ShapeEmails {
			return emailsCell(v)
		}
		return textCell(join(v))
	case string:
		return textCell(v)
	default:
		return textCell(fmt.Sprint(v))
	}
}

func addressesCell(addrs []types.Address) Cell {
	blocks := make([]AddressBlock, len(addrs))
	for i, a := range addrs {
		blocks[i] = AddressBlock{
			Street:   a.Street,
			Locality: a.City + ", " + a.State + " " + a.ZipCode,
			Type:     string(a.Type),
		}
	}
	return Cell{Kind: CellAddresses, Addresses: blocks}
}

func phonesCell(phones []types.Phone) Cell {
	contacts := make([]Contact, len(phones))
	for i, p := range phones {
		contacts[i] = Contact{
			Href:    TelHref(p.Number),
			Text:    p.Number,
			Primary: p.IsPrimary,
			Type:    string(p.Type),
		}
	}
	return Cell{Kind: CellContacts, Contacts: contacts}
}

func emailsCell(emails []types.Email) Cell {
	contacts := make([]Contact, len(emails))
	for i, e := range emails {
		contacts[i] = Contact{
			Href:    MailtoHref(e.Address),
			Text:    e.Address,
			Primary: e.IsPrimary,
			Type:    string(e.Type),
		}
	}
	return Cell{Kind: CellContacts, Contacts: contacts}
}

func textCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

func join[T fmt.Stringer](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}

// TelHref keeps only the digits of number.
func TelHref(number string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	return "tel:" + digits
}

// MailtoHref returns the mailto: link for address.
func MailtoHref(address string) string {
	return "mailto:" + address
}
