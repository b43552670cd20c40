// Package types holds the data structures shared across the application.
// Keeping them in one place lets handlers, storage and renderers import them
// without depending on each other.
package types

// MaritalStatus is stored and served with the exact spellings below.
type MaritalStatus string

const (
	Single   MaritalStatus = "Single"
	Married  MaritalStatus = "Married"
	Divorced MaritalStatus = "Divorced"
	Widowed  MaritalStatus = "Widowed"
)

// AddressType labels an address entry.
type AddressType string

const (
	AddressHome     AddressType = "Home"
	AddressBusiness AddressType = "Business"
	AddressMailing  AddressType = "Mailing"
)

// PhoneType labels a phone entry.
type PhoneType string

const (
	PhoneMobile PhoneType = "Mobile"
	PhoneHome   PhoneType = "Home"
	PhoneWork   PhoneType = "Work"
)

// EmailType labels an email entry.
type EmailType string

const (
	EmailPersonal EmailType = "Personal"
	EmailWork     EmailType = "Work"
)

// Customer is one record of the customer directory.
//
// The json tags are a compatibility surface with the record store: the
// filter parameters and the renderer's name-based dispatch both use them.
type Customer struct {
	ID            string        `json:"id"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	DateOfBirth   string        `json:"dateOfBirth"`
	MaritalStatus MaritalStatus `json:"maritalStatus"`
	SecureID      string        `json:"secureId"`
	Addresses     []Address     `json:"addresses"`
	Phones        []Phone       `json:"phones"`
	Emails        []Email       `json:"emails"`
}

// Address is one postal address of a customer.
type Address struct {
	ID      string      `json:"id"`
	Type    AddressType `json:"type"`
	Street  string      `json:"street"`
	City    string      `json:"city"`
	State   string      `json:"state"`
	ZipCode string      `json:"zipCode"`
}

// String formats the address on one line.
func (a Address) String() string {
	return a.Street + ", " + a.City + ", " + a.State + " " + a.ZipCode
}

// Phone is one phone number of a customer. At most one should be primary.
type Phone struct {
	ID        string    `json:"id"`
	Type      PhoneType `json:"type"`
	Number    string    `json:"number"`
	IsPrimary bool      `json:"isPrimary"`
}

// String returns the number as stored.
func (p Phone) String() string { return p.Number }

// Email is one email address of a customer. At most one should be primary.
type Email struct {
	ID        string    `json:"id"`
	Type      EmailType `json:"type"`
	Address   string    `json:"address"`
	IsPrimary bool      `json:"isPrimary"`
}

// String returns the address.
func (e Email) String() string { return e.Address }

// Field returns the value stored under the given JSON field name.
// The second result is false for names the record does not carry.
func (c Customer) Field(name string) (any, bool) {
	switch name {
	case "id":
		return c.ID, true
	case "firstName":
		return c.FirstName, true
	case "lastName":
		return c.LastName, true
	case "dateOfBirth":
		return c.DateOfBirth, true
	case "maritalStatus":
		return c.MaritalStatus, true
	case "secureId":
		return c.SecureID, true
	case "addresses":
		return c.Addresses, true
	case "phones":
		return c.Phones, true
	case "emails":
		return c.Emails, true
	default:
		return nil, false
	}
}
