package types

// FieldKind selects the input widget a descriptor renders as in a form.
// It has no effect on table cells.
type FieldKind string

const (
	KindText   FieldKind = "text"
	KindDate   FieldKind = "date"
	KindSelect FieldKind = "select"
	KindNumber FieldKind = "number"
	KindEmail  FieldKind = "email"
)

// Shape declares how a list-valued record field is painted in a table cell.
// The zero value means the field is a scalar or an undeclared list.
type Shape string

const (
	ShapeNone      Shape = ""
	ShapeAddresses Shape = "addresses"
	ShapePhones    Shape = "phones"
	ShapeEmails    Shape = "emails"
	ShapeList      Shape = "list"
)

// Option is one entry of a select descriptor.
type Option struct {
	Value string `yaml:"value" json:"value" validate:"required"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

// FieldDescriptor describes one form input or one table column.
//
// Descriptors are pure data. The yaml names follow the field registry
// document: "type" for Kind, "renderOrder" for Order and "width" for
// LayoutHint.
type FieldDescriptor struct {
	Name        string    `yaml:"name"        json:"name"                  validate:"required"`
	Label       string    `yaml:"label"       json:"label"                 validate:"required"`
	Kind        FieldKind `yaml:"type"        json:"type"                  validate:"required,oneof=text date select number email"`
	Required    bool      `yaml:"required"    json:"required,omitempty"`
	Placeholder string    `yaml:"placeholder" json:"placeholder,omitempty"`
	Options     []Option  `yaml:"options"     json:"options,omitempty"     validate:"dive"`
	Order       int       `yaml:"renderOrder" json:"renderOrder"`
	LayoutHint  string    `yaml:"width"       json:"width,omitempty"`
	Shape       Shape     `yaml:"shape"       json:"shape,omitempty"       validate:"omitempty,oneof=addresses phones emails list"`
}
