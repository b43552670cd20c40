package render

import (
	"net/url"

	"github.com/aanand-mishra/customer-search/internal/fields"
	"github.com/aanand-mishra/customer-search/internal/types"
)

const (
	defaultLayoutHint = "w-full"

	submitLabel = "Search"

	// SubmitBusyLabel replaces the submit label while a search is in flight.
	SubmitBusyLabel = "Searching..."
)

// Form is the view model of the search form.
type Form struct {
	Controls    []Control
	Busy        bool
	SubmitLabel string
}

// Control is one labelled input or drop-down.
type Control struct {
	Name        string
	Label       string
	Kind        types.FieldKind
	InputType   string
	IsSelect    bool
	Required    bool
	Placeholder string
	Value       string
	Options     []SelectOption
	Disabled    bool
	LayoutHint  string
}

// SelectOption is one entry of a select control, the blank one included.
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// NewForm builds one control per descriptor in display order. values holds
// the current input state keyed by field name; missing names render empty.
// busy disables every control.
func NewForm(descriptors []types.FieldDescriptor, values map[string]string, busy bool) Form {
	sorted := fields.Sorted(descriptors)

	form := Form{
		Controls:    make([]Control, 0, len(sorted)),
		Busy:        busy,
		SubmitLabel: submitLabel,
	}
	if busy {
		form.SubmitLabel = SubmitBusyLabel
	}

	for _, f := range sorted {
		value := values[f.Name]

		ctrl := Control{
			Name:        f.Name,
			Label:       f.Label,
			Kind:        f.Kind,
			Required:    f.Required,
			Placeholder: f.Placeholder,
			Value:       value,
			Disabled:    busy,
			LayoutHint:  f.LayoutHint,
		}
		if ctrl.LayoutHint == "" {
			ctrl.LayoutHint = defaultLayoutHint
		}

		if f.Kind == types.KindSelect {
			ctrl.IsSelect = true
			ctrl.Options = selectOptions(f, value)
		} else {
			ctrl.InputType = string(f.Kind)
		}

		form.Controls = append(form.Controls, ctrl)
	}

	return form
}

// selectOptions puts the blank "unselected" entry first.
func selectOptions(f types.FieldDescriptor, value string) []SelectOption {
	opts := make([]SelectOption, 0, len(f.Options)+1)
	opts = append(opts, SelectOption{
		Value:    "",
		Label:    "Select " + f.Label,
		Selected: value == "",
	})
	for _, o := range f.Options {
		opts = append(opts, SelectOption{
			Value:    o.Value,
			Label:    o.Label,
			Selected: value != "" && value == o.Value,
		})
	}
	return opts
}

// Collect is the submit payload of the form: the current value of every
// descriptor, keyed by name, with an empty string for untouched inputs.
// Names not in descriptors are ignored. No validation is applied.
func Collect(descriptors []types.FieldDescriptor, submitted url.Values) map[string]string {
	values := make(map[string]string, len(descriptors))
	for _, f := range descriptors {
		values[f.Name] = submitted.Get(f.Name)
	}
	return values
}

// Query turns collected values into query parameters, dropping empty ones.
func Query(values map[string]string) url.Values {
	q := url.Values{}
	for name, v := range values {
		if v == "" {
			continue
		}
		q.Set(name, v)
	}
	return q
}

// HasValues reports whether any collected value is non-empty.
func HasValues(values map[string]string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}
