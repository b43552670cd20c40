// Package fields is the field registry: the ordered descriptor lists that
// drive the search form and the results table.
//
// The registry is read once at start-up and never mutated. Adding, removing
// or reordering a displayed field is an edit to fields.yaml (or to the file
// named by the fields_path setting) and nothing else.
package fields

import (
	"bytes"
	"cmp"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/aanand-mishra/customer-search/internal/types"
)

//go:embed fields.yaml
var defaultDocument []byte

// ErrInvalid wraps every registry validation failure.
var ErrInvalid = errors.New("invalid field registry")

type document struct {
	SearchFields []types.FieldDescriptor `yaml:"searchFields" validate:"required,unique=Name,dive"`
	ResultFields []types.FieldDescriptor `yaml:"resultFields" validate:"required,unique=Name,dive"`
}

// Registry holds the two descriptor lists in the order they were declared.
type Registry struct {
	search []types.FieldDescriptor
	result []types.FieldDescriptor
}

// SearchFields returns a copy of the search form descriptors.
func (r *Registry) SearchFields() []types.FieldDescriptor {
	return slices.Clone(r.search)
}

// ResultFields returns a copy of the results table descriptors.
func (r *Registry) ResultFields() []types.FieldDescriptor {
	return slices.Clone(r.result)
}

// Load decodes and validates a registry document.
func Load(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalid)
		}
		return nil, fmt.Errorf("fields.Load: decode: %w", err)
	}

	if err := validate(doc); err != nil {
		return nil, err
	}

	return &Registry{search: doc.SearchFields, result: doc.ResultFields}, nil
}

// LoadFile reads a registry document from disk.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fields.LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the registry embedded in the binary.
func Default() (*Registry, error) {
	return Load(bytes.NewReader(defaultDocument))
}

// MustDefault is Default for package-level initialisation and tests.
func MustDefault() *Registry {
	reg, err := Default()
	if err != nil {
		panic(err)
	}
	return reg
}

// Sorted returns the descriptors ordered by ascending Order. Descriptors with
// the same Order keep their relative position. The input is not modified.
func Sorted(fields []types.FieldDescriptor) []types.FieldDescriptor {
	out := slices.Clone(fields)
	slices.SortStableFunc(out, func(a, b types.FieldDescriptor) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

func validate(doc document) error {
	v := validator.New()
	v.RegisterStructValidation(selectNeedsOptions, types.FieldDescriptor{})

	err := v.Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("fields: validate: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Namespace()))
		case "unique":
			msgs = append(msgs, fmt.Sprintf("%s contains duplicate names", e.Namespace()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", e.Namespace(), e.Param(), e.Value()))
		case "options":
			msgs = append(msgs, fmt.Sprintf("%s must list at least one option for a select field", e.Namespace()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", e.Namespace()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, ", "))
}

func selectNeedsOptions(sl validator.StructLevel) {
	field := sl.Current().Interface().(types.FieldDescriptor)
	if field.Kind == types.KindSelect && len(field.Options) == 0 {
		sl.ReportError(field.Options, "Options", "Options", "options", "")
	}
}
