package fields

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/customer-search/internal/types"
)

func TestDefault(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	search := reg.SearchFields()
	require.Len(t, search, 3)
	assert.Equal(t, []string{"firstName", "lastName", "dateOfBirth"}, names(search))
	assert.Equal(t, types.KindDate, search[2].Kind)
	assert.Equal(t, "w-full md:w-1/3", search[0].LayoutHint)
	assert.Equal(t, "Enter first name", search[0].Placeholder)

	result := reg.ResultFields()
	assert.Equal(t, []string{"fullName", "dateOfBirth", "primaryPhone", "primaryEmail"}, names(result))
}

func TestRegistryReturnsCopies(t *testing.T) {
	reg := MustDefault()

	fields := reg.SearchFields()
	fields[0].Label = "changed"

	assert.Equal(t, "First Name", reg.SearchFields()[0].Label)
}

func TestSorted(t *testing.T) {
	in := []types.FieldDescriptor{
		{Name: "c", Order: 3},
		{Name: "a1", Order: 1},
		{Name: "b", Order: 2},
		{Name: "a2", Order: 1},
		{Name: "z", Order: -1},
		{Name: "a3", Order: 1},
	}

	out := Sorted(in)

	assert.Equal(t, []string{"z", "a1", "a2", "a3", "b", "c"}, names(out))
	assert.Equal(t, "c", in[0].Name, "input must not be reordered")
}

func TestSortedExtremeOrders(t *testing.T) {
	in := []types.FieldDescriptor{
		{Name: "max", Order: math.MaxInt},
		{Name: "min", Order: math.MinInt},
		{Name: "zero", Order: 0},
	}

	assert.Equal(t, []string{"min", "zero", "max"}, names(Sorted(in)))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "select with options",
			doc: `
searchFields:
  - {name: maritalStatus, label: Marital Status, type: select, renderOrder: 1,
     options: [{value: Single, label: Single}, {value: Married, label: Married}]}
resultFields:
  - {name: addresses, label: Addresses, type: text, renderOrder: 1, shape: addresses}
`,
		},
		{
			name: "duplicate names",
			doc: `
searchFields:
  - {name: firstName, label: First, type: text, renderOrder: 1}
  - {name: firstName, label: Again, type: text, renderOrder: 2}
resultFields:
  - {name: fullName, label: Name, type: text, renderOrder: 1}
`,
			wantErr: "duplicate names",
		},
		{
			name: "select without options",
			doc: `
searchFields:
  - {name: maritalStatus, label: Status, type: select, renderOrder: 1}
resultFields:
  - {name: fullName, label: Name, type: text, renderOrder: 1}
`,
			wantErr: "at least one option",
		},
		{
			name: "select with empty options",
			doc: `
searchFields:
  - {name: maritalStatus, label: Status, type: select, renderOrder: 1, options: []}
resultFields:
  - {name: fullName, label: Name, type: text, renderOrder: 1}
`,
			wantErr: "at least one option",
		},
		{
			name: "unknown kind",
			doc: `
searchFields:
  - {name: age, label: Age, type: slider, renderOrder: 1}
resultFields:
  - {name: fullName, label: Name, type: text, renderOrder: 1}
`,
			wantErr: "must be one of",
		},
		{
			name: "unknown shape",
			doc: `
searchFields:
  - {name: firstName, label: First, type: text, renderOrder: 1}
resultFields:
  - {name: phones, label: Phones, type: text, renderOrder: 1, shape: table}
`,
			wantErr: "must be one of",
		},
		{
			name: "missing label",
			doc: `
searchFields:
  - {name: firstName, type: text, renderOrder: 1}
resultFields:
  - {name: fullName, label: Name, type: text, renderOrder: 1}
`,
			wantErr: "Label is required",
		},
		{
			name: "missing result list",
			doc: `
searchFields:
  - {name: firstName, label: First, type: text, renderOrder: 1}
`,
			wantErr: "ResultFields is required",
		},
		{
			name:    "empty document",
			doc:     "",
			wantErr: "document is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Load(strings.NewReader(tt.doc))
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, reg)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(strings.NewReader(`
searchFields:
  - {name: firstName, label: First, type: text, order: 1}
resultFields:
  - {name: fullName, label: Name, type: text, renderOrder: 1}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order")
}

func names(fields []types.FieldDescriptor) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}
