package render_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aanand-mishra/customer-search/internal/fields"
	"github.com/aanand-mishra/customer-search/internal/render"
	"github.com/aanand-mishra/customer-search/internal/types"
)

func TestNewFormSortsAndBuildsControls(t *testing.T) {
	descriptors := []types.FieldDescriptor{
		{Name: "status", Label: "Status", Kind: types.KindSelect, Order: 2,
			Options: []types.Option{{Value: "Single", Label: "Single"}, {Value: "Married", Label: "Married"}}},
		{Name: "lastName", Label: "Last Name", Kind: types.KindText, Order: 1, Placeholder: "Enter last name", LayoutHint: "w-1/3"},
		{Name: "dateOfBirth", Label: "Date of Birth", Kind: types.KindDate, Order: 1, Required: true},
	}

	form := render.NewForm(descriptors, map[string]string{"lastName": "Doe", "status": "Married"}, false)

	want := render.Form{
		SubmitLabel: "Search",
		Controls: []render.Control{
			{Name: "lastName", Label: "Last Name", Kind: types.KindText, InputType: "text",
				Placeholder: "Enter last name", Value: "Doe", LayoutHint: "w-1/3"},
			{Name: "dateOfBirth", Label: "Date of Birth", Kind: types.KindDate, InputType: "date",
				Required: true, LayoutHint: "w-full"},
			{Name: "status", Label: "Status", Kind: types.KindSelect, IsSelect: true, Value: "Married", LayoutHint: "w-full",
				Options: []render.SelectOption{
					{Value: "", Label: "Select Status"},
					{Value: "Single", Label: "Single"},
					{Value: "Married", Label: "Married", Selected: true},
				}},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFormSelectDefaultsToBlank(t *testing.T) {
	descriptors := []types.FieldDescriptor{
		{Name: "status", Label: "Status", Kind: types.KindSelect, Options: []types.Option{{Value: "Single", Label: "Single"}}},
	}

	form := render.NewForm(descriptors, nil, false)

	opts := form.Controls[0].Options
	if len(opts) != 2 || !opts[0].Selected || opts[0].Value != "" || opts[1].Selected {
		t.Fatalf("expected blank option selected, got %+v", opts)
	}
}

func TestNewFormBusyDisablesControls(t *testing.T) {
	form := render.NewForm(fields.MustDefault().SearchFields(), nil, true)

	if form.SubmitLabel != "Searching..." {
		t.Fatalf("expected busy submit label, got %q", form.SubmitLabel)
	}
	for _, c := range form.Controls {
		if !c.Disabled {
			t.Fatalf("control %q not disabled while busy", c.Name)
		}
	}
}

func TestCollectEmitsEveryDescriptor(t *testing.T) {
	descriptors := fields.MustDefault().SearchFields()
	submitted := url.Values{
		"firstName": {"Jon"},
		"unrelated": {"ignored"},
	}

	got := render.Collect(descriptors, submitted)

	want := map[string]string{
		"firstName":   "Jon",
		"lastName":    "",
		"dateOfBirth": "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("collected values mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryDropsEmptyValues(t *testing.T) {
	q := render.Query(map[string]string{
		"firstName":   "Jon",
		"lastName":    "",
		"dateOfBirth": "1990-06-15",
	})

	if got, want := q.Encode(), "dateOfBirth=1990-06-15&firstName=Jon"; got != want {
		t.Fatalf("query = %q, want %q", got, want)
	}
}

func TestHasValues(t *testing.T) {
	if render.HasValues(map[string]string{"a": "", "b": ""}) {
		t.Fatal("all-empty values reported as set")
	}
	if !render.HasValues(map[string]string{"a": "", "b": "x"}) {
		t.Fatal("non-empty value not reported")
	}
}
