package sqlbuilder

import (
	"errors"
	"reflect"
	"testing"
)

func TestPartialUpdate(t *testing.T) {
	colMap := map[string]string{
		"firstName": "first_name",
		"lastName":  "last_name",
		"isAdmin":   "is_admin",
	}

	cases := []struct {
		name     string
		assigns  []Assignment
		wantSet  string
		wantArgs []any
	}{
		{
			name: "mapped and unmapped fields",
			assigns: []Assignment{
				{Field: "firstName", Value: "Aliya"},
				{Field: "email", Value: "new@mail.com"},
			},
			wantSet:  `"first_name"=$1, "email"=$2`,
			wantArgs: []any{"Aliya", "new@mail.com"},
		},
		{
			name:     "single field",
			assigns:  []Assignment{{Field: "title", Value: "Engineer"}},
			wantSet:  `"title"=$1`,
			wantArgs: []any{"Engineer"},
		},
		{
			name: "unmapped field falls back to its own name",
			assigns: []Assignment{
				{Field: "salary", Value: 100000},
				{Field: "equity", Value: "0.05"},
				{Field: "title", Value: "CTO"},
			},
			wantSet:  `"salary"=$1, "equity"=$2, "title"=$3`,
			wantArgs: []any{100000, "0.05", "CTO"},
		},
		{
			name: "nil value clears a nullable column",
			assigns: []Assignment{
				{Field: "isAdmin", Value: false},
				{Field: "email", Value: (*string)(nil)},
			},
			wantSet:  `"is_admin"=$1, "email"=$2`,
			wantArgs: []any{false, (*string)(nil)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			set, args, err := PartialUpdate(c.assigns, colMap)
			if err != nil {
				t.Fatalf("PartialUpdate() error = %v", err)
			}
			if set != c.wantSet {
				t.Errorf("set clause = %q, want %q", set, c.wantSet)
			}
			if !reflect.DeepEqual(args, c.wantArgs) {
				t.Errorf("args = %#v, want %#v", args, c.wantArgs)
			}
			if got, want := countPlaceholders(t, set), len(args); got != want {
				t.Errorf("placeholder count = %d, args = %d", got, want)
			}
		})
	}
}

func TestPartialUpdateEmpty(t *testing.T) {
	_, _, err := PartialUpdate(nil, map[string]string{"firstName": "first_name"})
	if !errors.Is(err, ErrNoAssignments) {
		t.Errorf("PartialUpdate(nil) error = %v, want ErrNoAssignments", err)
	}

	_, _, err = PartialUpdate([]Assignment{}, nil)
	if !errors.Is(err, ErrNoAssignments) {
		t.Errorf("PartialUpdate(empty) error = %v, want ErrNoAssignments", err)
	}
}

// Placeholders must be contiguous from $1 regardless of input size.
func TestPartialUpdateContiguousPlaceholders(t *testing.T) {
	fields := []string{"a", "b", "c", "d", "e", "f", "g"}
	for n := 1; n <= len(fields); n++ {
		assigns := make([]Assignment, n)
		for i := 0; i < n; i++ {
			assigns[i] = Assignment{Field: fields[i], Value: i}
		}
		set, args, err := PartialUpdate(assigns, nil)
		if err != nil {
			t.Fatalf("PartialUpdate(%d fields) error = %v", n, err)
		}
		if len(args) != n {
			t.Errorf("len(args) = %d, want %d", len(args), n)
		}
		assertContiguous(t, set, n)
	}
}
