package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAssignments is returned when a partial update carries no fields at all.
// An empty update must never reach the database as a no-op statement.
var ErrNoAssignments = errors.New("no fields to update")

// Assignment is one field of a partial update, in the order the caller wants
// it bound. Value may be a nil pointer to clear a nullable column.
type Assignment struct {
	Field string
	Value any
}

// PartialUpdate turns an ordered list of assignments into a SET clause with
// positional placeholders and the matching argument list.
//
// colMap translates field names to column names; fields absent from the map
// use their own name as the column. Column names are double-quoted, so the
// caller is trusted to only ever pass allow-listed field names.
//
//	PartialUpdate([]Assignment{{"firstName", "Aliya"}, {"email", "a@b.cd"}},
//	              map[string]string{"firstName": "first_name"})
//	=> `"first_name"=$1, "email"=$2`, []any{"Aliya", "a@b.cd"}, nil
func PartialUpdate(assigns []Assignment, colMap map[string]string) (string, []any, error) {
	if len(assigns) == 0 {
		return "", nil, ErrNoAssignments
	}

	cols := make([]string, len(assigns))
	args := make([]any, len(assigns))
	for i, a := range assigns {
		col := colMap[a.Field]
		if col == "" {
			col = a.Field
		}
		cols[i] = fmt.Sprintf(`"%s"=$%d`, col, i+1)
		args[i] = a.Value
	}

	return strings.Join(cols, ", "), args, nil
}
