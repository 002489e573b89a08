package sqlbuilder

import "strings"

// Filter is one search filter, in the order the caller wants it applied.
type Filter struct {
	Key   string
	Value any
}

// ConditionFunc renders the SQL condition for one filter key. pos is the
// placeholder index the condition may use ($pos); bind reports whether the
// filter's value must actually be bound to it. A condition that evaluates to
// an empty clause is skipped entirely.
type ConditionFunc func(value any, pos int) (clause string, bind bool)

// Where composes a WHERE-ready condition string (without the WHERE keyword)
// from the filters that have a condition registered in conds, joined by AND.
//
// Placeholder indexes are handed out in lockstep with the argument list: a
// condition sees len(args)+1 as its position, and the value is appended only
// when the condition binds it. A presence-only filter (hasEquity) therefore
// never leaves a gap between $n markers and the bound values.
//
// No filters, or only skipped ones, yields ("", nil) so list queries degrade
// to an unfiltered select.
func Where(filters []Filter, conds map[string]ConditionFunc) (string, []any) {
	var clauses []string
	var args []any

	for _, f := range filters {
		cond, ok := conds[f.Key]
		if !ok {
			continue
		}
		clause, bind := cond(f.Value, len(args)+1)
		if clause == "" {
			continue
		}
		if bind {
			args = append(args, f.Value)
		}
		clauses = append(clauses, clause)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return strings.Join(clauses, " AND "), args
}
