package job

import (
	"encoding/json"
	"net/url"
	"sort"
	"strconv"

	"github.com/jobly-app/jobly-backend-go/internal/pkg/sqlbuilder"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/validator"
)

type JobResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Salary        *int    `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

func ToResponse(j Job) JobResponse {
	return JobResponse{
		ID:            j.ID,
		Title:         j.Title,
		Salary:        j.Salary,
		Equity:        j.Equity,
		CompanyHandle: j.CompanyHandle,
	}
}

type CreateJobRequest struct {
	Title         string       `json:"title"`
	Salary        *int         `json:"salary"`
	Equity        *json.Number `json:"equity"`
	CompanyHandle string       `json:"companyHandle"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if r.Equity != nil {
		if msg := validateEquity(*r.Equity); msg != "" {
			errs = append(errs, validator.ValidationError{Field: "equity", Message: msg})
		}
	}
	if validator.IsEmpty(r.CompanyHandle) {
		errs = append(errs, validator.ValidationError{
			Field:   "companyHandle",
			Message: "companyHandle is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EquityValue returns the equity as the string the NUMERIC column stores,
// preserving the literal the client sent.
func (r *CreateJobRequest) EquityValue() *string {
	if r.Equity == nil {
		return nil
	}
	s := r.Equity.String()
	return &s
}

func validateEquity(n json.Number) string {
	v, err := n.Float64()
	if err != nil {
		return "equity must be a number"
	}
	if v < 0 || v > 1 {
		return "equity must be between 0 and 1"
	}
	return ""
}

// jobUpdateFields is the canonical order update assignments are bound in.
// companyHandle is deliberately absent: a job cannot move between companies.
var jobUpdateFields = []string{"title", "salary", "equity"}

// UpdateJobRequest is a partial update. Field presence is tracked separately
// from nil-ness so an explicit JSON null clears salary or equity.
type UpdateJobRequest struct {
	Title  *string
	Salary *int
	Equity *json.Number

	present []string
	unknown []string
}

func (r *UpdateJobRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, field := range jobUpdateFields {
		rm, ok := raw[field]
		if !ok {
			continue
		}
		r.present = append(r.present, field)
		delete(raw, field)
		if string(rm) == "null" {
			continue
		}
		var err error
		switch field {
		case "title":
			err = json.Unmarshal(rm, &r.Title)
		case "salary":
			err = json.Unmarshal(rm, &r.Salary)
		case "equity":
			err = json.Unmarshal(rm, &r.Equity)
		}
		if err != nil {
			return err
		}
	}

	for k := range raw {
		r.unknown = append(r.unknown, k)
	}
	sort.Strings(r.unknown)
	return nil
}

func (r *UpdateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, k := range r.unknown {
		errs = append(errs, validator.ValidationError{
			Field:   k,
			Message: k + " is not an updatable field",
		})
	}
	if validator.IsInSlice("title", r.present) && (r.Title == nil || validator.IsEmpty(*r.Title)) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title cannot be empty",
		})
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}
	if r.Equity != nil {
		if msg := validateEquity(*r.Equity); msg != "" {
			errs = append(errs, validator.ValidationError{Field: "equity", Message: msg})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Assignments lists the updated fields in canonical order for the SET-clause
// builder. A nil pointer for a present field binds SQL NULL.
func (r *UpdateJobRequest) Assignments() []sqlbuilder.Assignment {
	assigns := make([]sqlbuilder.Assignment, 0, len(r.present))
	for _, field := range r.present {
		var v any
		switch field {
		case "title":
			v = r.Title
		case "salary":
			v = r.Salary
		case "equity":
			var equity *string
			if r.Equity != nil {
				s := r.Equity.String()
				equity = &s
			}
			v = equity
		}
		assigns = append(assigns, sqlbuilder.Assignment{Field: field, Value: v})
	}
	return assigns
}

// jobFilterKeys is the allow-list for job list query strings.
var jobFilterKeys = []string{"title", "minSalary", "hasEquity"}

type ListJobsQuery struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}

// ParseListQuery validates and parses job list query strings. Unknown keys
// and malformed values are rejected before anything reaches the filter
// builder.
func ParseListQuery(values url.Values) (ListJobsQuery, error) {
	var query ListJobsQuery
	var errs validator.ValidationErrors

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !validator.IsInSlice(k, jobFilterKeys) {
			errs = append(errs, validator.ValidationError{
				Field:   k,
				Message: k + " is an invalid query string",
			})
		}
	}

	if v := values.Get("title"); v != "" {
		query.Title = &v
	}
	if raw := values.Get("minSalary"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "minSalary",
				Message: "minSalary must be a number",
			})
		} else {
			query.MinSalary = &n
		}
	}
	if raw := values.Get("hasEquity"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "hasEquity",
				Message: "hasEquity must be a boolean",
			})
		} else {
			query.HasEquity = &b
		}
	}

	if len(errs) > 0 {
		return query, errs
	}
	return query, nil
}

// Filters lists the set filters in canonical order for the WHERE builder.
// hasEquity=false travels through and is dropped by the condition table, so
// the no-op rule lives in one place.
func (q ListJobsQuery) Filters() []sqlbuilder.Filter {
	var filters []sqlbuilder.Filter
	if q.Title != nil {
		filters = append(filters, sqlbuilder.Filter{Key: "title", Value: *q.Title})
	}
	if q.MinSalary != nil {
		filters = append(filters, sqlbuilder.Filter{Key: "minSalary", Value: *q.MinSalary})
	}
	if q.HasEquity != nil {
		filters = append(filters, sqlbuilder.Filter{Key: "hasEquity", Value: *q.HasEquity})
	}
	return filters
}
