package company

import (
	"encoding/json"
	"net/url"
	"sort"
	"strconv"

	"github.com/jobly-app/jobly-backend-go/internal/domain/job"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/sqlbuilder"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyDetailResponse is a single company together with its job postings.
type CompanyDetailResponse struct {
	CompanyResponse
	Jobs []job.JobResponse `json:"jobs"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		Handle:       c.Handle,
		Name:         c.Name,
		Description:  c.Description,
		NumEmployees: c.NumEmployees,
		LogoURL:      c.LogoURL,
	}
}

type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Handle) {
		errs = append(errs, validator.ValidationError{
			Field:   "handle",
			Message: "handle is required",
		})
	} else if !validator.IsValidHandle(r.Handle) {
		errs = append(errs, validator.ValidationError{
			Field:   "handle",
			Message: "handle must be 1-25 lowercase letters, digits or hyphens",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.NumEmployees != nil && *r.NumEmployees < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "numEmployees",
			Message: "numEmployees must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// companyUpdateFields is the canonical order update assignments are bound in.
var companyUpdateFields = []string{"name", "description", "numEmployees", "logoUrl"}

// UpdateCompanyRequest is a partial update. Field presence is tracked
// separately from nil-ness so an explicit JSON null clears a nullable column.
type UpdateCompanyRequest struct {
	Name         *string
	Description  *string
	NumEmployees *int
	LogoURL      *string

	present []string
	unknown []string
}

func (r *UpdateCompanyRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, field := range companyUpdateFields {
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
		case "name":
			err = json.Unmarshal(rm, &r.Name)
		case "description":
			err = json.Unmarshal(rm, &r.Description)
		case "numEmployees":
			err = json.Unmarshal(rm, &r.NumEmployees)
		case "logoUrl":
			err = json.Unmarshal(rm, &r.LogoURL)
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

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, k := range r.unknown {
		errs = append(errs, validator.ValidationError{
			Field:   k,
			Message: k + " is not an updatable field",
		})
	}
	if validator.IsInSlice("name", r.present) && (r.Name == nil || validator.IsEmpty(*r.Name)) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}
	if validator.IsInSlice("description", r.present) && r.Description == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description cannot be null",
		})
	}
	if r.NumEmployees != nil && *r.NumEmployees < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "numEmployees",
			Message: "numEmployees must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Assignments lists the updated fields in canonical order for the SET-clause
// builder. A nil pointer for a present field binds SQL NULL.
func (r *UpdateCompanyRequest) Assignments() []sqlbuilder.Assignment {
	assigns := make([]sqlbuilder.Assignment, 0, len(r.present))
	for _, field := range r.present {
		var v any
		switch field {
		case "name":
			v = r.Name
		case "description":
			v = r.Description
		case "numEmployees":
			v = r.NumEmployees
		case "logoUrl":
			v = r.LogoURL
		}
		assigns = append(assigns, sqlbuilder.Assignment{Field: field, Value: v})
	}
	return assigns
}

// companyFilterKeys is the allow-list for company list query strings.
var companyFilterKeys = []string{"nameLike", "minEmployees", "maxEmployees"}

type ListCompaniesQuery struct {
	NameLike     *string
	MinEmployees *int
	MaxEmployees *int
}

// ParseListQuery validates and parses company list query strings. Unknown
// keys, non-numeric range bounds and a min/max contradiction are rejected
// before anything reaches the filter builder.
func ParseListQuery(values url.Values) (ListCompaniesQuery, error) {
	var query ListCompaniesQuery
	var errs validator.ValidationErrors

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !validator.IsInSlice(k, companyFilterKeys) {
			errs = append(errs, validator.ValidationError{
				Field:   k,
				Message: k + " is an invalid query string",
			})
		}
	}

	if v := values.Get("nameLike"); v != "" {
		query.NameLike = &v
	}
	for _, bound := range []struct {
		key  string
		dest **int
	}{
		{"minEmployees", &query.MinEmployees},
		{"maxEmployees", &query.MaxEmployees},
	} {
		raw := values.Get(bound.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   bound.key,
				Message: "minEmployees and maxEmployees must be numbers",
			})
			continue
		}
		*bound.dest = &n
	}

	if query.MinEmployees != nil && query.MaxEmployees != nil &&
		*query.MinEmployees > *query.MaxEmployees {
		errs = append(errs, validator.ValidationError{
			Field:   "minEmployees",
			Message: "value for minEmployees should be equal to or less than maxEmployees",
		})
	}

	if len(errs) > 0 {
		return query, errs
	}
	return query, nil
}

// Filters lists the set filters in canonical order for the WHERE builder.
func (q ListCompaniesQuery) Filters() []sqlbuilder.Filter {
	var filters []sqlbuilder.Filter
	if q.NameLike != nil {
		filters = append(filters, sqlbuilder.Filter{Key: "nameLike", Value: *q.NameLike})
	}
	if q.MinEmployees != nil {
		filters = append(filters, sqlbuilder.Filter{Key: "minEmployees", Value: *q.MinEmployees})
	}
	if q.MaxEmployees != nil {
		filters = append(filters, sqlbuilder.Filter{Key: "maxEmployees", Value: *q.MaxEmployees})
	}
	return filters
}
