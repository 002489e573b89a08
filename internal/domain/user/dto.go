package user

import (
	"encoding/json"
	"sort"

	"github.com/jobly-app/jobly-backend-go/internal/pkg/sqlbuilder"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/validator"
)

type UserResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 1-25 letters, digits, dots, underscores or hyphens",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateUserRequest is the admin-only variant of registration that can grant
// the admin flag.
type CreateUserRequest struct {
	RegisterRequest
	IsAdmin bool `json:"isAdmin"`
}

// userUpdateFields is the canonical order update assignments are bound in.
// username and isAdmin are immutable through this endpoint.
var userUpdateFields = []string{"firstName", "lastName", "password", "email"}

// UpdateUserRequest is a partial update. All updatable columns are NOT NULL,
// so presence with an explicit JSON null is rejected by Validate.
type UpdateUserRequest struct {
	FirstName *string
	LastName  *string
	Password  *string
	Email     *string

	present []string
	unknown []string
}

func (r *UpdateUserRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, field := range userUpdateFields {
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
		case "firstName":
			err = json.Unmarshal(rm, &r.FirstName)
		case "lastName":
			err = json.Unmarshal(rm, &r.LastName)
		case "password":
			err = json.Unmarshal(rm, &r.Password)
		case "email":
			err = json.Unmarshal(rm, &r.Email)
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

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, k := range r.unknown {
		errs = append(errs, validator.ValidationError{
			Field:   k,
			Message: k + " is not an updatable field",
		})
	}
	for _, field := range r.present {
		var v *string
		switch field {
		case "firstName":
			v = r.FirstName
		case "lastName":
			v = r.LastName
		case "password":
			v = r.Password
		case "email":
			v = r.Email
		}
		if v == nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " cannot be null",
			})
		}
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetPassword swaps the plaintext password for its hash before the request
// reaches the store.
func (r *UpdateUserRequest) SetPassword(hashed string) {
	r.Password = &hashed
}

// HasPassword reports whether the request updates the password.
func (r *UpdateUserRequest) HasPassword() bool {
	return validator.IsInSlice("password", r.present)
}

// Assignments lists the updated fields in canonical order for the SET-clause
// builder.
func (r *UpdateUserRequest) Assignments() []sqlbuilder.Assignment {
	assigns := make([]sqlbuilder.Assignment, 0, len(r.present))
	for _, field := range r.present {
		var v any
		switch field {
		case "firstName":
			v = r.FirstName
		case "lastName":
			v = r.LastName
		case "password":
			v = r.Password
		case "email":
			v = r.Email
		}
		assigns = append(assigns, sqlbuilder.Assignment{Field: field, Value: v})
	}
	return assigns
}
