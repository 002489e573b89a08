package response

import (
	"errors"
	"net/http"

	"github.com/jobly-app/jobly-backend-go/internal/domain/auth"
	"github.com/jobly-app/jobly-backend-go/internal/domain/company"
	"github.com/jobly-app/jobly-backend-go/internal/domain/job"
	"github.com/jobly-app/jobly-backend-go/internal/domain/user"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/sqlbuilder"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation failed", validationErrs.ToMap())
		return
	}

	switch {
	// Bad requests
	case errors.Is(err, sqlbuilder.ErrNoAssignments):
		BadRequest(w, "No fields to update", nil)
	case errors.Is(err, job.ErrInvalidJobID):
		BadRequest(w, "Job id must be a number", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrAuthenticationRequired):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrNotSelfOrAdmin):
		Forbidden(w, "Must be admin or the user in question")

	// Missing rows
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, job.ErrCompanyNotFound):
		NotFound(w, "Company for job not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Identity conflicts
	case errors.Is(err, company.ErrCompanyHandleExists):
		Conflict(w, "Company handle already exists")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
