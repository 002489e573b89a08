package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobly-app/jobly-backend-go/internal/domain/company"
	"github.com/jobly-app/jobly-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// List implements CompanyHandler. Filters are validated before they reach
// the repository.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query, err := company.ParseListQuery(r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	companies, err := c.companyService.List(r.Context(), query)
	if err != nil {
		slog.Error("Failed to list companies", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"companies": companies})
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := c.companyService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create company", "handle", req.Handle, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created successfully", map[string]interface{}{"company": created})
}

// Get implements CompanyHandler.
func (c *CompanyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	found, err := c.companyService.Get(r.Context(), handle)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"company": found})
}

// Update implements CompanyHandler.
func (c *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := c.companyService.Update(r.Context(), handle, req)
	if err != nil {
		slog.Error("Failed to update company", "handle", handle, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"company": updated})
}

// Delete implements CompanyHandler.
func (c *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")

	if err := c.companyService.Delete(r.Context(), handle); err != nil {
		slog.Error("Failed to delete company", "handle", handle, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"deleted": handle})
}
