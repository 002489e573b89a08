package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jobly-app/jobly-backend-go/internal/domain/job"
	"github.com/jobly-app/jobly-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// List implements JobHandler. Filters are validated before they reach the
// repository.
func (j *JobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query, err := job.ParseListQuery(r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	jobs, err := j.jobService.List(r.Context(), query)
	if err != nil {
		slog.Error("Failed to list jobs", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"jobs": jobs})
}

// Create implements JobHandler.
func (j *JobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := j.jobService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create job", "title", req.Title, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job created successfully", map[string]interface{}{"job": created})
}

// Get implements JobHandler.
func (j *JobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	found, err := j.jobService.Get(r.Context(), jobID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"job": found})
}

// Update implements JobHandler.
func (j *JobHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	var req job.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := j.jobService.Update(r.Context(), jobID, req)
	if err != nil {
		slog.Error("Failed to update job", "jobID", jobID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"job": updated})
}

// Delete implements JobHandler.
func (j *JobHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	deleted, err := j.jobService.Delete(r.Context(), jobID)
	if err != nil {
		slog.Error("Failed to delete job", "jobID", jobID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"deleted": deleted})
}
