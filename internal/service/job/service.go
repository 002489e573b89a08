package job

import (
	"context"
	"strconv"

	"github.com/jobly-app/jobly-backend-go/internal/domain/job"
)

type JobServiceImpl struct {
	jobRepo job.JobRepository
}

func NewJobService(jobRepo job.JobRepository) job.JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

// parseJobID rejects non-numeric identifiers before any store access.
func parseJobID(jobID string) (int64, error) {
	id, err := strconv.ParseInt(jobID, 10, 64)
	if err != nil {
		return 0, job.ErrInvalidJobID
	}
	return id, nil
}

// Create implements job.JobService.
func (s *JobServiceImpl) Create(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	created, err := s.jobRepo.Create(ctx, job.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.EquityValue(),
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		return job.JobResponse{}, err
	}
	return job.ToResponse(created), nil
}

// List implements job.JobService.
func (s *JobServiceImpl) List(ctx context.Context, query job.ListJobsQuery) ([]job.JobResponse, error) {
	jobs, err := s.jobRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, job.ToResponse(j))
	}
	return responses, nil
}

// Get implements job.JobService.
func (s *JobServiceImpl) Get(ctx context.Context, jobID string) (job.JobResponse, error) {
	id, err := parseJobID(jobID)
	if err != nil {
		return job.JobResponse{}, err
	}

	found, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}
	return job.ToResponse(found), nil
}

// Update implements job.JobService.
func (s *JobServiceImpl) Update(ctx context.Context, jobID string, req job.UpdateJobRequest) (job.JobResponse, error) {
	id, err := parseJobID(jobID)
	if err != nil {
		return job.JobResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	updated, err := s.jobRepo.Update(ctx, id, req)
	if err != nil {
		return job.JobResponse{}, err
	}
	return job.ToResponse(updated), nil
}

// Delete implements job.JobService. Returns the deleted id for the response
// body.
func (s *JobServiceImpl) Delete(ctx context.Context, jobID string) (int64, error) {
	id, err := parseJobID(jobID)
	if err != nil {
		return 0, err
	}
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}
