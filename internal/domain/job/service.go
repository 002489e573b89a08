package job

import "context"

// JobService takes the job identifier as the raw path segment; a non-numeric
// identifier fails with ErrInvalidJobID before any store access.
type JobService interface {
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	List(ctx context.Context, query ListJobsQuery) ([]JobResponse, error)
	Get(ctx context.Context, jobID string) (JobResponse, error)
	Update(ctx context.Context, jobID string, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, jobID string) (int64, error)
}
