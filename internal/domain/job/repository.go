package job

import "context"

type JobRepository interface {
	Create(ctx context.Context, newJob Job) (Job, error)
	List(ctx context.Context, query ListJobsQuery) ([]Job, error)
	ListByCompany(ctx context.Context, companyHandle string) ([]Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	Update(ctx context.Context, id int64, req UpdateJobRequest) (Job, error)
	Delete(ctx context.Context, id int64) error
}
