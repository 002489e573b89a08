package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobly-app/jobly-backend-go/internal/domain/job"
)

type fakeJobRepo struct {
	jobs map[int64]job.Job
}

func newFakeJobRepo(jobs ...job.Job) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: map[int64]job.Job{}}
	for _, j := range jobs {
		repo.jobs[j.ID] = j
	}
	return repo
}

func (f *fakeJobRepo) Create(_ context.Context, newJob job.Job) (job.Job, error) {
	newJob.ID = int64(len(f.jobs) + 1)
	f.jobs[newJob.ID] = newJob
	return newJob, nil
}

func (f *fakeJobRepo) List(_ context.Context, _ job.ListJobsQuery) ([]job.Job, error) {
	jobs := []job.Job{}
	for _, j := range f.jobs {
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func (f *fakeJobRepo) ListByCompany(_ context.Context, companyHandle string) ([]job.Job, error) {
	jobs := []job.Job{}
	for _, j := range f.jobs {
		if j.CompanyHandle == companyHandle {
			jobs = append(jobs, j)
		}
	}
	return jobs, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id int64) (job.Job, error) {
	found, ok := f.jobs[id]
	if !ok {
		return job.Job{}, job.ErrJobNotFound
	}
	return found, nil
}

func (f *fakeJobRepo) Update(_ context.Context, id int64, _ job.UpdateJobRequest) (job.Job, error) {
	found, ok := f.jobs[id]
	if !ok {
		return job.Job{}, job.ErrJobNotFound
	}
	return found, nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return job.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

func TestJobService_Get(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(newFakeJobRepo(job.Job{ID: 7, Title: "Engineer", CompanyHandle: "c1"}))

	t.Run("numeric id", func(t *testing.T) {
		found, err := svc.Get(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, "Engineer", found.Title)
	})

	t.Run("non-numeric id never reaches the store", func(t *testing.T) {
		_, err := svc.Get(ctx, "not-a-number")
		assert.ErrorIs(t, err, job.ErrInvalidJobID)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := svc.Get(ctx, "9999")
		assert.ErrorIs(t, err, job.ErrJobNotFound)
	})
}

func TestJobService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(newFakeJobRepo(job.Job{ID: 7, Title: "Engineer", CompanyHandle: "c1"}))

	deleted, err := svc.Delete(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)

	_, err = svc.Delete(ctx, "7")
	assert.ErrorIs(t, err, job.ErrJobNotFound)

	_, err = svc.Delete(ctx, "abc")
	assert.ErrorIs(t, err, job.ErrInvalidJobID)
}
