package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jobly-app/jobly-backend-go/internal/domain/job"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/database"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/sqlbuilder"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

// jobConditions binds each allowed list filter to its SQL condition.
// hasEquity is presence-only: true filters on equity being set without
// binding a value, false emits nothing at all.
var jobConditions = map[string]sqlbuilder.ConditionFunc{
	"title": func(_ any, pos int) (string, bool) {
		return fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", pos), true
	},
	"minSalary": func(_ any, pos int) (string, bool) {
		return fmt.Sprintf("salary >= $%d AND salary IS NOT NULL", pos), true
	},
	"hasEquity": func(v any, _ int) (string, bool) {
		if has, ok := v.(bool); ok && has {
			return "equity IS NOT NULL", false
		}
		return "", false
	},
}

// equity is cast to text so the NUMERIC value round-trips without float
// conversion.
const jobColumns = "id, title, salary, equity::text, company_handle"

// Create implements job.JobRepository.
func (j *jobRepositoryImpl) Create(ctx context.Context, newJob job.Job) (job.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobColumns

	var created job.Job
	err := j.db.QueryRow(ctx, query,
		newJob.Title, newJob.Salary, newJob.Equity, newJob.CompanyHandle,
	).Scan(&created.ID, &created.Title, &created.Salary, &created.Equity, &created.CompanyHandle)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return job.Job{}, job.ErrCompanyNotFound
		}
		return job.Job{}, fmt.Errorf("failed to create job %q: %w", newJob.Title, err)
	}
	return created, nil
}

// List implements job.JobRepository. Ordering by id keeps output stable.
func (j *jobRepositoryImpl) List(ctx context.Context, q job.ListJobsQuery) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`

	clause, args := sqlbuilder.Where(q.Filters(), jobConditions)
	if clause != "" {
		query += " WHERE " + clause
	}
	query += " ORDER BY id"

	return j.queryJobs(ctx, query, args...)
}

// ListByCompany implements job.JobRepository.
func (j *jobRepositoryImpl) ListByCompany(ctx context.Context, companyHandle string) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE company_handle = $1 ORDER BY id`
	return j.queryJobs(ctx, query, companyHandle)
}

func (j *jobRepositoryImpl) queryJobs(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := j.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []job.Job{}
	for rows.Next() {
		var found job.Job
		if err := rows.Scan(&found.ID, &found.Title, &found.Salary, &found.Equity, &found.CompanyHandle); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return jobs, nil
}

// GetByID implements job.JobRepository.
func (j *jobRepositoryImpl) GetByID(ctx context.Context, id int64) (job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var found job.Job
	err := j.db.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Title, &found.Salary, &found.Equity, &found.CompanyHandle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job %d: %w", id, err)
	}
	return found, nil
}

// Update implements job.JobRepository. The job's update fields all map to
// columns of the same name; company_handle is not reachable from here, so a
// job can never move between companies. Absence of a returned row is the
// NotFound signal, racing deletes lose cleanly.
func (j *jobRepositoryImpl) Update(ctx context.Context, id int64, req job.UpdateJobRequest) (job.Job, error) {
	setClause, args, err := sqlbuilder.PartialUpdate(req.Assignments(), nil)
	if err != nil {
		return job.Job{}, err
	}

	query := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE id = $%d RETURNING `+jobColumns,
		setClause, len(args)+1,
	)
	args = append(args, id)

	var updated job.Job
	err = j.db.QueryRow(ctx, query, args...).
		Scan(&updated.ID, &updated.Title, &updated.Salary, &updated.Equity, &updated.CompanyHandle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to update job %d: %w", id, err)
	}
	return updated, nil
}

// Delete implements job.JobRepository.
func (j *jobRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := j.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}
	return nil
}
