package postgresql_test

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobly-app/jobly-backend-go/internal/domain/company"
	"github.com/jobly-app/jobly-backend-go/internal/domain/job"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/database"
)

var (
	connectOnce sync.Once
	sharedDB    *database.DB
	connectErr  error
)

// testDB connects once per test binary. Tests are skipped when
// TEST_DATABASE_URL is not set so the suite stays runnable without Postgres.
func testDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	connectOnce.Do(func() {
		sharedDB, connectErr = database.NewPostgreSQLDB(dsn)
	})
	require.NoError(t, connectErr, "failed to connect to test database")
	return sharedDB
}

func resetTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	_, err := db.Exec(ctx, "TRUNCATE TABLE jobs, companies, users CASCADE")
	require.NoError(t, err)
}

func seedCompany(t *testing.T, db *database.DB, handle, name string, numEmployees *int) company.Company {
	t.Helper()

	var seeded company.Company
	err := db.QueryRow(context.Background(), `
		INSERT INTO companies (handle, name, description, num_employees)
		VALUES ($1, $2, '', $3)
		RETURNING handle, name, description, num_employees, logo_url
	`, handle, name, numEmployees).Scan(
		&seeded.Handle, &seeded.Name, &seeded.Description, &seeded.NumEmployees, &seeded.LogoURL,
	)
	require.NoError(t, err)
	return seeded
}

func seedJob(t *testing.T, db *database.DB, title string, salary *int, equity *string, companyHandle string) job.Job {
	t.Helper()

	var seeded job.Job
	err := db.QueryRow(context.Background(), `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, salary, equity::text, company_handle
	`, title, salary, equity, companyHandle).Scan(
		&seeded.ID, &seeded.Title, &seeded.Salary, &seeded.Equity, &seeded.CompanyHandle,
	)
	require.NoError(t, err)
	return seeded
}

// unmarshalInto builds an update request the same way the handlers do, so the
// presence tracking inside the DTO is exercised rather than bypassed.
func unmarshalInto[T any](t *testing.T, body string) T {
	t.Helper()
	var req T
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func intPtr(n int) *int {
	return &n
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
