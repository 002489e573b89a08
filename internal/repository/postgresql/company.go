package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jobly-app/jobly-backend-go/internal/domain/company"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/database"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/sqlbuilder"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// companyColMap translates update field names to their column names. Fields
// missing here use their own name.
var companyColMap = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

// companyConditions binds each allowed list filter to its SQL condition.
var companyConditions = map[string]sqlbuilder.ConditionFunc{
	"nameLike": func(_ any, pos int) (string, bool) {
		return fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", pos), true
	},
	"minEmployees": func(_ any, pos int) (string, bool) {
		return fmt.Sprintf("num_employees >= $%d", pos), true
	},
	"maxEmployees": func(_ any, pos int) (string, bool) {
		return fmt.Sprintf("num_employees <= $%d", pos), true
	},
}

const companyColumns = "handle, name, description, num_employees, logo_url"

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	var exists bool
	err := c.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE handle = $1)`,
		newCompany.Handle,
	).Scan(&exists)
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to check for duplicate company %s: %w", newCompany.Handle, err)
	}
	if exists {
		return company.Company{}, company.ErrCompanyHandleExists
	}

	query := `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	var created company.Company
	err = c.db.QueryRow(ctx, query,
		newCompany.Handle, newCompany.Name, newCompany.Description,
		newCompany.NumEmployees, newCompany.LogoURL,
	).Scan(&created.Handle, &created.Name, &created.Description, &created.NumEmployees, &created.LogoURL)
	if err != nil {
		// The existence check above can race a concurrent insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return company.Company{}, company.ErrCompanyHandleExists
		}
		return company.Company{}, fmt.Errorf("failed to create company %s: %w", newCompany.Handle, err)
	}
	return created, nil
}

// List implements company.CompanyRepository. The filter degrades to an
// unfiltered select; ordering by name keeps output stable.
func (c *companyRepositoryImpl) List(ctx context.Context, q company.ListCompaniesQuery) ([]company.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies`

	clause, args := sqlbuilder.Where(q.Filters(), companyConditions)
	if clause != "" {
		query += " WHERE " + clause
	}
	query += " ORDER BY name"

	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []company.Company{}
	for rows.Next() {
		var found company.Company
		if err := rows.Scan(&found.Handle, &found.Name, &found.Description, &found.NumEmployees, &found.LogoURL); err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, found)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read company rows: %w", err)
	}
	return companies, nil
}

// GetByHandle implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByHandle(ctx context.Context, handle string) (company.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE handle = $1`

	var found company.Company
	err := c.db.QueryRow(ctx, query, handle).
		Scan(&found.Handle, &found.Name, &found.Description, &found.NumEmployees, &found.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company %s: %w", handle, err)
	}
	return found, nil
}

// Update implements company.CompanyRepository. The returned row doubles as
// the existence check: no row back means the company vanished, with no
// separate pre-check to race against.
func (c *companyRepositoryImpl) Update(ctx context.Context, handle string, req company.UpdateCompanyRequest) (company.Company, error) {
	setClause, args, err := sqlbuilder.PartialUpdate(req.Assignments(), companyColMap)
	if err != nil {
		return company.Company{}, err
	}

	query := fmt.Sprintf(
		`UPDATE companies SET %s WHERE handle = $%d RETURNING `+companyColumns,
		setClause, len(args)+1,
	)
	args = append(args, handle)

	var updated company.Company
	err = c.db.QueryRow(ctx, query, args...).
		Scan(&updated.Handle, &updated.Name, &updated.Description, &updated.NumEmployees, &updated.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to update company %s: %w", handle, err)
	}
	return updated, nil
}

// Delete implements company.CompanyRepository.
func (c *companyRepositoryImpl) Delete(ctx context.Context, handle string) error {
	tag, err := c.db.Exec(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", handle, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
