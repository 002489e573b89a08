package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, newCompany Company) (Company, error)
	List(ctx context.Context, query ListCompaniesQuery) ([]Company, error)
	GetByHandle(ctx context.Context, handle string) (Company, error)
	Update(ctx context.Context, handle string, req UpdateCompanyRequest) (Company, error)
	Delete(ctx context.Context, handle string) error
}
