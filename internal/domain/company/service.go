package company

import "context"

type CompanyService interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	List(ctx context.Context, query ListCompaniesQuery) ([]CompanyResponse, error)
	Get(ctx context.Context, handle string) (CompanyDetailResponse, error)
	Update(ctx context.Context, handle string, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, handle string) error
}
