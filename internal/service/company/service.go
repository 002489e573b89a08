package company

import (
	"context"

	"github.com/jobly-app/jobly-backend-go/internal/domain/company"
	"github.com/jobly-app/jobly-backend-go/internal/domain/job"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
	jobRepo     job.JobRepository
}

func NewCompanyService(companyRepo company.CompanyRepository, jobRepo job.JobRepository) company.CompanyService {
	return &CompanyServiceImpl{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
	}
}

// Create implements company.CompanyService.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.companyRepo.Create(ctx, company.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(created), nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context, query company.ListCompaniesQuery) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, company.ToResponse(c))
	}
	return responses, nil
}

// Get implements company.CompanyService. The detail view carries the
// company's job postings.
func (s *CompanyServiceImpl) Get(ctx context.Context, handle string) (company.CompanyDetailResponse, error) {
	found, err := s.companyRepo.GetByHandle(ctx, handle)
	if err != nil {
		return company.CompanyDetailResponse{}, err
	}

	jobs, err := s.jobRepo.ListByCompany(ctx, handle)
	if err != nil {
		return company.CompanyDetailResponse{}, err
	}
	jobResponses := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		jobResponses = append(jobResponses, job.ToResponse(j))
	}

	return company.CompanyDetailResponse{
		CompanyResponse: company.ToResponse(found),
		Jobs:            jobResponses,
	}, nil
}

// Update implements company.CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, handle string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.companyRepo.Update(ctx, handle, req)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(updated), nil
}

// Delete implements company.CompanyService.
func (s *CompanyServiceImpl) Delete(ctx context.Context, handle string) error {
	return s.companyRepo.Delete(ctx, handle)
}
