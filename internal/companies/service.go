package companies

import "context"

// RepositoryPort defines data access methods for companies.
type RepositoryPort interface {
	Create(ctx context.Context, req CreateCompanyRequest) (*Company, error)
	List(ctx context.Context, filter Filter) ([]Company, error)
	Get(ctx context.Context, handle string) (*Company, error)
	Update(ctx context.Context, handle string, req UpdateCompanyRequest) (*Company, error)
	Delete(ctx context.Context, handle string) error
}

// Service handles company business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create stores a new company record.
func (s *Service) Create(ctx context.Context, req CreateCompanyRequest) (*Company, error) {
	return s.repo.Create(ctx, req)
}

// List returns companies matching the optional filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Company, error) {
	return s.repo.List(ctx, filter)
}

// Get returns a company with its jobs.
func (s *Service) Get(ctx context.Context, handle string) (*Company, error) {
	return s.repo.Get(ctx, handle)
}

// Update applies a sparse update.
func (s *Service) Update(ctx context.Context, handle string, req UpdateCompanyRequest) (*Company, error) {
	return s.repo.Update(ctx, handle, req)
}

// Delete removes a company.
func (s *Service) Delete(ctx context.Context, handle string) error {
	return s.repo.Delete(ctx, handle)
}
