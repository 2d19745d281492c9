package jobs

import "context"

// RepositoryPort defines data access methods for jobs.
type RepositoryPort interface {
	Create(ctx context.Context, req CreateJobRequest) (*Job, error)
	List(ctx context.Context, filter Filter) ([]Job, error)
	Get(ctx context.Context, id int64) (*Job, error)
	Update(ctx context.Context, id int64, req UpdateJobRequest) (*Job, error)
	Delete(ctx context.Context, id int64) error
}

// Service handles job business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create stores a new job posting.
func (s *Service) Create(ctx context.Context, req CreateJobRequest) (*Job, error) {
	return s.repo.Create(ctx, req)
}

// List returns jobs matching the optional filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Job, error) {
	return s.repo.List(ctx, filter)
}

// Get returns a job with its owning company expanded.
func (s *Service) Get(ctx context.Context, id int64) (*Job, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a sparse update.
func (s *Service) Update(ctx context.Context, id int64, req UpdateJobRequest) (*Job, error) {
	return s.repo.Update(ctx, id, req)
}

// Delete removes a job posting.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
