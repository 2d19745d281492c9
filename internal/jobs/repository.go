package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobdeck/jobdeck/internal/platform/db"
	"github.com/jobdeck/jobdeck/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence for jobs.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const foreignKeyViolation = "23503"

// Create stores a new job and returns it with the generated id. A missing
// company handle surfaces as the foreign key violation.
func (r *Repository) Create(ctx context.Context, req CreateJobRequest) (*Job, error) {
	job := Job{
		Title:         req.Title,
		Salary:        req.Salary,
		CompanyHandle: req.CompanyHandle,
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, equity::text`,
		req.Title, req.Salary, req.Equity, req.CompanyHandle).
		Scan(&job.ID, &job.Equity)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, httpx.BadRequestf("No company: %s", req.CompanyHandle)
		}
		return nil, err
	}
	return &job, nil
}

// List returns jobs matching the filter, ordered by title. Listings never
// expand the owning company.
func (r *Repository) List(ctx context.Context, filter Filter) ([]Job, error) {
	where, values := filter.WhereClause()

	query := fmt.Sprintf(`
		SELECT id, title, salary, equity::text, company_handle
		FROM jobs
		%s
		ORDER BY title`, where)

	rows, err := r.pool.Query(ctx, query, values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// Get fetches a job and expands its owning company in a second read. The two
// reads are not transactional; a company deleted in between yields a job
// without company data only if the cascade has not removed the job itself.
func (r *Repository) Get(ctx context.Context, id int64) (*Job, error) {
	var job Job
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, salary, equity::text, company_handle
		FROM jobs
		WHERE id = $1`, id).
		Scan(&job.ID, &job.Title, &job.Salary, &job.Equity, &job.CompanyHandle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.NotFoundf("No job: %d", id)
		}
		return nil, err
	}

	var company CompanyRecord
	err = r.pool.QueryRow(ctx, `
		SELECT handle, name, description, num_employees, logo_url
		FROM companies
		WHERE handle = $1`, job.CompanyHandle).
		Scan(&company.Handle, &company.Name, &company.Description, &company.NumEmployees, &company.LogoURL)
	if err == nil {
		job.Company = &company
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	return &job, nil
}

// Update applies a sparse update keyed by id. A zero-row result means the
// job does not exist; there is no separate existence probe.
func (r *Repository) Update(ctx context.Context, id int64, req UpdateJobRequest) (*Job, error) {
	var fields []db.Field
	if req.Title != nil {
		fields = append(fields, db.Field{Name: "title", Value: *req.Title})
	}
	if req.Salary != nil {
		fields = append(fields, db.Field{Name: "salary", Value: *req.Salary})
	}
	if req.Equity != nil {
		fields = append(fields, db.Field{Name: "equity", Value: *req.Equity})
	}

	setClause, values, err := db.PartialUpdate(fields, nil)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE jobs SET %s
		WHERE id = $%d
		RETURNING id, title, salary, equity::text, company_handle`, setClause, len(values)+1)
	values = append(values, id)

	var j Job
	err = r.pool.QueryRow(ctx, query, values...).
		Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.NotFoundf("No job: %d", id)
		}
		return nil, err
	}
	return &j, nil
}

// Delete removes a job by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.pool.QueryRow(ctx, `DELETE FROM jobs WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return httpx.NotFoundf("No job: %d", id)
		}
		return err
	}
	return nil
}
