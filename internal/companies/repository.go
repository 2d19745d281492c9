package companies

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/jobdeck/jobdeck/internal/platform/db"
	"github.com/jobdeck/jobdeck/internal/platform/httpx"
)

// Repository provides PostgreSQL backed persistence for companies.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const uniqueViolation = "23505"

// Create stores a new company. The duplicate pre-check yields the clear
// error message; the unique constraint on handle remains the authoritative
// guard under concurrent creation.
func (r *Repository) Create(ctx context.Context, req CreateCompanyRequest) (*Company, error) {
	var existing string
	err := r.pool.QueryRow(ctx, `SELECT handle FROM companies WHERE handle = $1`, req.Handle).Scan(&existing)
	if err == nil {
		return nil, httpx.BadRequestf("Duplicate company: %s", req.Handle)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	company := Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)`,
		company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, httpx.BadRequestf("Duplicate company: %s", req.Handle)
		}
		return nil, err
	}
	return &company, nil
}

// List returns companies matching the filter, ordered by name.
func (r *Repository) List(ctx context.Context, filter Filter) ([]Company, error) {
	where, values, err := filter.WhereClause()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT handle, name, description, num_employees, logo_url
		FROM companies
		%s
		ORDER BY name`, where)

	rows, err := r.pool.Query(ctx, query, values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get fetches a company with its jobs. The company row and job rows are
// loaded concurrently; the two reads are not transactional, so a company
// deleted mid-flight can yield a not-found either way.
func (r *Repository) Get(ctx context.Context, handle string) (*Company, error) {
	var company Company
	jobs := []JobSummary{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := r.pool.QueryRow(ctx, `
			SELECT handle, name, description, num_employees, logo_url
			FROM companies
			WHERE handle = $1`, handle).
			Scan(&company.Handle, &company.Name, &company.Description, &company.NumEmployees, &company.LogoURL)
		if errors.Is(err, pgx.ErrNoRows) {
			return httpx.NotFoundf("No company: %s", handle)
		}
		return err
	})
	g.Go(func() error {
		rows, err := r.pool.Query(ctx, `
			SELECT id, title, salary, equity::text
			FROM jobs
			WHERE company_handle = $1
			ORDER BY id`, handle)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var j JobSummary
			if err := rows.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity); err != nil {
				return err
			}
			jobs = append(jobs, j)
		}
		return rows.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	company.Jobs = jobs
	return &company, nil
}

// Update applies a sparse update keyed by handle. A zero-row result means
// the company does not exist; there is no separate existence probe.
func (r *Repository) Update(ctx context.Context, handle string, req UpdateCompanyRequest) (*Company, error) {
	var fields []db.Field
	if req.Name != nil {
		fields = append(fields, db.Field{Name: "name", Value: *req.Name})
	}
	if req.Description != nil {
		fields = append(fields, db.Field{Name: "description", Value: *req.Description})
	}
	if req.NumEmployees != nil {
		fields = append(fields, db.Field{Name: "numEmployees", Value: *req.NumEmployees})
	}
	if req.LogoURL != nil {
		fields = append(fields, db.Field{Name: "logoUrl", Value: *req.LogoURL})
	}

	setClause, values, err := db.PartialUpdate(fields, map[string]string{
		"numEmployees": "num_employees",
		"logoUrl":      "logo_url",
	})
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE companies SET %s
		WHERE handle = $%d
		RETURNING handle, name, description, num_employees, logo_url`, setClause, len(values)+1)
	values = append(values, handle)

	var c Company
	err = r.pool.QueryRow(ctx, query, values...).
		Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.NotFoundf("No company: %s", handle)
		}
		return nil, err
	}
	return &c, nil
}

// Delete removes a company by handle. Jobs referencing it are removed by the
// storage layer's ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, handle string) error {
	var deleted string
	err := r.pool.QueryRow(ctx, `DELETE FROM companies WHERE handle = $1 RETURNING handle`, handle).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return httpx.NotFoundf("No company: %s", handle)
		}
		return err
	}
	return nil
}
