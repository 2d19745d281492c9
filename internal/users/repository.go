package users

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

// Repository provides PostgreSQL backed persistence for user accounts.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Insert stores a new user. A duplicate-username pre-check gives the clear
// error message; the unique constraint remains the authoritative guard under
// concurrent creation.
func (r *Repository) Insert(ctx context.Context, user User, passwordHash string) (*User, error) {
	var existing string
	err := r.pool.QueryRow(ctx, `SELECT username FROM users WHERE username = $1`, user.Username).Scan(&existing)
	if err == nil {
		return nil, httpx.BadRequestf("Duplicate username: %s", user.Username)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO users (username, password_hash, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.Username, passwordHash, user.FirstName, user.LastName, user.Email, user.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, httpx.BadRequestf("Duplicate username: %s", user.Username)
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by username.
func (r *Repository) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT username, first_name, last_name, email, is_admin
		FROM users
		ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Get fetches a single user by username.
func (r *Repository) Get(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.pool.QueryRow(ctx, `
		SELECT username, first_name, last_name, email, is_admin
		FROM users
		WHERE username = $1`, username).
		Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.NotFoundf("No user: %s", username)
		}
		return nil, err
	}
	return &u, nil
}

// Credentials fetches a user together with its password hash for
// authentication.
func (r *Repository) Credentials(ctx context.Context, username string) (*User, string, error) {
	var u User
	var hash string
	err := r.pool.QueryRow(ctx, `
		SELECT username, password_hash, first_name, last_name, email, is_admin
		FROM users
		WHERE username = $1`, username).
		Scan(&u.Username, &hash, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", httpx.NotFoundf("No user: %s", username)
		}
		return nil, "", err
	}
	return &u, hash, nil
}

// Update applies a sparse update keyed by username. A zero-row result means
// the user does not exist; there is no separate existence probe.
func (r *Repository) Update(ctx context.Context, username string, params updateParams) (*User, error) {
	var fields []db.Field
	if params.FirstName != nil {
		fields = append(fields, db.Field{Name: "firstName", Value: *params.FirstName})
	}
	if params.LastName != nil {
		fields = append(fields, db.Field{Name: "lastName", Value: *params.LastName})
	}
	if params.Email != nil {
		fields = append(fields, db.Field{Name: "email", Value: *params.Email})
	}
	if params.PasswordHash != nil {
		fields = append(fields, db.Field{Name: "password", Value: *params.PasswordHash})
	}

	setClause, values, err := db.PartialUpdate(fields, map[string]string{
		"firstName": "first_name",
		"lastName":  "last_name",
		"password":  "password_hash",
	})
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE username = $%d
		RETURNING username, first_name, last_name, email, is_admin`, setClause, len(values)+1)
	values = append(values, username)

	var u User
	err = r.pool.QueryRow(ctx, query, values...).
		Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.NotFoundf("No user: %s", username)
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes a user by username.
func (r *Repository) Delete(ctx context.Context, username string) error {
	var deleted string
	err := r.pool.QueryRow(ctx, `DELETE FROM users WHERE username = $1 RETURNING username`, username).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return httpx.NotFoundf("No user: %s", username)
		}
		return err
	}
	return nil
}
