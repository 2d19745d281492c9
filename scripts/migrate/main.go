// Command migrate applies the jobdeck schema to the configured database.
// It is idempotent; all statements use IF NOT EXISTS.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jobdeck/jobdeck/internal/platform/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS companies (
    handle VARCHAR(25) PRIMARY KEY CHECK (handle = lower(handle)),
    name TEXT UNIQUE NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    num_employees INTEGER CHECK (num_employees >= 0),
    logo_url TEXT
);

CREATE TABLE IF NOT EXISTS jobs (
    id SERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    salary INTEGER CHECK (salary >= 0),
    equity NUMERIC CHECK (equity >= 0 AND equity <= 1.0),
    company_handle VARCHAR(25) NOT NULL
        REFERENCES companies ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS users (
    username VARCHAR(30) PRIMARY KEY,
    password_hash TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NOT NULL CHECK (position('@' IN email) > 1),
    is_admin BOOLEAN NOT NULL DEFAULT FALSE
);
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		logger.Error("PG_DSN must be set")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.New(ctx, dsn)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Error("apply schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("schema applied")
}
