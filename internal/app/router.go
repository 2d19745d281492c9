package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/companies"
	"github.com/jobdeck/jobdeck/internal/jobs"
	"github.com/jobdeck/jobdeck/internal/users"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Auth             auth.Middleware
	AuthHandler      *auth.Handler
	CompaniesHandler *companies.Handler
	JobsHandler      *jobs.Handler
	UsersHandler     *users.Handler
}

// NewRouter constructs the chi.Router with jobdeck defaults. The credential
// decode stage runs globally; it attaches a principal when a valid bearer
// token is present and otherwise leaves the request anonymous.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)
	r.Use(params.Auth.Authenticate)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)
	r.Route("/companies", params.CompaniesHandler.MountRoutes)
	r.Route("/jobs", params.JobsHandler.MountRoutes)
	r.Route("/users", params.UsersHandler.MountRoutes)

	return r
}
