package users

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/platform/httpx"
	"github.com/jobdeck/jobdeck/internal/platform/validate"
)

// Handler manages user management endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	auth     auth.Middleware
	validate *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authmw auth.Middleware) *Handler {
	return &Handler{logger: logger, service: service, auth: authmw, validate: validate.New()}
}

// MountRoutes registers user routes. Listing and creation are admin-only;
// single-user routes allow the matching user as well.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth.RequireAdmin)
		r.Get("/", h.list)
		r.Post("/", h.create)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.auth.RequireAdminOrSelf("username"))
		r.Get("/{username}", h.get)
		r.Patch("/{username}", h.update)
		r.Delete("/{username}", h.delete)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.List(r.Context())
	if err != nil {
		h.respondErr(w, r, "list users", err)
		return
	}
	if found == nil {
		found = []User{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"users": found})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := httpx.DecodeStrict(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, httpx.BadRequest(validate.Messages(err)...))
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondErr(w, r, "create user", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.respondErr(w, r, "get user", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := httpx.DecodeStrict(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, httpx.BadRequest(validate.Messages(err)...))
		return
	}

	user, err := h.service.Update(r.Context(), chi.URLParam(r, "username"), req)
	if err != nil {
		h.respondErr(w, r, "update user", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := h.service.Delete(r.Context(), username); err != nil {
		h.respondErr(w, r, "delete user", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": username})
}

func (h *Handler) respondErr(w http.ResponseWriter, r *http.Request, op string, err error) {
	if _, ok := httpx.AsAPIError(err); !ok {
		h.logger.Error(op+" failed", slog.Any("error", err), slog.String("path", r.URL.Path))
	}
	httpx.RespondError(w, err)
}
