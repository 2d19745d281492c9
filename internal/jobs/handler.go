package jobs

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jobdeck/jobdeck/internal/auth"
	"github.com/jobdeck/jobdeck/internal/platform/httpx"
	"github.com/jobdeck/jobdeck/internal/platform/validate"
)

// Handler manages job endpoints.
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

// MountRoutes registers job routes. Reads are public, writes admin-only.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Group(func(r chi.Router) {
		r.Use(h.auth.RequireAdmin)
		r.Post("/", h.create)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := httpx.DecodeStrict(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, httpx.BadRequest(validate.Messages(err)...))
		return
	}

	job, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondErr(w, r, "create job", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"job": job})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	found, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.respondErr(w, r, "list jobs", err)
		return
	}
	if found == nil {
		found = []Job{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"jobs": found})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	job, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, "get job", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"job": job})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	var req UpdateJobRequest
	if err := httpx.DecodeStrict(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, httpx.BadRequest(validate.Messages(err)...))
		return
	}

	job, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondErr(w, r, "update job", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"job": job})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondErr(w, r, "delete job", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, httpx.BadRequestf("job id must be an integer, got %q", raw)
	}
	return id, nil
}

// parseFilter coerces the recognized query parameters into a Filter and
// rejects everything else. Numeric and boolean values arrive as strings and
// are coerced before use.
func parseFilter(query url.Values) (Filter, error) {
	var filter Filter
	for key, vals := range query {
		if len(vals) == 0 {
			continue
		}
		raw := vals[0]
		switch key {
		case "title":
			filter.Title = &raw
		case "minSalary":
			n, err := strconv.Atoi(raw)
			if err != nil {
				return Filter{}, httpx.BadRequestf("minSalary must be an integer, got %q", raw)
			}
			filter.MinSalary = &n
		case "hasEquity":
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return Filter{}, httpx.BadRequestf("hasEquity must be a boolean, got %q", raw)
			}
			filter.HasEquity = &b
		default:
			return Filter{}, httpx.BadRequestf("unexpected query parameter %s is not allowed", key)
		}
	}
	return filter, nil
}

func (h *Handler) respondErr(w http.ResponseWriter, r *http.Request, op string, err error) {
	if _, ok := httpx.AsAPIError(err); !ok {
		h.logger.Error(op+" failed", slog.Any("error", err), slog.String("path", r.URL.Path))
	}
	httpx.RespondError(w, err)
}
