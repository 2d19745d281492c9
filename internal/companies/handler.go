package companies

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

// Handler manages company endpoints.
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

// MountRoutes registers company routes. Reads are public, writes admin-only.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{handle}", h.get)
	r.Group(func(r chi.Router) {
		r.Use(h.auth.RequireAdmin)
		r.Post("/", h.create)
		r.Patch("/{handle}", h.update)
		r.Delete("/{handle}", h.delete)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := httpx.DecodeStrict(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, httpx.BadRequest(validate.Messages(err)...))
		return
	}

	company, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondErr(w, r, "create company", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"company": company})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	found, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.respondErr(w, r, "list companies", err)
		return
	}
	if found == nil {
		found = []Company{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"companies": found})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	company, err := h.service.Get(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		h.respondErr(w, r, "get company", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"company": company})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateCompanyRequest
	if err := httpx.DecodeStrict(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, httpx.BadRequest(validate.Messages(err)...))
		return
	}

	company, err := h.service.Update(r.Context(), chi.URLParam(r, "handle"), req)
	if err != nil {
		h.respondErr(w, r, "update company", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"company": company})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	if err := h.service.Delete(r.Context(), handle); err != nil {
		h.respondErr(w, r, "delete company", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": handle})
}

// parseFilter coerces the recognized query parameters into a Filter and
// rejects everything else.
func parseFilter(query url.Values) (Filter, error) {
	var filter Filter
	for key, vals := range query {
		if len(vals) == 0 {
			continue
		}
		raw := vals[0]
		switch key {
		case "nameLike":
			filter.NameLike = &raw
		case "minEmployees":
			n, err := strconv.Atoi(raw)
			if err != nil {
				return Filter{}, httpx.BadRequestf("minEmployees must be an integer, got %q", raw)
			}
			filter.MinEmployees = &n
		case "maxEmployees":
			n, err := strconv.Atoi(raw)
			if err != nil {
				return Filter{}, httpx.BadRequestf("maxEmployees must be an integer, got %q", raw)
			}
			filter.MaxEmployees = &n
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
