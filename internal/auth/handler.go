package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jobdeck/jobdeck/internal/platform/httpx"
	"github.com/jobdeck/jobdeck/internal/platform/validate"
)

// AccountService is the user-account contract the auth routes depend on.
type AccountService interface {
	Authenticate(ctx context.Context, username, password string) (Principal, error)
	SignUp(ctx context.Context, in SignUpInput) (Principal, error)
}

// SignUpInput carries self-registration data. Self-registered accounts are
// never admins.
type SignUpInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

// Handler wires HTTP endpoints for token issuance.
type Handler struct {
	logger   *slog.Logger
	accounts AccountService
	tokens   *TokenService
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, accounts AccountService, tokens *TokenService) *Handler {
	return &Handler{logger: logger, accounts: accounts, tokens: tokens, validate: validate.New()}
}

// MountRoutes registers auth routes on the provided router. Both routes are
// public by design.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/token", h.handleToken)
	r.Post("/register", h.handleRegister)
}

type tokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=1,max=30"`
	Password  string `json:"password" validate:"required,min=5,max=20"`
	FirstName string `json:"firstName" validate:"required,max=30"`
	LastName  string `json:"lastName" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
}

func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := httpx.DecodeStrict(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, httpx.BadRequest(validate.Messages(err)...))
		return
	}

	principal, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.respondToken(w, principal, http.StatusOK)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeStrict(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.RespondError(w, httpx.BadRequest(validate.Messages(err)...))
		return
	}

	principal, err := h.accounts.SignUp(r.Context(), SignUpInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	h.respondToken(w, principal, http.StatusCreated)
}

func (h *Handler) respondToken(w http.ResponseWriter, principal Principal, status int) {
	token, err := h.tokens.Issue(principal)
	if err != nil {
		h.logger.Error("sign token", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, status, map[string]string{"token": token})
}
