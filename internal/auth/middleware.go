package auth

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jobdeck/jobdeck/internal/platform/httpx"
)

// Middleware carries the per-route authorization stages. Authenticate runs
// first and only populates the request context; the Require* stages decide.
type Middleware struct {
	tokens *TokenService
}

// NewMiddleware constructs the middleware set.
func NewMiddleware(tokens *TokenService) Middleware {
	return Middleware{tokens: tokens}
}

// Authenticate decodes an Authorization bearer token when one is present and
// attaches the resulting principal to the request context. A missing or
// invalid token leaves the request anonymous; this stage never rejects.
func (m Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header != "" {
			tokenString := strings.TrimSpace(stripBearer(header))
			if p, err := m.tokens.Verify(tokenString); err == nil {
				r = r.WithContext(ContextWithPrincipal(r.Context(), &p))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireLoggedIn rejects anonymous requests.
func (m Middleware) RequireLoggedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if PrincipalFromContext(r.Context()) == nil {
			httpx.RespondError(w, httpx.Unauthorized(""))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose principal is absent or not an admin.
func (m Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := PrincipalFromContext(r.Context())
		if p == nil || !p.IsAdmin {
			httpx.RespondError(w, httpx.Unauthorized("Only admins can access"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminOrSelf allows admins, plus the user whose username matches the
// named route parameter.
func (m Middleware) RequireAdminOrSelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := PrincipalFromContext(r.Context())
			if p == nil || (!p.IsAdmin && p.Username != chi.URLParam(r, param)) {
				httpx.RespondError(w, httpx.Unauthorized(""))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func stripBearer(header string) string {
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		return header[7:]
	}
	return header
}
