package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/rs/zerolog"
)

// auth enforces bearer token authentication.
//
// The token from the "Authorization: Bearer <token>" header is verified with
// [service.AuthService.ParseToken], its subject is loaded with
// [service.AuthService.GetPrincipal] and the resulting principal is stored
// in the request context for [utils.GetPrincipalFromContext].
//
// A missing or malformed header, an invalid or expired token and a token
// whose user no longer exists are all rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader, messageNotAuthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err, messageNotAuthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err, messageNotAuthorized)
			return
		}

		principal, err := h.services.AuthService.GetPrincipal(ctx, token.UserID)
		if err != nil {
			h.writeError(w, r, err, messageNotAuthorized)
			return
		}

		l := logger.FromRequest(r)
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", principal.ID)
		})
		ctx = l.WithContext(utils.WithPrincipal(ctx, principal))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorize admits only principals holding role. It must run after auth.
func (h *Handler) authorize(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				h.writeError(w, r, ErrEmptyAuthorizationHeader, messageNotAuthorized)
				return
			}

			if principal.Role != role {
				h.writeError(w, r, &RoleNotAuthorizedError{Role: principal.Role.String()}, messageNotAuthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
