package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/models"
)

// decodeJSON reads the request body into dst and answers 400 when it is not
// valid JSON. It reports whether the handler may continue.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.ReadJSON(r, dst); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "Invalid JSON was passed")
		return false
	}
	return true
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.Credentials
	if !h.decodeJSON(w, r, &credentials) {
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err, "Error logging in")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err, "Error logging in")
		return
	}

	result := models.LoginResult{
		Token: token.SignedString,
		User:  user.Principal(),
	}
	if token.ExpiresAt != nil {
		result.ExpiresAt = token.ExpiresAt.Unix()
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	respond(w, r, models.Response{Success: true, Message: "Login successful", Data: result}, http.StatusOK)
}

// me returns the principal resolved by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader, messageNotAuthorized)
		return
	}

	respond(w, r, models.OK(principal), http.StatusOK)
}

// logout only acknowledges: tokens are stateless and expire on their own.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	respond(w, r, models.OKMessage("Successfully logged out"), http.StatusOK)
}
