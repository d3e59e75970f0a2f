package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-portfolio/internal/logger"
	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/store"
	"github.com/MKhiriev/go-portfolio/internal/utils"
	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

const (
	messageValidationFailed = "Validation failed"
	messageNotAuthorized    = "Not authorized to access this route"
)

var notFoundMessages = map[error]string{
	store.ErrProjectNotFound:  "Project not found",
	store.ErrSkillNotFound:    "Skill not found",
	store.ErrTimelineNotFound: "Timeline event not found",
	store.ErrContactNotFound:  "Contact not found",
	store.ErrOwnerNotFound:    "Admin user not found",
	store.ErrUserNotFound:     "User not found",
}

var unauthorizedMessages = map[error]string{
	service.ErrInvalidCredentials:       "Invalid credentials",
	service.ErrTokenIsExpired:           "Token expired",
	service.ErrTokenIsInvalid:           "Invalid token",
	service.ErrPrincipalNotFound:        "No user found with this id",
	ErrEmptyAuthorizationHeader:         messageNotAuthorized,
	utils.ErrInvalidAuthorizationHeader: messageNotAuthorized,
}

// writeError is the terminal error normalizer. It classifies err, writes the
// envelope and logs the failure. fallback is the message used when err is
// not classified; such responses are 500s carrying the error text, and a
// stack trace outside production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status, resp := h.normalize(r, err, fallback)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(fallback)
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	respond(w, r, resp, status)
}

func (h *Handler) normalize(r *http.Request, err error, fallback string) (int, models.Response) {
	var (
		validationErr *validators.ValidationError
		duplicateErr  *store.DuplicateKeyError
		checkErr      *store.CheckViolationError
		tooLongErr    *store.ValueTooLongError
		roleErr       *RoleNotAuthorizedError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, models.Fail(messageValidationFailed, validationErr.Errors)

	case errors.As(err, &duplicateErr):
		return http.StatusBadRequest, models.Fail(
			fmt.Sprintf("Duplicate field value entered for %s", duplicateErr.Field),
			map[string]string{duplicateErr.Field: fmt.Sprintf("%s already exists", duplicateErr.Field)},
		)

	case errors.As(err, &checkErr):
		return http.StatusBadRequest, models.Fail(messageValidationFailed, map[string]string{checkErr.Field: checkErr.Message})

	case errors.As(err, &tooLongErr):
		if tooLongErr.Field == "" {
			return http.StatusBadRequest, models.Fail("Value is too long", nil)
		}
		return http.StatusBadRequest, models.Fail(messageValidationFailed, map[string]string{
			tooLongErr.Field: fmt.Sprintf("%s is too long", tooLongErr.Field),
		})

	case errors.Is(err, store.ErrMalformedID):
		return http.StatusNotFound, models.Fail(
			fmt.Sprintf("Resource not found with id of %s", chi.URLParam(r, "id")),
			map[string]string{"id": validators.MessageInvalidID},
		)

	case errors.As(err, &roleErr):
		return http.StatusForbidden, models.Fail(roleErr.Error(), nil)

	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, models.Fail("Invalid JSON was passed", nil)

	case errors.Is(err, ErrOriginNotAllowed):
		return http.StatusForbidden, models.Fail("Not allowed by CORS", nil)

	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests, models.Fail("Too many requests, please try again later", nil)
	}

	for target, message := range notFoundMessages {
		if errors.Is(err, target) {
			return http.StatusNotFound, models.Fail(message, nil)
		}
	}

	for target, message := range unauthorizedMessages {
		if errors.Is(err, target) {
			return http.StatusUnauthorized, models.Fail(message, nil)
		}
	}

	resp := models.Fail(fallback, nil)
	resp.Error = err.Error()
	if !h.production {
		resp.Stack = string(debug.Stack())
	}
	return http.StatusInternalServerError, resp
}
