package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validatedRouter mounts a validate middleware on a route with an id param
// and records the body the handler received.
func validatedRouter(h *Handler, received *string, ruleSets ...string) http.Handler {
	router := chi.NewRouter()
	router.With(h.validate(ruleSets...)).Post("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		*received = string(data)
		w.WriteHeader(http.StatusNoContent)
	})
	return router
}

func TestValidate(t *testing.T) {
	const validID = "0194f9a2-7c1e-7d4b-9a8e-1f2a3b4c5d6e"

	tests := []struct {
		name       string
		ruleSets   []string
		id         string
		body       string
		wantStatus int
		wantErrors map[string]string
		wantBody   string
	}{
		{
			name:       "valid login is trimmed for the handler",
			ruleSets:   []string{validators.RuleSetLogin},
			id:         validID,
			body:       `{"email":"  jane@example.com ","password":"secret"}`,
			wantStatus: http.StatusNoContent,
			wantBody:   `{"email":"jane@example.com","password":"secret"}`,
		},
		{
			name:       "every failing field is reported",
			ruleSets:   []string{validators.RuleSetLogin},
			id:         validID,
			body:       `{"email":"nope"}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{
				"email":    "Please provide a valid email address",
				"password": "Password is required",
			},
		},
		{
			name:       "empty body reports required fields",
			ruleSets:   []string{validators.RuleSetLogin},
			id:         validID,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{
				"email":    "Please provide a valid email address",
				"password": "Password is required",
			},
		},
		{
			name:       "malformed id",
			ruleSets:   []string{validators.RuleSetID, validators.RuleSetTimelineUpdate},
			id:         "123",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"id": "Invalid ID format"},
		},
		{
			name:       "array element errors are indexed",
			ruleSets:   []string{validators.RuleSetSkill},
			id:         validID,
			body:       `{"title":"Backend","icon":"Code","skills":["Go"," "]}`,
			wantStatus: http.StatusBadRequest,
			wantErrors: map[string]string{"skills[1]": "Skills cannot be empty"},
		},
		{
			name:       "id only rule set leaves the body alone",
			ruleSets:   []string{validators.RuleSetID},
			id:         validID,
			body:       `not json`,
			wantStatus: http.StatusNoContent,
			wantBody:   `not json`,
		},
	}

	h := newTestHandler(t, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received string
			router := validatedRouter(h, &received, tt.ruleSets...)

			req := httptest.NewRequest(http.MethodPost, "/items/"+tt.id, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, tt.wantBody, received)
				return
			}

			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, "Validation failed", env.Message)
			assert.Equal(t, tt.wantErrors, env.Errors)
		})
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"email":`},
		{"array instead of object", `[{"email":"a@b.co"}]`},
	}

	h := newTestHandler(t, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received string
			router := validatedRouter(h, &received, validators.RuleSetLogin)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/items/x", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid JSON was passed", decodeEnvelope(t, rec).Message)
			assert.Empty(t, received)
		})
	}
}

func TestValidate_ThroughRouter(t *testing.T) {
	called := false
	h := newTestHandler(t, &service.Services{
		ContactService: &mockContactService{
			submitContactFn: func(_ context.Context, c models.Contact) (models.Contact, error) {
				called = true
				return c, nil
			},
		},
	})

	rec := do(t, h, http.MethodPost, "/api/v1/contact/submit", `{"name":"","email":"a@b.com","message":"short"}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
	assert.Equal(t, map[string]string{
		"name":    "Name must be between 1 and 50 characters",
		"message": "Message must be between 10 and 1000 characters",
	}, decodeEnvelope(t, rec).Errors)
}
