package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-portfolio/models"
)

func TestWriteJSON_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, models.OKMessage("API is running"), http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if want := `{"success":true,"message":"API is running"}`; w.Body.String() != want {
		t.Errorf("expected body %s, got %s", want, w.Body.String())
	}
}

func TestWriteJSON_ListEnvelopeHasCount(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.OKList([]string(nil)), http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if want := `{"success":true,"data":[],"count":0}`; w.Body.String() != want {
		t.Errorf("expected body %s, got %s", want, w.Body.String())
	}
}

func TestWriteJSON_FailureEnvelope(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.Fail("Validation failed", map[string]string{"title": "Title must be between 3 and 100 characters"}), http.StatusBadRequest)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	want := `{"success":false,"message":"Validation failed","errors":{"title":"Title must be between 3 and 100 characters"}}`
	if w.Body.String() != want {
		t.Errorf("expected body %s, got %s", want, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestReadJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.com","password":"x"}`))

		var c models.Credentials
		if err := ReadJSON(r, &c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Email != "a@b.com" || c.Password != "x" {
			t.Errorf("unexpected decoded value %+v", c)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)

		var c models.Credentials
		if err := ReadJSON(r, &c); !errors.Is(err, ErrEmptyBody) {
			t.Errorf("expected ErrEmptyBody, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))

		var c models.Credentials
		if err := ReadJSON(r, &c); err == nil {
			t.Error("expected decode error, got nil")
		}
	})
}
