package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-portfolio/internal/service"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip_Response(t *testing.T) {
	h := newTestHandler(t, nil)
	router := h.Init()

	t.Run("compressed when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")

		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		plain, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Contains(t, string(plain), `"message":"Server is running"`)
	})

	t.Run("plain otherwise", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Contains(t, rec.Body.String(), `"success":true`)
	})

	t.Run("no body responses are not compressed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/health", nil)
		req.Header.Set("Origin", "https://portfolio.dev")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	})
}

func TestWithGZip_Request(t *testing.T) {
	var got models.Contact
	h := newTestHandler(t, &service.Services{
		ContactService: &mockContactService{
			submitContactFn: func(_ context.Context, c models.Contact) (models.Contact, error) {
				got = c
				return c, nil
			},
		},
	})
	router := h.Init()

	t.Run("gzip body is inflated", func(t *testing.T) {
		body := gzipBytes(t, `{"name":"Ann","email":"ann@example.com","message":"compressed hello"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact/submit", bytes.NewReader(body))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "Ann", got.Name)
		assert.Equal(t, "compressed hello", got.Message)
	})

	t.Run("corrupt gzip body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact/submit", bytes.NewReader([]byte("not gzip at all")))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid JSON was passed", decodeEnvelope(t, rec).Message)
	})
}
