package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

const corsMaxAge = 10 * 60

var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsAllowedHeaders = []string{"Authorization", "Content-Type", "Content-Encoding", traceIDHeader}
	corsExposedHeaders = []string{"Authorization", traceIDHeader}
)

// corsPolicy is the set of browser origins allowed to call the API with
// credentials. An empty list or "*" allows every origin.
type corsPolicy struct {
	allowAll bool
	origins  []string
}

func newCORSPolicy(origins []string) corsPolicy {
	if len(origins) == 0 || slices.Contains(origins, "*") {
		return corsPolicy{allowAll: true}
	}
	return corsPolicy{origins: origins}
}

func (p corsPolicy) allows(origin string) bool {
	return p.allowAll || slices.Contains(p.origins, origin)
}

func (p corsPolicy) allowOrigin(_ *http.Request, origin string) bool {
	return p.allows(origin)
}

// withCORS sets the CORS response headers through go-chi/cors. Requests
// without an Origin header (same origin, curl, server to server) pass
// untouched, a disallowed origin gets 403 and a preflight ends with 204.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	headers := cors.Handler(cors.Options{
		AllowOriginFunc:    h.cors.allowOrigin,
		AllowedMethods:     corsAllowedMethods,
		AllowedHeaders:     corsAllowedHeaders,
		ExposedHeaders:     corsExposedHeaders,
		AllowCredentials:   true,
		MaxAge:             corsMaxAge,
		OptionsPassthrough: true,
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !h.cors.allows(origin) {
			h.writeError(w, r, ErrOriginNotAllowed, "Not allowed by CORS")
			return
		}

		headers(endPreflight(next)).ServeHTTP(w, r)
	})
}

// endPreflight answers a preflight request with 204 once go-chi/cors has
// written its headers.
func endPreflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
