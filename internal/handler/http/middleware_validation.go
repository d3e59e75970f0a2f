// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies read by the validation middleware.
const maxBodyBytes = 1 << 20

// validate runs the named rule sets against the request before the handler.
//
// Path parameters are always available to the rules. Unless the only rule set
// is the id one, the body is decoded into a generic JSON object, validated,
// and re-encoded for the handler with the string values the rules trimmed.
// Every rule runs; failures end the request with a 400 envelope.
//
// It must be attached with chi's With so that path parameters are resolved.
func (h *Handler) validate(ruleSets ...string) func(http.Handler) http.Handler {
	readsBody := slices.ContainsFunc(ruleSets, func(name string) bool {
		return name != validators.RuleSetID
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			in := validators.Input{Params: urlParams(r)}

			if readsBody {
				body, err := decodeObject(w, r)
				if err != nil {
					h.writeError(w, r, err, "Invalid JSON was passed")
					return
				}
				in.Body = body
			}

			if err := h.validator.Validate(r.Context(), &in, ruleSets...); err != nil {
				h.writeError(w, r, err, "Error validating request")
				return
			}

			if readsBody {
				data, err := json.Marshal(in.Body)
				if err != nil {
					h.writeError(w, r, err, "Error validating request")
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(data))
				r.ContentLength = int64(len(data))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// decodeObject reads the body as a JSON object. An empty body is an empty
// object, so that required fields are reported individually.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	body := map[string]any{}
	if r.Body == nil || r.Body == http.NoBody {
		return body, nil
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return body, nil
	}

	if err = json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if body == nil {
		return map[string]any{}, nil
	}

	return body, nil
}

func urlParams(r *http.Request) map[string]string {
	params := map[string]string{}

	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}

	for i, key := range rctx.URLParams.Keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}

	return params
}
