// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-portfolio/models"
)

// routeNotFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router, so an unsupported method on a known path looks the
// same as an unknown path.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	respond(w, r, models.Fail(fmt.Sprintf("Route not found: %s", r.URL.Path), nil), http.StatusNotFound)
}
