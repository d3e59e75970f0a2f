package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.Health(r.Context())
	respond(w, r, models.Response{Success: true, Message: "Server is running", Data: status}, http.StatusOK)
}
