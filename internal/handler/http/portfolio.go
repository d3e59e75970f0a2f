package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

// getPortfolioData serves the landing page aggregate. ownerData is null
// until an administrator has been provisioned.
func (h *Handler) getPortfolioData(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.PortfolioService.GetPortfolioData(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Error retrieving portfolio data")
		return
	}

	respond(w, r, models.OK(data), http.StatusOK)
}

func (h *Handler) updateOwner(w http.ResponseWriter, r *http.Request) {
	var update models.OwnerUpdate
	if !h.decodeJSON(w, r, &update) {
		return
	}

	owner, err := h.services.PortfolioService.UpdateOwner(r.Context(), update)
	if err != nil {
		h.writeError(w, r, err, "Error updating owner data")
		return
	}

	respond(w, r, models.Response{Success: true, Message: "Owner data updated successfully", Data: owner}, http.StatusOK)
}

func (h *Handler) getTimeline(w http.ResponseWriter, r *http.Request) {
	events, err := h.services.TimelineService.ListEvents(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Error retrieving timeline")
		return
	}

	respond(w, r, models.OKList(events), http.StatusOK)
}

func (h *Handler) createTimelineEvent(w http.ResponseWriter, r *http.Request) {
	var event models.TimelineEvent
	if !h.decodeJSON(w, r, &event) {
		return
	}

	created, err := h.services.TimelineService.CreateEvent(r.Context(), event)
	if err != nil {
		h.writeError(w, r, err, "Error creating timeline event")
		return
	}

	respond(w, r, models.Response{Success: true, Message: "Timeline event created successfully", Data: created}, http.StatusCreated)
}

func (h *Handler) updateTimelineEvent(w http.ResponseWriter, r *http.Request) {
	var update models.TimelineUpdate
	if !h.decodeJSON(w, r, &update) {
		return
	}

	updated, err := h.services.TimelineService.UpdateEvent(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		h.writeError(w, r, err, "Error updating timeline event")
		return
	}

	respond(w, r, models.Response{Success: true, Message: "Timeline event updated successfully", Data: updated}, http.StatusOK)
}

func (h *Handler) deleteTimelineEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.services.TimelineService.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Error deleting timeline event")
		return
	}

	respond(w, r, models.OKMessage("Timeline deleted successfully"), http.StatusOK)
}
