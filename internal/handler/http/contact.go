package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

// contactFilter reads the listing query: read=true|false, page and limit.
// Malformed values fall back to the defaults.
func contactFilter(r *http.Request) models.ContactFilter {
	query := r.URL.Query()

	var filter models.ContactFilter
	if read, err := strconv.ParseBool(query.Get("read")); err == nil {
		filter.Read = &read
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = limit
	}

	return filter
}

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if !h.decodeJSON(w, r, &contact) {
		return
	}

	created, err := h.services.ContactService.SubmitContact(r.Context(), contact)
	if err != nil {
		h.writeError(w, r, err, "Error sending message")
		return
	}

	respond(w, r, models.Response{Success: true, Message: "Your message has been sent successfully", Data: created}, http.StatusCreated)
}

func (h *Handler) getContacts(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.ContactService.ListContacts(r.Context(), contactFilter(r))
	if err != nil {
		h.writeError(w, r, err, "Error retrieving contacts")
		return
	}

	resp := models.OKList(page.Contacts)
	totalPages := page.TotalPages()
	currentPage := page.Page
	resp.TotalPages = &totalPages
	resp.CurrentPage = &currentPage

	respond(w, r, resp, http.StatusOK)
}

// getContact returns one message and marks it read.
func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.services.ContactService.OpenContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Error retrieving contact")
		return
	}

	respond(w, r, models.OK(contact), http.StatusOK)
}

// setContactRead sets the read flag to the given value; it does not toggle.
func (h *Handler) setContactRead(w http.ResponseWriter, r *http.Request) {
	var status models.ReadStatus
	if !h.decodeJSON(w, r, &status) {
		return
	}
	read := status.Read != nil && *status.Read

	contact, err := h.services.ContactService.SetRead(r.Context(), chi.URLParam(r, "id"), read)
	if err != nil {
		h.writeError(w, r, err, "Error updating contact")
		return
	}

	message := "Contact marked as unread"
	if contact.Read {
		message = "Contact marked as read"
	}

	respond(w, r, models.Response{Success: true, Message: message, Data: contact}, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ContactService.DeleteContact(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Error deleting contact")
		return
	}

	respond(w, r, models.OKMessage("Contact deleted successfully"), http.StatusOK)
}
