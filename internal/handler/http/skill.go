package http

import (
	"net/http"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.services.SkillService.ListSkills(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Error retrieving skills")
		return
	}

	respond(w, r, models.OKList(skills), http.StatusOK)
}

func (h *Handler) getSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := h.services.SkillService.GetSkill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Error retrieving skill")
		return
	}

	respond(w, r, models.OK(skill), http.StatusOK)
}

func (h *Handler) createSkill(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if !h.decodeJSON(w, r, &skill) {
		return
	}

	created, err := h.services.SkillService.CreateSkill(r.Context(), skill)
	if err != nil {
		h.writeError(w, r, err, "Error creating skill")
		return
	}

	respond(w, r, models.Response{Success: true, Message: "Skill created successfully", Data: created}, http.StatusCreated)
}

func (h *Handler) updateSkill(w http.ResponseWriter, r *http.Request) {
	var update models.SkillUpdate
	if !h.decodeJSON(w, r, &update) {
		return
	}

	updated, err := h.services.SkillService.UpdateSkill(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		h.writeError(w, r, err, "Error updating skill")
		return
	}

	respond(w, r, models.Response{Success: true, Message: "Skill updated successfully", Data: updated}, http.StatusOK)
}

func (h *Handler) deleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SkillService.DeleteSkill(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Error deleting skill")
		return
	}

	respond(w, r, models.OKMessage("Skill deleted successfully"), http.StatusOK)
}
