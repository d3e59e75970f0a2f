package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
)

// projectFilter reads the listing query. Malformed values are ignored.
func projectFilter(r *http.Request) models.ProjectFilter {
	query := r.URL.Query()

	filter := models.ProjectFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}
	if featured, err := strconv.ParseBool(query.Get("featured")); err == nil {
		filter.FeaturedOnly = featured
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}

	return filter
}

func (h *Handler) getProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context(), projectFilter(r))
	if err != nil {
		h.writeError(w, r, err, "Error retrieving projects")
		return
	}

	respond(w, r, models.OKList(projects), http.StatusOK)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.ProjectService.ListCategories(r.Context())
	if err != nil {
		h.writeError(w, r, err, "Error retrieving categories")
		return
	}

	respond(w, r, models.OKList(categories), http.StatusOK)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.services.ProjectService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "Error retrieving project")
		return
	}

	respond(w, r, models.OK(project), http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if !h.decodeJSON(w, r, &project) {
		return
	}

	created, err := h.services.ProjectService.CreateProject(r.Context(), project)
	if err != nil {
		h.writeError(w, r, err, "Error creating project")
		return
	}

	respond(w, r, models.Response{Success: true, Message: "Project created successfully", Data: created}, http.StatusCreated)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	var update models.ProjectUpdate
	if !h.decodeJSON(w, r, &update) {
		return
	}

	updated, err := h.services.ProjectService.UpdateProject(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		h.writeError(w, r, err, "Error updating project")
		return
	}

	respond(w, r, models.Response{Success: true, Message: "Project updated successfully", Data: updated}, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ProjectService.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err, "Error deleting project")
		return
	}

	respond(w, r, models.OKMessage("Project deleted successfully"), http.StatusOK)
}
