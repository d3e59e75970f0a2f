package http

import (
	"github.com/MKhiriev/go-portfolio/internal/validators"
	"github.com/MKhiriev/go-portfolio/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is the path every route is mounted under.
const APIPrefix = "/api/v1"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	if h.cfg.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(h.withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	admin := chi.Chain(h.auth, h.authorize(models.RoleAdmin))
	id := h.validate(validators.RuleSetID)

	router.Route(APIPrefix, func(r chi.Router) {
		r.Get("/health", h.health)

		r.Route("/auth", func(r chi.Router) {
			r.With(h.rateLimited, h.validate(validators.RuleSetLogin)).Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/me", h.me)
				r.Post("/logout", h.logout)
			})
		})

		r.Route("/project", func(r chi.Router) {
			r.Get("/getall", h.getProjects)
			r.Get("/categories/getall", h.getCategories)
			r.With(id).Get("/{id}", h.getProject)

			r.Group(func(r chi.Router) {
				r.Use(admin...)
				r.With(h.validate(validators.RuleSetProject)).Post("/create", h.createProject)
				r.With(h.validate(validators.RuleSetID, validators.RuleSetProject)).Put("/{id}/update", h.updateProject)
				r.With(id).Delete("/{id}/delete", h.deleteProject)
			})
		})

		r.Route("/skill", func(r chi.Router) {
			r.Get("/getall", h.getSkills)
			r.With(id).Get("/{id}", h.getSkill)

			r.Group(func(r chi.Router) {
				r.Use(admin...)
				r.With(h.validate(validators.RuleSetSkill)).Post("/create", h.createSkill)
				r.With(h.validate(validators.RuleSetID, validators.RuleSetSkill)).Put("/{id}/update", h.updateSkill)
				r.With(id).Delete("/{id}/delete", h.deleteSkill)
			})
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/getdata", h.getPortfolioData)
			r.Get("/timeline", h.getTimeline)

			r.Group(func(r chi.Router) {
				r.Use(admin...)
				r.With(h.validate(validators.RuleSetOwnerUpdate)).Put("/owner/update", h.updateOwner)
				r.With(h.validate(validators.RuleSetTimelineCreate)).Post("/timeline/create", h.createTimelineEvent)
				r.With(h.validate(validators.RuleSetID, validators.RuleSetTimelineUpdate)).Put("/timeline/{id}/update", h.updateTimelineEvent)
				r.With(id).Delete("/timeline/{id}/delete", h.deleteTimelineEvent)
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.With(h.rateLimited, h.validate(validators.RuleSetContact)).Post("/submit", h.submitContact)

			r.Group(func(r chi.Router) {
				r.Use(admin...)
				r.Get("/getall", h.getContacts)
				r.With(id).Get("/{id}", h.getContact)
				r.With(h.validate(validators.RuleSetID, validators.RuleSetContactRead)).Put("/{id}/read", h.setContactRead)
				r.With(id).Delete("/{id}/delete", h.deleteContact)
			})
		})
	})

	return router
}
