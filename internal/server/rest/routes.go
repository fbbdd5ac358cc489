package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *HTTPServer) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)
	r.Use(s.cors)

	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.notFound)

	r.Get("/health", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.login)
		r.With(s.requireAuth).Post("/auth/register", s.register)

		r.Get("/about-info", s.getPublicAbout)
		r.Get("/contact-info", s.getPublicContact)
		r.Get("/experiences", s.listExperiences)
		r.Get("/skills", s.listPublicSkills)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.listProjects)
			r.Get("/{id}", s.getProject)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/", s.createProject)
				r.Put("/{id}", s.updateProject)
				r.Delete("/{id}", s.deleteProject)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/about-info/admin", s.getAdminAbout)
			r.Put("/about-info/admin", s.updateAbout)

			r.Get("/contact-info/admin", s.getAdminContact)
			r.Put("/contact-info/admin", s.updateContact)

			r.Route("/experiences", func(r chi.Router) {
				r.Get("/", s.listExperiences)
				r.Post("/", s.createExperience)
				r.Get("/{id}", s.getExperience)
				r.Put("/{id}", s.updateExperience)
				r.Delete("/{id}", s.deleteExperience)
			})

			r.Route("/skills", func(r chi.Router) {
				r.Get("/", s.listAdminSkills)
				r.Post("/", s.createSkill)
				r.Get("/{id}", s.getSkill)
				r.Put("/{id}", s.updateSkill)
				r.Delete("/{id}", s.deleteSkill)
			})

			r.Post("/uploads/screenshots", s.uploadScreenshot)
		})
	})

	return r
}

func (s *HTTPServer) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: "Not Found - " + r.URL.Path})
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
