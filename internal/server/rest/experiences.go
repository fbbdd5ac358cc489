package rest

import (
	"net/http"

	"github.com/dmitrijs2005/folio/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type messageResponse struct {
	Message string `json:"message"`
}

func (s *HTTPServer) listExperiences(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Experiences.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) getExperience(w http.ResponseWriter, r *http.Request) {
	e, err := s.svc.Experiences.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *HTTPServer) createExperience(w http.ResponseWriter, r *http.Request) {
	var in services.ExperienceInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	e, err := s.svc.Experiences.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *HTTPServer) updateExperience(w http.ResponseWriter, r *http.Request) {
	var in services.ExperienceInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	e, err := s.svc.Experiences.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *HTTPServer) deleteExperience(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Experiences.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Experience removed"})
}
