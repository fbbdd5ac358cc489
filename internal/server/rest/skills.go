package rest

import (
	"net/http"

	"github.com/dmitrijs2005/folio/internal/server/services"
	"github.com/go-chi/chi/v5"
)

func (s *HTTPServer) listPublicSkills(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Skills.ListPublic(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) listAdminSkills(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Skills.ListAdmin(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) getSkill(w http.ResponseWriter, r *http.Request) {
	sk, err := s.svc.Skills.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sk)
}

func (s *HTTPServer) createSkill(w http.ResponseWriter, r *http.Request) {
	var in services.SkillInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	sk, err := s.svc.Skills.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sk)
}

func (s *HTTPServer) updateSkill(w http.ResponseWriter, r *http.Request) {
	var in services.SkillInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	sk, err := s.svc.Skills.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sk)
}

func (s *HTTPServer) deleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Skills.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Skill removed"})
}
