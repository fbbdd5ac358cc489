package rest

import (
	"net/http"

	"github.com/dmitrijs2005/folio/internal/server/services"
)

func (s *HTTPServer) getPublicContact(w http.ResponseWriter, r *http.Request) {
	info, err := s.svc.Contact.GetPublic(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *HTTPServer) getAdminContact(w http.ResponseWriter, r *http.Request) {
	info, err := s.svc.Contact.GetAdmin(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *HTTPServer) updateContact(w http.ResponseWriter, r *http.Request) {
	var p services.ContactPatch
	if err := decodeJSON(r, &p); err != nil {
		s.writeError(w, r, err)
		return
	}

	info, err := s.svc.Contact.Update(r.Context(), p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}
