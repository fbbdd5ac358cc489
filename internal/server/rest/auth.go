package rest

import (
	"net/http"

	"github.com/dmitrijs2005/folio/internal/server/services"
)

type credentials struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	UserName string `json:"username"`
	Token    string `json:"token"`
}

func newSessionResponse(s *services.Session) sessionResponse {
	return sessionResponse{Success: true, ID: s.ID, UserName: s.UserName, Token: s.Token}
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	session, err := s.svc.Users.Login(r.Context(), in.UserName, in.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user logged in", "user_id", session.ID)
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	session, err := s.svc.Users.Register(r.Context(), in.UserName, in.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	by, _ := userIDFromContext(r.Context())
	s.logger.Info(r.Context(), "user registered", "user_id", session.ID, "by", by)
	writeJSON(w, http.StatusCreated, newSessionResponse(session))
}
