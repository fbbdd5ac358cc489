package rest

import (
	"net/http"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/server/models"
	"github.com/dmitrijs2005/folio/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type projectListResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []models.Project `json:"data"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type uploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	RemoteID string `json:"remoteId"`
}

func (s *HTTPServer) listProjects(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Projects.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.Project{}
	}
	writeJSON(w, http.StatusOK, projectListResponse{Success: true, Count: len(list), Data: list})
}

func (s *HTTPServer) getProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: p})
}

func (s *HTTPServer) createProject(w http.ResponseWriter, r *http.Request) {
	var in services.ProjectInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := s.svc.Projects.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dataResponse{Success: true, Data: p})
}

func (s *HTTPServer) updateProject(w http.ResponseWriter, r *http.Request) {
	var in services.ProjectInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}

	p, err := s.svc.Projects.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: p})
}

func (s *HTTPServer) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: struct{}{}})
}

func (s *HTTPServer) uploadScreenshot(w http.ResponseWriter, r *http.Request) {
	form, err := s.parseMultipart(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer form.RemoveAll()

	f, err := openPart(form, "file", isImage)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if f == nil {
		s.writeError(w, r, common.ValidationField("file", "No file uploaded"))
		return
	}
	defer closeFile(f)

	asset, err := s.svc.Projects.UploadScreenshot(r.Context(), *f)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{Success: true, URL: asset.URL, RemoteID: asset.RemoteID})
}
