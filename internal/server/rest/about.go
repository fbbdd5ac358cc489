package rest

import (
	"encoding/json"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/patch"
	"github.com/dmitrijs2005/folio/internal/server/services"
	"github.com/dmitrijs2005/folio/internal/server/storage"
)

const (
	partProfileImage = "profileImage"
	partResume       = "resumeFile"

	msgInvalidFileType = "Invalid file type! Please upload an image (jpeg, png, gif) or a document (pdf, doc, docx)."
	msgFileTooLarge    = "File too large"
)

var resumeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

func (s *HTTPServer) getPublicAbout(w http.ResponseWriter, r *http.Request) {
	info, err := s.svc.About.GetPublic(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *HTTPServer) getAdminAbout(w http.ResponseWriter, r *http.Request) {
	info, err := s.svc.About.GetAdmin(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// updateAbout accepts multipart/form-data with optional profileImage and
// resumeFile parts, or a plain JSON patch.
func (s *HTTPServer) updateAbout(w http.ResponseWriter, r *http.Request) {
	var (
		p  services.AboutPatch
		up services.AboutUploads
	)

	if isMultipart(r) {
		form, err := s.parseMultipart(w, r)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		defer form.RemoveAll()

		p, err = aboutPatchFromForm(form)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		if up.ProfileImage, err = openPart(form, partProfileImage, isImage); err != nil {
			s.writeError(w, r, err)
			return
		}
		defer closeFile(up.ProfileImage)

		if up.Resume, err = openPart(form, partResume, isResume); err != nil {
			s.writeError(w, r, err)
			return
		}
		defer closeFile(up.Resume)
	} else if err := decodeJSON(r, &p); err != nil {
		s.writeError(w, r, err)
		return
	}

	info, err := s.svc.About.Update(r.Context(), p, up)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func isMultipart(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "multipart/form-data"
}

func (s *HTTPServer) parseMultipart(w http.ResponseWriter, r *http.Request) (*multipart.Form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, common.Validation(msgFileTooLarge)
		}
		return nil, common.Validation("Invalid multipart body")
	}
	return r.MultipartForm, nil
}

func aboutPatchFromForm(form *multipart.Form) (services.AboutPatch, error) {
	var p services.AboutPatch
	p.Greeting = formField(form, "greeting")
	p.Name = formField(form, "name")
	p.Bio = formField(form, "bio")

	values, ok := form.Value["taglineStrings"]
	if !ok {
		values, ok = form.Value["taglineStrings[]"]
	}
	if ok {
		taglines, err := parseTaglines(values)
		if err != nil {
			return p, err
		}
		p.TaglineStrings = patch.Of(taglines)
	}
	return p, nil
}

func formField(form *multipart.Form, key string) patch.Field[string] {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return patch.Field[string]{}
	}
	return patch.Of(values[0])
}

// parseTaglines accepts repeated form values or a single JSON array string.
func parseTaglines(values []string) ([]string, error) {
	if len(values) == 1 && strings.HasPrefix(strings.TrimSpace(values[0]), "[") {
		var out []string
		if err := json.Unmarshal([]byte(values[0]), &out); err != nil {
			return nil, common.ValidationField("taglineStrings", "taglineStrings must be a JSON array of strings")
		}
		return out, nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

func isImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

func isResume(contentType string) bool {
	return slices.Contains(resumeTypes, contentType)
}

// openPart returns the named file part, or nil when the part is absent.
func openPart(form *multipart.Form, name string, allowed func(string) bool) (*storage.File, error) {
	headers := form.File[name]
	if len(headers) == 0 {
		return nil, nil
	}
	fh := headers[0]

	contentType := fh.Header.Get("Content-Type")
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mt
	}
	if !allowed(contentType) {
		return nil, common.ValidationField(name, msgInvalidFileType)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &storage.File{Name: fh.Filename, ContentType: contentType, Size: fh.Size, Body: f}, nil
}

func closeFile(f *storage.File) {
	if f == nil {
		return
	}
	if c, ok := f.Body.(interface{ Close() error }); ok {
		_ = c.Close()
	}
}
