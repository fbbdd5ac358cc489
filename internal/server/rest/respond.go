package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/folio/internal/common"
)

const msgServerError = "Server Error"

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Stack   string `json:"stack,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// statusFor maps the error taxonomy onto HTTP status codes and the message
// shown to the client.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest, common.PublicMessage(err, "Invalid request")
	case errors.Is(err, common.ErrConflict):
		return http.StatusBadRequest, common.PublicMessage(err, "Duplicate field value")
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, common.PublicMessage(err, "Resource not found")
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, common.PublicMessage(err, "Not authorized")
	case errors.Is(err, common.ErrDependency):
		return http.StatusInternalServerError, common.PublicMessage(err, msgServerError)
	default:
		return http.StatusInternalServerError, msgServerError
	}
}

func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}

	body := errorBody{Error: msg}
	if !s.production {
		body.Stack = fmt.Sprintf("%+v", err)
	}
	writeJSON(w, status, body)
}

// decodeJSON reads a request body into dst. An empty body leaves dst as is.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return common.Validation("Invalid request body")
	}
	return nil
}
