// Package api is the Go client of the folio HTTP API. A Session holds the
// credentials of the logged-in admin; BearerTransport attaches them to every
// outgoing request when present.
package api

import (
	"net/http"
	"sync"

	"github.com/dmitrijs2005/folio/internal/common"
)

// Session is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	userID   string
	userName string
	token    string
}

func (s *Session) Set(userID, userName, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID, s.userName, s.token = userID, userName, token
}

func (s *Session) Clear() {
	s.Set("", "", "")
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) UserName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userName
}

func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// BearerTransport adds "Authorization: Bearer <token>" when the session
// holds a token and leaves the request untouched otherwise.
type BearerTransport struct {
	Base    http.RoundTripper
	Session *Session
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if t.Session == nil {
		return base.RoundTrip(req)
	}
	token := t.Session.Token()
	if token == "" || req.Header.Get(common.AuthorizationHeaderName) != "" {
		return base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	return base.RoundTrip(r)
}
