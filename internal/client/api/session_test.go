package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	var s Session
	assert.False(t, s.LoggedIn())

	s.Set("u1", "admin", "tok")
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "u1", s.UserID())
	assert.Equal(t, "admin", s.UserName())

	s.Clear()
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.UserName())
}

func TestBearerTransport(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	session := &Session{}
	hc := &http.Client{Transport: &BearerTransport{Session: session}}

	resp, err := hc.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	session.Set("u1", "admin", "tok")
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err = hc.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, req.Header.Get("Authorization"), "caller's request is not mutated")

	assert.Equal(t, []string{"", "Bearer tok"}, got)
}
