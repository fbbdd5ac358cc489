package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *SessionStore {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoad_Empty(t *testing.T) {
	s := openTemp(t)

	_, ok, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveLoadClear(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	want := Saved{ServerURL: "http://127.0.0.1:5001", UserID: "u1", UserName: "admin", Token: "tok"}
	require.NoError(t, s.Save(ctx, want))

	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	want.Token = "tok2"
	require.NoError(t, s.Save(ctx, want))
	got, _, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok2", got.Token)

	require.NoError(t, s.Clear(ctx))
	_, ok, err = s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, Saved{ServerURL: "u", UserID: "1", UserName: "n", Token: "t"}))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t", got.Token)
}

func TestOpen_MigrationError(t *testing.T) {
	orig := gooseUpContext
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "x.db"))
	assert.ErrorContains(t, err, "boom")
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.db")

	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
