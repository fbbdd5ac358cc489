// Package store persists the CLI session in a local sqlite database so a
// login survives restarts.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/folio/internal/client/migrations"
	"github.com/dmitrijs2005/folio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/dbx"
	"github.com/dmitrijs2005/folio/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	keyServerURL = "session.server_url"
	keyUserID    = "session.user_id"
	keyUserName  = "session.username"
	keyToken     = "session.token"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Saved is the persisted form of an api.Session, bound to the server it
// was issued by.
type Saved struct {
	ServerURL string
	UserID    string
	UserName  string
	Token     string
}

type SessionStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*SessionStore, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("session db migrations: %w", err)
	}
	return &SessionStore{db: db}, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func (s *SessionStore) Close() error {
	return s.db.Close()
}

// Save replaces the stored session atomically.
func (s *SessionStore) Save(ctx context.Context, v Saved) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, kv := range [][2]string{
			{keyServerURL, v.ServerURL},
			{keyUserID, v.UserID},
			{keyUserName, v.UserName},
			{keyToken, v.Token},
		} {
			if err := repo.Set(ctx, kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns the stored session; ok is false when none was saved.
func (s *SessionStore) Load(ctx context.Context) (v Saved, ok bool, err error) {
	repo := metadata.NewSQLiteRepository(s.db)

	fields := []struct {
		key string
		dst *string
	}{
		{keyServerURL, &v.ServerURL},
		{keyUserID, &v.UserID},
		{keyUserName, &v.UserName},
		{keyToken, &v.Token},
	}
	for _, f := range fields {
		*f.dst, err = repo.Get(ctx, f.key)
		if errors.Is(err, common.ErrNotFound) {
			return Saved{}, false, nil
		}
		if err != nil {
			return Saved{}, false, err
		}
	}
	return v, v.Token != "", nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, keyServerURL, keyUserID, keyUserName, keyToken)
}
