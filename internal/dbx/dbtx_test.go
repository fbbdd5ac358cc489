package dbx_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/folio/internal/client/migrations"
	"github.com/dmitrijs2005/folio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/dbx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// openSessionDB returns a migrated session database backed by a temp file.
func openSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.UpContext(context.Background(), db, "."))
	return db
}

func get(t *testing.T, db dbx.DBTX, key string) (string, error) {
	t.Helper()
	return metadata.NewSQLiteRepository(db).Get(context.Background(), key)
}

func TestWithTx_CommitsAllKeys(t *testing.T) {
	db := openSessionDB(t)

	err := dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for k, v := range map[string]string{"session.user_id": "u1", "session.username": "admin", "session.token": "t1"} {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		// writes are visible inside the transaction
		got, err := repo.Get(ctx, "session.token")
		require.NoError(t, err)
		assert.Equal(t, "t1", got)
		return nil
	})
	require.NoError(t, err)

	for k, want := range map[string]string{"session.user_id": "u1", "session.username": "admin", "session.token": "t1"} {
		got, err := get(t, db, k)
		require.NoError(t, err, k)
		assert.Equal(t, want, got, k)
	}
}

func TestWithTx_RollbackKeepsPreviousSession(t *testing.T) {
	db := openSessionDB(t)
	ctx := context.Background()
	require.NoError(t, metadata.NewSQLiteRepository(db).Set(ctx, "session.token", "old"))

	boom := errors.New("boom")
	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		require.NoError(t, repo.Set(ctx, "session.token", "new"))
		require.NoError(t, repo.Set(ctx, "session.username", "admin"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := get(t, db, "session.token")
	require.NoError(t, err)
	assert.Equal(t, "old", got)

	_, err = get(t, db, "session.username")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestWithTx_StatementErrorRollsBackEarlierWrites(t *testing.T) {
	db := openSessionDB(t)

	err := dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := metadata.NewSQLiteRepository(tx).Set(ctx, "session.user_id", "u1"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO metadata (key, value) VALUES ('session.token', NULL)`)
		return err
	})
	require.Error(t, err, "NOT NULL violation must surface")

	_, err = get(t, db, "session.user_id")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := openSessionDB(t)

	defer func() {
		r := recover()
		require.Equal(t, "kaput", r)
		_, err := get(t, db, "session.token")
		assert.ErrorIs(t, err, common.ErrNotFound)
	}()

	_ = dbx.WithTx(context.Background(), db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		require.NoError(t, metadata.NewSQLiteRepository(tx).Set(ctx, "session.token", "t"))
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := openSessionDB(t)
	require.NoError(t, db.Close())

	called := false
	err := dbx.WithTx(context.Background(), db, nil, func(context.Context, dbx.DBTX) error {
		called = true
		return nil
	})
	require.Error(t, err)
	assert.False(t, called)
}
