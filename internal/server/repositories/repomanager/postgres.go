// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/folio/internal/dbx"
	"github.com/dmitrijs2005/folio/internal/server/migrations"
	"github.com/dmitrijs2005/folio/internal/server/repositories/about"
	"github.com/dmitrijs2005/folio/internal/server/repositories/contact"
	"github.com/dmitrijs2005/folio/internal/server/repositories/experiences"
	"github.com/dmitrijs2005/folio/internal/server/repositories/projects"
	"github.com/dmitrijs2005/folio/internal/server/repositories/skills"
	"github.com/dmitrijs2005/folio/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) About(db dbx.DBTX) about.Repository {
	return about.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Contact(db dbx.DBTX) contact.Repository {
	return contact.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Experiences(db dbx.DBTX) experiences.Repository {
	return experiences.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Skills(db dbx.DBTX) skills.Repository {
	return skills.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Projects(db dbx.DBTX) projects.Repository {
	return projects.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
