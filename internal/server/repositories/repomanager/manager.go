package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/folio/internal/dbx"
	"github.com/dmitrijs2005/folio/internal/server/repositories/about"
	"github.com/dmitrijs2005/folio/internal/server/repositories/contact"
	"github.com/dmitrijs2005/folio/internal/server/repositories/experiences"
	"github.com/dmitrijs2005/folio/internal/server/repositories/projects"
	"github.com/dmitrijs2005/folio/internal/server/repositories/skills"
	"github.com/dmitrijs2005/folio/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	About(db dbx.DBTX) about.Repository
	Contact(db dbx.DBTX) contact.Repository
	Experiences(db dbx.DBTX) experiences.Repository
	Skills(db dbx.DBTX) skills.Repository
	Projects(db dbx.DBTX) projects.Repository
}
