package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/folio/internal/dbx"
	"github.com/dmitrijs2005/folio/internal/server/repositories/about"
	"github.com/dmitrijs2005/folio/internal/server/repositories/contact"
	"github.com/dmitrijs2005/folio/internal/server/repositories/experiences"
	"github.com/dmitrijs2005/folio/internal/server/repositories/memory"
	"github.com/dmitrijs2005/folio/internal/server/repositories/projects"
	"github.com/dmitrijs2005/folio/internal/server/repositories/skills"
	"github.com/dmitrijs2005/folio/internal/server/repositories/users"
)

// InMemoryRepositoryManager hands out the same process-local repositories
// regardless of the connection passed in. It is selected with the "memory"
// DSN and is meant for demos and tests.
type InMemoryRepositoryManager struct {
	users       *memory.Users
	about       *memory.About
	contact     *memory.Contact
	experiences *memory.Experiences
	skills      *memory.Skills
	projects    *memory.Projects
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.users }

func (m *InMemoryRepositoryManager) About(dbx.DBTX) about.Repository { return m.about }

func (m *InMemoryRepositoryManager) Contact(dbx.DBTX) contact.Repository { return m.contact }

func (m *InMemoryRepositoryManager) Experiences(dbx.DBTX) experiences.Repository {
	return m.experiences
}

func (m *InMemoryRepositoryManager) Skills(dbx.DBTX) skills.Repository { return m.skills }

func (m *InMemoryRepositoryManager) Projects(dbx.DBTX) projects.Repository { return m.projects }

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:       memory.NewUsers(),
		about:       memory.NewAbout(),
		contact:     memory.NewContact(),
		experiences: memory.NewExperiences(),
		skills:      memory.NewSkills(),
		projects:    memory.NewProjects(),
	}
}
