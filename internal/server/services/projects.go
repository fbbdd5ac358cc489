package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/logging"
	"github.com/dmitrijs2005/folio/internal/patch"
	"github.com/dmitrijs2005/folio/internal/server/models"
	"github.com/dmitrijs2005/folio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/folio/internal/server/storage"
)

const msgProjectNotFound = "Project not found"

type ProjectInput struct {
	Title        patch.Field[string]   `json:"title,omitzero"`
	Description  patch.Field[string]   `json:"description,omitzero"`
	Technologies patch.Field[[]string] `json:"technologies,omitzero"`
	Screenshots  patch.Field[[]string] `json:"screenshots,omitzero"`
	LiveLink     patch.Field[string]   `json:"liveLink,omitzero"`
	GithubLink   patch.Field[string]   `json:"githubLink,omitzero"`
	DisplayOrder patch.Field[int]      `json:"displayOrder,omitzero"`
}

type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.Store
	logger      logging.Logger
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, store storage.Store, logger logging.Logger) *ProjectService {
	return &ProjectService{db: db, repomanager: m, store: store, logger: logger.With("module", "projects")}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.repomanager.Projects(s.db).List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*models.Project, error) {
	p, err := s.repomanager.Projects(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, msgProjectNotFound)
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*models.Project, error) {
	p := &models.Project{Screenshots: []string{}}
	in.apply(p)

	if err := validateProject(p); err != nil {
		return nil, err
	}

	return s.repomanager.Projects(s.db).Create(ctx, p)
}

// Update merges in and removes the stored objects of screenshots that are no
// longer referenced. Removal failures are logged and never block the update.
func (s *ProjectService) Update(ctx context.Context, id string, in ProjectInput) (*models.Project, error) {
	repo := s.repomanager.Projects(s.db)

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, msgProjectNotFound)
	}

	previous := p.Screenshots
	in.apply(p)

	if err := validateProject(p); err != nil {
		return nil, err
	}

	var removed []string
	for _, url := range previous {
		if !slices.Contains(p.Screenshots, url) {
			removed = append(removed, url)
		}
	}
	s.deleteScreenshots(ctx, removed)

	updated, err := repo.Update(ctx, p)
	if err != nil {
		return nil, mapNotFound(err, msgProjectNotFound)
	}
	return updated, nil
}

// Delete removes the project, then its screenshots on a best-effort basis.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Projects(s.db)

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return mapNotFound(err, msgProjectNotFound)
	}

	if err := repo.Delete(ctx, id); err != nil {
		return mapNotFound(err, msgProjectNotFound)
	}

	s.deleteScreenshots(ctx, p.Screenshots)
	return nil
}

// UploadScreenshot stores an image for later use in a project's screenshots.
func (s *ProjectService) UploadScreenshot(ctx context.Context, f storage.File) (models.RemoteAsset, error) {
	asset, err := s.store.Upload(ctx, f, models.UploadScreenshot)
	if err != nil {
		return models.RemoteAsset{}, common.Dependency("Screenshot upload failed", err)
	}
	return asset, nil
}

func (s *ProjectService) deleteScreenshots(ctx context.Context, urls []string) {
	for _, url := range urls {
		remoteID, ok := s.store.RemoteIDFromURL(url)
		if !ok {
			s.logger.Debug(ctx, "skipping foreign screenshot url", "url", url)
			continue
		}
		if err := s.store.Delete(ctx, remoteID); err != nil {
			s.logger.Warn(ctx, "delete screenshot failed", "remote_id", remoteID, "error", err)
		}
	}
}

func (in ProjectInput) apply(p *models.Project) {
	if in.Title.Set {
		p.Title = strings.TrimSpace(in.Title.Value)
	}
	in.Description.Apply(&p.Description)
	if in.Technologies.Set {
		p.Technologies = cleanStrings(in.Technologies.Value)
	}
	if in.Screenshots.Set {
		p.Screenshots = cleanStrings(in.Screenshots.Value)
	}
	if in.LiveLink.Set {
		p.LiveLink = strings.TrimSpace(in.LiveLink.Value)
	}
	if in.GithubLink.Set {
		p.GithubLink = strings.TrimSpace(in.GithubLink.Value)
	}
	in.DisplayOrder.Apply(&p.DisplayOrder)
}

func validateProject(p *models.Project) error {
	switch {
	case p.Title == "":
		return common.ValidationField("title", "Project title is required")
	case strings.TrimSpace(p.Description) == "":
		return common.ValidationField("description", "Project description is required")
	case len(p.Technologies) == 0:
		return common.ValidationField("technologies", "At least one technology must be listed")
	case len(p.Screenshots) > models.MaxScreenshots:
		return common.ValidationField("screenshots",
			fmt.Sprintf("screenshots exceeds the limit of %d screenshots", models.MaxScreenshots))
	}
	return nil
}
