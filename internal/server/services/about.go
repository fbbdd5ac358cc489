package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/logging"
	"github.com/dmitrijs2005/folio/internal/patch"
	"github.com/dmitrijs2005/folio/internal/server/models"
	"github.com/dmitrijs2005/folio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/folio/internal/server/storage"
)

type AboutPatch struct {
	Greeting       patch.Field[string]   `json:"greeting,omitzero"`
	Name           patch.Field[string]   `json:"name,omitzero"`
	TaglineStrings patch.Field[[]string] `json:"taglineStrings,omitzero"`
	Bio            patch.Field[string]   `json:"bio,omitzero"`
}

// AboutUploads carries the optional replacement files of an About update.
type AboutUploads struct {
	ProfileImage *storage.File
	Resume       *storage.File
}

type AboutService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       storage.Store
	logger      logging.Logger
}

func NewAboutService(db *sql.DB, m repomanager.RepositoryManager, store storage.Store, logger logging.Logger) *AboutService {
	return &AboutService{db: db, repomanager: m, store: store, logger: logger.With("module", "about")}
}

func (s *AboutService) GetPublic(ctx context.Context) (models.PublicAboutInfo, error) {
	info, err := s.repomanager.About(s.db).Get(ctx)
	if err != nil {
		return models.PublicAboutInfo{}, err
	}
	return info.Public(), nil
}

func (s *AboutService) GetAdmin(ctx context.Context) (*models.AboutInfo, error) {
	return s.repomanager.About(s.db).Get(ctx)
}

// Update merges p into the document and swaps uploaded files. New files are
// stored first and the document saved next; superseded files are removed
// only after a successful save. A failed save removes the new files again.
func (s *AboutService) Update(ctx context.Context, p AboutPatch, up AboutUploads) (*models.AboutInfo, error) {
	repo := s.repomanager.About(s.db)

	info, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if p.Greeting.Set {
		info.Greeting = strings.TrimSpace(p.Greeting.Value)
	}
	if p.Name.Set {
		info.Name = strings.TrimSpace(p.Name.Value)
	}
	if p.Bio.Set {
		info.Bio = strings.TrimSpace(p.Bio.Value)
	}
	if p.TaglineStrings.Set {
		info.TaglineStrings = cleanStrings(p.TaglineStrings.Value)
	}

	if info.Name == "" {
		return nil, common.ValidationField("name", "Name is required")
	}

	var (
		added    []string
		obsolete []string
	)

	if up.ProfileImage != nil {
		asset, err := s.store.Upload(ctx, *up.ProfileImage, models.UploadProfileImage)
		if err != nil {
			return nil, common.Dependency("Profile image upload failed", err)
		}
		added = append(added, asset.RemoteID)
		obsolete = append(obsolete, info.ProfileImagePublicID)
		info.ProfileImageURL, info.ProfileImagePublicID = asset.URL, asset.RemoteID
	}

	if up.Resume != nil {
		asset, err := s.store.Upload(ctx, *up.Resume, models.UploadResume)
		if err != nil {
			s.deleteQuietly(ctx, added, "discard upload")
			return nil, common.Dependency("Resume upload failed", err)
		}
		added = append(added, asset.RemoteID)
		obsolete = append(obsolete, info.ResumePublicID)
		info.ResumeURL, info.ResumePublicID = asset.URL, asset.RemoteID
	}

	saved, err := repo.Save(ctx, info)
	if err != nil {
		s.deleteQuietly(ctx, added, "discard upload after failed save")
		return nil, err
	}

	s.deleteQuietly(ctx, obsolete, "delete replaced file")
	return saved, nil
}

// deleteQuietly removes remote objects, logging failures only.
func (s *AboutService) deleteQuietly(ctx context.Context, ids []string, action string) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if err := s.store.Delete(ctx, id); err != nil {
			s.logger.Warn(ctx, action+" failed", "remote_id", id, "error", err)
		}
	}
}
