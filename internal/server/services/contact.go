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
)

type ContactPatch struct {
	IntroText   patch.Field[string]              `json:"introText,omitzero"`
	Email       patch.Field[string]              `json:"email,omitzero"`
	SocialLinks patch.Field[[]models.SocialLink] `json:"socialLinks,omitzero"`
}

type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ContactService {
	return &ContactService{db: db, repomanager: m, logger: logger.With("module", "contact")}
}

func (s *ContactService) GetPublic(ctx context.Context) (models.PublicContactInfo, error) {
	info, err := s.repomanager.Contact(s.db).Get(ctx)
	if err != nil {
		return models.PublicContactInfo{}, err
	}
	return info.Public(), nil
}

func (s *ContactService) GetAdmin(ctx context.Context) (*models.ContactInfo, error) {
	return s.repomanager.Contact(s.db).Get(ctx)
}

// Update merges p. Email is stored trimmed and lowercased; social links
// without a platform or url are dropped, and null clears the list.
func (s *ContactService) Update(ctx context.Context, p ContactPatch) (*models.ContactInfo, error) {
	repo := s.repomanager.Contact(s.db)

	info, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if p.IntroText.Set {
		info.IntroText = strings.TrimSpace(p.IntroText.Value)
	}
	if p.Email.Set {
		info.Email = p.Email.Value
	}
	info.Email = strings.ToLower(strings.TrimSpace(info.Email))
	if info.Email == "" {
		return nil, common.ValidationField("email", "Email is required")
	}

	if p.SocialLinks.Set {
		info.SocialLinks = cleanLinks(p.SocialLinks.Value)
	}

	return repo.Save(ctx, info)
}

func cleanLinks(in []models.SocialLink) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(in))
	for _, l := range in {
		l.Platform = strings.TrimSpace(l.Platform)
		l.URL = strings.TrimSpace(l.URL)
		l.Label = strings.TrimSpace(l.Label)
		if l.Platform == "" || l.URL == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
