package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/logging"
	"github.com/dmitrijs2005/folio/internal/patch"
	"github.com/dmitrijs2005/folio/internal/server/models"
	"github.com/dmitrijs2005/folio/internal/server/repositories/repomanager"
)

const (
	msgSkillNotFound = "Skill not found"

	defaultSkillCategory = "General"
)

type SkillInput struct {
	Name     patch.Field[string] `json:"name,omitzero"`
	Level    patch.Field[string] `json:"level,omitzero"`
	Category patch.Field[string] `json:"category,omitzero"`
	IconURL  patch.Field[string] `json:"iconUrl,omitzero"`
	Order    patch.Field[int]    `json:"order,omitzero"`
	IsPublic patch.Field[bool]   `json:"isPublic,omitzero"`
}

type SkillService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewSkillService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *SkillService {
	return &SkillService{db: db, repomanager: m, logger: logger.With("module", "skills")}
}

// ListPublic returns visible skills without the visibility flag or timestamps.
func (s *SkillService) ListPublic(ctx context.Context) ([]models.PublicSkill, error) {
	list, err := s.repomanager.Skills(s.db).List(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicSkill, 0, len(list))
	for i := range list {
		out = append(out, list[i].Public())
	}
	return out, nil
}

func (s *SkillService) ListAdmin(ctx context.Context) ([]models.Skill, error) {
	return s.repomanager.Skills(s.db).List(ctx, false)
}

func (s *SkillService) Get(ctx context.Context, id string) (*models.Skill, error) {
	sk, err := s.repomanager.Skills(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, msgSkillNotFound)
	}
	return sk, nil
}

func (s *SkillService) Create(ctx context.Context, in SkillInput) (*models.Skill, error) {
	sk := &models.Skill{Level: models.LevelIntermediate, Category: defaultSkillCategory, IsPublic: true}
	in.apply(sk)

	if sk.Level == "" {
		sk.Level = models.LevelIntermediate
	}
	if sk.Category == "" {
		sk.Category = defaultSkillCategory
	}
	if err := validateSkill(sk); err != nil {
		return nil, err
	}

	created, err := s.repomanager.Skills(s.db).Create(ctx, sk)
	if err != nil {
		return nil, mapConflict(err)
	}
	return created, nil
}

func (s *SkillService) Update(ctx context.Context, id string, in SkillInput) (*models.Skill, error) {
	repo := s.repomanager.Skills(s.db)

	sk, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, msgSkillNotFound)
	}

	in.apply(sk)
	if err := validateSkill(sk); err != nil {
		return nil, err
	}

	updated, err := repo.Update(ctx, sk)
	if err != nil {
		return nil, mapConflict(mapNotFound(err, msgSkillNotFound))
	}
	return updated, nil
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Skills(s.db).Delete(ctx, id); err != nil {
		return mapNotFound(err, msgSkillNotFound)
	}
	return nil
}

func (in SkillInput) apply(sk *models.Skill) {
	if in.Name.Set {
		sk.Name = strings.TrimSpace(in.Name.Value)
	}
	if in.Level.Set {
		sk.Level = strings.TrimSpace(in.Level.Value)
	}
	if in.Category.Set {
		sk.Category = strings.TrimSpace(in.Category.Value)
	}
	if in.IconURL.Set {
		sk.IconURL = strings.TrimSpace(in.IconURL.Value)
	}
	in.Order.Apply(&sk.Order)
	in.IsPublic.Apply(&sk.IsPublic)
}

func validateSkill(sk *models.Skill) error {
	if sk.Name == "" {
		return common.ValidationField("name", "Skill name is required")
	}
	if !models.ValidSkillLevel(sk.Level) {
		return common.ValidationField("level", "Level must be one of: "+strings.Join(models.SkillLevels, ", "))
	}
	return nil
}

func mapConflict(err error) error {
	if errors.Is(err, common.ErrConflict) {
		return common.Conflict("name")
	}
	return err
}
