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

const msgExperienceNotFound = "Experience not found"

type ExperienceInput struct {
	Role        patch.Field[string]   `json:"role,omitzero"`
	Company     patch.Field[string]   `json:"company,omitzero"`
	Dates       patch.Field[string]   `json:"dates,omitzero"`
	Description patch.Field[[]string] `json:"description,omitzero"`
	Order       patch.Field[int]      `json:"order,omitzero"`
}

type ExperienceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewExperienceService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ExperienceService {
	return &ExperienceService{db: db, repomanager: m, logger: logger.With("module", "experiences")}
}

func (s *ExperienceService) List(ctx context.Context) ([]models.Experience, error) {
	return s.repomanager.Experiences(s.db).List(ctx)
}

func (s *ExperienceService) Get(ctx context.Context, id string) (*models.Experience, error) {
	e, err := s.repomanager.Experiences(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, msgExperienceNotFound)
	}
	return e, nil
}

func (s *ExperienceService) Create(ctx context.Context, in ExperienceInput) (*models.Experience, error) {
	e := &models.Experience{}
	in.apply(e)

	if e.Role == "" || e.Company == "" || e.Dates == "" || len(e.Description) == 0 {
		return nil, common.Validation("Please provide all required fields: role, company, dates, and description")
	}

	return s.repomanager.Experiences(s.db).Create(ctx, e)
}

func (s *ExperienceService) Update(ctx context.Context, id string, in ExperienceInput) (*models.Experience, error) {
	repo := s.repomanager.Experiences(s.db)

	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, msgExperienceNotFound)
	}

	in.apply(e)
	switch {
	case e.Role == "":
		return nil, common.ValidationField("role", "Role is required")
	case e.Company == "":
		return nil, common.ValidationField("company", "Company is required")
	case e.Dates == "":
		return nil, common.ValidationField("dates", "Dates are required")
	case len(e.Description) == 0:
		return nil, common.ValidationField("description", "Description is required")
	}

	updated, err := repo.Update(ctx, e)
	if err != nil {
		return nil, mapNotFound(err, msgExperienceNotFound)
	}
	return updated, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Experiences(s.db).Delete(ctx, id); err != nil {
		return mapNotFound(err, msgExperienceNotFound)
	}
	return nil
}

func (in ExperienceInput) apply(e *models.Experience) {
	if in.Role.Set {
		e.Role = strings.TrimSpace(in.Role.Value)
	}
	if in.Company.Set {
		e.Company = strings.TrimSpace(in.Company.Value)
	}
	if in.Dates.Set {
		e.Dates = strings.TrimSpace(in.Dates.Value)
	}
	if in.Description.Set {
		e.Description = cleanStrings(in.Description.Value)
	}
	in.Order.Apply(&e.Order)
}
