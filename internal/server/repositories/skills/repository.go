package skills

import (
	"context"

	"github.com/dmitrijs2005/folio/internal/server/models"
)

type Repository interface {
	// List returns skills by order then name; publicOnly filters on is_public.
	List(ctx context.Context, publicOnly bool) ([]models.Skill, error)
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	Create(ctx context.Context, s *models.Skill) (*models.Skill, error)
	Update(ctx context.Context, s *models.Skill) (*models.Skill, error)
	Delete(ctx context.Context, id string) error
}
