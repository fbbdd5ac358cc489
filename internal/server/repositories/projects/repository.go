package projects

import (
	"context"

	"github.com/dmitrijs2005/folio/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	Update(ctx context.Context, p *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id string) error
}
