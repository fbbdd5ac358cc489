package experiences

import (
	"context"

	"github.com/dmitrijs2005/folio/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id string) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) (*models.Experience, error)
	Update(ctx context.Context, e *models.Experience) (*models.Experience, error)
	Delete(ctx context.Context, id string) error
}
