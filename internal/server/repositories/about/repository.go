// Package about persists the singleton AboutInfo document.
package about

import (
	"context"

	"github.com/dmitrijs2005/folio/internal/server/models"
)

type Repository interface {
	// Get returns the document, creating it with column defaults on first use.
	Get(ctx context.Context) (*models.AboutInfo, error)
	Save(ctx context.Context, info *models.AboutInfo) (*models.AboutInfo, error)
}
