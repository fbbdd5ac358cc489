// Package contact persists the singleton ContactInfo document.
package contact

import (
	"context"

	"github.com/dmitrijs2005/folio/internal/server/models"
)

type Repository interface {
	// Get returns the document, creating it with column defaults on first use.
	Get(ctx context.Context) (*models.ContactInfo, error)
	Save(ctx context.Context, info *models.ContactInfo) (*models.ContactInfo, error)
}
