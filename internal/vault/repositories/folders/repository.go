// Package folders persists Folder records.
package folders

import (
	"context"

	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

type Repository interface {
	Create(ctx context.Context, folder *models.Folder) error
	GetByID(ctx context.Context, id, userID string) (*models.Folder, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Folder, error)
	Delete(ctx context.Context, id, userID string) error
}
