// Package folderfiles persists files placed inside folders. These records
// reference unencrypted blobs; the folder gate controls access to them.
package folderfiles

import (
	"context"

	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

type Repository interface {
	Create(ctx context.Context, file *models.FolderFile) error
	GetByID(ctx context.Context, id, userID string) (*models.FolderFile, error)
	ListByFolder(ctx context.Context, folderID string) ([]*models.FolderFile, error)
	Delete(ctx context.Context, id, userID string) error
	// DeleteByFolder removes all records of a folder; used by cascade delete.
	DeleteByFolder(ctx context.Context, folderID string) error
}
