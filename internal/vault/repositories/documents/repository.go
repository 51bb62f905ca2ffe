// Package documents persists Document records. The interface mirrors what the
// external document database offers: equality filters on owner id and on the
// trashed flag, plus whole-record updates (last writer wins).
package documents

import (
	"context"
	"time"

	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

type Repository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id, userID string) (*models.Document, error)
	ListActive(ctx context.Context, userID string) ([]*models.Document, error)
	ListTrashed(ctx context.Context, userID string) ([]*models.Document, error)
	// ListExpired returns trashed documents, across all users, whose deletion
	// timestamp is at or before cutoff. Used by the retention sweep.
	ListExpired(ctx context.Context, cutoff time.Time) ([]*models.Document, error)
	Update(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, id, userID string) error
}
