package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/identity"
	"github.com/dmitrijs2005/docvault/internal/logging"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/documents"
	"github.com/dmitrijs2005/docvault/internal/vault/storage"
)

// RetentionDays is the fixed window after which a trashed document becomes
// eligible for permanent purge. Display and enforcement share this constant.
const RetentionDays = 30

// TrashService owns the document lifecycle state machine: the trash, restore
// and purge transitions, the favorite flag, and the retention policy.
type TrashService struct {
	blobs    storage.BlobStore
	docs     documents.Repository
	identity identity.Provider
	logger   logging.Logger
	now      func() time.Time
}

func NewTrashService(
	blobs storage.BlobStore,
	docs documents.Repository,
	id identity.Provider,
	logger logging.Logger,
) *TrashService {
	return &TrashService{
		blobs:    blobs,
		docs:     docs,
		identity: id,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *TrashService) getOwned(ctx context.Context, id string) (*models.Document, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, err
	}
	return s.docs.GetByID(ctx, id, userID)
}

// Trash moves an active document to the trash, stamping the deletion time.
func (s *TrashService) Trash(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.getOwned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("trash %s: %w", id, err)
	}
	if doc.Trashed {
		return doc, nil
	}

	doc.MarkTrashed(s.now())
	if err := s.docs.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("trash %s: %w", id, err)
	}
	return doc, nil
}

// Restore returns a trashed document to the active view and clears the
// deletion timestamp.
func (s *TrashService) Restore(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.getOwned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("restore %s: %w", id, err)
	}
	if !doc.Trashed {
		return doc, nil
	}

	doc.MarkRestored()
	if err := s.docs.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("restore %s: %w", id, err)
	}
	return doc, nil
}

// ToggleFavorite flips the favorite flag, independent of trashed state.
func (s *TrashService) ToggleFavorite(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.getOwned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle favorite %s: %w", id, err)
	}

	doc.Favorite = !doc.Favorite
	if err := s.docs.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("toggle favorite %s: %w", id, err)
	}
	return doc, nil
}

// Purge permanently deletes a trashed document: blob first, then record.
// Blob deletion failure (including already-absent) is tolerated and logged;
// the record is deleted regardless, since the record is what keeps the
// document visible.
func (s *TrashService) Purge(ctx context.Context, id string) error {
	doc, err := s.getOwned(ctx, id)
	if err != nil {
		return fmt.Errorf("purge %s: %w", id, err)
	}
	return s.purge(ctx, doc)
}

func (s *TrashService) purge(ctx context.Context, doc *models.Document) error {
	if !doc.Trashed {
		return fmt.Errorf("purge %s: %w: document is not in trash", doc.ID, common.ErrValidation)
	}

	if err := s.blobs.Delete(ctx, doc.BlobID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "blob already absent on purge", "document_id", doc.ID, "blob_id", doc.BlobID)
		} else {
			s.logger.Error(ctx, "blob deletion failed on purge, deleting record anyway",
				"document_id", doc.ID, "blob_id", doc.BlobID, "error", err.Error())
		}
	}

	if err := s.docs.Delete(ctx, doc.ID, doc.UserID); err != nil {
		return fmt.Errorf("purge %s: delete record: %w", doc.ID, err)
	}
	return nil
}

// RestoreMany restores each id in the set, continuing past per-item failures
// and reporting an aggregate summary. One bad item must not block the rest.
func (s *TrashService) RestoreMany(ctx context.Context, ids []string) models.BatchSummary {
	var summary models.BatchSummary
	for _, id := range ids {
		_, err := s.Restore(ctx, id)
		summary.Record(id, err)
	}
	return summary
}

// PurgeMany purges each id in the set with the same isolation policy as
// RestoreMany.
func (s *TrashService) PurgeMany(ctx context.Context, ids []string) models.BatchSummary {
	var summary models.BatchSummary
	for _, id := range ids {
		summary.Record(id, s.Purge(ctx, id))
	}
	return summary
}

// EmptyTrash purges every trashed document of the current user.
func (s *TrashService) EmptyTrash(ctx context.Context) (models.BatchSummary, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return models.BatchSummary{}, fmt.Errorf("empty trash: %w", err)
	}

	docs, err := s.docs.ListTrashed(ctx, userID)
	if err != nil {
		return models.BatchSummary{}, fmt.Errorf("empty trash: %w", err)
	}

	var summary models.BatchSummary
	for _, doc := range docs {
		summary.Record(doc.ID, s.purge(ctx, doc))
	}
	return summary, nil
}

// ListTrashed returns the user's trashed documents.
func (s *TrashService) ListTrashed(ctx context.Context) ([]*models.Document, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trash: %w", err)
	}
	return s.docs.ListTrashed(ctx, userID)
}

// TrashCount reports how many documents sit in the user's trash.
func (s *TrashService) TrashCount(ctx context.Context) (int, error) {
	docs, err := s.ListTrashed(ctx)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// Eligible reports whether a trashed document's retention window has elapsed.
func Eligible(doc *models.Document, now time.Time) bool {
	if !doc.Trashed || doc.DeletedAt == nil {
		return false
	}
	return now.Sub(*doc.DeletedAt) >= RetentionDays*24*time.Hour
}

// DaysRemaining returns how many whole days the document has left in the
// trash before it becomes purge-eligible; never negative.
func DaysRemaining(doc *models.Document, now time.Time) int {
	if !doc.Trashed || doc.DeletedAt == nil {
		return RetentionDays
	}
	elapsed := int(now.Sub(*doc.DeletedAt).Hours() / 24)
	remaining := RetentionDays - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SweepExpired purges every document, across all users, whose retention
// window has elapsed. Uses the same eligibility cutoff that DaysRemaining
// shows to users.
func (s *TrashService) SweepExpired(ctx context.Context) (models.BatchSummary, error) {
	cutoff := s.now().Add(-RetentionDays * 24 * time.Hour)

	docs, err := s.docs.ListExpired(ctx, cutoff)
	if err != nil {
		return models.BatchSummary{}, fmt.Errorf("sweep expired: %w", err)
	}

	var summary models.BatchSummary
	for _, doc := range docs {
		summary.Record(doc.ID, s.purge(ctx, doc))
	}
	return summary, nil
}
