package documents

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

// MemoryRepository is the in-memory Repository used in tests.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]*models.Document

	CreateErr error
	UpdateErr error
	// DeleteErrs injects per-document failures for batch isolation tests.
	DeleteErrs map[string]error
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: make(map[string]*models.Document)}
}

func clone(d *models.Document) *models.Document {
	c := *d
	if d.DeletedAt != nil {
		ts := *d.DeletedAt
		c.DeletedAt = &ts
	}
	return &c
}

func (r *MemoryRepository) Create(ctx context.Context, doc *models.Document) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = clone(doc)
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id, userID string) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok || doc.UserID != userID {
		return nil, common.ErrNotFound
	}
	return clone(doc), nil
}

func (r *MemoryRepository) ListActive(ctx context.Context, userID string) ([]*models.Document, error) {
	return r.list(func(d *models.Document) bool { return d.UserID == userID && !d.Trashed })
}

func (r *MemoryRepository) ListTrashed(ctx context.Context, userID string) ([]*models.Document, error) {
	return r.list(func(d *models.Document) bool { return d.UserID == userID && d.Trashed })
}

func (r *MemoryRepository) ListExpired(ctx context.Context, cutoff time.Time) ([]*models.Document, error) {
	return r.list(func(d *models.Document) bool {
		return d.Trashed && d.DeletedAt != nil && !d.DeletedAt.After(cutoff)
	})
}

func (r *MemoryRepository) list(match func(*models.Document) bool) ([]*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*models.Document
	for _, d := range r.docs {
		if match(d) {
			result = append(result, clone(d))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryRepository) Update(ctx context.Context, doc *models.Document) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.docs[doc.ID]
	if !ok || existing.UserID != doc.UserID {
		return common.ErrNotFound
	}
	r.docs[doc.ID] = clone(doc)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, userID string) error {
	if err, ok := r.DeleteErrs[id]; ok && err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.docs[id]
	if !ok || existing.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}
