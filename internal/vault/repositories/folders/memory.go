package folders

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

// MemoryRepository is the in-memory Repository used in tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	folders map[string]*models.Folder
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{folders: make(map[string]*models.Folder)}
}

func (r *MemoryRepository) Create(ctx context.Context, folder *models.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := *folder
	r.folders[folder.ID] = &f
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id, userID string) (*models.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.folders[id]
	if !ok || f.UserID != userID {
		return nil, common.ErrNotFound
	}
	c := *f
	return &c, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*models.Folder
	for _, f := range r.folders {
		if f.UserID == userID {
			c := *f
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.folders[id]
	if !ok || f.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.folders, id)
	return nil
}
