package folderfiles

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

// MemoryRepository is the in-memory Repository used in tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	files map[string]*models.FolderFile
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{files: make(map[string]*models.FolderFile)}
}

func (r *MemoryRepository) Create(ctx context.Context, file *models.FolderFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := *file
	r.files[file.ID] = &f
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id, userID string) (*models.FolderFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.files[id]
	if !ok || f.UserID != userID {
		return nil, common.ErrNotFound
	}
	c := *f
	return &c, nil
}

func (r *MemoryRepository) ListByFolder(ctx context.Context, folderID string) ([]*models.FolderFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*models.FolderFile
	for _, f := range r.files {
		if f.FolderID == folderID {
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
	f, ok := r.files[id]
	if !ok || f.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.files, id)
	return nil
}

func (r *MemoryRepository) DeleteByFolder(ctx context.Context, folderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, f := range r.files {
		if f.FolderID == folderID {
			delete(r.files, id)
		}
	}
	return nil
}
