package storage

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/google/uuid"
)

// MemoryStore is an in-memory BlobStore used in tests. The fault-injection
// hooks let tests simulate store failures for specific operations.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	PutErr    error
	GetErr    error
	DeleteErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Put(ctx context.Context, data []byte) (string, error) {
	if m.PutErr != nil {
		return "", m.PutErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.blobs[id] = buf
	return id, nil
}

func (m *MemoryStore) Get(ctx context.Context, blobID string) ([]byte, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[blobID]
	if !ok {
		return nil, common.ErrNotFound
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

func (m *MemoryStore) Delete(ctx context.Context, blobID string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blobs[blobID]; !ok {
		return common.ErrNotFound
	}
	delete(m.blobs, blobID)
	return nil
}

// Len reports the number of stored blobs; test helper.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}
