package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/docvault/internal/cryptox"
	"github.com/dmitrijs2005/docvault/internal/identity"
	"github.com/dmitrijs2005/docvault/internal/logging"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/documents"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folderfiles"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folders"
	"github.com/dmitrijs2005/docvault/internal/vault/storage"
)

const testUserID = "user-1"

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testKey() []byte {
	return cryptox.DeriveKey([]byte("my-super-secret-key-123"), []byte("appwrite-docs"))
}

type docEnv struct {
	store   *storage.MemoryStore
	repo    *documents.MemoryRepository
	handles *HandleRegistry
	docs    *DocumentService
	trash   *TrashService
}

func newDocEnv(t *testing.T) *docEnv {
	t.Helper()
	store := storage.NewMemoryStore()
	repo := documents.NewMemoryRepository()
	id := &identity.Static{ID: testUserID}
	handles := NewHandleRegistry(time.Minute)
	logger := testLogger()
	return &docEnv{
		store:   store,
		repo:    repo,
		handles: handles,
		docs:    NewDocumentService(store, repo, id, testKey(), handles, logger),
		trash:   NewTrashService(store, repo, id, logger),
	}
}

type folderEnv struct {
	store   *storage.MemoryStore
	folders *folders.MemoryRepository
	files   *folderfiles.MemoryRepository
	svc     *FolderService
}

func newFolderEnv(t *testing.T) *folderEnv {
	t.Helper()
	store := storage.NewMemoryStore()
	fr := folders.NewMemoryRepository()
	ffr := folderfiles.NewMemoryRepository()
	return &folderEnv{
		store:   store,
		folders: fr,
		files:   ffr,
		svc:     NewFolderService(store, fr, ffr, &identity.Static{ID: testUserID}, testLogger()),
	}
}

// flakyStore fails Put on the n-th call and delegates otherwise.
type flakyStore struct {
	*storage.MemoryStore
	calls  int
	failOn int
	err    error
}

func (f *flakyStore) Put(ctx context.Context, data []byte) (string, error) {
	f.calls++
	if f.calls == f.failOn {
		return "", f.err
	}
	return f.MemoryStore.Put(ctx, data)
}
