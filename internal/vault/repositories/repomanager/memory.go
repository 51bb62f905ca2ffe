package repomanager

import (
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/documents"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folderfiles"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folders"
)

// MemoryRepositoryManager wires the in-memory repositories; tests only.
type MemoryRepositoryManager struct {
	documents   *documents.MemoryRepository
	folders     *folders.MemoryRepository
	folderFiles *folderfiles.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		documents:   documents.NewMemoryRepository(),
		folders:     folders.NewMemoryRepository(),
		folderFiles: folderfiles.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Documents() documents.Repository { return m.documents }

func (m *MemoryRepositoryManager) Folders() folders.Repository { return m.folders }

func (m *MemoryRepositoryManager) FolderFiles() folderfiles.Repository { return m.folderFiles }

func (m *MemoryRepositoryManager) Close() error { return nil }
