// Package repomanager bundles the per-entity repositories behind one
// constructor so services do not wire persistence themselves.
package repomanager

import (
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/documents"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folderfiles"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folders"
)

type RepositoryManager interface {
	Documents() documents.Repository
	Folders() folders.Repository
	FolderFiles() folderfiles.Repository
	Close() error
}
