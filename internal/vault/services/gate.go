package services

import (
	"sync"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

// GateSession is the ephemeral unlocked/locked state for protected folders,
// scoped to a single view visit. It is never persisted: re-entering a folder
// view means creating a fresh session, so every visit to a protected folder
// requires the password again.
type GateSession struct {
	mu       sync.Mutex
	unlocked map[string]bool
}

func NewGateSession() *GateSession {
	return &GateSession{unlocked: make(map[string]bool)}
}

// Unlock transitions the folder to Unlocked on an exact, case-sensitive
// password match. A nil folder and a wrong password fail identically with
// common.ErrWrongPassword so the caller cannot tell which occurred.
func (g *GateSession) Unlock(folder *models.Folder, password string) error {
	if folder == nil {
		return common.ErrWrongPassword
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !folder.Protected {
		g.unlocked[folder.ID] = true
		return nil
	}
	if password != folder.Password {
		return common.ErrWrongPassword
	}
	g.unlocked[folder.ID] = true
	return nil
}

// Lock re-locks the folder for this session.
func (g *GateSession) Lock(folderID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.unlocked, folderID)
}

// Unlocked reports whether the folder's contents may be shown. Unprotected
// folders are always open.
func (g *GateSession) Unlocked(folder *models.Folder) bool {
	if folder == nil {
		return false
	}
	if !folder.Protected {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked[folder.ID]
}
