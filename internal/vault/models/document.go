// Package models defines the vault's persisted record types and their
// invariants. Constructors validate at creation time; repositories and
// services never build records from loose field bags.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/google/uuid"
)

// Document represents one user file stored encrypted in the object store.
// FileName and FileSize describe the original plaintext, not the ciphertext
// blob the record points to.
type Document struct {
	ID        string
	UserID    string
	BlobID    string
	FileName  string
	FileSize  int64
	Favorite  bool
	Trashed   bool
	DeletedAt *time.Time
	CreatedAt time.Time
}

// NewDocument builds an active document record for a freshly uploaded file.
func NewDocument(userID, blobID, fileName string, fileSize int64) (*Document, error) {
	d := &Document{
		ID:        uuid.NewString(),
		UserID:    userID,
		BlobID:    blobID,
		FileName:  fileName,
		FileSize:  fileSize,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks structural invariants, in particular that the trashed flag
// and the deletion timestamp always agree.
func (d *Document) Validate() error {
	if d.ID == "" || d.UserID == "" || d.BlobID == "" {
		return fmt.Errorf("%w: document identity fields must be set", common.ErrValidation)
	}
	if d.FileName == "" {
		return fmt.Errorf("%w: file name is required", common.ErrValidation)
	}
	if d.FileSize < 0 {
		return fmt.Errorf("%w: negative file size", common.ErrValidation)
	}
	if d.Trashed != (d.DeletedAt != nil) {
		return fmt.Errorf("%w: trashed flag and deletion timestamp disagree", common.ErrValidation)
	}
	return nil
}

// MarkTrashed moves the document to the trash at the given moment.
func (d *Document) MarkTrashed(now time.Time) {
	now = now.UTC()
	d.Trashed = true
	d.DeletedAt = &now
}

// MarkRestored returns the document to the active view.
func (d *Document) MarkRestored() {
	d.Trashed = false
	d.DeletedAt = nil
}
