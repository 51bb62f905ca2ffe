package models

import (
	"fmt"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/google/uuid"
)

// Folder is a named grouping of files, optionally gated behind a password.
// The password gates access to the listing only; folder contents are stored
// without the per-document encryption layer.
type Folder struct {
	ID        string
	UserID    string
	Name      string
	Protected bool
	Password  string
}

// NewFolder validates and builds a folder record. A protected folder requires
// a password; an unprotected one always stores an empty password.
func NewFolder(userID, name string, protected bool, password string) (*Folder, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: owner is required", common.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: folder name is required", common.ErrValidation)
	}
	if protected && password == "" {
		return nil, fmt.Errorf("%w: password is required for protected folders", common.ErrValidation)
	}
	if !protected {
		password = ""
	}
	return &Folder{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Protected: protected,
		Password:  password,
	}, nil
}

// FolderFile is a file placed inside a folder. Unlike Document it is stored
// unencrypted; the folder gate protects access, not content.
type FolderFile struct {
	ID       string
	FolderID string
	UserID   string
	Name     string
	BlobID   string
	Size     int64
	MIMEType string
}

func NewFolderFile(folderID, userID, name, blobID, mimeType string, size int64) (*FolderFile, error) {
	if folderID == "" || userID == "" || blobID == "" {
		return nil, fmt.Errorf("%w: folder file identity fields must be set", common.ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: file name is required", common.ErrValidation)
	}
	return &FolderFile{
		ID:       uuid.NewString(),
		FolderID: folderID,
		UserID:   userID,
		Name:     name,
		BlobID:   blobID,
		Size:     size,
		MIMEType: mimeType,
	}, nil
}
