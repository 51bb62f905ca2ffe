package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/filex"
	"github.com/dmitrijs2005/docvault/internal/identity"
	"github.com/dmitrijs2005/docvault/internal/logging"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folderfiles"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folders"
	"github.com/dmitrijs2005/docvault/internal/vault/storage"
)

// FolderService manages folders and their files. Folder files are stored as
// plain blobs; the password gate controls listing and download, not content
// encryption.
type FolderService struct {
	blobs    storage.BlobStore
	folders  folders.Repository
	files    folderfiles.Repository
	identity identity.Provider
	logger   logging.Logger
}

func NewFolderService(
	blobs storage.BlobStore,
	fr folders.Repository,
	ffr folderfiles.Repository,
	id identity.Provider,
	logger logging.Logger,
) *FolderService {
	return &FolderService{
		blobs:    blobs,
		folders:  fr,
		files:    ffr,
		identity: id,
		logger:   logger,
	}
}

// CreateFolder creates a folder, optionally protected by a password.
func (s *FolderService) CreateFolder(ctx context.Context, name string, protected bool, password string) (*models.Folder, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	folder, err := models.NewFolder(userID, name, protected, password)
	if err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	if err := s.folders.Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("create folder %s: %w", name, err)
	}
	return folder, nil
}

// ListFolders returns the user's folders. Names and protection flags are
// visible without unlocking; only contents are gated.
func (s *FolderService) ListFolders(ctx context.Context) ([]*models.Folder, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return s.folders.ListByUser(ctx, userID)
}

// DeleteFolder removes a folder and everything in it. File blobs are deleted
// first, tolerating individual failures, then the records, then the folder.
func (s *FolderService) DeleteFolder(ctx context.Context, folderID string) error {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return fmt.Errorf("delete folder %s: %w", folderID, err)
	}

	folder, err := s.folders.GetByID(ctx, folderID, userID)
	if err != nil {
		return fmt.Errorf("delete folder %s: %w", folderID, err)
	}

	files, err := s.files.ListByFolder(ctx, folder.ID)
	if err != nil {
		return fmt.Errorf("delete folder %s: list files: %w", folderID, err)
	}

	for _, f := range files {
		if err := s.blobs.Delete(ctx, f.BlobID); err != nil && !errors.Is(err, common.ErrNotFound) {
			s.logger.Error(ctx, "folder file blob deletion failed, continuing cascade",
				"folder_id", folder.ID, "file_id", f.ID, "blob_id", f.BlobID, "error", err.Error())
		}
	}

	if err := s.files.DeleteByFolder(ctx, folder.ID); err != nil {
		return fmt.Errorf("delete folder %s: delete file records: %w", folderID, err)
	}
	if err := s.folders.Delete(ctx, folder.ID, userID); err != nil {
		return fmt.Errorf("delete folder %s: %w", folderID, err)
	}
	return nil
}

// Unlock checks the password and opens the folder in the given session. A
// missing folder fails exactly like a wrong password.
func (s *FolderService) Unlock(ctx context.Context, session *GateSession, folderID, password string) error {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return fmt.Errorf("unlock folder: %w", err)
	}

	folder, err := s.folders.GetByID(ctx, folderID, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrWrongPassword
		}
		return fmt.Errorf("unlock folder: %w", err)
	}

	return session.Unlock(folder, password)
}

// Lock re-locks the folder for the session.
func (s *FolderService) Lock(session *GateSession, folderID string) {
	session.Lock(folderID)
}

// guarded fetches the folder and verifies the session has it open.
func (s *FolderService) guarded(ctx context.Context, session *GateSession, folderID string) (*models.Folder, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, err
	}

	folder, err := s.folders.GetByID(ctx, folderID, userID)
	if err != nil {
		return nil, err
	}
	if !session.Unlocked(folder) {
		return nil, common.ErrGateLocked
	}
	return folder, nil
}

// AddFile stores a file inside an unlocked folder. The blob is written before
// the record, same ordering as document uploads, but without the encryption
// step.
func (s *FolderService) AddFile(ctx context.Context, session *GateSession, folderID, name string, data []byte) (*models.FolderFile, error) {
	folder, err := s.guarded(ctx, session, folderID)
	if err != nil {
		return nil, fmt.Errorf("add file %s: %w", name, err)
	}

	blobID, err := s.blobs.Put(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("add file %s: store blob: %w", name, err)
	}

	file, err := models.NewFolderFile(folder.ID, folder.UserID, name, blobID, filex.MIMEByName(name), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("add file %s: %w", name, err)
	}

	if err := s.files.Create(ctx, file); err != nil {
		s.logger.Warn(ctx, "folder file record not written, blob orphaned",
			"folder_id", folder.ID, "blob_id", blobID, "file_name", name, "error", err.Error())
		return nil, fmt.Errorf("add file %s: create record: %w", name, err)
	}
	return file, nil
}

// ListFiles returns the folder's files; refused while the gate is locked.
func (s *FolderService) ListFiles(ctx context.Context, session *GateSession, folderID string) ([]*models.FolderFile, error) {
	folder, err := s.guarded(ctx, session, folderID)
	if err != nil {
		return nil, fmt.Errorf("list folder files: %w", err)
	}
	return s.files.ListByFolder(ctx, folder.ID)
}

// RemoveFile deletes one file from an unlocked folder, blob first.
func (s *FolderService) RemoveFile(ctx context.Context, session *GateSession, folderID, fileID string) error {
	folder, err := s.guarded(ctx, session, folderID)
	if err != nil {
		return fmt.Errorf("remove file %s: %w", fileID, err)
	}

	file, err := s.files.GetByID(ctx, fileID, folder.UserID)
	if err != nil {
		return fmt.Errorf("remove file %s: %w", fileID, err)
	}

	if err := s.blobs.Delete(ctx, file.BlobID); err != nil && !errors.Is(err, common.ErrNotFound) {
		s.logger.Error(ctx, "folder file blob deletion failed, deleting record anyway",
			"file_id", file.ID, "blob_id", file.BlobID, "error", err.Error())
	}

	if err := s.files.Delete(ctx, file.ID, folder.UserID); err != nil {
		return fmt.Errorf("remove file %s: delete record: %w", fileID, err)
	}
	return nil
}

// OpenFile fetches a file's content from an unlocked folder.
func (s *FolderService) OpenFile(ctx context.Context, session *GateSession, folderID, fileID string) (*Attachment, error) {
	folder, err := s.guarded(ctx, session, folderID)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", fileID, err)
	}

	file, err := s.files.GetByID(ctx, fileID, folder.UserID)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", fileID, err)
	}

	data, err := s.blobs.Get(ctx, file.BlobID)
	if err != nil {
		return nil, fmt.Errorf("open file %s: fetch blob: %w", fileID, err)
	}

	return &Attachment{
		FileName: file.Name,
		MIMEType: file.MIMEType,
		Data:     data,
	}, nil
}
