// Package services implements the vault core: the upload/retrieve pipeline,
// the document lifecycle state machine, the folder gate, and the retention
// sweeper. Services are thin orchestrations over the cipher engine, the blob
// store and the repositories; none of them retries a failed operation.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/docvault/internal/cryptox"
	"github.com/dmitrijs2005/docvault/internal/filex"
	"github.com/dmitrijs2005/docvault/internal/identity"
	"github.com/dmitrijs2005/docvault/internal/logging"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/documents"
	"github.com/dmitrijs2005/docvault/internal/vault/storage"
)

// FileUpload is one plaintext file submitted for upload.
type FileUpload struct {
	Name string
	Data []byte
}

// Attachment is decrypted content handed to the caller for saving to disk.
// FileName keeps the original name and extension, never a ciphertext suffix.
type Attachment struct {
	FileName string
	MIMEType string
	Data     []byte
}

// DocumentService orchestrates encrypt-then-store uploads and the inverse
// fetch-then-decrypt retrievals for top-level documents.
type DocumentService struct {
	blobs    storage.BlobStore
	docs     documents.Repository
	identity identity.Provider
	key      []byte
	handles  *HandleRegistry
	logger   logging.Logger
}

func NewDocumentService(
	blobs storage.BlobStore,
	docs documents.Repository,
	id identity.Provider,
	key []byte,
	handles *HandleRegistry,
	logger logging.Logger,
) *DocumentService {
	return &DocumentService{
		blobs:    blobs,
		docs:     docs,
		identity: id,
		key:      key,
		handles:  handles,
		logger:   logger,
	}
}

// Upload encrypts data and persists it as a new document. The ciphertext blob
// is written before the metadata record, so a crash between the two never
// leaves a record pointing at a missing blob. The converse — an orphaned blob
// after a failed record write — is tolerated and only logged.
func (s *DocumentService) Upload(ctx context.Context, name string, data []byte) (*models.Document, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", name, err)
	}

	envelope, err := cryptox.Encrypt(data, s.key)
	if err != nil {
		return nil, fmt.Errorf("upload %s: encrypt: %w", name, err)
	}

	blobID, err := s.blobs.Put(ctx, envelope)
	if err != nil {
		return nil, fmt.Errorf("upload %s: store blob: %w", name, err)
	}

	doc, err := models.NewDocument(userID, blobID, name, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", name, err)
	}

	if err := s.docs.Create(ctx, doc); err != nil {
		s.logger.Warn(ctx, "document record not written, blob orphaned",
			"blob_id", blobID, "file_name", name, "error", err.Error())
		return nil, fmt.Errorf("upload %s: create record: %w", name, err)
	}

	return doc, nil
}

// UploadMany processes files strictly one at a time to bound memory use and
// keep error attribution simple. The first failure stops the remaining files
// from starting; files already processed stay persisted. The documents
// uploaded so far are returned alongside the error.
func (s *DocumentService) UploadMany(ctx context.Context, files []FileUpload) ([]*models.Document, error) {
	var uploaded []*models.Document
	for _, f := range files {
		doc, err := s.Upload(ctx, f.Name, f.Data)
		if err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, doc)
	}
	return uploaded, nil
}

// Retrieve fetches the document's blob and decrypts it. An integrity failure
// propagates untranslated so callers can show it; it is never swallowed into
// empty output.
func (s *DocumentService) Retrieve(ctx context.Context, id string) ([]byte, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("retrieve %s: %w", id, err)
	}

	doc, err := s.docs.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("retrieve %s: %w", id, err)
	}

	return s.retrieve(ctx, doc)
}

func (s *DocumentService) retrieve(ctx context.Context, doc *models.Document) ([]byte, error) {
	envelope, err := s.blobs.Get(ctx, doc.BlobID)
	if err != nil {
		return nil, fmt.Errorf("retrieve %s: fetch blob: %w", doc.ID, err)
	}

	plaintext, err := cryptox.Decrypt(envelope, s.key)
	if err != nil {
		return nil, fmt.Errorf("retrieve %s: %w", doc.ID, err)
	}

	return plaintext, nil
}

// View decrypts the document and registers the plaintext in the handle
// registry for transient presentation. The handle is invalidated after the
// registry's TTL even if the caller never releases it.
func (s *DocumentService) View(ctx context.Context, id string) (*ViewHandle, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", id, err)
	}

	doc, err := s.docs.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", id, err)
	}

	plaintext, err := s.retrieve(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", id, err)
	}

	return s.handles.Open(doc.FileName, filex.MIMEByName(doc.FileName), plaintext), nil
}

// Download decrypts the document for save-to-disk, preserving the original
// filename.
func (s *DocumentService) Download(ctx context.Context, id string) (*Attachment, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", id, err)
	}

	doc, err := s.docs.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", id, err)
	}

	plaintext, err := s.retrieve(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", id, err)
	}

	return &Attachment{
		FileName: doc.FileName,
		MIMEType: filex.MIMEByName(doc.FileName),
		Data:     plaintext,
	}, nil
}

// ListActive returns the user's documents outside the trash.
func (s *DocumentService) ListActive(ctx context.Context) ([]*models.Document, error) {
	userID, err := s.identity.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return s.docs.ListActive(ctx, userID)
}

// Search filters active documents by case-insensitive filename substring.
// An empty query matches everything.
func (s *DocumentService) Search(ctx context.Context, query string) ([]*models.Document, error) {
	docs, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return docs, nil
	}

	query = strings.ToLower(query)
	result := make([]*models.Document, 0, len(docs))
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.FileName), query) {
			result = append(result, d)
		}
	}
	return result, nil
}
