package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/cryptox"
	"github.com/dmitrijs2005/docvault/internal/identity"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

func TestUpload_CreatesDocumentAndEncryptedBlob(t *testing.T) {
	env := newDocEnv(t)
	ctx := context.Background()
	plaintext := []byte("0123456789")

	doc, err := env.docs.Upload(ctx, "note.txt", plaintext)
	require.NoError(t, err)

	assert.Equal(t, "note.txt", doc.FileName)
	assert.Equal(t, int64(10), doc.FileSize)
	assert.Equal(t, testUserID, doc.UserID)
	assert.False(t, doc.Trashed)
	assert.False(t, doc.Favorite)
	assert.Nil(t, doc.DeletedAt)

	// the stored blob is an envelope, not the plaintext
	require.Equal(t, 1, env.store.Len())
	blob, err := env.store.Get(ctx, doc.BlobID)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, blob)
	assert.Greater(t, len(blob), len(plaintext))

	got, err := env.docs.Retrieve(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestUpload_BlobFailureWritesNoRecord(t *testing.T) {
	env := newDocEnv(t)
	env.store.PutErr = errors.New("store down")

	_, err := env.docs.Upload(context.Background(), "note.txt", []byte("data"))
	require.Error(t, err)

	docs, err := env.docs.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestUpload_RecordFailureLeavesOrphanBlob(t *testing.T) {
	env := newDocEnv(t)
	env.repo.CreateErr = errors.New("db down")

	_, err := env.docs.Upload(context.Background(), "note.txt", []byte("data"))
	require.Error(t, err)

	// blob-before-record ordering: the blob exists, the record does not
	assert.Equal(t, 1, env.store.Len())
	docs, err := env.docs.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestUploadMany_StopsOnFirstFailure(t *testing.T) {
	env := newDocEnv(t)
	flaky := &flakyStore{MemoryStore: env.store, failOn: 2, err: errors.New("store down")}
	svc := NewDocumentService(flaky, env.repo, &identity.Static{ID: testUserID}, testKey(), env.handles, testLogger())

	files := []FileUpload{
		{Name: "a.txt", Data: []byte("aaa")},
		{Name: "b.txt", Data: []byte("bbb")},
		{Name: "c.txt", Data: []byte("ccc")},
	}

	uploaded, err := svc.UploadMany(context.Background(), files)
	require.Error(t, err)

	// the first file persisted, the third never started
	require.Len(t, uploaded, 1)
	assert.Equal(t, "a.txt", uploaded[0].FileName)
	assert.Equal(t, 2, flaky.calls)
}

func TestRetrieve_TamperedBlobFailsIntegrity(t *testing.T) {
	env := newDocEnv(t)
	ctx := context.Background()

	envelope, err := cryptox.Encrypt([]byte("secret"), testKey())
	require.NoError(t, err)
	envelope[len(envelope)-1] ^= 0x01

	blobID, err := env.store.Put(ctx, envelope)
	require.NoError(t, err)

	doc, err := models.NewDocument(testUserID, blobID, "secret.txt", 6)
	require.NoError(t, err)
	require.NoError(t, env.repo.Create(ctx, doc))

	_, err = env.docs.Retrieve(ctx, doc.ID)
	assert.ErrorIs(t, err, common.ErrIntegrity)
}

func TestRetrieve_UnknownDocument(t *testing.T) {
	env := newDocEnv(t)
	_, err := env.docs.Retrieve(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDownload_PreservesOriginalName(t *testing.T) {
	env := newDocEnv(t)
	ctx := context.Background()

	doc, err := env.docs.Upload(ctx, "report.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	att, err := env.docs.Download(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", att.FileName)
	assert.Equal(t, "application/pdf", att.MIMEType)
	assert.Equal(t, []byte("%PDF-1.4"), att.Data)
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	env := newDocEnv(t)
	ctx := context.Background()

	for _, name := range []string{"Tax-2025.pdf", "notes.txt", "taxi-receipt.jpg"} {
		_, err := env.docs.Upload(ctx, name, []byte("x"))
		require.NoError(t, err)
	}

	got, err := env.docs.Search(ctx, "TAX")
	require.NoError(t, err)
	require.Len(t, got, 2)

	all, err := env.docs.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := env.docs.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearch_ExcludesTrashed(t *testing.T) {
	env := newDocEnv(t)
	ctx := context.Background()

	doc, err := env.docs.Upload(ctx, "old.txt", []byte("x"))
	require.NoError(t, err)
	_, err = env.trash.Trash(ctx, doc.ID)
	require.NoError(t, err)

	got, err := env.docs.Search(ctx, "old")
	require.NoError(t, err)
	assert.Empty(t, got)
}
