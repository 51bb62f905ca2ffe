package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

func TestCreateFolder_Validation(t *testing.T) {
	env := newFolderEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateFolder(ctx, "", false, "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = env.svc.CreateFolder(ctx, "secrets", true, "")
	assert.ErrorIs(t, err, common.ErrValidation)

	folder, err := env.svc.CreateFolder(ctx, "public", false, "ignored")
	require.NoError(t, err)
	assert.False(t, folder.Protected)
	assert.Empty(t, folder.Password)
}

func TestUnlock_UnknownFolderFailsLikeWrongPassword(t *testing.T) {
	env := newFolderEnv(t)
	session := NewGateSession()

	err := env.svc.Unlock(context.Background(), session, "no-such-folder", "pw")
	assert.ErrorIs(t, err, common.ErrWrongPassword)
}

func TestFolderFiles_GatedOperations(t *testing.T) {
	env := newFolderEnv(t)
	ctx := context.Background()
	session := NewGateSession()

	folder, err := env.svc.CreateFolder(ctx, "secrets", true, "hunter2")
	require.NoError(t, err)

	// everything refuses while locked
	_, err = env.svc.ListFiles(ctx, session, folder.ID)
	assert.ErrorIs(t, err, common.ErrGateLocked)
	_, err = env.svc.AddFile(ctx, session, folder.ID, "a.txt", []byte("x"))
	assert.ErrorIs(t, err, common.ErrGateLocked)
	_, err = env.svc.OpenFile(ctx, session, folder.ID, "some-id")
	assert.ErrorIs(t, err, common.ErrGateLocked)
	err = env.svc.RemoveFile(ctx, session, folder.ID, "some-id")
	assert.ErrorIs(t, err, common.ErrGateLocked)

	require.ErrorIs(t, env.svc.Unlock(ctx, session, folder.ID, "wrong"), common.ErrWrongPassword)
	require.NoError(t, env.svc.Unlock(ctx, session, folder.ID, "hunter2"))

	file, err := env.svc.AddFile(ctx, session, folder.ID, "a.txt", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "text/plain", file.MIMEType)
	assert.Equal(t, int64(5), file.Size)

	files, err := env.svc.ListFiles(ctx, session, folder.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)

	// locking again gates the listing
	env.svc.Lock(session, folder.ID)
	_, err = env.svc.ListFiles(ctx, session, folder.ID)
	assert.ErrorIs(t, err, common.ErrGateLocked)
}

func TestAddFile_StoresPlainBlob(t *testing.T) {
	env := newFolderEnv(t)
	ctx := context.Background()
	session := NewGateSession()

	folder, err := env.svc.CreateFolder(ctx, "stuff", false, "")
	require.NoError(t, err)

	data := []byte("plain content")
	file, err := env.svc.AddFile(ctx, session, folder.ID, "plain.txt", data)
	require.NoError(t, err)

	// folder files carry no encryption layer
	blob, err := env.store.Get(ctx, file.BlobID)
	require.NoError(t, err)
	assert.Equal(t, data, blob)
}

func TestOpenFile_ReturnsAttachment(t *testing.T) {
	env := newFolderEnv(t)
	ctx := context.Background()
	session := NewGateSession()

	folder, err := env.svc.CreateFolder(ctx, "stuff", false, "")
	require.NoError(t, err)

	data := []byte("{\"k\":1}")
	file, err := env.svc.AddFile(ctx, session, folder.ID, "data.json", data)
	require.NoError(t, err)

	att, err := env.svc.OpenFile(ctx, session, folder.ID, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "data.json", att.FileName)
	assert.Equal(t, "application/json", att.MIMEType)
	assert.Equal(t, data, att.Data)
}

func TestRemoveFile_DeletesBlobAndRecord(t *testing.T) {
	env := newFolderEnv(t)
	ctx := context.Background()
	session := NewGateSession()

	folder, err := env.svc.CreateFolder(ctx, "stuff", false, "")
	require.NoError(t, err)

	file, err := env.svc.AddFile(ctx, session, folder.ID, "a.txt", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, env.svc.RemoveFile(ctx, session, folder.ID, file.ID))
	assert.Equal(t, 0, env.store.Len())

	files, err := env.svc.ListFiles(ctx, session, folder.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDeleteFolder_CascadesFilesAndBlobs(t *testing.T) {
	env := newFolderEnv(t)
	ctx := context.Background()
	session := NewGateSession()

	folder, err := env.svc.CreateFolder(ctx, "stuff", false, "")
	require.NoError(t, err)
	for _, name := range []string{"a.txt", "b.txt"} {
		_, err := env.svc.AddFile(ctx, session, folder.ID, name, []byte("x"))
		require.NoError(t, err)
	}

	require.NoError(t, env.svc.DeleteFolder(ctx, folder.ID))

	assert.Equal(t, 0, env.store.Len())
	files, err := env.files.ListByFolder(ctx, folder.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
	_, err = env.folders.GetByID(ctx, folder.ID, testUserID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteFolder_ToleratesMissingBlobs(t *testing.T) {
	env := newFolderEnv(t)
	ctx := context.Background()
	session := NewGateSession()

	folder, err := env.svc.CreateFolder(ctx, "stuff", false, "")
	require.NoError(t, err)
	file, err := env.svc.AddFile(ctx, session, folder.ID, "a.txt", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, env.store.Delete(ctx, file.BlobID))
	require.NoError(t, env.svc.DeleteFolder(ctx, folder.ID))
}

func TestListFolders_ShowsProtectionWithoutUnlock(t *testing.T) {
	env := newFolderEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateFolder(ctx, "open", false, "")
	require.NoError(t, err)
	_, err = env.svc.CreateFolder(ctx, "sealed", true, "pw")
	require.NoError(t, err)

	list, err := env.svc.ListFolders(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byName := map[string]*models.Folder{}
	for _, f := range list {
		byName[f.Name] = f
	}
	assert.False(t, byName["open"].Protected)
	assert.True(t, byName["sealed"].Protected)
}
