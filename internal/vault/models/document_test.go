package models

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	d, err := NewDocument("user-1", "blob-1", "note.txt", 10)
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)
	require.False(t, d.Trashed)
	require.Nil(t, d.DeletedAt)
	require.False(t, d.CreatedAt.IsZero())
}

func TestNewDocument_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		blobID   string
		fileName string
		size     int64
	}{
		{"missing user", "", "b", "f.txt", 1},
		{"missing blob", "u", "", "f.txt", 1},
		{"missing name", "u", "b", "", 1},
		{"negative size", "u", "b", "f.txt", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDocument(tt.userID, tt.blobID, tt.fileName, tt.size)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestDocument_TrashedTimestampInvariant(t *testing.T) {
	d, err := NewDocument("user-1", "blob-1", "note.txt", 10)
	require.NoError(t, err)

	d.MarkTrashed(time.Now())
	require.True(t, d.Trashed)
	require.NotNil(t, d.DeletedAt)
	require.NoError(t, d.Validate())

	d.MarkRestored()
	require.False(t, d.Trashed)
	require.Nil(t, d.DeletedAt)
	require.NoError(t, d.Validate())

	// flag without timestamp must not validate
	d.Trashed = true
	require.ErrorIs(t, d.Validate(), common.ErrValidation)
}

func TestNewFolder(t *testing.T) {
	f, err := NewFolder("user-1", "taxes", true, "pass")
	require.NoError(t, err)
	require.True(t, f.Protected)
	require.Equal(t, "pass", f.Password)

	_, err = NewFolder("user-1", "", false, "")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = NewFolder("user-1", "taxes", true, "")
	require.ErrorIs(t, err, common.ErrValidation)

	// password ignored when protection is off
	f, err = NewFolder("user-1", "public", false, "leftover")
	require.NoError(t, err)
	require.Empty(t, f.Password)
}
