package folderfiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/dbx"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

// PostgresRepository implements folder-file storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, file *models.FolderFile) error {
	query := `
		INSERT INTO folder_files (id, folder_id, user_id, name, blob_id, size, mime_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		file.ID, file.FolderID, file.UserID, file.Name, file.BlobID, file.Size, file.MIMEType)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.FolderFile, error) {
	query := `
		SELECT id, folder_id, user_id, name, blob_id, size, mime_type
		FROM folder_files WHERE id=$1 AND user_id=$2
	`
	var f models.FolderFile
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&f.ID, &f.FolderID, &f.UserID, &f.Name, &f.BlobID, &f.Size, &f.MIMEType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &f, nil
}

func (r *PostgresRepository) ListByFolder(ctx context.Context, folderID string) ([]*models.FolderFile, error) {
	query := `
		SELECT id, folder_id, user_id, name, blob_id, size, mime_type
		FROM folder_files WHERE folder_id=$1 ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to select folder files: %w", err)
	}
	defer rows.Close()

	var result []*models.FolderFile
	for rows.Next() {
		var item models.FolderFile
		if err := rows.Scan(&item.ID, &item.FolderID, &item.UserID, &item.Name,
			&item.BlobID, &item.Size, &item.MIMEType); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM folder_files WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteByFolder(ctx context.Context, folderID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM folder_files WHERE folder_id=$1`, folderID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
