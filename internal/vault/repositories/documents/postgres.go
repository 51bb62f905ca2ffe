package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/dmitrijs2005/docvault/internal/dbx"
	"github.com/dmitrijs2005/docvault/internal/vault/models"
)

// PostgresRepository implements document storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (id, user_id, blob_id, file_name, file_size, favorite, trashed, deleted_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.UserID, doc.BlobID, doc.FileName, doc.FileSize,
		doc.Favorite, doc.Trashed, doc.DeletedAt, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.Document, error) {
	query := `
		SELECT id, user_id, blob_id, file_name, file_size, favorite, trashed, deleted_at, created_at
		FROM documents WHERE id=$1 AND user_id=$2
	`
	var doc models.Document
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&doc.ID, &doc.UserID, &doc.BlobID, &doc.FileName, &doc.FileSize,
		&doc.Favorite, &doc.Trashed, &doc.DeletedAt, &doc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &doc, nil
}

func (r *PostgresRepository) ListActive(ctx context.Context, userID string) ([]*models.Document, error) {
	return r.listByTrashed(ctx, userID, false)
}

func (r *PostgresRepository) ListTrashed(ctx context.Context, userID string) ([]*models.Document, error) {
	return r.listByTrashed(ctx, userID, true)
}

func (r *PostgresRepository) listByTrashed(ctx context.Context, userID string, trashed bool) ([]*models.Document, error) {
	query := `
		SELECT id, user_id, blob_id, file_name, file_size, favorite, trashed, deleted_at, created_at
		FROM documents WHERE user_id=$1 AND trashed=$2
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, trashed)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (r *PostgresRepository) ListExpired(ctx context.Context, cutoff time.Time) ([]*models.Document, error) {
	query := `
		SELECT id, user_id, blob_id, file_name, file_size, favorite, trashed, deleted_at, created_at
		FROM documents WHERE trashed AND deleted_at <= $1
	`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to select expired documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func scanDocuments(rows *sql.Rows) ([]*models.Document, error) {
	var result []*models.Document
	for rows.Next() {
		var item models.Document
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.BlobID, &item.FileName, &item.FileSize,
			&item.Favorite, &item.Trashed, &item.DeletedAt, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, doc *models.Document) error {
	query := `
		UPDATE documents
		SET favorite=$3, trashed=$4, deleted_at=$5
		WHERE id=$1 AND user_id=$2
	`
	res, err := r.db.ExecContext(ctx, query,
		doc.ID, doc.UserID, doc.Favorite, doc.Trashed, doc.DeletedAt)
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

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id=$1 AND user_id=$2`, id, userID)
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
