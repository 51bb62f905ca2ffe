package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/docvault/internal/vault/migrations"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/documents"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folderfiles"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/folders"
)

type PostgresRepositoryManager struct {
	db          *sql.DB
	documents   documents.Repository
	folders     folders.Repository
	folderFiles folderfiles.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Documents() documents.Repository {
	return m.documents
}

func (m *PostgresRepositoryManager) Folders() folders.Repository {
	return m.folders
}

func (m *PostgresRepositoryManager) FolderFiles() folderfiles.Repository {
	return m.folderFiles
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:          db,
		documents:   documents.NewPostgresRepository(db),
		folders:     folders.NewPostgresRepository(db),
		folderFiles: folderfiles.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
