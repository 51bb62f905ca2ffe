// Package vault wires the application together: configuration, storage
// backends, repositories, the service layer and the retention sweeper, plus
// graceful shutdown on OS signals.
package vault

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/docvault/internal/cryptox"
	"github.com/dmitrijs2005/docvault/internal/identity"
	"github.com/dmitrijs2005/docvault/internal/logging"
	"github.com/dmitrijs2005/docvault/internal/vault/config"
	"github.com/dmitrijs2005/docvault/internal/vault/repositories/repomanager"
	"github.com/dmitrijs2005/docvault/internal/vault/services"
	"github.com/dmitrijs2005/docvault/internal/vault/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager

	Documents *services.DocumentService
	Trash     *services.TrashService
	Folders   *services.FolderService
	Handles   *services.HandleRegistry
	sweeper   *services.Sweeper
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs, err := storage.NewS3Store(ctx, storage.S3Config{
		RootUser:     cfg.S3RootUser,
		RootPassword: cfg.S3RootPassword,
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	key := cryptox.DeriveKey([]byte(cfg.VaultSecret), []byte(cfg.KeySalt))
	id := identity.NewTokenProvider([]byte(cfg.TokenSecret))
	handles := services.NewHandleRegistry(cfg.ViewTTL)

	docs := services.NewDocumentService(blobs, rm.Documents(), id, key, handles, logger)
	trash := services.NewTrashService(blobs, rm.Documents(), id, logger)
	folders := services.NewFolderService(blobs, rm.Folders(), rm.FolderFiles(), id, logger)
	sweeper := services.NewSweeper(trash, cfg.SweepInterval, logger)

	return &App{
		config:    cfg,
		logger:    logger,
		repos:     rm,
		Documents: docs,
		Trash:     trash,
		Folders:   folders,
		Handles:   handles,
		sweeper:   sweeper,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the retention sweeper and blocks until the context is cancelled
// or an OS signal arrives, then shuts down cleanly.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.sweeper.Start(ctx); err != nil {
		return fmt.Errorf("sweeper start error: %w", err)
	}

	<-ctx.Done()

	app.logger.Info(ctx, "Shutting down...")
	app.sweeper.Stop()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}

	return nil
}
