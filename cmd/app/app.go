package app

import (
	"context"
	"fmt"
	"log/slog"

	"socialfeed/internal/config"
	"socialfeed/internal/database"
	"socialfeed/internal/repository"
	"socialfeed/internal/service"
	"socialfeed/internal/storage"
)

func App(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, *repository.Repository, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect database: %w", err)
	}

	// connection MinIO, optional
	var store storage.Storage
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			db.CloseDB()
			return nil, nil, nil, fmt.Errorf("init MinIO: %w", err)
		}
		store = minioClient
		logger.Info("image storage enabled", "endpoint", cfg.MinIO.Endpoint, "bucket", cfg.MinIO.BucketName)
	} else {
		logger.Warn("image storage disabled, image routes answer 503")
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store, logger)

	return db, repo, services, nil
}
