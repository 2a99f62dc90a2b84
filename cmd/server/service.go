package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/config"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/content"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/database"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/identity"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/lifecycle"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/resource"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/routes"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/server"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/storage"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/uploads"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/logging"
	pkgstorage "github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/storage"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	lc     *lifecycle.Coordinator
	logger *slog.Logger
	db     *sql.DB
	server server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	logger := logging.New(&cfg.Logging)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	objects, err := buildStorage(cfg, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	identitySys := identity.New(&cfg.Auth, logger)
	gateway := uploads.New(objects, identitySys, logger)

	contentHandler, err := content.NewHandler(
		content.Catalog(),
		resource.NewPostgresStore(db, logger),
		logger,
		cfg.Pagination,
	)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("content: %w", err)
	}

	uploadHandler := uploads.NewHandler(gateway, logger, cfg.Storage.MaxUploadSizeBytes())
	authHandler := identity.NewHandler(identitySys, logger)

	routeSys := routes.New(logger)
	registerRoutes(routeSys, cfg, logger, identitySys, contentHandler, uploadHandler, authHandler)

	middlewareSys := buildMiddleware(logger, cfg)
	handler := middlewareSys.Apply(routeSys.Build())

	lc := lifecycle.New(context.Background())
	serverSys := server.New(&cfg.Server, handler, logger, cfg.ShutdownTimeoutDuration())

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := db.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	})

	return &Service{
		lc:     lc,
		logger: logger,
		db:     db,
		server: serverSys,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.logger.Info("starting service")

	if err := s.server.Start(s.lc); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.logger.Info("service started")
	return nil
}

// Shutdown gracefully stops all subsystems within the provided context deadline.
func (s *Service) Shutdown(ctx context.Context) error {
	s.logger.Info("initiating shutdown")

	if err := s.lc.Shutdown(ctx); err != nil {
		return err
	}

	s.logger.Info("all subsystems shut down successfully")
	return nil
}

func buildStorage(cfg *config.Config, logger *slog.Logger) (storage.System, error) {
	switch cfg.Storage.Backend {
	case pkgstorage.BackendS3:
		return storage.NewS3(context.Background(), &cfg.Storage, logger)
	default:
		return storage.NewFilesystem(&cfg.Storage, logger)
	}
}
