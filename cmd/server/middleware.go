package main

import (
	"log/slog"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/config"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/middleware"
)

// buildMiddleware creates and configures the middleware stack with logging and CORS.
func buildMiddleware(logger *slog.Logger, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.Logger(logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(middleware.TrimSlash())
	return middlewareSys
}
