package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/config"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/content"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/identity"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/middleware"
	"github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/internal/uploads"
	pkgroutes "github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/routes"
	pkgstorage "github.com/DzikriMuhammad15/sistem-administrasi-warga-suntenjaya-sub000/pkg/storage"
)

// registerRoutes configures all HTTP routes for the service. Public
// reads stay open; content mutations require a verified session, and
// upload routes carry the session through so the gateway can enforce
// it after its own checks.
func registerRoutes(
	r pkgroutes.System,
	cfg *config.Config,
	logger *slog.Logger,
	identitySys identity.System,
	contentHandler *content.Handler,
	uploadHandler *uploads.Handler,
	authHandler *identity.Handler,
) {
	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterGroup(authHandler.Routes())

	requireSession := middleware.RequireSession(identitySys, logger)
	r.RegisterGroup(wrapRoutes(contentHandler.Routes(), requireSession, isMutation))

	withSession := middleware.WithSession(identitySys, logger)
	r.RegisterGroup(wrapRoutes(uploadHandler.Routes(), withSession, everyRoute))

	if cfg.Storage.Backend == pkgstorage.BackendFilesystem {
		prefix := strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/")
		files := http.StripPrefix(prefix+"/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.RegisterRoute(pkgroutes.Route{
			Method:  "GET",
			Pattern: prefix + "/",
			Handler: files.ServeHTTP,
		})
	}
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// wrapRoutes applies mw to every route in the group that matches when.
func wrapRoutes(group pkgroutes.Group, mw func(http.Handler) http.Handler, when func(pkgroutes.Route) bool) pkgroutes.Group {
	wrapped := make([]pkgroutes.Route, len(group.Routes))
	for i, route := range group.Routes {
		if when(route) {
			route.Handler = mw(http.HandlerFunc(route.Handler)).ServeHTTP
		}
		wrapped[i] = route
	}
	group.Routes = wrapped
	return group
}

func isMutation(route pkgroutes.Route) bool {
	return route.Method != http.MethodGet
}

func everyRoute(pkgroutes.Route) bool {
	return true
}
