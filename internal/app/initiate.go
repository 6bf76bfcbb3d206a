package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkglog"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := configPath()

	cfg, err := pkgconfig.NewViper(path, defaults())
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	a.config = cfg
	a.settings = loadSettings(cfg)

	if a.settings.TZ != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", a.settings.TZ)
	}

	pkglog.InitLogging(a.settings.LogLevel)
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(10)
	a.uuid = pkguid.NewUUID()
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.settings.HTTPAddress,
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	if a.config != nil {
		a.closerFn["Config"] = func(context.Context) error {
			return a.config.Close()
		}
	}
}
