package app

import (
	"context"
	"net/http"
	"time"

	"github.com/shandysiswandi/godocstore/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkglog"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config   pkgconfig.Config
	settings Settings

	// libraries
	uuid      pkguid.StringID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging("info")

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

// ShutdownTimeout bounds how long Stop may take.
func (a *App) ShutdownTimeout() time.Duration {
	return a.settings.ShutdownTimeout
}
