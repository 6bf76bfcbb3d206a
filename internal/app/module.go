package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/godocstore/internal/docs"
	"github.com/shandysiswandi/godocstore/internal/document"
)

// initModules registers routes in precedence order: the documentation routes
// must come before the document routes.
func (a *App) initModules() {
	docs.New(docs.Dependency{
		Router:          a.router,
		DescriptionFile: a.settings.SwaggerFile,
		AssetsDir:       a.settings.AssetsDir,
	})

	if err := document.New(document.Dependency{
		Router:     a.router,
		StorageDir: a.settings.StorageDir,
	}); err != nil {
		slog.Error("failed to init module document", "error", err)
		os.Exit(1)
	}
}
