package docs

import (
	"io/fs"
	"os"
	"regexp"

	"github.com/shandysiswandi/godocstore/internal/pkg/pkgrouter"
)

// Route patterns. Both answer any method and must be registered before the
// document routes.
//
//nolint:gochecknoglobals // derived from constants
var (
	PatternDescription = `^` + regexp.QuoteMeta(DescriptionPath) + `$`
	PatternAssets      = `^` + regexp.QuoteMeta(MountPath)
)

type Dependency struct {
	Router *pkgrouter.Router

	// DescriptionFile is the API description served on /swagger.json.
	DescriptionFile string
	// Assets is the Swagger UI tree. When nil AssetsDir is opened with os.DirFS.
	Assets    fs.FS
	AssetsDir string
}

func New(dep Dependency) {
	assets := dep.Assets
	if assets == nil && dep.AssetsDir != "" {
		assets = os.DirFS(dep.AssetsDir)
	}

	dep.Router.Handle(pkgrouter.Any, PatternDescription, NewDescriptionHandler(dep.DescriptionFile))
	dep.Router.Handle(pkgrouter.Any, PatternAssets, NewAssetHandler(assets))
}
