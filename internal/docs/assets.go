package docs

import (
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

const indexFile = "index.html"

//nolint:gochecknoglobals // lookup table
var contentTypes = map[string]string{
	".css":  "text/css",
	".js":   "application/javascript",
	".png":  "image/png",
	".html": "text/html",
	".json": "application/json",
}

// AssetHandler serves the documentation UI from an asset tree mounted at /docs.
type AssetHandler struct {
	fsys fs.FS
}

func NewAssetHandler(fsys fs.FS) *AssetHandler {
	return &AssetHandler{fsys: fsys}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := assetName(r.URL.Path)

	if h.fsys == nil || !fs.ValidPath(name) {
		writePlain(w, http.StatusNotFound, "File not found")
		return
	}

	data, err := fs.ReadFile(h.fsys, name)
	if err != nil {
		slog.DebugContext(r.Context(), "docs asset unavailable", "asset", name, "error", err)
		writePlain(w, http.StatusNotFound, "File not found")
		return
	}

	switch path.Base(name) {
	case indexFile:
		data = RewriteIndex(data)
	case "swagger-initializer.js":
		data = RewriteInitializer(data)
	}

	if ct, ok := contentTypes[path.Ext(name)]; ok {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.WarnContext(r.Context(), "docs: failed to write asset", "asset", name, "error", err)
	}
}

// assetName maps a request path under /docs to a name inside the asset tree.
func assetName(urlPath string) string {
	rest := strings.TrimPrefix(urlPath, MountPath)
	if rest == "" || rest == "/" {
		return indexFile
	}
	return strings.TrimPrefix(rest, "/")
}

func writePlain(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	//nolint:errcheck // client went away, nothing left to do
	w.Write([]byte(msg))
}
