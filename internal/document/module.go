package document

import (
	"log/slog"

	"github.com/shandysiswandi/godocstore/internal/document/inbound"
	"github.com/shandysiswandi/godocstore/internal/document/store"
	"github.com/shandysiswandi/godocstore/internal/document/usecase"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgrouter"
)

type Dependency struct {
	Router     *pkgrouter.Router
	StorageDir string
}

// New registers the get/save document routes backed by a file store in
// dep.StorageDir.
func New(dep Dependency) error {
	storage, err := store.NewFileStore(dep.StorageDir)
	if err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{Store: storage})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	slog.Info("document module ready", "storage_dir", storage.Dir())

	return nil
}
