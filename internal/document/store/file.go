package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shandysiswandi/godocstore/internal/document/entity"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgerror"
)

const filePerm fs.FileMode = 0o644

// ErrInvalidID is returned for IDs that are not plain decimal digits.
var ErrInvalidID = errors.New("invalid document id")

// FileStore keeps one JSON file per document in a single directory.
//
// Layout:
//
//	storage_dir/
//	  1.json
//	  42.json
//
// The store holds no state besides the directory path; every call goes to
// the filesystem. Writes land in a temp file in the same directory that is
// renamed over the target, so readers see either the old or the new file.
// Concurrent writers to the same ID are not coordinated: the last rename wins.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir, creating the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir is the storage directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(id entity.ID) string {
	return filepath.Join(s.dir, id.FileName())
}

// Read returns the stored bytes of id unchanged.
//
// A missing file is reported as pkgerror.ErrNotFound; other failures are
// returned as they come from the filesystem.
func (s *FileStore) Read(ctx context.Context, id entity.ID) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !id.Valid() {
		return nil, ErrInvalidID
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", pkgerror.ErrNotFound, err)
		}
		return nil, err
	}

	return data, nil
}

// Write replaces the document id with data.
//
// data is written as given; callers are responsible for it being valid JSON.
func (s *FileStore) Write(ctx context.Context, id entity.ID, data []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !id.Valid() {
		return ErrInvalidID
	}

	tmp, err := os.CreateTemp(s.dir, "."+id.FileName()+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Chmod(filePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path(id)); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
