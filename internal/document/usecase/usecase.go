package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/shandysiswandi/godocstore/internal/document/entity"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgerror"
)

const indent = "  "

type Store interface {
	Read(ctx context.Context, id entity.ID) ([]byte, error)
	Write(ctx context.Context, id entity.ID, data []byte) error
}

type Dependency struct {
	Store Store
}

type Usecase struct {
	store Store
}

func New(dep Dependency) *Usecase {
	return &Usecase{store: dep.Store}
}

// Get returns the stored bytes of a document without re-encoding them.
//
// Every read failure, not only a missing file, is reported as not found.
func (u *Usecase) Get(ctx context.Context, id entity.ID) (Document, error) {
	if u.store == nil {
		return Document{}, pkgerror.NewServer(errors.New("missing dependency"), "")
	}

	content, err := u.store.Read(ctx, id)
	if err != nil {
		if !errors.Is(err, pkgerror.ErrNotFound) {
			slog.WarnContext(ctx, "failed to read document", "id", id, "error", err)
		}
		return Document{}, pkgerror.NewNotFound(err, notFoundMessage(id))
	}

	return Document{ID: id, Content: content}, nil
}

// Save validates body as JSON and stores it re-indented with two spaces.
//
// Invalid JSON is rejected before the store is touched.
func (u *Usecase) Save(ctx context.Context, id entity.ID, body []byte) error {
	if u.store == nil {
		return pkgerror.NewServer(errors.New("missing dependency"), "")
	}

	content, err := Format(body)
	if err != nil {
		return pkgerror.NewInvalidFormat("Invalid JSON")
	}

	if err := u.store.Write(ctx, id, content); err != nil {
		return pkgerror.NewServer(err, "Failed to save file")
	}

	slog.InfoContext(ctx, "document saved", "id", id, "bytes", len(content))

	return nil
}

// ErrInvalidEncoding is returned by Format for bodies that are not UTF-8.
var ErrInvalidEncoding = errors.New("json text is not valid UTF-8")

// Format validates raw as a single UTF-8 JSON value and returns it indented
// with two spaces. Object key order and number literals are kept as written,
// and no trailing newline is added, so Format is idempotent.
func Format(raw []byte) ([]byte, error) {
	if !utf8.Valid(raw) {
		return nil, ErrInvalidEncoding
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func notFoundMessage(id entity.ID) string {
	return fmt.Sprintf("File %s not found", id.FileName())
}
