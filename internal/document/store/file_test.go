package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shandysiswandi/godocstore/internal/document/entity"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()

	s, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return s
}

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, s.Dir())
}

func TestFileStoreWriteThenRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)
	data := []byte("{\n  \"a\": 1\n}")

	require.NoError(t, s.Write(ctx, "42", data))

	got, err := s.Read(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	onDisk, err := os.ReadFile(filepath.Join(s.Dir(), "42.json"))
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)
}

func TestFileStoreReadPassesBytesThrough(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	raw := []byte(`{"b":2,   "a":[1,2]}` + "\n")
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "9.json"), raw, 0o600))

	got, err := s.Read(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestFileStoreReadMissing(t *testing.T) {
	t.Parallel()

	_, err := newStore(t).Read(context.Background(), "1")

	assert.ErrorIs(t, err, pkgerror.ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileStoreReadFailureIsNotNotFound(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "3.json"), 0o755))

	_, err := s.Read(context.Background(), "3")

	require.Error(t, err)
	assert.NotErrorIs(t, err, pkgerror.ErrNotFound)
}

func TestFileStoreOverwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Write(ctx, "1", []byte(`{"v":1}`)))
	require.NoError(t, s.Write(ctx, "1", []byte(`[]`)))

	got, err := s.Read(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestFileStoreWriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	require.NoError(t, s.Write(ctx, "1", []byte(`1`)))
	require.NoError(t, s.Write(ctx, "2", []byte(`2`)))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"1.json", "2.json"}, names)
}

func TestFileStoreWriteFailureKeepsDirectoryClean(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)
	require.NoError(t, s.Write(ctx, "1", []byte(`{"keep":true}`)))

	// A directory in place of the target makes the rename fail.
	blocker := filepath.Join(s.Dir(), "5.json")
	require.NoError(t, os.Mkdir(blocker, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(blocker, "x"), []byte("x"), 0o600))

	err := s.Write(ctx, "5", []byte(`{}`))
	require.Error(t, err)

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	got, err := s.Read(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"keep":true}`), got)
}

func TestFileStoreRejectsInvalidID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	_, err := s.Read(ctx, "../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidID)

	err = s.Write(ctx, entity.ID("1/2"), []byte(`{}`))
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestFileStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newStore(t)

	assert.ErrorIs(t, s.Write(ctx, "1", []byte(`{}`)), context.Canceled)

	_, err := s.Read(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStoreConcurrentWritesLeaveWholeDocument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)
	payloads := [][]byte{[]byte(`{"writer":"a"}`), []byte(`{"writer":"b"}`)}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(p []byte) {
			defer wg.Done()
			assert.NoError(t, s.Write(ctx, "7", p))
		}(payloads[i%2])
	}
	wg.Wait()

	got, err := s.Read(ctx, "7")
	require.NoError(t, err)
	assert.Contains(t, payloads, got)
}
