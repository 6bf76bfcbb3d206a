package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/shandysiswandi/godocstore/internal/document/entity"
	"github.com/shandysiswandi/godocstore/internal/pkg/pkgerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStore struct {
	mu       sync.Mutex
	docs     map[entity.ID][]byte
	readErr  error
	writeErr error
	writes   int
}

func newTestStore() *testStore {
	return &testStore{docs: make(map[entity.ID][]byte)}
}

func (s *testStore) Read(_ context.Context, id entity.ID) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %w", pkgerror.ErrNotFound, fs.ErrNotExist)
	}
	return doc, nil
}

func (s *testStore) Write(_ context.Context, id entity.ID, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.writeErr != nil {
		return s.writeErr
	}
	s.docs[id] = append([]byte(nil), data...)
	return nil
}

func requireCode(t *testing.T, err error, status int, msg string) {
	t.Helper()

	var perr *pkgerror.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, status, perr.StatusCode())
	assert.Equal(t, msg, perr.Msg())
}

func TestSaveThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := New(Dependency{Store: newTestStore()})

	payloads := []string{
		`{"a":1}`,
		`{"nested":{"list":[1,"two",null,true,{"x":1.5}]},"empty":{}}`,
		`[]`,
		`"just a string"`,
		`12345678901234567890`,
		`null`,
	}

	for _, p := range payloads {
		require.NoError(t, uc.Save(ctx, "1", []byte(p)))

		doc, err := uc.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, entity.ID("1"), doc.ID)
		assert.JSONEq(t, p, string(doc.Content), p)
	}
}

func TestSavePrettyPrints(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	uc := New(Dependency{Store: store})

	require.NoError(t, uc.Save(ctx, "42", []byte(`{"a":1}`)))

	assert.Equal(t, "{\n  \"a\": 1\n}", string(store.docs["42"]))
}

func TestSaveInvalidJSONLeavesDocumentUnchanged(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()
	uc := New(Dependency{Store: store})
	require.NoError(t, uc.Save(ctx, "5", []byte(`{"keep":true}`)))
	before := append([]byte(nil), store.docs["5"]...)

	for _, body := range []string{"not json", "", "{", `{"a":1} {"b":2}`, "{'a':1}", "{\"a\":\"\xff\xfe\"}"} {
		err := uc.Save(ctx, "5", []byte(body))
		requireCode(t, err, http.StatusBadRequest, "Invalid JSON")
	}

	assert.Equal(t, before, store.docs["5"])
	assert.Equal(t, 1, store.writes)
}

func TestSaveWriteFailure(t *testing.T) {
	store := newTestStore()
	store.writeErr = errors.New("permission denied")
	uc := New(Dependency{Store: store})

	err := uc.Save(context.Background(), "1", []byte(`{}`))

	requireCode(t, err, http.StatusInternalServerError, "Failed to save file")
	assert.ErrorIs(t, err, store.writeErr)
}

func TestGetMissing(t *testing.T) {
	uc := New(Dependency{Store: newTestStore()})

	_, err := uc.Get(context.Background(), "77")

	requireCode(t, err, http.StatusNotFound, "File 77.json not found")
}

func TestGetReadFailureIsNotFound(t *testing.T) {
	store := newTestStore()
	store.readErr = errors.New("is a directory")
	uc := New(Dependency{Store: store})

	_, err := uc.Get(context.Background(), "3")

	requireCode(t, err, http.StatusNotFound, "File 3.json not found")
}

func TestGetReturnsStoredBytesVerbatim(t *testing.T) {
	store := newTestStore()
	store.docs["8"] = []byte(`{"b":2,  "a":1}`)
	uc := New(Dependency{Store: store})

	doc, err := uc.Get(context.Background(), "8")

	require.NoError(t, err)
	assert.Equal(t, []byte(`{"b":2,  "a":1}`), doc.Content)
}

func TestMissingDependency(t *testing.T) {
	uc := New(Dependency{})

	_, err := uc.Get(context.Background(), "1")
	requireCode(t, err, http.StatusInternalServerError, "Internal server error")

	err = uc.Save(context.Background(), "1", []byte(`{}`))
	requireCode(t, err, http.StatusInternalServerError, "Internal server error")
}

func TestFormatIsIdempotent(t *testing.T) {
	inputs := []string{
		`{"z":1,"a":{"b":[1,2,{"c":null}]}}`,
		"  \n[ 1 , 2 ]\n\t",
		`{"html":"<b>&</b>","num":1.50e3}`,
	}

	for _, in := range inputs {
		once, err := Format([]byte(in))
		require.NoError(t, err)

		twice, err := Format(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, in)

		again, err := Format([]byte(in))
		require.NoError(t, err)
		assert.Equal(t, once, again, in)
		assert.True(t, json.Valid(once))
	}
}

func TestFormatKeepsKeyOrderAndLiterals(t *testing.T) {
	out, err := Format([]byte(`{"z":1.50e3,"a":"<b>"}`))
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"z\": 1.50e3,\n  \"a\": \"<b>\"\n}", string(out))
}

func TestFormatRejectsInvalidUTF8(t *testing.T) {
	_, err := Format([]byte("{\"a\":\"\xff\xfe\"}"))
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	out, err := Format([]byte(`{"a":"h\u00e9llo","b":"héllo"}`))
	require.NoError(t, err)
	assert.True(t, utf8.Valid(out))
}

func TestFormatEmptyContainers(t *testing.T) {
	out, err := Format([]byte(`{"a":[],"b":{}}`))
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"a\": [],\n  \"b\": {}\n}", string(out))
}
