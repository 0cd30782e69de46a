package favorites

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "favorites.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(ctx, 10))
	require.NoError(t, s.Save(ctx, 20))

	reopened := NewFileStore(path)
	ids, err := reopened.SavedIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, 10)
	assert.Contains(t, ids, 20)

	require.NoError(t, reopened.Delete(ctx, 10))
	ids, err = reopened.SavedIDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, 10)
	assert.Contains(t, ids, 20)
}

func TestFileStoreMissingFileIsEmptySet(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "favorites.json"))

	ids, err := s.SavedIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestFileStoreIdempotentWrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "favorites.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(ctx, 5))
	require.NoError(t, s.Save(ctx, 5))
	require.NoError(t, s.Delete(ctx, 99))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[5]", string(data))
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewFileStore(path)
	_, err := s.SavedIDs(context.Background())
	assert.Error(t, err)
}
