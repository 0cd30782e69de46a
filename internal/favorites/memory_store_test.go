package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Save(ctx, 42))

	ids, err := s.SavedIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, 42)

	require.NoError(t, s.Delete(ctx, 42))

	ids, err = s.SavedIDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, 42)
}

func TestMemoryStoreIdempotence(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Save(ctx, 7))
	require.NoError(t, s.Save(ctx, 7))

	ids, err := s.SavedIDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	require.NoError(t, s.Delete(ctx, 7))
	require.NoError(t, s.Delete(ctx, 7))

	ids, err = s.SavedIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemoryStoreSavedIDsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, 1))

	ids, err := s.SavedIDs(ctx)
	require.NoError(t, err)
	ids[99] = struct{}{}

	fresh, err := s.SavedIDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, fresh, 99)
}
