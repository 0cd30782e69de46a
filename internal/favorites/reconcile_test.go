package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday-service/internal/domain"
)

func TestApplySetsFavoriteForSavedIDs(t *testing.T) {
	matches := []domain.Match{
		{ID: 5, UTCDate: "2023-10-15T10:00:00Z"},
		{ID: 6, UTCDate: "2023-10-15T14:00:00Z"},
	}

	got := Apply(matches, map[int]struct{}{5: {}})

	require.Len(t, got, 2)
	assert.True(t, got[0].Favorite)
	assert.False(t, got[1].Favorite)
}

func TestApplyClearsStaleFlags(t *testing.T) {
	matches := []domain.Match{{ID: 9, Favorite: true}}

	got := Apply(matches, map[int]struct{}{})

	require.Len(t, got, 1)
	assert.False(t, got[0].Favorite)
}

func TestApplyDoesNotMutateInputs(t *testing.T) {
	matches := []domain.Match{{ID: 1}, {ID: 2}}
	saved := map[int]struct{}{1: {}}

	_ = Apply(matches, saved)

	assert.False(t, matches[0].Favorite)
	assert.Equal(t, map[int]struct{}{1: {}}, saved)
}

func TestApplyEmptyInput(t *testing.T) {
	assert.Empty(t, Apply(nil, map[int]struct{}{1: {}}))
}
