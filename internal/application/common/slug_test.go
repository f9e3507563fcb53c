package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/shared/errors"
)

type slugged struct {
	id   uint
	slug string
}

func (s slugged) ID() uint { return s.id }

func TestFreeSlug(t *testing.T) {
	taken := map[string]uint{"open-day": 1, "open-day-2": 2}
	exists := func(_ context.Context, slug string, excludeID uint) (bool, error) {
		id, ok := taken[slug]
		return ok && id != excludeID, nil
	}
	ctx := context.Background()

	slug, err := FreeSlug(ctx, exists, 0, "", "Open Day")
	require.NoError(t, err)
	assert.Equal(t, "open-day-3", slug)

	slug, err = FreeSlug(ctx, exists, 1, "open-day", "Open Day")
	require.NoError(t, err)
	assert.Equal(t, "open-day", slug)

	slug, err = FreeSlug(ctx, exists, 2, "", "Anything")
	require.NoError(t, err)
	assert.Empty(t, slug)

	slug, err = DerivedSlug(ctx, exists, 2, "", "Open Day")
	require.NoError(t, err)
	assert.Equal(t, "open-day-2", slug)
}

func TestSlugLookup(t *testing.T) {
	rows := map[string]slugged{"policy": {id: 4, slug: "policy"}}
	exists := SlugLookup(func(_ context.Context, slug string) (slugged, error) {
		if r, ok := rows[slug]; ok {
			return r, nil
		}
		return slugged{}, errors.NewNotFoundError("not found")
	})
	ctx := context.Background()

	found, err := exists(ctx, "policy", 0)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = exists(ctx, "policy", 4)
	require.NoError(t, err)
	assert.False(t, found)

	found, err = exists(ctx, "other", 0)
	require.NoError(t, err)
	assert.False(t, found)
}
