package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packonce/packonce/internal/engine"
	"github.com/packonce/packonce/internal/store"
	"github.com/packonce/packonce/tests/testutil"
)

func TestSeedIfNeeded(t *testing.T) {
	s := testutil.NewTestStore(t)
	eng := engine.New(s)
	ctx := context.Background()

	require.NoError(t, SeedIfNeeded(ctx, s, eng))

	tags, err := s.GetTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 4)

	templates, err := s.GetTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, templates, 4)

	packs, err := s.GetPacks(ctx, store.PackFilter{})
	require.NoError(t, err)
	require.Len(t, packs, 4)

	// The Tokyo Trip starter pack combines template copies with ad-hoc
	// extras.
	tokyo, err := s.GetPackByName(ctx, "Tokyo Trip")
	require.NoError(t, err)
	assert.Equal(t, "TRAVEL", tokyo.TagDisplayName())
	require.NotNil(t, tokyo.TemplateID)
	assert.Len(t, tokyo.Items, 18)

	var templateCopies, adHoc int
	for _, item := range tokyo.Items {
		if item.TemplateItemID != nil {
			templateCopies++
		} else {
			adHoc++
		}
	}
	assert.Equal(t, 4, templateCopies)
	assert.Equal(t, 14, adHoc)

	count, ok := tokyo.LastMinuteAdds()
	assert.True(t, ok)
	assert.Equal(t, 1, count)
}

func TestSeedIsIdempotent(t *testing.T) {
	s := testutil.NewTestStore(t)
	eng := engine.New(s)
	ctx := context.Background()

	require.NoError(t, SeedIfNeeded(ctx, s, eng))
	require.NoError(t, SeedIfNeeded(ctx, s, eng))

	packs, err := s.GetPacks(ctx, store.PackFilter{})
	require.NoError(t, err)
	assert.Len(t, packs, 4)

	tags, err := s.GetTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 4)
}
