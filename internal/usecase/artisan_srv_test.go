package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"artisanverse/internal/data/entity"
	"artisanverse/internal/data/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedProfiles(t *testing.T, dir string, profiles []*entity.ArtisanProfile) {
	t.Helper()
	data, err := json.MarshalIndent(map[string]any{"profiles": profiles}, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profiles.json"), data, 0644))
}

func TestArtisanService_MergePrefersNonEmptyCredentialFields(t *testing.T) {
	dir := t.TempDir()
	seedProfiles(t, dir, []*entity.ArtisanProfile{{
		ID:              "art-1",
		Craft:           "Pottery",
		Region:          "Tuscany, Italy",
		Style:           "Organic & Ethereal",
		Bio:             "seed bio",
		AvatarImageID:   "artisan-elena",
		CoverImageID:    "cover-pottery",
		GalleryImageIDs: []string{"gallery-1"},
	}})

	st := store.NewStore(dir, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, st.Artisan.Append(ctx, &entity.Artisan{
		ID:    "art-1",
		Name:  "Elena Vance",
		Email: "elena@x.com",
		Role:  entity.RoleArtisan,
		Bio:   "edited bio", // only this credential field is set
	}))
	require.NoError(t, st.Product.Append(ctx, &entity.Product{ID: "prod-1", ArtisanID: "art-1"}))

	s := NewArtisanService(st, zap.NewNop())

	view, err := s.Get(ctx, "art-1")
	require.NoError(t, err)

	// Edited field wins, everything else falls back to the seed profile
	assert.Equal(t, "edited bio", view.Bio)
	assert.Equal(t, "Pottery", view.Craft)
	assert.Equal(t, "Tuscany, Italy", view.Region)
	assert.Equal(t, "Organic & Ethereal", view.Style)
	assert.Equal(t, "artisan-elena", view.AvatarImageID)
	assert.Equal(t, []string{"gallery-1"}, view.GalleryImageIDs)
	require.Len(t, view.Products, 1)
	assert.Equal(t, "prod-1", view.Products[0].ID)
}

func TestArtisanService_NewSignupHasNoSeedProfile(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Artisan.Append(ctx, &entity.Artisan{
		ID:    "art-2",
		Name:  "New Maker",
		Email: "new@x.com",
		Role:  entity.RoleArtisan,
	}))

	s := NewArtisanService(st, zap.NewNop())

	views, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "New Maker", views[0].Name)
	assert.Empty(t, views[0].Bio)
	assert.Empty(t, views[0].Products)
}

func TestArtisanService_GetUnknownID(t *testing.T) {
	s := NewArtisanService(newTestStore(t), zap.NewNop())

	_, err := s.Get(context.Background(), "art-404")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
