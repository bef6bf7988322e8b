package store

import (
	"context"
	"testing"

	"artisanverse/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProductStore_AppendAndListByArtisan(t *testing.T) {
	s := NewProductStore(t.TempDir(), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, &entity.Product{ID: "prod-1", ArtisanID: "art-1", Name: "Vase"}))
	require.NoError(t, s.Append(ctx, &entity.Product{ID: "prod-2", ArtisanID: "art-2", Name: "Bowl"}))
	require.NoError(t, s.Append(ctx, &entity.Product{ID: "prod-3", ArtisanID: "art-1", Name: "Plate"}))

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	owned, err := s.ListByArtisan(ctx, "art-1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "Vase", owned[0].Name)
	assert.Equal(t, "Plate", owned[1].Name)

	found, err := s.FindByID(ctx, "prod-2")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Bowl", found.Name)

	missing, err := s.FindByID(ctx, "prod-404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestImageStore_AppendBatch(t *testing.T) {
	s := NewImageStore(t.TempDir(), zap.NewNop())
	ctx := context.Background()

	err := s.Append(ctx,
		&entity.ImageAsset{ID: "prod-img-1", ImageURL: "data:image/png;base64,aaa"},
		&entity.ImageAsset{ID: "prod-img-2", ImageURL: "data:image/png;base64,bbb"},
	)
	require.NoError(t, err)

	images, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, images, 2)

	found, err := s.FindByID(ctx, "prod-img-2")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "data:image/png;base64,bbb", found.ImageURL)
}
