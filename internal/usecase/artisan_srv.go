package usecase

import (
	"context"
	"fmt"

	"artisanverse/internal/data/entity"
	"artisanverse/internal/data/store"
	"artisanverse/internal/dto/response"

	"go.uber.org/zap"
)

type ArtisanService interface {
	List(ctx context.Context) ([]*response.ArtisanView, error)
	Get(ctx context.Context, id string) (*response.ArtisanView, error)
}

type artisanService struct {
	store *store.Store
	log   *zap.Logger
}

func NewArtisanService(st *store.Store, log *zap.Logger) ArtisanService {
	return &artisanService{
		store: st,
		log:   log,
	}
}

func (s *artisanService) List(ctx context.Context) ([]*response.ArtisanView, error) {
	artisans, err := s.store.Artisan.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*response.ArtisanView, 0, len(artisans))
	for _, a := range artisans {
		view, err := s.merge(ctx, a)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *artisanService) Get(ctx context.Context, id string) (*response.ArtisanView, error) {
	artisan, err := s.store.Artisan.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if artisan == nil {
		return nil, fmt.Errorf("artisan %s: %w", id, store.ErrNotFound)
	}
	return s.merge(ctx, artisan)
}

// merge builds the public view from the hand-authored seed profile and the
// credential record, field by field. A credential field wins only when
// non-empty, so a partial profile edit never erases seed content.
func (s *artisanService) merge(ctx context.Context, a *entity.Artisan) (*response.ArtisanView, error) {
	profile, err := s.store.Profile.FindByID(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.ArtisanProfile{}
	}

	view := &response.ArtisanView{
		ID:              a.ID,
		Name:            a.Name,
		Email:           a.Email,
		Craft:           firstNonEmpty(a.Craft, profile.Craft),
		Region:          firstNonEmpty(a.Region, profile.Region),
		Style:           firstNonEmpty(a.Style, profile.Style),
		Bio:             firstNonEmpty(a.Bio, profile.Bio),
		AvatarImageID:   profile.AvatarImageID,
		CoverImageID:    profile.CoverImageID,
		GalleryImageIDs: profile.GalleryImageIDs,
	}

	products, err := s.store.Product.ListByArtisan(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	view.Products = products

	return view, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
