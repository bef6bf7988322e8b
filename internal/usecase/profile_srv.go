package usecase

import (
	"context"

	"artisanverse/internal/cache"
	"artisanverse/internal/data/store"
	"artisanverse/internal/dto/request"
	"artisanverse/internal/dto/response"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

type ProfileService interface {
	Update(ctx context.Context, artisanID string, req *request.UpdateProfileRequest) (*response.AuthResponse, error)
}

type profileService struct {
	store *store.Store
	pages *cache.Pages
	log   *zap.Logger
}

func NewProfileService(st *store.Store, pages *cache.Pages, log *zap.Logger) ProfileService {
	return &profileService{
		store: st,
		pages: pages,
		log:   log,
	}
}

// Update merges the submitted fields into the credential record. Empty fields
// preserve the stored value, so submitting a partial form cannot blank out a
// previously saved bio or craft.
func (s *profileService) Update(ctx context.Context, artisanID string, req *request.UpdateProfileRequest) (*response.AuthResponse, error) {
	if artisanID == "" {
		return nil, ErrUnauthorized
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	artisan, err := s.store.Artisan.Update(ctx, artisanID, store.ArtisanUpdate{
		Name:   req.Name,
		Craft:  req.Craft,
		Region: req.Region,
		Style:  req.Style,
		Bio:    req.Bio,
	})
	if err != nil {
		return nil, err
	}

	// The profile page and the public artisan page both render this record
	s.pages.Invalidate(cache.DashboardProfilePath, cache.ArtisanPath(artisanID))

	s.log.Info("Profile updated", zap.String("artisan_id", artisanID))

	return &response.AuthResponse{
		UserID: artisan.ID,
		Name:   artisan.Name,
		Email:  artisan.Email,
		Role:   artisan.Role,
	}, nil
}
