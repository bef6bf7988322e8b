package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"strings"

	"artisanverse/internal/cache"
	"artisanverse/internal/data/entity"
	"artisanverse/internal/data/store"
	"artisanverse/internal/dto/request"
	"artisanverse/internal/dto/response"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

const maxImageBytes = 4 * 1024 * 1024 // 4MB per uploaded photo

var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type ProductService interface {
	List(ctx context.Context) ([]response.ProductResponse, error)
	Get(ctx context.Context, id string) (*response.ProductResponse, error)
	ListByArtisan(ctx context.Context, artisanID string) ([]response.ProductResponse, error)
	Save(ctx context.Context, artisanID string, req *request.SaveProductRequest) (*response.ProductResponse, error)
}

type productService struct {
	store *store.Store
	pages *cache.Pages
	log   *zap.Logger
}

func NewProductService(st *store.Store, pages *cache.Pages, log *zap.Logger) ProductService {
	return &productService{
		store: st,
		pages: pages,
		log:   log,
	}
}

func (s *productService) List(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.store.Product.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (s *productService) Get(ctx context.Context, id string) (*response.ProductResponse, error) {
	product, err := s.store.Product.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, store.ErrNotFound)
	}
	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) ListByArtisan(ctx context.Context, artisanID string) ([]response.ProductResponse, error) {
	products, err := s.store.Product.ListByArtisan(ctx, artisanID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Save appends a product and its images. It requires an authenticated artisan
// and performs no file mutation on any validation failure.
func (s *productService) Save(ctx context.Context, artisanID string, req *request.SaveProductRequest) (*response.ProductResponse, error) {
	// 1. Session check before anything touches the files
	if artisanID == "" {
		return nil, ErrUnauthorized
	}

	// 2. Validate field shapes
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Save product validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	// 3. Decode and check every image up front
	keywords := splitKeywords(req.Keywords)
	firstKeyword := "product photo"
	if len(keywords) > 0 {
		firstKeyword = keywords[0]
	}

	images := make([]*entity.ImageAsset, 0, len(req.Images))
	imageIDs := make([]string, 0, len(req.Images))
	for i, payload := range req.Images {
		dataURI, err := encodeImage(payload)
		if err != nil {
			return nil, &ValidationError{Fields: map[string]string{
				fmt.Sprintf("images[%d]", i): err.Error(),
			}}
		}

		imageID := utils.GenerateImageID()
		images = append(images, &entity.ImageAsset{
			ID:          imageID,
			Description: "A photo of " + req.Title,
			ImageURL:    dataURI,
			ImageHint:   firstKeyword,
		})
		imageIDs = append(imageIDs, imageID)
	}

	// 4. Build the product record
	story := req.Keywords
	if story == "" {
		story = "my craft"
	}
	product := &entity.Product{
		ID:          utils.GenerateProductID(),
		Name:        req.Title,
		ArtisanID:   artisanID,
		CategoryID:  "new",
		Price:       rand.Intn(100) + 20, // placeholder price until pricing exists
		Description: req.Description,
		Story:       fmt.Sprintf("Inspired by %s, this piece is a new addition to my collection.", story),
		ImageIDs:    imageIDs,
	}

	// 5. Rewrite both backing files
	if err := s.store.Image.Append(ctx, images...); err != nil {
		return nil, err
	}
	if err := s.store.Product.Append(ctx, product); err != nil {
		return nil, err
	}

	// 6. Drop stale listings
	s.pages.Invalidate(cache.MarketplacePath, cache.DashboardProductsPath)

	s.log.Info("Product saved",
		zap.String("product_id", product.ID),
		zap.String("artisan_id", artisanID),
		zap.Int("images", len(imageIDs)))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// encodeImage validates one upload and renders it as an embeddable data URI.
func encodeImage(payload request.ImagePayload) (string, error) {
	if !acceptedImageTypes[payload.MIMEType] {
		return "", fmt.Errorf("only .jpg, .jpeg, .png and .webp files are accepted")
	}

	data, err := base64.StdEncoding.DecodeString(payload.Data)
	if err != nil {
		return "", fmt.Errorf("image data is not valid base64")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("a file is required")
	}
	if len(data) > maxImageBytes {
		return "", fmt.Errorf("max file size is 4MB")
	}

	return fmt.Sprintf("data:%s;base64,%s", payload.MIMEType, payload.Data), nil
}

func splitKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

func toProductResponses(products []*entity.Product) []response.ProductResponse {
	out := make([]response.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, response.ProductToResponse(p))
	}
	return out
}
