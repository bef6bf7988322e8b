package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"artisanverse/internal/data/entity"

	"go.uber.org/zap"
)

type ImageStore interface {
	List(ctx context.Context) ([]*entity.ImageAsset, error)
	FindByID(ctx context.Context, id string) (*entity.ImageAsset, error)
	Append(ctx context.Context, images ...*entity.ImageAsset) error
}

type imageFile struct {
	PlaceholderImages []*entity.ImageAsset `json:"placeholderImages"`
}

type imageStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewImageStore(dir string, log *zap.Logger) ImageStore {
	return &imageStore{
		path: filepath.Join(dir, "images.json"),
		log:  log,
	}
}

func (s *imageStore) read() ([]*entity.ImageAsset, error) {
	var file imageFile
	if err := readJSONFile(s.path, &file); err != nil {
		s.log.Error("Failed to read images file", zap.Error(err), zap.String("path", s.path))
		return nil, fmt.Errorf("read images: %w", err)
	}
	return file.PlaceholderImages, nil
}

func (s *imageStore) List(ctx context.Context) ([]*entity.ImageAsset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *imageStore) FindByID(ctx context.Context, id string) (*entity.ImageAsset, error) {
	images, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		if img.ID == id {
			return img, nil
		}
	}
	return nil, nil
}

// Append adds image assets in one file rewrite so a product's images land
// together.
func (s *imageStore) Append(ctx context.Context, images ...*entity.ImageAsset) error {
	if len(images) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.read()
	if err != nil {
		return err
	}

	if err := writeJSONFile(s.path, imageFile{PlaceholderImages: append(existing, images...)}); err != nil {
		s.log.Error("Failed to write images file", zap.Error(err), zap.String("path", s.path))
		return fmt.Errorf("write images: %w", err)
	}
	return nil
}
