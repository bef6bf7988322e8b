package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"artisanverse/internal/data/entity"

	"go.uber.org/zap"
)

type ProductStore interface {
	List(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	ListByArtisan(ctx context.Context, artisanID string) ([]*entity.Product, error)
	Append(ctx context.Context, product *entity.Product) error
}

// products.json is a bare array, unlike the user files.
type productStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewProductStore(dir string, log *zap.Logger) ProductStore {
	return &productStore{
		path: filepath.Join(dir, "products.json"),
		log:  log,
	}
}

func (s *productStore) read() ([]*entity.Product, error) {
	var products []*entity.Product
	if err := readJSONFile(s.path, &products); err != nil {
		s.log.Error("Failed to read products file", zap.Error(err), zap.String("path", s.path))
		return nil, fmt.Errorf("read products: %w", err)
	}
	return products, nil
}

func (s *productStore) List(ctx context.Context) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *productStore) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *productStore) ListByArtisan(ctx context.Context, artisanID string) ([]*entity.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]*entity.Product, 0)
	for _, p := range products {
		if p.ArtisanID == artisanID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (s *productStore) Append(ctx context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.read()
	if err != nil {
		return err
	}

	if err := writeJSONFile(s.path, append(products, product)); err != nil {
		s.log.Error("Failed to write products file", zap.Error(err), zap.String("path", s.path))
		return fmt.Errorf("write products: %w", err)
	}
	return nil
}
