package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"artisanverse/internal/data/entity"

	"go.uber.org/zap"
)

type PurchaseStore interface {
	List(ctx context.Context) ([]*entity.Purchase, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Purchase, error)
	Append(ctx context.Context, purchase *entity.Purchase) error
}

type purchaseStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewPurchaseStore(dir string, log *zap.Logger) PurchaseStore {
	return &purchaseStore{
		path: filepath.Join(dir, "purchases.json"),
		log:  log,
	}
}

func (s *purchaseStore) read() ([]*entity.Purchase, error) {
	var purchases []*entity.Purchase
	if err := readJSONFile(s.path, &purchases); err != nil {
		s.log.Error("Failed to read purchases file", zap.Error(err), zap.String("path", s.path))
		return nil, fmt.Errorf("read purchases: %w", err)
	}
	return purchases, nil
}

func (s *purchaseStore) List(ctx context.Context) ([]*entity.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *purchaseStore) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Purchase, error) {
	purchases, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]*entity.Purchase, 0)
	for _, p := range purchases {
		if p.CustomerID == customerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

// Append adds one purchase, rewriting the whole file.
func (s *purchaseStore) Append(ctx context.Context, purchase *entity.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchases, err := s.read()
	if err != nil {
		return err
	}

	if err := writeJSONFile(s.path, append(purchases, purchase)); err != nil {
		s.log.Error("Failed to write purchases file", zap.Error(err), zap.String("path", s.path))
		return fmt.Errorf("write purchases: %w", err)
	}
	return nil
}
