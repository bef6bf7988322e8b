package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"artisanverse/internal/data/entity"

	"go.uber.org/zap"
)

type CustomerStore interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	Append(ctx context.Context, customer *entity.Customer) error
}

type customerFile struct {
	Customers []*entity.Customer `json:"customers"`
}

type customerStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewCustomerStore(dir string, log *zap.Logger) CustomerStore {
	return &customerStore{
		path: filepath.Join(dir, "customers.json"),
		log:  log,
	}
}

func (s *customerStore) read() ([]*entity.Customer, error) {
	var file customerFile
	if err := readJSONFile(s.path, &file); err != nil {
		s.log.Error("Failed to read customers file", zap.Error(err), zap.String("path", s.path))
		return nil, fmt.Errorf("read customers: %w", err)
	}
	return file.Customers, nil
}

func (s *customerStore) List(ctx context.Context) ([]*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *customerStore) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	customers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *customerStore) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	customers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (s *customerStore) Append(ctx context.Context, customer *entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.read()
	if err != nil {
		return err
	}

	for _, c := range customers {
		if c.Email == customer.Email {
			return fmt.Errorf("customer email %s: %w", customer.Email, ErrConflict)
		}
	}

	if err := writeJSONFile(s.path, customerFile{Customers: append(customers, customer)}); err != nil {
		s.log.Error("Failed to write customers file", zap.Error(err), zap.String("path", s.path))
		return fmt.Errorf("write customers: %w", err)
	}
	return nil
}
