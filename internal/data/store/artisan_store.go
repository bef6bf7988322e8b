package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"artisanverse/internal/data/entity"

	"go.uber.org/zap"
)

// ArtisanUpdate carries the editable profile fields. Empty fields preserve
// the stored value; "no value supplied" and "empty string supplied" are
// deliberately the same here so a partial form can never blank a field.
type ArtisanUpdate struct {
	Name   string
	Craft  string
	Region string
	Style  string
	Bio    string
}

type ArtisanStore interface {
	List(ctx context.Context) ([]*entity.Artisan, error)
	FindByID(ctx context.Context, id string) (*entity.Artisan, error)
	FindByEmail(ctx context.Context, email string) (*entity.Artisan, error)
	Append(ctx context.Context, artisan *entity.Artisan) error
	Update(ctx context.Context, id string, fields ArtisanUpdate) (*entity.Artisan, error)
}

// artisans.json holds an object with a named array, not a bare array.
type artisanFile struct {
	Artisans []*entity.Artisan `json:"artisans"`
}

type artisanStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewArtisanStore(dir string, log *zap.Logger) ArtisanStore {
	return &artisanStore{
		path: filepath.Join(dir, "artisans.json"),
		log:  log,
	}
}

func (s *artisanStore) read() ([]*entity.Artisan, error) {
	var file artisanFile
	if err := readJSONFile(s.path, &file); err != nil {
		s.log.Error("Failed to read artisans file", zap.Error(err), zap.String("path", s.path))
		return nil, fmt.Errorf("read artisans: %w", err)
	}
	return file.Artisans, nil
}

func (s *artisanStore) write(artisans []*entity.Artisan) error {
	if err := writeJSONFile(s.path, artisanFile{Artisans: artisans}); err != nil {
		s.log.Error("Failed to write artisans file", zap.Error(err), zap.String("path", s.path))
		return fmt.Errorf("write artisans: %w", err)
	}
	return nil
}

func (s *artisanStore) List(ctx context.Context) ([]*entity.Artisan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *artisanStore) FindByID(ctx context.Context, id string) (*entity.Artisan, error) {
	artisans, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range artisans {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (s *artisanStore) FindByEmail(ctx context.Context, email string) (*entity.Artisan, error) {
	artisans, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	// Exact, case-sensitive match is the lookup contract
	for _, a := range artisans {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

// Append adds a new artisan record. Email uniqueness is re-checked under the
// store mutex so two concurrent signups cannot both pass the pre-check.
func (s *artisanStore) Append(ctx context.Context, artisan *entity.Artisan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	artisans, err := s.read()
	if err != nil {
		return err
	}

	for _, a := range artisans {
		if a.Email == artisan.Email {
			return fmt.Errorf("artisan email %s: %w", artisan.Email, ErrConflict)
		}
	}

	return s.write(append(artisans, artisan))
}

func (s *artisanStore) Update(ctx context.Context, id string, fields ArtisanUpdate) (*entity.Artisan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	artisans, err := s.read()
	if err != nil {
		return nil, err
	}

	for _, a := range artisans {
		if a.ID != id {
			continue
		}

		if fields.Name != "" {
			a.Name = fields.Name
		}
		if fields.Craft != "" {
			a.Craft = fields.Craft
		}
		if fields.Region != "" {
			a.Region = fields.Region
		}
		if fields.Style != "" {
			a.Style = fields.Style
		}
		if fields.Bio != "" {
			a.Bio = fields.Bio
		}

		if err := s.write(artisans); err != nil {
			return nil, err
		}
		return a, nil
	}

	return nil, fmt.Errorf("artisan %s: %w", id, ErrNotFound)
}
