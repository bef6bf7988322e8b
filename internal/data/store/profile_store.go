package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"artisanverse/internal/data/entity"

	"go.uber.org/zap"
)

// ProfileStore serves the hand-authored artisan seed profiles. It is
// read-only; profile edits land in the credential record instead.
type ProfileStore interface {
	List(ctx context.Context) ([]*entity.ArtisanProfile, error)
	FindByID(ctx context.Context, id string) (*entity.ArtisanProfile, error)
}

type profileFile struct {
	Profiles []*entity.ArtisanProfile `json:"profiles"`
}

type profileStore struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

func NewProfileStore(dir string, log *zap.Logger) ProfileStore {
	return &profileStore{
		path: filepath.Join(dir, "profiles.json"),
		log:  log,
	}
}

func (s *profileStore) List(ctx context.Context) ([]*entity.ArtisanProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var file profileFile
	if err := readJSONFile(s.path, &file); err != nil {
		s.log.Error("Failed to read profiles file", zap.Error(err), zap.String("path", s.path))
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return file.Profiles, nil
}

func (s *profileStore) FindByID(ctx context.Context, id string) (*entity.ArtisanProfile, error) {
	profiles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
