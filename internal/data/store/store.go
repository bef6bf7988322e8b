package store

import (
	"go.uber.org/zap"
)

// Store groups every file-backed collection, mirroring one JSON file per
// entity class under the data directory.
type Store struct {
	Artisan  ArtisanStore
	Customer CustomerStore
	Product  ProductStore
	Image    ImageStore
	Purchase PurchaseStore
	Profile  ProfileStore
}

func NewStore(dir string, log *zap.Logger) *Store {
	return &Store{
		Artisan:  NewArtisanStore(dir, log),
		Customer: NewCustomerStore(dir, log),
		Product:  NewProductStore(dir, log),
		Image:    NewImageStore(dir, log),
		Purchase: NewPurchaseStore(dir, log),
		Profile:  NewProfileStore(dir, log),
	}
}
