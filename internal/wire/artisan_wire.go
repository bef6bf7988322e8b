package wire

import (
	"artisanverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireArtisan(r chi.Router, artisanHandler *adaptor.ArtisanHandler) {
	// Public read routes: merged artisan views
	r.Get("/api/artisans", artisanHandler.List)
	r.Get("/api/artisans/{id}", artisanHandler.Get)
}
