package wire

import (
	"artisanverse/internal/adaptor"
	"artisanverse/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler, log *zap.Logger) {
	// Public marketplace reads
	r.Get("/api/products", productHandler.List)
	r.Get("/api/products/{id}", productHandler.Get)

	// Mutations require an artisan session
	r.With(middleware.RequireArtisan(log)).Post("/api/products", productHandler.Save)
	r.With(middleware.RequireArtisan(log)).Put("/api/profile", productHandler.UpdateProfile)
}
