package wire

import (
	"artisanverse/internal/adaptor"
	"artisanverse/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFlow(r chi.Router, flowHandler *adaptor.FlowHandler, log *zap.Logger) {
	// The generation tools live in the artisan dashboard
	r.Route("/api/ai", func(r chi.Router) {
		r.Use(middleware.RequireArtisan(log))

		r.Post("/product-details", flowHandler.ProductDetails)
		r.Post("/artisan-bio", flowHandler.ArtisanBio)
		r.Post("/product-narrative", flowHandler.ProductNarrative)
		r.Post("/growth-insights", flowHandler.GrowthInsights)
		r.Post("/instagram-post", flowHandler.InstagramPost)
	})
}
