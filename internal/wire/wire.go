package wire

import (
	"net/http"

	"artisanverse/internal/adaptor"
	"artisanverse/internal/ai"
	"artisanverse/internal/cache"
	"artisanverse/internal/data/store"
	"artisanverse/internal/usecase"
	"artisanverse/pkg/middleware"
	"artisanverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(st *store.Store, gen ai.Generator, config *utils.Config, logger *zap.Logger) *App {
	pages := cache.NewPages()

	service := usecase.NewService(st, gen, pages, logger)
	handler := adaptor.NewHandler(service, pages, config, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RouteGuard(logger))

	// Domain routes
	wireAuth(r, handler.Auth)
	wireArtisan(r, handler.Artisan)
	wireProduct(r, handler.Product, logger)
	wireFlow(r, handler.Flow, logger)
	wireDashboard(r, handler.Dashboard, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
