package adaptor

import (
	"net/http"

	"artisanverse/internal/cache"
	"artisanverse/internal/usecase"
	"artisanverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ArtisanHandler struct {
	service usecase.ArtisanService
	pages   *cache.Pages
	log     *zap.Logger
}

func NewArtisanHandler(service usecase.ArtisanService, pages *cache.Pages, log *zap.Logger) *ArtisanHandler {
	return &ArtisanHandler{
		service: service,
		pages:   pages,
		log:     log,
	}
}

// List handles GET /api/artisans
func (h *ArtisanHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list artisans")
		return
	}

	utils.ResponseSuccess(w, "Artisans retrieved", views)
}

// Get handles GET /api/artisans/{id}. The merged view is cached per artisan
// until a profile update evicts it.
func (h *ArtisanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	path := cache.ArtisanPath(id)
	if cached, ok := h.pages.Get(path); ok {
		utils.ResponseSuccess(w, "Artisan retrieved", cached)
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get artisan")
		return
	}

	h.pages.Put(path, view)
	utils.ResponseSuccess(w, "Artisan retrieved", view)
}
