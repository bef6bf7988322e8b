package adaptor

import (
	"encoding/json"
	"net/http"

	"artisanverse/internal/cache"
	"artisanverse/internal/dto/request"
	"artisanverse/internal/usecase"
	"artisanverse/pkg/session"
	"artisanverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products usecase.ProductService
	profiles usecase.ProfileService
	pages    *cache.Pages
	log      *zap.Logger
}

func NewProductHandler(products usecase.ProductService, profiles usecase.ProfileService, pages *cache.Pages, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		profiles: profiles,
		pages:    pages,
		log:      log,
	}
}

// List handles GET /api/products. The rendered listing is cached until the
// next product save evicts it.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.pages.Get(cache.MarketplacePath); ok {
		utils.ResponseSuccess(w, "Products retrieved", cached)
		return
	}

	products, err := h.products.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	h.pages.Put(cache.MarketplacePath, products)
	utils.ResponseSuccess(w, "Products retrieved", products)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.products.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved", product)
}

// Save handles POST /api/products. The route is mounted behind the artisan
// session middleware; the service still refuses an empty artisan id so the
// no-session path can never mutate the files.
func (h *ProductHandler) Save(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req request.SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.products.Save(r.Context(), sess.UserID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "save product")
		return
	}

	utils.ResponseCreated(w, "Product saved", product)
}

// UpdateProfile handles PUT /api/profile
func (h *ProductHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.profiles.Update(r.Context(), sess.UserID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully!", resp)
}
