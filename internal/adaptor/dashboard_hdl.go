package adaptor

import (
	"encoding/json"
	"net/http"

	"artisanverse/internal/dto/request"
	"artisanverse/internal/usecase"
	"artisanverse/pkg/session"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

// DashboardHandler serves the role-gated dashboard data routes. Page
// rendering lives elsewhere; these endpoints exist behind the route guard and
// return the data each dashboard needs.
type DashboardHandler struct {
	artisans  usecase.ArtisanService
	customers usecase.CustomerService
	log       *zap.Logger
}

func NewDashboardHandler(artisans usecase.ArtisanService, customers usecase.CustomerService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		artisans:  artisans,
		customers: customers,
		log:       log,
	}
}

// Artisan handles GET /dashboard-artisan
func (h *DashboardHandler) Artisan(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required. Please log in.")
		return
	}

	view, err := h.artisans.Get(r.Context(), sess.UserID)
	if err != nil {
		handleServiceError(w, h.log, err, "load artisan dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard data retrieved", view)
}

// Customer handles GET /dashboard-customer
func (h *DashboardHandler) Customer(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required. Please log in.")
		return
	}

	purchases, err := h.customers.Purchases(r.Context(), sess.UserID)
	if err != nil {
		handleServiceError(w, h.log, err, "load customer dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard data retrieved", purchases)
}

// Purchases handles GET /api/purchases
func (h *DashboardHandler) Purchases(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	purchases, err := h.customers.Purchases(r.Context(), sess.UserID)
	if err != nil {
		handleServiceError(w, h.log, err, "list purchases")
		return
	}

	utils.ResponseSuccess(w, "Purchases retrieved", purchases)
}

// Checkout handles POST /api/purchases
func (h *DashboardHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	view, err := h.customers.Checkout(r.Context(), sess.UserID, req.ProductID)
	if err != nil {
		handleServiceError(w, h.log, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "Purchase completed", view)
}
