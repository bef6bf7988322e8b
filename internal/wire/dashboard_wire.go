package wire

import (
	"artisanverse/internal/adaptor"
	"artisanverse/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler, log *zap.Logger) {
	// The global route guard already gates these prefixes by role and
	// attaches the session to the context.
	r.Get("/dashboard-artisan", dashboardHandler.Artisan)
	r.Get("/dashboard-customer", dashboardHandler.Customer)

	r.With(middleware.RequireCustomer(log)).Get("/api/purchases", dashboardHandler.Purchases)
	r.With(middleware.RequireCustomer(log)).Post("/api/purchases", dashboardHandler.Checkout)
}
