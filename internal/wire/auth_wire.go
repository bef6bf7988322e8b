package wire

import (
	"artisanverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes, no session required
	r.Post("/api/signup-artisan", authHandler.SignupArtisan)
	r.Post("/api/signup-customer", authHandler.SignupCustomer)
	r.Post("/api/login-artisan", authHandler.LoginArtisan)
	r.Post("/api/login-customer", authHandler.LoginCustomer)
	r.Post("/api/logout", authHandler.Logout)
}
