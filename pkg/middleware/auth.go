package middleware

import (
	"net/http"

	"artisanverse/pkg/session"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

// RequireRole protects API routes. Unlike the page-route guard it answers with
// a 401 JSON body instead of a redirect.
func RequireRole(role string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromRequest(r)
			if !ok || sess.Role != role {
				logger.Warn("Unauthorized API request",
					zap.String("path", r.URL.Path),
					zap.String("required_role", role),
					zap.Bool("has_session", ok),
				)
				utils.ResponseUnauthorized(w, "Authentication required. Please log in.")
				return
			}

			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		})
	}
}

// RequireArtisan guards artisan-only API routes.
func RequireArtisan(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRole(session.RoleArtisan, logger)
}

// RequireCustomer guards customer-only API routes.
func RequireCustomer(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRole(session.RoleCustomer, logger)
}
