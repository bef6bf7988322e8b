package middleware

import (
	"net/http"
	"strings"

	"artisanverse/pkg/session"

	"go.uber.org/zap"
)

// Decision is the outcome of the route guard for one request path.
type Decision struct {
	Allow    bool
	Redirect string // target path when Allow is false, or a forced redirect
}

// Decide applies the static path-prefix table for role-gated page routes.
// It is a pure function so the policy can be tested without a server.
//
//   - /dashboard-artisan requires an artisan session, else redirect to /login-artisan
//   - /dashboard-customer requires a customer session, else redirect to /login-customer
//   - /account requires a customer session; valid sessions are still redirected to
//     /dashboard-customer (legacy alias for the old account page)
//   - everything else is allowed unconditionally
func Decide(path string, sess session.Session, hasSession bool) Decision {
	switch {
	case strings.HasPrefix(path, "/dashboard-artisan"):
		if !hasSession || sess.Role != session.RoleArtisan {
			return Decision{Redirect: "/login-artisan"}
		}
		return Decision{Allow: true}

	case strings.HasPrefix(path, "/dashboard-customer"):
		if !hasSession || sess.Role != session.RoleCustomer {
			return Decision{Redirect: "/login-customer"}
		}
		return Decision{Allow: true}

	case strings.HasPrefix(path, "/account"):
		if !hasSession || sess.Role != session.RoleCustomer {
			return Decision{Redirect: "/login-customer"}
		}
		return Decision{Redirect: "/dashboard-customer"}

	default:
		return Decision{Allow: true}
	}
}

// RouteGuard enforces the Decide policy on incoming requests and attaches the
// decoded session to the context for downstream handlers.
func RouteGuard(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromRequest(r)

			decision := Decide(r.URL.Path, sess, ok)
			if decision.Redirect != "" {
				logger.Debug("Route guard redirect",
					zap.String("path", r.URL.Path),
					zap.String("target", decision.Redirect),
					zap.Bool("has_session", ok),
				)
				http.Redirect(w, r, decision.Redirect, http.StatusFound)
				return
			}

			if ok {
				r = r.WithContext(session.NewContext(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}
