// Package session implements the auth-session cookie scheme: a plaintext
// "role:id" value with no expiry and no server-side state. The token is a
// functional placeholder, not a security contract; the route guard treats
// anything it cannot parse as "no session".
package session

import (
	"net/http"
	"strings"
)

const CookieName = "auth-session"

const (
	RoleArtisan  = "artisan"
	RoleCustomer = "customer"
)

// Session is the decoded cookie value.
type Session struct {
	Role   string
	UserID string
}

// Token renders the cookie value ("artisan:art-1").
func (s Session) Token() string {
	return s.Role + ":" + s.UserID
}

// Parse decodes a cookie value. Malformed values (no colon, unknown role,
// empty id) yield ok=false and are treated identically to a missing cookie.
func Parse(value string) (Session, bool) {
	role, id, found := strings.Cut(value, ":")
	if !found || id == "" {
		return Session{}, false
	}
	if role != RoleArtisan && role != RoleCustomer {
		return Session{}, false
	}
	return Session{Role: role, UserID: id}, true
}

// FromRequest extracts and decodes the session cookie from a request.
func FromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}
	return Parse(cookie.Value)
}

// SetCookie issues the session cookie: path-root, SameSite Lax, no expiry.
// The Secure flag is only set in production-like environments.
func SetCookie(w http.ResponseWriter, s Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.Token(),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	})
}
