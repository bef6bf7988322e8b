package session

import "context"

type contextKey string

const sessionKey contextKey = "auth_session"

// NewContext attaches a decoded session to the request context.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the session previously attached by the guard middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey).(Session)
	return s, ok
}
