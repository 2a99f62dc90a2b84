// Package identity provides session authentication for the admin panel.
// It issues and verifies JWT bearer tokens and exposes the current
// session to downstream systems through the request context.
package identity

import "context"

// Session is the authenticated principal attached to a request.
type Session struct {
	OwnerID  string `json:"sub"`
	Username string `json:"name"`
}

// System issues and verifies session tokens.
type System interface {
	// Login checks the credentials and returns a signed session token.
	// Returns ErrInvalidCredentials when they do not match.
	Login(ctx context.Context, username, password string) (string, error)

	// Verify parses and validates a token, returning its session.
	Verify(token string) (*Session, error)

	// CurrentSession returns the session attached to the context, or
	// ErrUnauthenticated when none exists.
	CurrentSession(ctx context.Context) (*Session, error)
}

type contextKey struct{}

var sessionKey contextKey

// ContextWithSession attaches a session to the context.
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// SessionFromContext returns the session attached to the context, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionKey).(*Session)
	return session, ok && session != nil
}
