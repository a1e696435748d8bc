package web

import (
	"context"
	"log"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

// SessionCredentials backs the backend client's credential hooks with the
// per-browser session store: outgoing calls replay the stored backend
// cookie, and a 401/403 clears the session's login flag (the interceptor
// side effect every page relies on).
type SessionCredentials struct {
	Store *session.Store
}

// BackendCookie returns the backend session cookie for the request's
// session, or "" for anonymous requests.
func (s SessionCredentials) BackendCookie(ctx context.Context) string {
	sessionID := session.FromContext(ctx)
	if sessionID == "" {
		return ""
	}
	return s.Store.BackendCookie(ctx, sessionID)
}

// AuthExpired clears the login flag so the nav and the login-required
// pages see the session as signed out.
func (s SessionCredentials) AuthExpired(ctx context.Context) {
	sessionID := session.FromContext(ctx)
	if sessionID == "" {
		return
	}
	log.Printf("[Web] Backend rejected credentials for session %s; clearing login flag", sessionID)
	if err := s.Store.SetLoggedIn(ctx, sessionID, false); err != nil {
		log.Printf("[Web] Failed to clear login flag: %v", err)
	}
}
