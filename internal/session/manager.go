package session

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName carries the signed session-ID token in the browser.
const CookieName = "shopcart_session"

type contextKey string

const sessionContextKey contextKey = "session_id"

// Manager issues session cookies and attaches the session ID to requests.
type Manager struct {
	Store        *Store
	Tokens       *TokenService
	SecureCookie bool
}

// NewManager builds a manager.
func NewManager(store *Store, tokens *TokenService, secureCookie bool) *Manager {
	return &Manager{Store: store, Tokens: tokens, SecureCookie: secureCookie}
}

// Middleware ensures every request has a session: a valid cookie is
// honored, anything else (missing, tampered, expired) gets a fresh
// session ID and a new cookie.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""
		if cookie, err := r.Cookie(CookieName); err == nil {
			if id, err := m.Tokens.Validate(cookie.Value); err == nil {
				sessionID = id
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			m.setCookie(w, sessionID)
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Manager) setCookie(w http.ResponseWriter, sessionID string) {
	token, expiresAt, err := m.Tokens.Generate(sessionID)
	if err != nil {
		log.Printf("[Session] Failed to sign session cookie: %v", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt) / time.Second),
		HttpOnly: true,
		Secure:   m.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromContext returns the request's session ID, or "" outside the
// middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionContextKey).(string)
	return id
}
