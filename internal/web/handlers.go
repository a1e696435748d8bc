package web

import (
	"net/http"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/notify"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

// Handlers holds every page handler's dependencies.
type Handlers struct {
	backend      *backend.Client
	sessions     *session.Manager
	flash        *notify.Flasher
	broadcast    *session.Broadcaster
	render       *Renderer
	demoFallback bool
}

// NewHandlers wires the web layer.
func NewHandlers(be *backend.Client, sessions *session.Manager, flash *notify.Flasher, broadcast *session.Broadcaster, render *Renderer, demoFallback bool) *Handlers {
	return &Handlers{
		backend:      be,
		sessions:     sessions,
		flash:        flash,
		broadcast:    broadcast,
		render:       render,
		demoFallback: demoFallback,
	}
}

// page assembles the common template envelope: session affordances plus
// the drained flash queue.
func (h *Handlers) page(r *http.Request, title string, data any) pageData {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	pd := pageData{Title: title, Data: data}
	if sessionID == "" {
		return pd
	}

	pd.LoggedIn = h.sessions.Store.IsLoggedIn(ctx, sessionID)
	if profile, ok := h.sessions.Store.Profile(ctx, sessionID); ok {
		pd.Username = profile.Username
	}
	pd.Flashes = h.flash.Pop(ctx, sessionID)
	return pd
}

// loggedIn reports the session's login flag.
func (h *Handlers) loggedIn(r *http.Request) bool {
	sessionID := session.FromContext(r.Context())
	return sessionID != "" && h.sessions.Store.IsLoggedIn(r.Context(), sessionID)
}
