package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

// navState feeds the navigation bar's polled fragment.
type navState struct {
	LoggedIn  bool   `json:"logged_in"`
	Username  string `json:"username,omitempty"`
	CartCount int    `json:"cart_count"`
}

// NavState answers the nav poll (every 2s plus window focus) from the
// shared session store. The cart count is cached briefly and invalidated
// by the change broadcast, so a stale counter lasts at most one poll
// interval plus the cache TTL.
func (h *Handlers) NavState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)
	store := h.sessions.Store

	state := navState{}
	if sessionID != "" && store.IsLoggedIn(ctx, sessionID) {
		state.LoggedIn = true
		if profile, ok := store.Profile(ctx, sessionID); ok {
			state.Username = profile.Username
		}
		state.CartCount = h.cartCount(r, sessionID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(state); err != nil {
		log.Printf("[Web] Failed to encode nav state: %v", err)
	}
}

func (h *Handlers) cartCount(r *http.Request, sessionID string) int {
	ctx := r.Context()
	store := h.sessions.Store

	if n, ok := store.CachedCartCount(ctx, sessionID); ok {
		return n
	}

	cart, err := h.backend.Cart.Get(ctx)
	if err != nil {
		if !backend.IsCanceled(err) {
			log.Printf("[Web] Error fetching cart for nav: %v", err)
		}
		return 0
	}
	if err := store.SetCachedCartCount(ctx, sessionID, cart.TotalItems); err != nil {
		log.Printf("[Web] Failed to cache cart count: %v", err)
	}
	return cart.TotalItems
}
