package web

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

type cartData struct {
	Cart          *backend.Cart
	CheckoutToken string
	LoadFailed    bool
}

// CartPage renders the cart with quantity controls and the checkout form.
// The form carries a fresh idempotency token each render.
func (h *Handlers) CartPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := cartData{CheckoutToken: uuid.NewString()}

	cart, err := h.backend.Cart.Get(ctx)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error fetching cart: %v", err)
		data.LoadFailed = true
	}
	data.Cart = cart

	h.render.Render(w, http.StatusOK, "cart", h.page(r, "Shopping Cart", data))
}

// UpdateCartItem sets a line's quantity. A target below the floor of 1
// issues no backend call at all; the redirect re-renders the unchanged
// cart.
func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 1 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	if err := h.backend.Cart.Update(ctx, itemID, quantity); err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error updating cart item %d: %v", itemID, err)
		h.flash.Error(ctx, sessionID, "Error updating quantity")
	} else {
		h.broadcast.Publish(ctx, session.Change{SessionID: sessionID, Kind: session.ChangeCart})
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// RemoveCartItem deletes a line.
func (h *Handlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	if err := h.backend.Cart.Remove(ctx, itemID); err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error removing cart item %d: %v", itemID, err)
		h.flash.Error(ctx, sessionID, "Error removing item")
	} else {
		h.broadcast.Publish(ctx, session.Change{SessionID: sessionID, Kind: session.ChangeCart})
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Checkout places an order from the current cart. A blank address is
// rejected before any call is issued; the form's idempotency token makes
// a double submit land on the order the first submit created.
func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	address := strings.TrimSpace(r.FormValue("shipping_address"))
	if address == "" {
		h.flash.Error(ctx, sessionID, "Please enter a shipping address")
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	token := r.FormValue("checkout_token")
	if token != "" {
		claimed, existingOrderID, err := h.sessions.Store.ClaimOrderToken(ctx, sessionID, token)
		if err != nil {
			log.Printf("[Web] Error claiming checkout token: %v", err)
		} else if !claimed {
			// Duplicate submit; the first one owns this token.
			if existingOrderID != "" {
				http.Redirect(w, r, "/orders/"+existingOrderID, http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, "/orders", http.StatusSeeOther)
			return
		}
	}

	order, err := h.backend.Orders.Create(ctx, address, token)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error creating order: %v", err)
		if token != "" {
			_ = h.sessions.Store.ReleaseOrderToken(ctx, sessionID, token)
		}
		h.flash.Error(ctx, sessionID, "Error placing order. Please try again.")
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	if token != "" {
		if err := h.sessions.Store.BindOrderToken(ctx, sessionID, token, strconv.Itoa(order.ID)); err != nil {
			log.Printf("[Web] Error binding checkout token: %v", err)
		}
	}

	h.flash.Success(ctx, sessionID, "Order placed successfully!")
	h.broadcast.Publish(ctx, session.Change{SessionID: sessionID, Kind: session.ChangeCart})
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}
