package web

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

type ordersData struct {
	Orders     []backend.Order
	LoadFailed bool
}

// OrdersPage renders the order history.
func (h *Handlers) OrdersPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	var data ordersData
	orders, err := h.backend.Orders.List(ctx)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error fetching orders: %v", err)
		h.flash.Error(ctx, sessionID, "Failed to load orders")
		data.LoadFailed = true
	}
	data.Orders = orders

	h.render.Render(w, http.StatusOK, "orders", h.page(r, "My Orders", data))
}

// OrderDetail renders one order.
func (h *Handlers) OrderDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	order, err := h.backend.Orders.Get(ctx, id)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error fetching order %d: %v", id, err)
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}

	h.render.Render(w, http.StatusOK, "order", h.page(r, "Order Details", order))
}
