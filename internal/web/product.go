package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/session"
)

type productDetailData struct {
	Product     *backend.Product
	Reviews     []backend.Review
	MaxQuantity int
}

// ProductDetail renders one product with its reviews and add-to-cart form.
// Unknown product IDs navigate back to the listing.
func (h *Handlers) ProductDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	product, err := h.backend.Products.Get(ctx, id)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error fetching product %d: %v", id, err)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	reviews, err := h.backend.Reviews.ListByProduct(ctx, id)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		// Reviews degrade to the detail response's embedded list.
		log.Printf("[Web] Error fetching reviews for product %d: %v", id, err)
		reviews = product.Reviews
	}

	maxQty := product.StockQuantity
	if maxQty > 10 {
		maxQty = 10
	}

	data := productDetailData{Product: product, Reviews: reviews, MaxQuantity: maxQty}
	h.render.Render(w, http.StatusOK, "product", h.page(r, product.Name, data))
}

// AddToCart handles the add form on the product page and card. The cart is
// refetched on the redirect target, never patched locally.
func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	back := fmt.Sprintf("/products/%d", id)

	if !h.loggedIn(r) {
		h.flash.Error(ctx, sessionID, "Please login to add items to cart")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity < 1 {
		quantity = 1
	}

	if err := h.backend.Cart.Add(ctx, id, quantity); err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error adding product %d to cart: %v", id, err)
		h.flash.Error(ctx, sessionID, "Error adding product to cart")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = "Item"
	}
	h.flash.Success(ctx, sessionID, name+" added to cart!")
	h.broadcast.Publish(ctx, session.Change{SessionID: sessionID, Kind: session.ChangeCart})
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// CreateReview handles the review form on the product page; the redirect
// refetches the review list.
func (h *Handlers) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	back := fmt.Sprintf("/products/%d", id)

	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil || rating < 1 || rating > 5 {
		h.flash.Error(ctx, sessionID, "Rating must be between 1 and 5")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	req := backend.CreateReviewRequest{
		Product: id,
		Rating:  rating,
		Title:   r.FormValue("title"),
		Comment: r.FormValue("comment"),
	}
	if err := h.backend.Reviews.Create(ctx, req); err != nil {
		if backend.IsCanceled(err) {
			return
		}
		if errors.Is(err, backend.ErrAuthExpired) {
			h.flash.Error(ctx, sessionID, "Please login to write a review")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		log.Printf("[Web] Error creating review for product %d: %v", id, err)
		h.flash.Error(ctx, sessionID, backend.ValidationMessage(err, "Error submitting review"))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.flash.Success(ctx, sessionID, "Review submitted!")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
