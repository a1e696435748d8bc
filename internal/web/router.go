package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the storefront routes.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger)
	r.Use(h.recoverer)
	r.Use(h.sessions.Middleware)

	r.Get("/healthz", h.Healthz)
	r.Handle("/static/*", StaticHandler())

	// Listing pages
	r.Get("/", h.Home)
	r.Get("/search", h.Search)
	r.Get("/category/{name}", h.Category)
	r.Get("/deals", h.Deals)
	r.Get("/new", h.NewArrivals)

	// Product detail
	r.Get("/products/{id}", h.ProductDetail)
	r.Post("/products/{id}/cart", h.AddToCart)
	r.Post("/products/{id}/reviews", h.CreateReview)

	// Auth
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Post("/logout", h.Logout)

	// Cart & checkout
	r.Get("/cart", h.requireLogin(h.CartPage))
	r.Post("/cart/items/{id}/update", h.requireLogin(h.UpdateCartItem))
	r.Post("/cart/items/{id}/remove", h.requireLogin(h.RemoveCartItem))
	r.Post("/checkout", h.requireLogin(h.Checkout))

	// Orders
	r.Get("/orders", h.requireLogin(h.OrdersPage))
	r.Get("/orders/{id}", h.requireLogin(h.OrderDetail))

	// Profile
	r.Get("/profile", h.requireLogin(h.ProfilePage))
	r.Get("/profile/edit", h.requireLogin(h.ProfileEditPage))
	r.Post("/profile/edit", h.requireLogin(h.ProfileSave))

	// Reviews
	r.Get("/reviews", h.requireLogin(h.MyReviews))
	r.Post("/reviews/{id}/update", h.requireLogin(h.UpdateReview))
	r.Post("/reviews/{id}/delete", h.requireLogin(h.DeleteReview))

	// Nav fragment, polled by the base layout
	r.Get("/nav/state", h.NavState)

	r.NotFound(h.NotFound)

	return r
}
