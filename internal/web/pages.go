package web

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/catalog"
	"github.com/Rifat770-coder/E-Commerce-Store/internal/demo"
)

// productListData feeds every listing page.
type productListData struct {
	Products         []backend.Product
	Deals            []catalog.Deal
	Categories       []backend.Category
	SelectedCategory string
	SelectedBracket  catalog.PriceBracket
	SelectedSort     catalog.SortKey
	Query            string
	LoadFailed       bool
}

// listProducts fetches the catalog, substituting the demo catalog when the
// backend is unreachable and demo mode is on. The bool reports demo data.
func (h *Handlers) listProducts(ctx context.Context) ([]backend.Product, bool, error) {
	products, err := h.backend.Products.List(ctx)
	if err == nil {
		return products, false, nil
	}
	if backend.IsCanceled(err) {
		return nil, false, err
	}
	log.Printf("[Web] Error fetching products: %v", err)
	if h.demoFallback {
		return demo.Catalog(), true, nil
	}
	return nil, false, err
}

// Home renders the landing page with the client-side filter and sort
// controls applied to the already-fetched list.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	data := productListData{
		SelectedCategory: q.Get("category"),
		SelectedBracket:  catalog.PriceBracket(q.Get("price")),
		SelectedSort:     catalog.SortKey(q.Get("sort")),
	}
	if data.SelectedSort == "" {
		data.SelectedSort = catalog.SortRelevance
	}

	products, demoData, err := h.listProducts(ctx)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		data.LoadFailed = true
	}

	if categories, err := h.backend.Products.Categories(ctx); err == nil {
		data.Categories = categories
	}

	data.Products = catalog.Sort(
		catalog.Filter(products, data.SelectedCategory, data.SelectedBracket),
		data.SelectedSort,
	)

	pd := h.page(r, "Shopcart", data)
	pd.DemoData = demoData
	h.render.Render(w, http.StatusOK, "home", pd)
}

// Category renders one category's listing.
func (h *Handlers) Category(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	data := productListData{SelectedCategory: name}

	products, demoData, err := h.listProducts(ctx)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		data.LoadFailed = true
	}
	data.Products = catalog.Filter(products, name, catalog.BracketNone)

	pd := h.page(r, name, data)
	pd.DemoData = demoData
	h.render.Render(w, http.StatusOK, "category", pd)
}

// Search renders search results from a client-side scan of the catalog.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	data := productListData{Query: query}

	products, demoData, err := h.listProducts(ctx)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		data.LoadFailed = true
	}
	data.Products = catalog.Search(products, query)

	pd := h.page(r, "Search Results", data)
	pd.DemoData = demoData
	h.render.Render(w, http.StatusOK, "search", pd)
}

// Deals renders the deals page with display-only discounts.
func (h *Handlers) Deals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var data productListData

	products, err := h.backend.Products.List(ctx)
	demoData := false
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		log.Printf("[Web] Error fetching products: %v", err)
		if h.demoFallback {
			products = demo.DealCatalog()
			demoData = true
		} else {
			data.LoadFailed = true
		}
	}
	data.Deals = catalog.Deals(products)

	pd := h.page(r, "Today's Deals", data)
	pd.DemoData = demoData
	h.render.Render(w, http.StatusOK, "deals", pd)
}

// NewArrivals renders the what's-new page: the catalog ordered newest
// first.
func (h *Handlers) NewArrivals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var data productListData

	products, demoData, err := h.listProducts(ctx)
	if err != nil {
		if backend.IsCanceled(err) {
			return
		}
		data.LoadFailed = true
	}
	data.Products = catalog.Sort(products, catalog.SortNewest)

	pd := h.page(r, "What's New", data)
	pd.DemoData = demoData
	h.render.Render(w, http.StatusOK, "new", pd)
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, http.StatusNotFound, "notfound", h.page(r, "Page Not Found", nil))
}

// Healthz answers liveness probes.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
