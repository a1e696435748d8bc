// Package demo holds the fixed fallback catalog rendered when the backend
// is unreachable and demo mode is enabled. It is display data only and
// never reaches the backend.
package demo

import "github.com/Rifat770-coder/E-Commerce-Store/internal/backend"

var catalog = []backend.Product{
	{
		ID:            1,
		Name:          "Demo Smartphone",
		Description:   "This is demo data - API connection failed",
		Price:         "699.99",
		CategoryName:  "Electronics",
		StockQuantity: 10,
	},
	{
		ID:            2,
		Name:          "Demo Laptop",
		Description:   "This is demo data - API connection failed",
		Price:         "1299.99",
		CategoryName:  "Electronics",
		StockQuantity: 5,
	},
	{
		ID:            3,
		Name:          "Demo Headphones",
		Description:   "Premium wireless headphones with noise cancellation.",
		Price:         "199.99",
		CategoryName:  "Electronics",
		StockQuantity: 15,
	},
	{
		ID:            4,
		Name:          "Demo T-Shirt",
		Description:   "Comfortable cotton t-shirt in various colors.",
		Price:         "29.99",
		CategoryName:  "Clothing",
		StockQuantity: 25,
	},
}

var dealCatalog = []backend.Product{
	{
		ID:            1,
		Name:          "Demo Smartphone - Special Deal",
		Description:   "Amazing smartphone with great features at an unbeatable price!",
		Price:         "699.99",
		CategoryName:  "Electronics",
		StockQuantity: 10,
	},
	{
		ID:            2,
		Name:          "Demo Laptop - Limited Offer",
		Description:   "High-performance laptop perfect for work and gaming.",
		Price:         "1299.99",
		CategoryName:  "Electronics",
		StockQuantity: 5,
	},
	{
		ID:            3,
		Name:          "Demo Headphones - Flash Sale",
		Description:   "Premium wireless headphones with noise cancellation.",
		Price:         "199.99",
		CategoryName:  "Electronics",
		StockQuantity: 15,
	},
	{
		ID:            4,
		Name:          "Demo T-Shirt - Clearance",
		Description:   "Comfortable cotton t-shirt in various colors.",
		Price:         "29.99",
		CategoryName:  "Clothing",
		StockQuantity: 25,
	},
}

// Catalog returns a copy of the fallback product list.
func Catalog() []backend.Product {
	out := make([]backend.Product, len(catalog))
	copy(out, catalog)
	return out
}

// DealCatalog returns a copy of the fallback deals list.
func DealCatalog() []backend.Product {
	out := make([]backend.Product, len(dealCatalog))
	copy(out, dealCatalog)
	return out
}
