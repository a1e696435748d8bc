package backend

import (
	"context"
	"fmt"
)

// ProductsAPI groups the read-only product and category endpoints.
type ProductsAPI struct {
	c *Client
}

// List fetches the full product catalog.
func (p ProductsAPI) List(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := p.c.get(ctx, "/products/", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get fetches one product with its review details.
func (p ProductsAPI) Get(ctx context.Context, id int) (*Product, error) {
	var product Product
	if err := p.c.get(ctx, fmt.Sprintf("/products/%d/", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories lists the product categories.
func (p ProductsAPI) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := p.c.get(ctx, "/categories/", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
