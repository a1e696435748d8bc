package backend

import (
	"context"
	"fmt"
	"net/http"
)

// OrdersAPI groups the order endpoints.
type OrdersAPI struct {
	c *Client
}

// Create places an order from the current cart. idempotencyToken, when
// non-empty, is sent as X-Idempotency-Key so a retried submit cannot
// create a duplicate order.
func (o OrdersAPI) Create(ctx context.Context, shippingAddress, idempotencyToken string) (*Order, error) {
	var header http.Header
	if idempotencyToken != "" {
		header = http.Header{"X-Idempotency-Key": []string{idempotencyToken}}
	}
	body := map[string]string{"shipping_address": shippingAddress}
	var order Order
	if _, err := o.c.do(ctx, http.MethodPost, "/orders/create/", body, &order, header); err != nil {
		return nil, err
	}
	return &order, nil
}

// List fetches the current user's order history.
func (o OrdersAPI) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := o.c.get(ctx, "/orders/", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get fetches one order.
func (o OrdersAPI) Get(ctx context.Context, id int) (*Order, error) {
	var order Order
	if err := o.c.get(ctx, fmt.Sprintf("/orders/%d/", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}
