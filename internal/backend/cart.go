package backend

import (
	"context"
	"fmt"
)

// CartAPI groups the cart endpoints. Every mutation is followed by a
// whole-cart refetch in the web layer; nothing here updates optimistically.
type CartAPI struct {
	c *Client
}

// Get fetches the current cart.
func (ca CartAPI) Get(ctx context.Context) (*Cart, error) {
	var cart Cart
	if err := ca.c.get(ctx, "/cart/", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Add puts quantity units of a product into the cart.
func (ca CartAPI) Add(ctx context.Context, productID, quantity int) error {
	body := map[string]int{"product_id": productID, "quantity": quantity}
	return ca.c.post(ctx, "/cart/add/", body, nil)
}

// Update sets a cart item's quantity. Callers enforce the quantity floor
// of 1 before issuing the call.
func (ca CartAPI) Update(ctx context.Context, itemID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return ca.c.put(ctx, fmt.Sprintf("/cart/update/%d/", itemID), body, nil)
}

// Remove deletes a cart item.
func (ca CartAPI) Remove(ctx context.Context, itemID int) error {
	return ca.c.delete(ctx, fmt.Sprintf("/cart/remove/%d/", itemID))
}
