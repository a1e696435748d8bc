package backend

import (
	"context"
	"fmt"
)

// ReviewsAPI groups the review endpoints.
type ReviewsAPI struct {
	c *Client
}

// CreateReviewRequest carries a new review form.
type CreateReviewRequest struct {
	Product int    `json:"product"`
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// UpdateReviewRequest carries a partial review edit; nil fields are left
// unchanged by the backend.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Title   *string `json:"title,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// ListByProduct fetches all reviews for a product.
func (r ReviewsAPI) ListByProduct(ctx context.Context, productID int) ([]Review, error) {
	var reviews []Review
	if err := r.c.get(ctx, fmt.Sprintf("/products/%d/reviews/", productID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create submits a new review. The page refetches the list afterwards.
func (r ReviewsAPI) Create(ctx context.Context, req CreateReviewRequest) error {
	return r.c.post(ctx, "/reviews/", req, nil)
}

// Update edits an existing review owned by the current user.
func (r ReviewsAPI) Update(ctx context.Context, reviewID int, req UpdateReviewRequest) error {
	return r.c.put(ctx, fmt.Sprintf("/reviews/%d/", reviewID), req, nil)
}

// Delete removes a review owned by the current user.
func (r ReviewsAPI) Delete(ctx context.Context, reviewID int) error {
	return r.c.delete(ctx, fmt.Sprintf("/reviews/%d/delete/", reviewID))
}

// ListMine fetches the current user's reviews across all products.
func (r ReviewsAPI) ListMine(ctx context.Context) ([]Review, error) {
	var reviews []Review
	if err := r.c.get(ctx, "/users/reviews/", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
