package backend

import "time"

// Product is the storefront's projection of a backend product.
// Price stays a decimal string exactly as the backend sends it.
type Product struct {
	ID                 int            `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	Price              string         `json:"price"`
	ImageURL           string         `json:"image_url"`
	CategoryName       string         `json:"category_name"`
	StockQuantity      int            `json:"stock_quantity"`
	AverageRating      float64        `json:"average_rating,omitempty"`
	ReviewCount        int            `json:"review_count,omitempty"`
	RatingDistribution map[string]int `json:"rating_distribution,omitempty"`
	Reviews            []Review       `json:"reviews,omitempty"`
}

// InStock reports whether the product can be added to a cart.
func (p Product) InStock() bool {
	return p.StockQuantity > 0
}

// Category is a backend product category.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CartItem is one line of the current cart. Name and price are snapshots
// taken by the backend at serialization time.
type CartItem struct {
	ID           int    `json:"id"`
	ProductID    int    `json:"product"`
	ProductName  string `json:"product_name"`
	ProductPrice string `json:"product_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     string `json:"subtotal"`
}

// Cart is the authenticated user's pending cart. It is refetched wholesale
// after every mutation; the storefront never edits it in place.
type Cart struct {
	ID         int        `json:"id"`
	Items      []CartItem `json:"items"`
	TotalPrice string     `json:"total_price"`
	TotalItems int        `json:"total_items"`
}

// OrderItem is one line of a placed order.
type OrderItem struct {
	ID          int    `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Subtotal    string `json:"subtotal"`
}

// Order is an immutable record created from a cart at checkout.
// Status is display-only; the backend owns the lifecycle.
type Order struct {
	ID              int         `json:"id"`
	Status          string      `json:"status"`
	TotalAmount     string      `json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderItem `json:"items"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Review is a product review as listed by the backend.
type Review struct {
	ID                 int       `json:"id"`
	ProductID          int       `json:"product"`
	ProductName        string    `json:"product_name,omitempty"`
	UserName           string    `json:"user_name"`
	UserFirstName      string    `json:"user_first_name"`
	Rating             int       `json:"rating"`
	Title              string    `json:"title"`
	Comment            string    `json:"comment"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	CreatedAt          time.Time `json:"created_at"`
}
