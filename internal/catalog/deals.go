package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
)

// Deal is a product with a display-only discount applied.
type Deal struct {
	Product         backend.Product
	DiscountPercent int
	OriginalPrice   decimal.Decimal
	DiscountedPrice decimal.Decimal
}

// DealFor derives a stable 10-60% discount from the product ID, so a deals
// page renders the same figures across refreshes. The discount never
// reaches the backend; prices there are authoritative.
func DealFor(p backend.Product) Deal {
	percent := 10 + p.ID%51
	original := Price(p)
	factor := decimal.NewFromInt(int64(100 - percent)).Div(decimal.NewFromInt(100))
	return Deal{
		Product:         p,
		DiscountPercent: percent,
		OriginalPrice:   original,
		DiscountedPrice: original.Mul(factor).Round(2),
	}
}

// Deals maps a product list to its deal projections.
func Deals(products []backend.Product) []Deal {
	out := make([]Deal, 0, len(products))
	for _, p := range products {
		out = append(out, DealFor(p))
	}
	return out
}
