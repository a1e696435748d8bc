// Package catalog narrows and orders already-fetched product lists without
// issuing new backend calls. Every function is pure: inputs are never
// mutated and results are fresh slices.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Rifat770-coder/E-Commerce-Store/internal/backend"
)

// PriceBracket names a fixed price range filter.
type PriceBracket string

const (
	BracketNone     PriceBracket = ""
	BracketUnder50  PriceBracket = "under-50"
	Bracket50To100  PriceBracket = "50-100"
	Bracket100To500 PriceBracket = "100-500"
	BracketOver500  PriceBracket = "over-500"
)

// SortKey names a product ordering.
type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	SortNewest    SortKey = "newest"
)

var (
	price50  = decimal.NewFromInt(50)
	price100 = decimal.NewFromInt(100)
	price500 = decimal.NewFromInt(500)
)

// Price parses a product's decimal price string. Unparseable prices are
// treated as zero so filtering and sorting never fail on bad data.
func Price(p backend.Product) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(p.Price))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Filter returns the products matching the category (exact,
// case-insensitive, empty or "all" means any) and the price bracket.
func Filter(products []backend.Product, category string, bracket PriceBracket) []backend.Product {
	out := make([]backend.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != "all" &&
			!strings.EqualFold(p.CategoryName, category) {
			continue
		}
		if !inBracket(Price(p), bracket) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func inBracket(price decimal.Decimal, bracket PriceBracket) bool {
	switch bracket {
	case BracketUnder50:
		return price.LessThan(price50)
	case Bracket50To100:
		return price.GreaterThanOrEqual(price50) && price.LessThanOrEqual(price100)
	case Bracket100To500:
		return price.GreaterThanOrEqual(price100) && price.LessThanOrEqual(price500)
	case BracketOver500:
		return price.GreaterThan(price500)
	default:
		return true
	}
}

// Sort returns a new list ordered by the sort key. SortRelevance keeps the
// input order; SortNewest uses descending ID as a proxy for recency.
func Sort(products []backend.Product, key SortKey) []backend.Product {
	out := make([]backend.Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return Price(out[i]).LessThan(Price(out[j]))
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return Price(out[i]).GreaterThan(Price(out[j]))
		})
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID > out[j].ID
		})
	}
	return out
}

// Search returns the products whose name, description, or category name
// contains the query, case-insensitively. An empty query matches all.
func Search(products []backend.Product, query string) []backend.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]backend.Product, len(products))
		copy(out, products)
		return out
	}
	out := make([]backend.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.CategoryName), query) {
			out = append(out, p)
		}
	}
	return out
}
