// internal/domain/catalog/engine.go
package catalog

import (
	"sort"
	"strings"
)

// Evaluate runs the full query pipeline over the product list: search filter,
// category filter, price range filter, then the sort selected by the
// criteria. It is a pure function — the input slice is never mutated and the
// result is always rebuilt from scratch, so repeated evaluation with the same
// inputs yields the same output.
//
// Stage order matters: each filter only sees records that survived the
// previous one, and the featured sort preserves whatever order the filters
// produced (which is the input order).
func Evaluate(products []Product, c Criteria) []Product {
	result := make([]Product, 0, len(products))

	search := strings.ToLower(c.Search)
	filterCategory := c.Category != "" && c.Category != CategoryAll
	var wantCategory string
	if filterCategory {
		wantCategory = NormalizeCategory(c.Category)
	}

	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filterCategory && NormalizeCategory(p.Category) != wantCategory {
			continue
		}
		if !c.Price.Contains(p.Price) {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, c.Sort)
	return result
}

// sortProducts applies the stable comparator for the given mode. Unknown
// modes fall back to featured order, i.e. no reordering.
func sortProducts(products []Product, mode SortMode) {
	switch mode {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortDiscount:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountFraction() > products[j].DiscountFraction()
		})
	}
}
