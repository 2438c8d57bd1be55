package catalog

import (
	"sort"
	"strings"

	"github.com/velvetglow/storefront/internal/models"
)

const (
	SortName      = "name"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Criteria selects and orders a subset of the catalog. The zero value
// selects everything in input order.
type Criteria struct {
	Category string
	Search   string
	Sort     string
}

// FilterAndSort applies criteria to a product list. It is pure: the input
// is never mutated, the result is recomputed from the full list on every
// call, and applying the same criteria twice yields the same result.
func FilterAndSort(products []models.Product, c Criteria) []models.Product {

	out := make([]models.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(c.Search))

	for _, p := range products {

		if c.Category != "" && c.Category != "all" && !strings.EqualFold(p.Category, c.Category) {
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}

		out = append(out, p)
	}

	switch c.Sort {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out
}
