package catalog

import (
	"cmp"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/shopspring/decimal"
	"math"
	"slices"
	"strings"
)

// AllSlug selects every product regardless of category.
const AllSlug = "all"

// FeaturedCount is how many products the home page features.
const FeaturedCount = 8

type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
)

func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceAsc, SortPriceDesc, SortRating:
		return k
	}
	return SortDefault
}

type Query struct {
	Slug   string
	Search string
	Sort   SortKey
}

// Filter selects and orders products for a listing page. A non-empty Search
// matches names case-insensitively and ignores Slug. The input slice is not
// modified.
func Filter(products []domain.Product, q Query) []domain.Product {
	var result []domain.Product

	switch {
	case q.Search != "":
		needle := strings.ToLower(q.Search)
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				result = append(result, p)
			}
		}
	case q.Slug == "" || q.Slug == AllSlug:
		result = slices.Clone(products)
	default:
		for _, p := range products {
			if p.CategorySlug == q.Slug {
				result = append(result, p)
			}
		}
	}

	switch q.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(result, func(a, b domain.Product) int { return a.Price.Cmp(b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(result, func(a, b domain.Product) int { return b.Price.Cmp(a.Price) })
	case SortRating:
		slices.SortStableFunc(result, func(a, b domain.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	}

	return result
}

func Featured(products []domain.Product, n int) []domain.Product {
	if n > len(products) {
		n = len(products)
	}
	if n <= 0 {
		return nil
	}
	return slices.Clone(products[:n])
}

// Discount is the whole-percent reduction from OriginalPrice, 0 when there is
// none.
func Discount(p domain.Product) int {
	if p.OriginalPrice == nil || !p.OriginalPrice.IsPositive() {
		return 0
	}

	ratio := decimal.NewFromInt(1).Sub(p.Price.Div(*p.OriginalPrice))
	pct, _ := ratio.Mul(decimal.NewFromInt(100)).Float64()

	return int(math.Round(pct))
}
