package domain

import "github.com/shopspring/decimal"

// ProductID is an opaque token issued by the catalog API.
type ProductID string

type Product struct {
	ID            ProductID        `json:"id"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	CategorySlug  string           `json:"categorySlug"`
	CategoryName  string           `json:"categoryName"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	Features      []string         `json:"features,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
}

func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type ProductDetail struct {
	Product Product   `json:"product"`
	Related []Product `json:"related"`
}
