package app

import (
	"context"
	"github.com/nikolayk812/luxe-storefront/internal/catalog"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/nikolayk812/luxe-storefront/internal/router"
)

// View is the data a page renders from. Only the fields relevant to Page are
// populated.
type View struct {
	Page router.Page

	CartCount  int
	Categories []domain.Category

	// home
	Featured []domain.Product

	// category and search
	Category *domain.Category
	Query    string
	Sort     catalog.SortKey
	Products []domain.Product

	// product
	Detail   *domain.ProductDetail
	NotFound bool

	// cart and checkout
	Lines []domain.CartLine
	Quote domain.Quote

	// order-confirmation
	Order *domain.Order
}

// View assembles the current page's data. The product page fetches its
// detail on demand.
func (s *Storefront) View(ctx context.Context) View {
	s.mu.RLock()
	page, sortKey, c := s.page, s.sort, s.catalog
	var order *domain.Order
	if s.confirmation != nil {
		o := *s.confirmation
		order = &o
	}
	s.mu.RUnlock()

	v := View{
		Page:       page,
		CartCount:  s.cart.Count(),
		Categories: c.Categories,
	}

	switch page.Name {
	case router.PageHome:
		v.Featured = catalog.Featured(c.Products, catalog.FeaturedCount)
	case router.PageCategory:
		slug := page.Param(router.ParamSlug)
		if cat, ok := c.Category(slug); ok {
			v.Category = &cat
		}
		v.Sort = sortKey
		v.Products = catalog.Filter(c.Products, catalog.Query{Slug: slug, Sort: sortKey})
	case router.PageSearch:
		v.Query = page.Param(router.ParamQuery)
		v.Sort = sortKey
		v.Products = catalog.Filter(c.Products, catalog.Query{Slug: catalog.AllSlug, Search: v.Query, Sort: sortKey})
	case router.PageProduct:
		detail, ok := s.ProductDetail(ctx, domain.ProductID(page.Param(router.ParamID)))
		if ok {
			v.Detail = &detail
		} else {
			v.NotFound = true
		}
	case router.PageCart, router.PageCheckout:
		v.Lines = s.cart.Lines()
		v.Quote = domain.QuoteFor(domain.CartTotal(v.Lines))
	case router.PageOrderConfirmation:
		v.Order = order
	}

	return v
}
