package catalog

import (
	"context"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"golang.org/x/sync/errgroup"
	"log/slog"
)

type Catalog struct {
	Products   []domain.Product
	Categories []domain.Category
}

// Load fetches products and categories concurrently. A failed fetch leaves
// its list empty; the error is logged and never returned.
func Load(ctx context.Context, reader port.CatalogReader, log *slog.Logger) Catalog {
	var (
		c Catalog
		g errgroup.Group
	)

	g.Go(func() error {
		products, err := reader.ListProducts(ctx)
		if err != nil {
			log.Error("catalog: list products", slog.Any("err", err))
			return nil
		}
		c.Products = products
		return nil
	})

	g.Go(func() error {
		categories, err := reader.ListCategories(ctx)
		if err != nil {
			log.Error("catalog: list categories", slog.Any("err", err))
			return nil
		}
		c.Categories = categories
		return nil
	})

	_ = g.Wait()

	log.Debug("catalog loaded",
		slog.Int("products", len(c.Products)),
		slog.Int("categories", len(c.Categories)))

	return c
}

func (c Catalog) Product(id domain.ProductID) (domain.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (c Catalog) Category(slug string) (domain.Category, bool) {
	for _, cat := range c.Categories {
		if cat.Slug == slug {
			return cat, true
		}
	}
	return domain.Category{}, false
}
