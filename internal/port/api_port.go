package port

import (
	"context"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
)

type CatalogReader interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetProduct(ctx context.Context, id domain.ProductID) (domain.ProductDetail, error)
}

type OrderSubmitter interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.Order, error)
}
