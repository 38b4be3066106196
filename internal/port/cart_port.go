package port

import (
	"context"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type CartStore interface {
	AddToCart(ctx context.Context, product domain.Product) error
	UpdateQuantity(ctx context.Context, id domain.ProductID, delta int) error
	RemoveFromCart(ctx context.Context, id domain.ProductID) error
	ClearCart(ctx context.Context) error

	Lines() []domain.CartLine
	Total() decimal.Decimal
	Count() int
}

// SnapshotStorage is a durable key-value store. Load returns ErrKeyNotFound
// when nothing was saved under key.
type SnapshotStorage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
