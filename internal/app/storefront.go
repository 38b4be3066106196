package app

import (
	"context"
	"fmt"
	"github.com/nikolayk812/luxe-storefront/internal/catalog"
	"github.com/nikolayk812/luxe-storefront/internal/checkout"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"github.com/nikolayk812/luxe-storefront/internal/router"
	"log/slog"
	"sync"
)

type Deps struct {
	Cart     port.CartStore
	Catalog  port.CatalogReader
	Orders   port.OrderSubmitter
	Notifier port.Notifier
	Viewport port.Viewport
	Log      *slog.Logger
}

// Storefront routes pages and hands each one the slice of application state
// it needs. Catalog data is read-only once loaded; the last placed order is
// kept in memory only.
type Storefront struct {
	cart     port.CartStore
	reader   port.CatalogReader
	checkout *checkout.Service
	router   *router.Router
	log      *slog.Logger

	mu           sync.RWMutex
	catalog      catalog.Catalog
	page         router.Page
	sort         catalog.SortKey
	confirmation *domain.Order
}

func New(deps Deps) *Storefront {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}

	s := &Storefront{
		cart:     deps.Cart,
		reader:   deps.Catalog,
		checkout: checkout.NewService(deps.Cart, deps.Orders, deps.Notifier, log),
		router:   router.New(deps.Viewport),
		log:      log,
		sort:     catalog.SortDefault,
	}
	s.router.Subscribe(s.onPage)

	return s
}

// Start loads the catalog and renders the initial location.
func (s *Storefront) Start(ctx context.Context, location string) {
	c := catalog.Load(ctx, s.reader, s.log)

	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()

	s.router.Start(location)
}

func (s *Storefront) onPage(p router.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !p.Equal(s.page) {
		s.sort = catalog.SortDefault
	}
	s.page = p

	s.log.Debug("page", slog.String("name", string(p.Name)), slog.Any("params", p.Params))
}

func (s *Storefront) Navigate(fragment string) {
	s.router.Navigate(fragment)
}

// LocationChanged is the adapter for location changes made outside the app.
func (s *Storefront) LocationChanged(location string) {
	s.router.LocationChanged(location)
}

func (s *Storefront) Page() router.Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.page
}

func (s *Storefront) Location() string {
	return s.router.Location()
}

func (s *Storefront) Cart() port.CartStore {
	return s.cart
}

func (s *Storefront) Catalog() catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog
}

// SetSort changes the ordering of the current listing page until the next
// page change.
func (s *Storefront) SetSort(key catalog.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sort = key
}

// AddProduct adds a catalog product to the cart by id.
func (s *Storefront) AddProduct(ctx context.Context, id domain.ProductID) error {
	p, ok := s.Catalog().Product(id)
	if !ok {
		return fmt.Errorf("product[%s]: %w", id, ErrProductNotFound)
	}

	return s.cart.AddToCart(ctx, p)
}

// ProductDetail fetches a product with its related items. Any failure reads
// as not found.
func (s *Storefront) ProductDetail(ctx context.Context, id domain.ProductID) (domain.ProductDetail, bool) {
	detail, err := s.reader.GetProduct(ctx, id)
	if err != nil {
		s.log.Debug("product detail unavailable", slog.String("id", string(id)), slog.Any("err", err))
		return domain.ProductDetail{}, false
	}
	return detail, true
}

// PlaceOrder submits the cart and, on acceptance, moves to the confirmation
// page carrying the returned order.
func (s *Storefront) PlaceOrder(ctx context.Context, addr domain.Address, method domain.PaymentMethod) (domain.Order, error) {
	order, err := s.checkout.PlaceOrder(ctx, addr, method)
	if err != nil {
		return domain.Order{}, err
	}

	s.mu.Lock()
	s.confirmation = &order
	s.mu.Unlock()

	s.router.Navigate(router.OrderConfirmation())

	return order, nil
}

func (s *Storefront) Confirmation() (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.confirmation == nil {
		return domain.Order{}, false
	}
	return *s.confirmation, true
}
