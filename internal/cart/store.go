package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"github.com/shopspring/decimal"
	"log/slog"
	"math"
	"sync"
)

var ErrQuantityOverflow = errors.New("quantity overflows")

// Store is the process-wide cart. Every mutation builds the next snapshot
// from a copy of the current lines, persists it under domain.CartKey and only
// then publishes it, so a failed write leaves the previous snapshot intact.
type Store struct {
	storage  port.SnapshotStorage
	notifier port.Notifier
	log      *slog.Logger

	mu    sync.RWMutex
	lines []domain.CartLine
}

var _ port.CartStore = (*Store)(nil)

// New rehydrates the cart from storage. A missing, unreadable or malformed
// snapshot yields an empty cart; it is logged and never returned as an error.
func New(ctx context.Context, storage port.SnapshotStorage, notifier port.Notifier, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}

	s := &Store{
		storage:  storage,
		notifier: notifier,
		log:      log,
	}

	lines, err := s.load(ctx)
	if err != nil {
		log.Warn("cart snapshot discarded", slog.String("key", domain.CartKey), slog.Any("err", err))
		lines = nil
	}
	s.lines = lines

	return s
}

func (s *Store) load(ctx context.Context) ([]domain.CartLine, error) {
	raw, err := s.storage.Load(ctx, domain.CartKey)
	if errors.Is(err, port.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage.Load: %w", err)
	}

	return decodeSnapshot(raw)
}

func (s *Store) AddToCart(ctx context.Context, product domain.Product) error {
	err := s.mutate(ctx, func(lines []domain.CartLine) ([]domain.CartLine, bool, error) {
		if i := indexOf(lines, product.ID); i >= 0 {
			if lines[i].Quantity == math.MaxInt {
				return nil, false, ErrQuantityOverflow
			}
			lines[i].Quantity++
			return lines, true, nil
		}
		return append(lines, domain.NewCartLine(product)), true, nil
	})
	if err != nil {
		return fmt.Errorf("AddToCart: %w", err)
	}

	s.success(fmt.Sprintf("%s added to cart", product.Name))

	return nil
}

// UpdateQuantity adds delta to the line's quantity, removing the line when the
// result is zero or negative. Unknown ids are ignored. A delta that would
// overflow the quantity is rejected and the cart is left unchanged.
func (s *Store) UpdateQuantity(ctx context.Context, id domain.ProductID, delta int) error {
	err := s.mutate(ctx, func(lines []domain.CartLine) ([]domain.CartLine, bool, error) {
		i := indexOf(lines, id)
		if i < 0 {
			return lines, false, nil
		}

		current := lines[i].Quantity
		if delta > 0 && current > math.MaxInt-delta {
			return nil, false, fmt.Errorf("quantity[%d] delta[%d]: %w", current, delta, ErrQuantityOverflow)
		}

		// current is positive, so a negative delta cannot underflow
		qty := current + delta
		if qty <= 0 {
			return append(lines[:i], lines[i+1:]...), true, nil
		}

		lines[i].Quantity = qty
		return lines, true, nil
	})
	if err != nil {
		return fmt.Errorf("UpdateQuantity: %w", err)
	}

	return nil
}

// RemoveFromCart removes the line with id if present. The removal
// notification is emitted either way.
func (s *Store) RemoveFromCart(ctx context.Context, id domain.ProductID) error {
	err := s.mutate(ctx, func(lines []domain.CartLine) ([]domain.CartLine, bool, error) {
		i := indexOf(lines, id)
		if i < 0 {
			return lines, false, nil
		}
		return append(lines[:i], lines[i+1:]...), true, nil
	})
	if err != nil {
		return fmt.Errorf("RemoveFromCart: %w", err)
	}

	s.success("Item removed from cart")

	return nil
}

func (s *Store) ClearCart(ctx context.Context) error {
	err := s.mutate(ctx, func([]domain.CartLine) ([]domain.CartLine, bool, error) {
		return nil, true, nil
	})
	if err != nil {
		return fmt.Errorf("ClearCart: %w", err)
	}

	return nil
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clone(s.lines)
}

func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CartTotal(s.lines)
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CartCount(s.lines)
}

func (s *Store) Quote() domain.Quote {
	return domain.QuoteFor(s.Total())
}

// mutate applies fn to a copy of the lines. When fn reports a change the copy
// is persisted and then swapped in; an error from fn discards the copy.
func (s *Store) mutate(ctx context.Context, fn func([]domain.CartLine) ([]domain.CartLine, bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed, err := fn(clone(s.lines))
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	raw, err := encodeSnapshot(next)
	if err != nil {
		return fmt.Errorf("encodeSnapshot: %w", err)
	}

	if err := s.storage.Save(ctx, domain.CartKey, raw); err != nil {
		return fmt.Errorf("storage.Save: %w", err)
	}

	s.lines = next

	return nil
}

func (s *Store) success(msg string) {
	if s.notifier != nil {
		s.notifier.Success(msg)
	}
}

func indexOf(lines []domain.CartLine, id domain.ProductID) int {
	for i, l := range lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func clone(lines []domain.CartLine) []domain.CartLine {
	if len(lines) == 0 {
		return nil
	}
	return append(make([]domain.CartLine, 0, len(lines)), lines...)
}

func encodeSnapshot(lines []domain.CartLine) ([]byte, error) {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return json.Marshal(lines)
}
