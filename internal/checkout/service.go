package checkout

import (
	"context"
	"errors"
	"fmt"
	"github.com/nikolayk812/luxe-storefront/internal/api"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"log/slog"
)

const (
	msgInvalidAddress = "Please fill all required fields"
	msgEmptyCart      = "Your cart is empty"
	msgUnsupported    = "Unsupported payment method"
	msgPlaced         = "Order placed successfully!"
	msgRejected       = "Failed to place order"
	msgTransport      = "Something went wrong"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrUnsupportedPayment = errors.New("payment method is not supported")
)

type Service struct {
	cart     port.CartStore
	orders   port.OrderSubmitter
	notifier port.Notifier
	log      *slog.Logger
}

func NewService(cart port.CartStore, orders port.OrderSubmitter, notifier port.Notifier, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		cart:     cart,
		orders:   orders,
		notifier: notifier,
		log:      log,
	}
}

// PlaceOrder validates addr, submits the cart and clears it on acceptance.
// On any failure the cart is left untouched and the call may be retried.
func (s *Service) PlaceOrder(ctx context.Context, addr domain.Address, method domain.PaymentMethod) (domain.Order, error) {
	if method != domain.PaymentCashOnDelivery {
		s.notifier.Failure(msgUnsupported)
		return domain.Order{}, fmt.Errorf("method[%s]: %w", method, ErrUnsupportedPayment)
	}

	if errs := Validate(addr); len(errs) > 0 {
		s.notifier.Failure(msgInvalidAddress)
		return domain.Order{}, &ValidationError{Fields: errs}
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		s.notifier.Failure(msgEmptyCart)
		return domain.Order{}, ErrEmptyCart
	}

	req := domain.NewOrderRequest(lines, addr, method)

	order, err := s.orders.CreateOrder(ctx, req)
	if err != nil {
		s.notifier.Failure(failureMessage(err))
		s.log.Warn("order submission failed", slog.Any("err", err))
		return domain.Order{}, fmt.Errorf("orders.CreateOrder: %w", err)
	}

	if err := s.cart.ClearCart(ctx); err != nil {
		// the order exists server-side, so report success and keep going
		s.log.Error("clear cart after order", slog.String("order_id", order.ID), slog.Any("err", err))
	}

	s.notifier.Success(msgPlaced)
	s.log.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("total", req.Total.StringFixed(2)),
		slog.Int("items", len(req.Items)))

	return order, nil
}

func failureMessage(err error) string {
	var rejected *api.RejectedError
	if errors.As(err, &rejected) {
		if rejected.Reason != "" {
			return rejected.Reason
		}
		return msgRejected
	}
	return msgTransport
}
