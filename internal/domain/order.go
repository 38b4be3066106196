package domain

import (
	"encoding/json"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

// PaymentCashOnDelivery is the single supported payment method.
const PaymentCashOnDelivery PaymentMethod = "cod"

type Address struct {
	FullName string `json:"fullName" yaml:"fullName"`
	Phone    string `json:"phone" yaml:"phone"`
	Email    string `json:"email" yaml:"email"`
	Line1    string `json:"line1" yaml:"line1"`
	Line2    string `json:"line2" yaml:"line2"`
	City     string `json:"city" yaml:"city"`
	State    string `json:"state" yaml:"state"`
	PinCode  string `json:"pinCode" yaml:"pinCode"`
}

type OrderItem struct {
	ID       ProductID
	Name     string
	Price    decimal.Decimal
	Quantity int
	Image    string
}

type OrderRequest struct {
	Items         []OrderItem
	Address       Address
	PaymentMethod PaymentMethod
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
	Total         decimal.Decimal
}

// NewOrderRequest copies only the order-relevant fields of each line.
func NewOrderRequest(lines []CartLine, addr Address, method PaymentMethod) OrderRequest {
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderItem{
			ID:       l.ID,
			Name:     l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
			Image:    l.Image,
		})
	}

	quote := QuoteFor(CartTotal(lines))

	return OrderRequest{
		Items:         items,
		Address:       addr,
		PaymentMethod: method,
		Subtotal:      quote.Subtotal.Amount,
		Shipping:      quote.Shipping.Amount,
		Total:         quote.Total.Amount,
	}
}

// Order is the record returned by the order API. Only ID and Total are
// interpreted; the rest is kept verbatim for the confirmation view.
type Order struct {
	ID    string          `json:"id"`
	Total decimal.Decimal `json:"total"`

	Raw json.RawMessage `json:"-"`
}
