package api

import (
	"encoding/json"
	"github.com/nikolayk812/luxe-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Prices travel as JSON numbers, not the quoted strings decimal emits by
// default.

type wireItem struct {
	ID       domain.ProductID `json:"id"`
	Name     string           `json:"name"`
	Price    json.Number      `json:"price"`
	Quantity int              `json:"quantity"`
	Image    string           `json:"image"`
}

type wireOrder struct {
	Items         []wireItem           `json:"items"`
	Address       domain.Address       `json:"address"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Subtotal      json.Number          `json:"subtotal"`
	Shipping      json.Number          `json:"shipping"`
	Total         json.Number          `json:"total"`
}

func toWireOrder(req domain.OrderRequest) wireOrder {
	items := make([]wireItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, wireItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    number(it.Price),
			Quantity: it.Quantity,
			Image:    it.Image,
		})
	}

	return wireOrder{
		Items:         items,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      number(req.Subtotal),
		Shipping:      number(req.Shipping),
		Total:         number(req.Total),
	}
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
