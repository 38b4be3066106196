package domain

import (
	"encoding/json"
	"github.com/shopspring/decimal"
)

// CartKey is the durable storage key the cart snapshot lives under.
const CartKey = "luxe_cart"

// CartLine snapshots the product's name, price, image and brand at add time.
// Later catalog changes never touch lines already in the cart.
type CartLine struct {
	ID       ProductID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Brand    string          `json:"brand"`
	Quantity int             `json:"quantity"`
}

// MarshalJSON writes price as a JSON number, matching snapshots written by
// the browser client.
func (l CartLine) MarshalJSON() ([]byte, error) {
	type line CartLine
	return json.Marshal(struct {
		line
		Price json.Number `json:"price"`
	}{
		line:  line(l),
		Price: json.Number(l.Price.String()),
	})
}

func NewCartLine(p Product) CartLine {
	return CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Brand:    p.Brand,
		Quantity: 1,
	}
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartTotal is the sum of price × quantity over lines.
func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// CartCount is the number of units in the cart, not the number of lines.
func CartCount(lines []CartLine) int {
	var count int
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}
