package domain

import "github.com/shopspring/decimal"

var (
	FreeShippingThreshold = decimal.NewFromInt(50)
	FlatShippingFee       = decimal.RequireFromString("9.99")
)

type Quote struct {
	Subtotal Money
	Shipping Money
	Total    Money
}

// QuoteFor applies the shipping policy: free at or above the threshold,
// otherwise the flat fee.
func QuoteFor(subtotal decimal.Decimal) Quote {
	shipping := FlatShippingFee
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	return Quote{
		Subtotal: NewMoney(subtotal),
		Shipping: NewMoney(shipping),
		Total:    NewMoney(subtotal.Add(shipping)),
	}
}

func (q Quote) FreeShipping() bool {
	return q.Shipping.IsZero()
}
