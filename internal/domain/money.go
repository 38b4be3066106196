package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// ReferenceCurrency is the only unit prices are quoted in.
var ReferenceCurrency = currency.USD

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: ReferenceCurrency}
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// String renders the amount with two decimals and the ISO code, e.g. "59.98 USD".
func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency.String()
}
