package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money formats a signed amount in the given currency, like "-$4.50".
//
// The amount is rounded to the currency fraction. An unknown currency falls
// back to the plain amount with two decimals followed by the code.
func Money(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		s := amount.StringFixed(2)
		if currency != "" {
			s += " " + currency
		}
		return s
	}
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return money.New(minor.IntPart(), cur.Code).Display()
}

// SignedMoney is like Money with an explicit "+" for deposits.
func SignedMoney(amount decimal.Decimal, currency string) string {
	if amount.IsPositive() {
		return "+" + Money(amount, currency)
	}
	return Money(amount, currency)
}
