package fintrack

import (
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single ledger record.
//
// The sign of Amount is the only thing telling a deposit (positive) from a
// payment (negative).
type Transaction struct {
	Date        date.Date
	Time        date.Clock
	Description string
	Vendor      string
	Amount      decimal.Decimal
}

// NewDeposit returns a deposit transaction of the given positive amount.
func NewDeposit(day date.Date, at date.Clock, description, vendor string, amount decimal.Decimal) Transaction {
	return Transaction{Date: day, Time: at, Description: description, Vendor: vendor, Amount: amount.Abs()}
}

// NewPayment returns a payment transaction, the amount is stored negated.
func NewPayment(day date.Date, at date.Clock, description, vendor string, amount decimal.Decimal) Transaction {
	return Transaction{Date: day, Time: at, Description: description, Vendor: vendor, Amount: amount.Abs().Neg()}
}

// IsDeposit reports whether tx brings money in.
func (tx Transaction) IsDeposit() bool { return tx.Amount.IsPositive() }

// IsPayment reports whether tx takes money out.
func (tx Transaction) IsPayment() bool { return tx.Amount.IsNegative() }

// When returns the instant of the transaction, in UTC.
func (tx Transaction) When() time.Time { return tx.Date.At(tx.Time) }

// Compare orders transactions chronologically by date then time.
func (tx Transaction) Compare(x Transaction) int {
	if c := tx.Date.Compare(x.Date); c != 0 {
		return c
	}
	return tx.Time.Compare(x.Time)
}

// Equal reports whether tx and x hold the same fields, amounts being compared
// by value (-4.5 equals -4.50).
func (tx Transaction) Equal(x Transaction) bool {
	return tx.Date == x.Date && tx.Time == x.Time &&
		tx.Description == x.Description && tx.Vendor == x.Vendor &&
		tx.Amount.Equal(x.Amount)
}
