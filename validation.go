package fintrack

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription  = errors.New("description is required")
	ErrEmptyVendor       = errors.New("vendor is required")
	ErrNonPositiveAmount = errors.New("amount must be greater than 0")
	ErrDateOutOfRange    = errors.New("date is out of range")
	ErrReservedCharacter = errors.New("text contains a reserved character")
)

// Epoch is the earliest date accepted for a new entry.
var Epoch = date.New(1900, time.January, 1)

// Entry holds the fields typed by a user to record a deposit or a payment.
// Amount is always positive, the kind of transaction decides the sign.
type Entry struct {
	Date        date.Date
	Time        date.Clock
	Description string
	Vendor      string
	Amount      decimal.Decimal
}

// Validate checks the entry and returns an error joining every failure, or nil.
//
// The date must fall between Epoch and one year after today.
func (e Entry) Validate(today date.Date) error {
	return errors.Join(
		CheckDescription(e.Description),
		CheckVendor(e.Vendor),
		CheckAmount(e.Amount),
		CheckDate(e.Date, today),
	)
}

// CheckDescription reports whether s can be stored as a description.
func CheckDescription(s string) error { return checkText(s, ErrEmptyDescription) }

// CheckVendor reports whether s can be stored as a vendor.
func CheckVendor(s string) error { return checkText(s, ErrEmptyVendor) }

func checkText(s string, empty error) error {
	if strings.TrimSpace(s) == "" {
		return empty
	}
	if strings.ContainsAny(s, Delimiter+"\r\n") {
		return fmt.Errorf("%w in %q", ErrReservedCharacter, s)
	}
	return nil
}

// CheckAmount reports whether amount is strictly positive.
func CheckAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrNonPositiveAmount, amount)
	}
	return nil
}

// CheckDate reports whether day is within [Epoch, today + 12 months].
func CheckDate(day, today date.Date) error {
	latest := today.AddMonth(12)
	if day.Before(Epoch) || day.After(latest) {
		return fmt.Errorf("%w: %s is not within %s", ErrDateOutOfRange, day, date.NewRange(Epoch, latest))
	}
	return nil
}

// transaction turns a valid entry into its transaction.
func (e Entry) transaction(isPayment bool) Transaction {
	if isPayment {
		return NewPayment(e.Date, e.Time, e.Description, e.Vendor, e.Amount)
	}
	return NewDeposit(e.Date, e.Time, e.Description, e.Vendor, e.Amount)
}
