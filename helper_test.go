package fintrack

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/etnz/fintrack/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// coffee and paycheck are the two records used throughout the tests.
const (
	coffeeLine   = "2024-01-05|10:00:00|Coffee|Cafe|-4.50"
	paycheckLine = "2024-01-10|09:00:00|Paycheck|Employer|2000.00"
)

// testToday is the day tests pretend to run on.
var testToday = date.New(2024, time.January, 31)

func fixedToday() date.Date { return testToday }

// txCmp compares transactions by value, amounts included.
var txCmp = cmp.Comparer(func(a, b Transaction) bool { return a.Equal(b) })

// mustTx parses a record line or panics.
func mustTx(line string) Transaction {
	tx, err := ParseLine(line)
	if err != nil {
		panic(err)
	}
	return tx
}

// dec is a helper for test to create a decimal from a const.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// newTestLedger loads lines into a new ledger running on testToday.
func newTestLedger(lines ...string) *Ledger {
	l := NewLedger(WithToday(fixedToday))
	l.Load(slices.Values(lines))
	return l
}

// memJournal records appended lines, or fails with err when set.
type memJournal struct {
	lines []string
	err   error
}

func (j *memJournal) Append(tx Transaction) error {
	if j.err != nil {
		return j.err
	}
	j.lines = append(j.lines, FormatLine(tx))
	return nil
}

func (j *memJournal) String() string { return strings.Join(j.lines, "\n") }

var errDiskFull = errors.New("disk full")
