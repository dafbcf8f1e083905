package fintrack

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/etnz/fintrack/date"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrNotPersisted is returned by Add when the transaction was recorded in
// memory but the journal failed to write it.
var ErrNotPersisted = errors.New("transaction not persisted")

// Journal receives every transaction added to a Ledger, in order.
type Journal interface {
	Append(tx Transaction) error
}

// Ledger is the in-memory list of transactions.
//
// Transactions are kept in insertion order: loaded ones first, in file order,
// then the added ones. Sorted gives the chronological view.
type Ledger struct {
	transactions []Transaction
	sorted       []Transaction // most recent first, valid unless dirty
	dirty        bool
	unsaved      []Transaction // added but not written to the journal

	journal Journal
	log     zerolog.Logger
	today   func() date.Date
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithJournal sets the journal written on every Add.
func WithJournal(j Journal) Option { return func(l *Ledger) { l.journal = j } }

// WithLogger sets the logger used to report corrupt records.
func WithLogger(log zerolog.Logger) Option { return func(l *Ledger) { l.log = log } }

// WithToday sets the function giving the current day, used to validate entries.
func WithToday(today func() date.Date) Option { return func(l *Ledger) { l.today = today } }

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		transactions: make([]Transaction, 0),
		log:          zerolog.Nop(),
		today:        date.Today,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadStats counts the outcome of a Load.
type LoadStats struct {
	Loaded  int // records appended to the ledger
	Skipped int // corrupt records dropped
}

// Load parses each line as a record and appends it to the ledger.
//
// Blank lines are ignored. A corrupt line (wrong number of fields, invalid
// date, time or amount) is logged as a warning and dropped, the load goes on.
func (l *Ledger) Load(lines iter.Seq[string]) LoadStats {
	var stats LoadStats
	n := 0
	for line := range lines {
		n++
		if strings.TrimSpace(line) == "" {
			continue
		}
		tx, err := ParseLine(line)
		if err != nil {
			stats.Skipped++
			l.log.Warn().Int("line", n).Err(err).Msg("skipping corrupt ledger record")
			continue
		}
		l.transactions = append(l.transactions, tx)
		stats.Loaded++
	}
	if stats.Loaded > 0 {
		l.dirty = true
	}
	l.log.Debug().Int("loaded", stats.Loaded).Int("skipped", stats.Skipped).Msg("ledger loaded")
	return stats
}

// Add validates and records a new transaction, a payment when isPayment is
// true, a deposit otherwise. amount must be positive, it is negated for payments.
//
// On invalid input the ledger is left unchanged and the validation error is
// returned. Otherwise the transaction is appended, then written to the
// journal after any earlier unsaved ones, so the file keeps insertion order.
// If that write fails the transaction stays in the ledger, is listed by
// Unsaved, and the returned error wraps ErrNotPersisted.
func (l *Ledger) Add(day date.Date, at date.Clock, description, vendor string, amount decimal.Decimal, isPayment bool) (Transaction, error) {
	e := Entry{Date: day, Time: at, Description: description, Vendor: vendor, Amount: amount}
	if err := e.Validate(l.today()); err != nil {
		return Transaction{}, err
	}
	tx := e.transaction(isPayment)
	l.transactions = append(l.transactions, tx)
	l.dirty = true

	if l.journal == nil {
		return tx, nil
	}
	l.unsaved = append(l.unsaved, tx)
	if err := l.Sync(); err != nil {
		l.log.Error().Err(err).Int("unsaved", len(l.unsaved)).Str("line", FormatLine(tx)).Msg("could not persist transaction")
		return tx, err
	}
	return tx, nil
}

// Unsaved returns the transactions that the journal failed to write.
func (l *Ledger) Unsaved() []Transaction { return slices.Clone(l.unsaved) }

// Sync retries writing unsaved transactions to the journal, in order.
// It stops at the first failure, leaving the rest unsaved.
func (l *Ledger) Sync() error {
	if l.journal == nil {
		return nil
	}
	for len(l.unsaved) > 0 {
		if err := l.journal.Append(l.unsaved[0]); err != nil {
			return fmt.Errorf("%w: %w", ErrNotPersisted, err)
		}
		l.unsaved = l.unsaved[1:]
	}
	return nil
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions iterates over transactions in insertion order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return slices.Values(l.transactions)
}

// Sorted iterates over transactions from the most recent to the oldest, by
// date then time. Transactions at the same instant keep their insertion order.
//
// The sort is cached until the next Add or Load.
func (l *Ledger) Sorted() iter.Seq[Transaction] {
	if l.dirty || l.sorted == nil {
		l.sorted = slices.Clone(l.transactions)
		slices.SortStableFunc(l.sorted, func(a, b Transaction) int { return b.Compare(a) })
		l.dirty = false
	}
	return slices.Values(l.sorted)
}
