package fintrack

import (
	"iter"
	"slices"
	"strings"

	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
)

// Filter is a predicate selecting transactions.
type Filter func(Transaction) bool

// AcceptAll is a Filter accepting every transaction.
func AcceptAll(Transaction) bool { return true }

// Deposits is a Filter accepting transactions with a positive amount.
func Deposits(tx Transaction) bool { return tx.IsDeposit() }

// Payments is a Filter accepting transactions with a negative amount.
func Payments(tx Transaction) bool { return tx.IsPayment() }

// Between returns a Filter accepting transactions dated within r, boundaries included.
func Between(r date.Range) Filter {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}

// Since returns a Filter accepting transactions dated on or after day.
func Since(day date.Date) Filter {
	return func(tx Transaction) bool { return !tx.Date.Before(day) }
}

// Until returns a Filter accepting transactions dated on or before day.
func Until(day date.Date) Filter {
	return func(tx Transaction) bool { return !tx.Date.After(day) }
}

// ByVendor returns a Filter accepting transactions whose vendor is name, ignoring case.
func ByVendor(name string) Filter {
	return func(tx Transaction) bool { return strings.EqualFold(tx.Vendor, name) }
}

// DescriptionContains returns a Filter accepting transactions whose
// description contains keyword, ignoring case.
func DescriptionContains(keyword string) Filter {
	keyword = strings.ToLower(keyword)
	return func(tx Transaction) bool { return strings.Contains(strings.ToLower(tx.Description), keyword) }
}

// AmountEquals returns a Filter accepting transactions of exactly that signed amount.
func AmountEquals(amount decimal.Decimal) Filter {
	return func(tx Transaction) bool { return tx.Amount.Equal(amount) }
}

// And returns a Filter accepting transactions accepted by every filter.
// With no filter it accepts everything.
func And(filters ...Filter) Filter {
	return func(tx Transaction) bool {
		for _, f := range filters {
			if !f(tx) {
				return false
			}
		}
		return true
	}
}

// Search is a custom search: every criterion is optional, the ones set must
// all match.
type Search struct {
	From    *date.Date       // earliest date, inclusive
	To      *date.Date       // latest date, inclusive
	Keyword string           // description substring, ignoring case
	Vendor  string           // vendor, ignoring case
	Amount  *decimal.Decimal // exact signed amount
}

// Filters returns one Filter per criterion set.
func (s Search) Filters() []Filter {
	var filters []Filter
	if s.From != nil {
		filters = append(filters, Since(*s.From))
	}
	if s.To != nil {
		filters = append(filters, Until(*s.To))
	}
	if s.Keyword != "" {
		filters = append(filters, DescriptionContains(s.Keyword))
	}
	if s.Vendor != "" {
		filters = append(filters, ByVendor(s.Vendor))
	}
	if s.Amount != nil {
		filters = append(filters, AmountEquals(*s.Amount))
	}
	return filters
}

// Filter folds the criteria set into a single Filter, a match-all one if
// none is set.
func (s Search) Filter() Filter { return And(s.Filters()...) }

// Outcome tells how a query went.
type Outcome int

const (
	// Matched means at least one transaction matched.
	Matched Outcome = iota
	// NoMatch means the ledger has transactions but none matched.
	NoMatch
	// EmptyLedger means there was nothing to query.
	EmptyLedger
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case NoMatch:
		return "no match"
	case EmptyLedger:
		return "empty ledger"
	default:
		return "unknown"
	}
}

// Result holds the transactions matched by a query, most recent first.
type Result struct {
	Outcome      Outcome
	Transactions []Transaction
}

// Select iterates over transactions matching all filters, most recent first.
func (l *Ledger) Select(filters ...Filter) iter.Seq[Transaction] {
	accept := And(filters...)
	sorted := l.Sorted()
	return func(yield func(Transaction) bool) {
		for tx := range sorted {
			if !accept(tx) {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Query collects transactions matching all filters, most recent first.
func (l *Ledger) Query(filters ...Filter) Result {
	if l.Len() == 0 {
		return Result{Outcome: EmptyLedger}
	}
	txs := slices.Collect(l.Select(filters...))
	if len(txs) == 0 {
		return Result{Outcome: NoMatch}
	}
	return Result{Outcome: Matched, Transactions: txs}
}

// Vendors returns the distinct vendors of the ledger, sorted, with the case of
// their first occurrence.
func (l *Ledger) Vendors() []string {
	seen := make(map[string]bool)
	var vendors []string
	for _, tx := range l.transactions {
		key := strings.ToLower(tx.Vendor)
		if seen[key] {
			continue
		}
		seen[key] = true
		vendors = append(vendors, tx.Vendor)
	}
	slices.SortFunc(vendors, func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) })
	return vendors
}
