package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fintrack"
	md "github.com/nao1215/markdown"
)

// Messages rendered instead of an empty table.
const (
	EmptyLedgerMessage = "The ledger is empty."
	NoMatchMessage     = "No transactions found."
)

// Transaction renders a transaction to a one line sentence.
func Transaction(tx fintrack.Transaction, currency string) string {
	when := fmt.Sprintf("%s %s", tx.Date, tx.Time)
	switch {
	case tx.IsPayment():
		return fmt.Sprintf("Payment of %s to %s on %s: %s", Money(tx.Amount.Neg(), currency), tx.Vendor, when, tx.Description)
	case tx.IsDeposit():
		return fmt.Sprintf("Deposit of %s from %s on %s: %s", Money(tx.Amount, currency), tx.Vendor, when, tx.Description)
	default:
		return fmt.Sprintf("Zero amount with %s on %s: %s", tx.Vendor, when, tx.Description)
	}
}

// Options holds configuration for rendering query results.
type Options struct {
	Title    string // H1 title, omitted when empty
	Subtitle string // a line right below the title, like the date range
	Currency string // ISO code used to display amounts
}

// Result renders a query result to markdown: a table of transactions, most
// recent first, or a message telling the ledger is empty or nothing matched.
func Result(r fintrack.Result, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if opts.Title != "" {
		doc.H1(opts.Title)
	}
	if opts.Subtitle != "" {
		doc.PlainText(opts.Subtitle)
	}
	if opts.Title != "" || opts.Subtitle != "" {
		doc.PlainText("")
	}

	switch r.Outcome {
	case fintrack.EmptyLedger:
		doc.PlainText(EmptyLedgerMessage)
		return doc.String()
	case fintrack.NoMatch:
		doc.PlainText(NoMatchMessage)
		return doc.String()
	}

	table := md.TableSet{
		Header:    []string{"Date", "Time", "Description", "Vendor", "Amount"},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
	}
	for _, tx := range r.Transactions {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			tx.Time.String(),
			escape(tx.Description),
			escape(tx.Vendor),
			SignedMoney(tx.Amount, opts.Currency),
		})
	}
	doc.Table(table)
	doc.PlainTextf("%d transaction(s)", len(r.Transactions))

	return doc.String()
}

// VendorSuggestions renders the vendors closest to a name that matched nothing.
func VendorSuggestions(name string, suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.PlainTextf("No vendor named %q. Did you mean:", name)
	doc.PlainText("")
	doc.BulletList(suggestions...)
	return doc.String()
}
