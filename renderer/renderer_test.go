package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMoney(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"-4.50", "USD", "-$4.50"},
		{"-4.5", "USD", "-$4.50"},
		{"2000", "USD", "$2,000.00"},
		{"0.005", "USD", "$0.01"},
		{"12.3", "XXZ", "12.30 XXZ"},
		{"12.3", "", "12.30"},
	}
	for _, tc := range tests {
		if got := Money(dec(tc.amount), tc.currency); got != tc.want {
			t.Errorf("Money(%s, %q) = %q, want %q", tc.amount, tc.currency, got, tc.want)
		}
	}
}

func TestSignedMoney(t *testing.T) {
	if got, want := SignedMoney(dec("10"), "USD"), "+$10.00"; got != want {
		t.Errorf("SignedMoney(10) = %q, want %q", got, want)
	}
	if got, want := SignedMoney(dec("-10"), "USD"), "-$10.00"; got != want {
		t.Errorf("SignedMoney(-10) = %q, want %q", got, want)
	}
}

func TestTransaction(t *testing.T) {
	day := date.New(2024, 1, 5)
	at := date.NewClock(10, 0, 0)
	pay := fintrack.NewPayment(day, at, "Coffee", "Cafe", dec("4.50"))
	got := Transaction(pay, "USD")
	want := "Payment of $4.50 to Cafe on 2024-01-05 10:00:00: Coffee"
	if got != want {
		t.Errorf("Transaction(payment) = %q, want %q", got, want)
	}

	dep := fintrack.NewDeposit(day, at, "Paycheck", "Employer", dec("2000"))
	got = Transaction(dep, "USD")
	want = "Deposit of $2,000.00 from Employer on 2024-01-05 10:00:00: Paycheck"
	if got != want {
		t.Errorf("Transaction(deposit) = %q, want %q", got, want)
	}
}

// tableRows parses markdown and returns the text of every table row, header
// included. It returns nil when the document holds no table.
func tableRows(t *testing.T, source string) [][]string {
	t.Helper()
	src := []byte(source)
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var rows [][]string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Kind() != east.KindTableHeader && n.Kind() != east.KindTableRow {
			return ast.WalkContinue, nil
		}
		var row []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if c.Kind() == east.KindTableCell {
				row = append(row, cellText(c, src))
			}
		}
		rows = append(rows, row)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return rows
}

func cellText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			continue
		}
		b.WriteString(cellText(c, src))
	}
	return b.String()
}

func TestResult_Table(t *testing.T) {
	day := date.New(2024, 1, 10)
	r := fintrack.Result{
		Outcome: fintrack.Matched,
		Transactions: []fintrack.Transaction{
			fintrack.NewDeposit(day, date.NewClock(9, 0, 0), "Paycheck", "Employer", dec("2000.00")),
			fintrack.NewPayment(date.New(2024, 1, 5), date.NewClock(10, 0, 0), "Coffee", "Cafe", dec("4.50")),
		},
	}
	out := Result(r, Options{Title: "Ledger", Subtitle: "2024-01-01..2024-01-31", Currency: "USD"})

	if !strings.HasPrefix(out, "# Ledger\n") {
		t.Errorf("Result() does not start with the title:\n%s", out)
	}
	if !strings.Contains(out, "2 transaction(s)") {
		t.Errorf("Result() misses the count line:\n%s", out)
	}

	rows := tableRows(t, out)
	want := [][]string{
		{"Date", "Time", "Description", "Vendor", "Amount"},
		{"2024-01-10", "09:00:00", "Paycheck", "Employer", "+$2,000.00"},
		{"2024-01-05", "10:00:00", "Coffee", "Cafe", "-$4.50"},
	}
	if len(rows) != len(want) {
		t.Fatalf("Result() table has %d rows, want %d:\n%s", len(rows), len(want), out)
	}
	for i := range want {
		if strings.Join(rows[i], ",") != strings.Join(want[i], ",") {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestResult_Messages(t *testing.T) {
	tests := []struct {
		outcome fintrack.Outcome
		want    string
	}{
		{fintrack.EmptyLedger, EmptyLedgerMessage},
		{fintrack.NoMatch, NoMatchMessage},
	}
	for _, tc := range tests {
		t.Run(tc.outcome.String(), func(t *testing.T) {
			out := Result(fintrack.Result{Outcome: tc.outcome}, Options{Title: "Payments"})
			if !strings.Contains(out, tc.want) {
				t.Errorf("Result() = %q, want it to contain %q", out, tc.want)
			}
			if rows := tableRows(t, out); rows != nil {
				t.Errorf("Result() rendered a table for %v: %q", tc.outcome, rows)
			}
		})
	}
}

func TestResult_EscapesEmphasis(t *testing.T) {
	r := fintrack.Result{
		Outcome: fintrack.Matched,
		Transactions: []fintrack.Transaction{
			fintrack.NewPayment(date.New(2024, 1, 5), date.NewClock(10, 0, 0), "snack *deal*", "Cafe", dec("1")),
		},
	}
	src := []byte(Result(r, Options{Currency: "USD"}))
	doc := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	emphasis := 0
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindEmphasis {
			emphasis++
		}
		return ast.WalkContinue, nil
	})
	if emphasis != 0 {
		t.Errorf("description was rendered with %d emphasis node(s):\n%s", emphasis, src)
	}
	if !strings.Contains(string(src), `snack \*deal\*`) {
		t.Errorf("description was not escaped:\n%s", src)
	}
}

func TestVendorSuggestions(t *testing.T) {
	if got := VendorSuggestions("cofe", nil); got != "" {
		t.Errorf("VendorSuggestions(nil) = %q, want empty", got)
	}
	got := VendorSuggestions("cofe", []string{"Coffee Shop", "Cafe"})
	for _, want := range []string{`"cofe"`, "- Coffee Shop", "- Cafe"} {
		if !strings.Contains(got, want) {
			t.Errorf("VendorSuggestions() = %q, want it to contain %q", got, want)
		}
	}
}
