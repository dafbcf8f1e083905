package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

const homeMenu = `
Home
D) Add Deposit
P) Make Payment (Debit)
L) Ledger
X) Exit
Choose an option: `

const ledgerMenu = `
Ledger
A) All
D) Deposits
P) Payments
R) Reports
H) Home
Choose an option: `

const reportsMenu = `
Reports
1) Month To Date
2) Previous Month
3) Year To Date
4) Previous Year
5) Search by Vendor
6) Custom Search
0) Back
Choose an option: `

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "browse and update the ledger interactively" }
func (*menuCmd) Usage() string {
	return `menu

  Starts an interactive session: record deposits and payments, browse the
  ledger, and run reports from nested menus. Invalid answers are asked again.
  Exit with X from the home menu, or end the input.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, s, err := openSession(ctx)
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	m := &menu{ctx: ctx, s: s, in: bufio.NewScanner(input), out: output}
	if err := m.home(); err != nil && !errors.Is(err, io.EOF) {
		return fail(err, subcommands.ExitFailure)
	}
	// last chance for records kept for this session only
	if err := s.ledger.Sync(); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n%d transaction(s) could not be saved.\n", err, len(s.ledger.Unsaved()))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// menu is an interactive session on a ledger.
type menu struct {
	ctx context.Context
	s   *session
	in  *bufio.Scanner
	out io.Writer
}

// prompt prints label and reads one trimmed line. It returns io.EOF when the
// input is over.
func (m *menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// ask prompts until parse accepts the answer.
func ask[T any](m *menu, label string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := m.prompt(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(answer)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(m.out, "Invalid input: %v\n", err)
	}
}

func (m *menu) print(doc string) { printMarkdown(m.ctx, m.s.conf.Style, doc) }

func (m *menu) home() error {
	for {
		choice, err := m.prompt(homeMenu)
		if err != nil {
			return err
		}
		switch strings.ToUpper(choice) {
		case "D":
			err = m.add(false)
		case "P":
			err = m.add(true)
		case "L":
			err = m.ledger()
		case "X":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) ledger() error {
	list := func(title string, filter fintrack.Filter) {
		m.print(renderer.Result(m.s.ledger.Query(filter), renderer.Options{Title: title, Currency: m.s.conf.Currency}))
	}
	for {
		choice, err := m.prompt(ledgerMenu)
		if err != nil {
			return err
		}
		switch strings.ToUpper(choice) {
		case "A":
			list("Ledger", fintrack.AcceptAll)
		case "D":
			list("Deposits", fintrack.Deposits)
		case "P":
			list("Payments", fintrack.Payments)
		case "R":
			err = m.reports()
		case "H":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) reports() error {
	for {
		choice, err := m.prompt(reportsMenu)
		if err != nil {
			return err
		}
		switch choice {
		case "1", "2", "3", "4":
			m.print(runReport(m.s, fintrack.Reports[choice[0]-'1']))
		case "5":
			err = m.vendor()
		case "6":
			err = m.search()
		case "0":
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option")
		}
		if err != nil {
			return err
		}
	}
}

// when is a date and time typed in the menu.
type when struct {
	day date.Date
	at  date.Clock
}

// parseWhen parses "N" for now, or a date optionally followed by a time.
func parseWhen(s string, day date.Date) (when, error) {
	if s == "" || strings.EqualFold(s, "n") {
		return when{day: day, at: date.Now()}, nil
	}
	fields := strings.Fields(s)
	if len(fields) > 2 {
		return when{}, fmt.Errorf("want a date and a time, got %q", s)
	}
	d, err := date.ParseInput(fields[0], day)
	if err != nil {
		return when{}, err
	}
	w := when{day: d, at: date.Now()}
	if len(fields) == 2 {
		if w.at, err = date.ParseClock(fields[1]); err != nil {
			return when{}, err
		}
	}
	if err := fintrack.CheckDate(w.day, day); err != nil {
		return when{}, err
	}
	return w, nil
}

func parseText(check func(string) error) func(string) (string, error) {
	return func(s string) (string, error) { return s, check(s) }
}

func parsePositive(s string) (decimal.Decimal, error) {
	amount, err := fintrack.ParseAmount(s)
	if err != nil {
		return amount, err
	}
	return amount, fintrack.CheckAmount(amount)
}

func (m *menu) add(payment bool) error {
	kind := "deposit"
	if payment {
		kind = "payment"
	}
	day := today()
	w, err := ask(m, fmt.Sprintf("Enter the %s date and time (YYYY-MM-DD HH:MM:SS), N for now: ", kind), func(s string) (when, error) {
		return parseWhen(s, day)
	})
	if err != nil {
		return err
	}
	description, err := ask(m, fmt.Sprintf("Enter the %s description: ", kind), parseText(fintrack.CheckDescription))
	if err != nil {
		return err
	}
	vendor, err := ask(m, fmt.Sprintf("Enter the %s vendor: ", kind), parseText(fintrack.CheckVendor))
	if err != nil {
		return err
	}
	amount, err := ask(m, fmt.Sprintf("Enter the %s amount: ", kind), parsePositive)
	if err != nil {
		return err
	}

	tx, err := m.s.ledger.Add(w.day, w.at, description, vendor, amount, payment)
	switch {
	case errors.Is(err, fintrack.ErrNotPersisted):
		fmt.Fprintf(m.out, "Error: %v\nThe %s is kept for this session only.\n", err, kind)
	case err != nil:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	default:
		fmt.Fprintf(m.out, "Recorded. %s\n", renderer.Transaction(tx, m.s.conf.Currency))
	}
	return nil
}

func (m *menu) vendor() error {
	name, err := ask(m, "Enter the vendor name: ", parseText(fintrack.CheckVendor))
	if err != nil {
		return err
	}
	m.print(searchVendor(m.s, name))
	return nil
}

// optional wraps a parser so that a blank answer yields nil.
func optional[T any](parse func(string) (T, error)) func(string) (*T, error) {
	return func(s string) (*T, error) {
		if s == "" {
			return nil, nil
		}
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

func (m *menu) search() error {
	day := today()
	parseDay := func(s string) (date.Date, error) { return date.ParseInput(s, day) }
	identity := func(s string) (string, error) { return s, nil }

	var criteria fintrack.Search
	var err error
	fmt.Fprintln(m.out, "Leave a criterion blank to skip it.")
	if criteria.From, err = ask(m, "Start date: ", optional(parseDay)); err != nil {
		return err
	}
	if criteria.To, err = ask(m, "End date: ", optional(parseDay)); err != nil {
		return err
	}
	if criteria.Keyword, err = ask(m, "Description keyword: ", identity); err != nil {
		return err
	}
	if criteria.Vendor, err = ask(m, "Vendor: ", identity); err != nil {
		return err
	}
	if criteria.Amount, err = ask(m, "Exact amount (negative for payments): ", optional(fintrack.ParseAmount)); err != nil {
		return err
	}
	m.print(runSearch(m.s, criteria))
	return nil
}
