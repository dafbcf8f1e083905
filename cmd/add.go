package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

// addCmd records a deposit, or a payment.
type addCmd struct {
	payment     bool
	date        string
	time        string
	description string
	vendor      string
	amount      string
}

func (c *addCmd) kind() string {
	if c.payment {
		return "payment"
	}
	return "deposit"
}

func (c *addCmd) Name() string { return c.kind() }
func (c *addCmd) Synopsis() string {
	if c.payment {
		return "record a payment made to a vendor"
	}
	return "record a deposit received from a vendor"
}
func (c *addCmd) Usage() string {
	return fmt.Sprintf(`%s [-d <date>] [-t <time>] -desc <description> -v <vendor> -a <amount>

  Records a %s in the ledger and appends it to the ledger file.
  The amount is always positive, a payment is stored as a negative amount.
  The date accepts YYYY-MM-DD, relative dates like -1d or 2w, and short
  dates like 27 or 08-27.
`, c.kind(), c.kind())
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Transaction date")
	f.StringVar(&c.time, "t", "", "Transaction time (HH:MM[:SS]), defaults to now")
	f.StringVar(&c.description, "desc", "", "What the transaction is about")
	f.StringVar(&c.vendor, "v", "", "Who paid, or who got paid")
	f.StringVar(&c.amount, "a", "", "Positive amount")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	day, err := date.ParseInput(c.date, today())
	if err != nil {
		return fail(err, subcommands.ExitUsageError)
	}
	at := date.Now()
	if c.time != "" {
		if at, err = date.ParseClock(c.time); err != nil {
			return fail(err, subcommands.ExitUsageError)
		}
	}
	amount, err := fintrack.ParseAmount(c.amount)
	if err != nil {
		return fail(err, subcommands.ExitUsageError)
	}

	_, s, err := openSession(ctx)
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}

	tx, err := s.ledger.Add(day, at, strings.TrimSpace(c.description), strings.TrimSpace(c.vendor), amount, c.payment)
	switch {
	case errors.Is(err, fintrack.ErrNotPersisted):
		return fail(err, subcommands.ExitFailure)
	case err != nil:
		return fail(err, subcommands.ExitUsageError)
	}

	s.log.Debug().Str("file", s.conf.LedgerFile).Str("line", fintrack.FormatLine(tx)).Msg("transaction appended")
	fmt.Fprintf(output, "Recorded. %s\n", renderer.Transaction(tx, s.conf.Currency))
	return subcommands.ExitSuccess
}
