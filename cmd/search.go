package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	start       string
	end         string
	description string
	vendor      string
	amount      string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "list transactions matching every given criterion" }
func (*searchCmd) Usage() string {
	return `search [-s <date>] [-e <date>] [-desc <keyword>] [-v <vendor>] [-a <amount>]

  Lists the transactions matching all the criteria set. Unset criteria are
  ignored, so that a search without any lists the whole ledger.

  Dates are inclusive. The keyword is searched in descriptions, ignoring
  case. The vendor must match exactly, ignoring case. The amount is signed,
  payments are negative: -4.5 matches a payment of 4.50.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Earliest date")
	f.StringVar(&c.end, "e", "", "Latest date")
	f.StringVar(&c.description, "desc", "", "Keyword in the description")
	f.StringVar(&c.vendor, "v", "", "Vendor name")
	f.StringVar(&c.amount, "a", "", "Exact signed amount")
}

// search parses the flags into search criteria.
func (c *searchCmd) search(day date.Date) (fintrack.Search, error) {
	s := fintrack.Search{Keyword: strings.TrimSpace(c.description), Vendor: strings.TrimSpace(c.vendor)}
	if c.start != "" {
		from, err := date.ParseInput(c.start, day)
		if err != nil {
			return s, err
		}
		s.From = &from
	}
	if c.end != "" {
		to, err := date.ParseInput(c.end, day)
		if err != nil {
			return s, err
		}
		s.To = &to
	}
	if strings.TrimSpace(c.amount) != "" {
		amount, err := fintrack.ParseAmount(c.amount)
		if err != nil {
			return s, err
		}
		s.Amount = &amount
	}
	return s, nil
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	criteria, err := c.search(today())
	if err != nil {
		return fail(err, subcommands.ExitUsageError)
	}
	ctx, s, err := openSession(ctx)
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	printMarkdown(ctx, s.conf.Style, runSearch(s, criteria))
	return subcommands.ExitSuccess
}

func runSearch(s *session, criteria fintrack.Search) string {
	return renderer.Result(s.ledger.Query(criteria.Filter()), renderer.Options{
		Title:    "Search",
		Subtitle: describe(criteria),
		Currency: s.conf.Currency,
	})
}

// describe summarizes the criteria set, if any.
func describe(s fintrack.Search) string {
	var parts []string
	if s.From != nil {
		parts = append(parts, "from "+s.From.String())
	}
	if s.To != nil {
		parts = append(parts, "to "+s.To.String())
	}
	if s.Keyword != "" {
		parts = append(parts, fmt.Sprintf("description contains %q", s.Keyword))
	}
	if s.Vendor != "" {
		parts = append(parts, fmt.Sprintf("vendor is %q", s.Vendor))
	}
	if s.Amount != nil {
		parts = append(parts, "amount is "+fintrack.FormatAmount(*s.Amount))
	}
	return strings.Join(parts, ", ")
}
