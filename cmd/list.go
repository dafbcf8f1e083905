package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

// listCmd prints the transactions accepted by a fixed filter.
type listCmd struct {
	name     string
	synopsis string
	title    string
	filter   fintrack.Filter
}

func (c *listCmd) Name() string     { return c.name }
func (c *listCmd) Synopsis() string { return c.synopsis }
func (c *listCmd) Usage() string {
	return fmt.Sprintf(`%s

  %s.
`, c.name, strings.ToUpper(c.synopsis[:1])+c.synopsis[1:])
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, s, err := openSession(ctx)
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	r := s.ledger.Query(c.filter)
	printMarkdown(ctx, s.conf.Style, renderer.Result(r, renderer.Options{Title: c.title, Currency: s.conf.Currency}))
	return subcommands.ExitSuccess
}

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "run a canned date range report" }
func (*reportCmd) Usage() string {
	return `report <mtd|pm|ytd|py>

  Lists the transactions of a canned date range, computed from today:

    mtd  month to date, from the first of the month to today
    pm   previous month, the whole last calendar month
    ytd  year to date, from January 1st to today
    py   previous year, the whole last calendar year
`
}

func (*reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	report, err := fintrack.ParseReport(f.Arg(0))
	if err != nil {
		return fail(err, subcommands.ExitUsageError)
	}
	ctx, s, err := openSession(ctx)
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	printMarkdown(ctx, s.conf.Style, runReport(s, report))
	return subcommands.ExitSuccess
}

// runReport renders a canned report for today.
func runReport(s *session, report fintrack.Report) string {
	day := today()
	return renderer.Result(s.ledger.Run(report, day), renderer.Options{
		Title:    report.Title(),
		Subtitle: report.Range(day).String(),
		Currency: s.conf.Currency,
	})
}
