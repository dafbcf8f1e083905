package cmd

import (
	"context"
	"flag"
	"sort"
	"strings"

	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestions caps the vendor names suggested when none matches.
const maxSuggestions = 3

type vendorCmd struct{}

func (*vendorCmd) Name() string     { return "vendor" }
func (*vendorCmd) Synopsis() string { return "list transactions with a vendor" }
func (*vendorCmd) Usage() string {
	return `vendor <name>

  Lists the transactions whose vendor is exactly <name>, ignoring case.
  When none matches, the closest known vendors are suggested.
`
}

func (*vendorCmd) SetFlags(f *flag.FlagSet) {}

func (c *vendorCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ctx, s, err := openSession(ctx)
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	printMarkdown(ctx, s.conf.Style, searchVendor(s, name))
	return subcommands.ExitSuccess
}

// searchVendor renders the transactions with a vendor, and suggestions if
// there are none.
func searchVendor(s *session, name string) string {
	r := s.ledger.Query(fintrack.ByVendor(name))
	doc := renderer.Result(r, renderer.Options{Title: "Vendor " + name, Currency: s.conf.Currency})
	if r.Outcome == fintrack.NoMatch {
		if hint := renderer.VendorSuggestions(name, suggestVendors(name, s.ledger.Vendors())); hint != "" {
			doc += "\n\n" + hint
		}
	}
	return doc
}

// suggestVendors returns the known vendors closest to name, best first.
func suggestVendors(name string, vendors []string) []string {
	ranks := fuzzy.RankFindFold(name, vendors)
	sort.Sort(ranks)
	var names []string
	for _, r := range ranks {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, r.Target)
	}
	return names
}
