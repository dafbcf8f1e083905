package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fintrack/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

  Shows documentation for the given topics, or the list of topics.
  Use '*' for all of them.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}

	doc, err := docs.Topics(topics...)
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	conf, err := settings()
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	printMarkdown(ctx, conf.Style, doc)
	return subcommands.ExitSuccess
}
