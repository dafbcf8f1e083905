package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintrack/config"
	"github.com/google/subcommands"
)

type configCmd struct {
	save bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show the effective settings" }
func (*configCmd) Usage() string {
	return `config [-save]

  Prints the settings in effect, as YAML, and the config file they were read from.
  With -save, writes them to the -config file, or to the default config file.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.save, "save", false, "write the settings to the config file")
}

func (c *configCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conf, path, err := loadSettings()
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}

	if c.save {
		path = *configFile
		if path == "" {
			path = config.DefaultPath()
		}
		if err := conf.Save(path); err != nil {
			return fail(err, subcommands.ExitFailure)
		}
		fmt.Fprintf(output, "Saved to %s\n", path)
		return subcommands.ExitSuccess
	}

	if path == "" {
		fmt.Fprintln(output, "# no config file, built-in defaults")
	} else {
		fmt.Fprintf(output, "# %s\n", path)
	}
	if err := conf.Encode(output); err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	return subcommands.ExitSuccess
}
