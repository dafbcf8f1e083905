// Package cmd implements the CLI application to track deposits and payments.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fintrack"
	"github.com/etnz/fintrack/config"
	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/internal/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, groups[cmd.Name()])
	}
}

// Commands returns every fintrack subcommand.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&addCmd{},
		&addCmd{payment: true},
		&listCmd{name: "ledger", synopsis: "list all transactions, most recent first", filter: fintrack.AcceptAll, title: "Ledger"},
		&listCmd{name: "deposits", synopsis: "list deposits, most recent first", filter: fintrack.Deposits, title: "Deposits"},
		&listCmd{name: "payments", synopsis: "list payments, most recent first", filter: fintrack.Payments, title: "Payments"},
		&reportCmd{},
		&vendorCmd{},
		&searchCmd{},
		&menuCmd{},
		&configCmd{},
		&topicCmd{},
	}
}

var groups = map[string]string{
	"deposit":  "transactions",
	"payment":  "transactions",
	"ledger":   "ledger",
	"deposits": "ledger",
	"payments": "ledger",
	"report":   "reports",
	"vendor":   "reports",
	"search":   "reports",
	"menu":     "",
	"config":   "help",
	"topic":    "help",
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (defaults to the config file value, then "+config.DefaultLedgerFile+")")
	configFile = flag.String("config", "", "Path to a YAML config file (defaults to $XDG_CONFIG_HOME/"+config.AppDir+"/"+config.FileName+")")
	currency   = flag.String("currency", "", "ISO 4217 code used to display amounts (defaults to the config file value, then "+config.DefaultCurrency+")")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
	verbose    = flag.Bool("v", false, "Print debug logs")
)

// envFile is the dotenv file read from the working directory.
const envFile = ".env"

// PlainStyle is the style name that disables terminal rendering.
const PlainStyle = "plain"

var (
	output io.Writer = os.Stdout
	input  io.Reader = os.Stdin
	today            = date.Today
)

// settings loads the configuration and applies the global flags on top.
func settings() (config.Config, error) {
	conf, _, err := loadSettings()
	return conf, err
}

// loadSettings is settings, plus the path of the config file read, if any.
func loadSettings() (config.Config, string, error) {
	conf, path, err := config.Load(*configFile, envFile)
	if err != nil {
		return conf, path, err
	}
	if *ledgerFile != "" {
		conf.LedgerFile = *ledgerFile
	}
	if *currency != "" {
		conf.Currency = *currency
	}
	conf.Currency = strings.ToUpper(conf.Currency)
	if *plain {
		conf.Style = PlainStyle
	}
	if *verbose {
		conf.Verbose = true
	}
	return conf, path, nil
}

// session holds what a command needs to query or update the ledger.
type session struct {
	conf   config.Config
	log    zerolog.Logger
	ledger *fintrack.Ledger
}

// openSession loads the settings, then the ledger file.
//
// A missing ledger file is not an error: the command starts from an empty
// ledger and the file is created on the first transaction recorded.
func openSession(ctx context.Context) (context.Context, *session, error) {
	conf, err := settings()
	if err != nil {
		return ctx, nil, err
	}
	log := logger.New(conf.Verbose)
	ctx = logger.WithContext(ctx, log)

	l, stats, err := fintrack.OpenLedger(conf.LedgerFile, fintrack.WithLogger(log), fintrack.WithToday(today))
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", conf.LedgerFile).Msg("ledger file does not exist, starting with an empty ledger")
		err = nil
	}
	if err != nil {
		return ctx, nil, err
	}
	log.Debug().Str("file", conf.LedgerFile).Int("loaded", stats.Loaded).Int("skipped", stats.Skipped).Msg("ledger opened")
	return ctx, &session{conf: conf, log: log, ledger: l}, nil
}

// printMarkdown renders a markdown document for the terminal, or prints it
// as is with the plain style.
func printMarkdown(ctx context.Context, style string, doc string) {
	if style == PlainStyle {
		fmt.Fprintln(output, doc)
		return
	}
	opt := glamour.WithStandardStyle(style)
	if style == "" || style == config.DefaultStyle {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(120))
	if err == nil {
		var out string
		out, err = r.Render(doc)
		if err == nil {
			fmt.Fprint(output, out)
			return
		}
	}
	log := logger.FromContext(ctx)
	log.Debug().Err(err).Str("style", style).Msg("cannot render markdown, printing it raw")
	fmt.Fprintln(output, doc)
}

// fail prints err on stderr and returns the matching exit status.
func fail(err error, status subcommands.ExitStatus) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return status
}
