package cmd

import (
	"flag"

	"github.com/etnz/fintrack/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion(top *flag.FlagSet) *complete.Command {
	c := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(top),
	}
	for _, cmd := range Commands() {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		c.Sub[cmd.Name()] = &complete.Command{
			Flags: flagPredictors(f),
			Args:  argPredictor(cmd),
		}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		c.Sub[name] = &complete.Command{}
	}
	return c
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "ledger-file":
			flags[fl.Name] = predict.Files("*.csv")
		case "config":
			flags[fl.Name] = predict.Files("*.yml")
		case "plain", "v", "save":
			// a boolean on the top level, the vendor on add and search.
			if isBool(fl) {
				flags[fl.Name] = predict.Nothing
			} else {
				flags[fl.Name] = predict.Something
			}
		default:
			flags[fl.Name] = predict.Something
		}
	})
	return flags
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func argPredictor(cmd subcommands.Command) complete.Predictor {
	switch cmd.Name() {
	case "report":
		return predict.Set{"mtd", "pm", "ytd", "py"}
	case "topic":
		return predict.Set(docs.Names())
	default:
		return predict.Nothing
	}
}
