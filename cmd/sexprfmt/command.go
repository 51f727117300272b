package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

// MainConfig holds the command line options.
type MainConfig struct {
	Silent           bool   `cli:"name=s aliases=silent desc='do not prompt for input'"`
	Multiline        bool   `cli:"name=m aliases=multiline desc='read lines until a blank line'"`
	Debug            bool   `cli:"name=d aliases=debug desc='dump the parsed tree before the output'"`
	Threshold        int    `cli:"name=c aliases=complexity-threshold desc='nesting depth of an s-expression to display on a single line (default 1)'"`
	ShortQuantifiers bool   `cli:"name=q aliases=short-quantifiers desc='keep the first argument of forall and exists on the quantifier line'"`
	Indent           int    `cli:"name=i aliases=indent desc='base indentation of the output'"`
	Style            string `cli:"name=style desc='layout style, block or hanging (default block)'"`
	ConfigFile       string `cli:"name=config desc='YAML configuration file'"`
	Diff             bool   `cli:"name=diff desc='print a line diff between the input and the formatted output'"`
	Color            bool   `cli:"name=color desc='color the tree dump and the diff (default: when writing to a terminal)'"`
	Verbose          bool   `cli:"name=v aliases=verbose desc='log debug messages to stderr'"`

	Main *cli.Command
}

// MainCommand returns the sexprfmt command.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "sexprfmt").
		WithSynopsis("sexprfmt [opts] [file]").
		WithDescription("sexprfmt reads an s-expression and prints it with consistent indentation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sexprfmtMain(cfg, cc, args)
		})
}

func sexprfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", cli.ErrUsage, len(args))
	}
	opts, err := cfg.resolve(cfg.explicitOpts(), isTerminal(cc.Out))
	if err != nil {
		return err
	}
	return run(opts, os.Stdin, cc.Out, os.Stderr, args)
}

// explicitOpts returns the names of the options given on the command line.
func (cfg *MainConfig) explicitOpts() map[string]bool {
	res := map[string]bool{}
	for _, opt := range cfg.Main.Opts {
		if opt.Value != nil {
			res[opt.Name] = true
		}
	}
	return res
}
