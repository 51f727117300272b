package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/xiam/sexprfmt/ast"
	"github.com/xiam/sexprfmt/parser"
	"github.com/xiam/sexprfmt/printer"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func treeColors(enabled bool) *ast.Colors {
	if !enabled {
		return nil
	}
	return &ast.Colors{
		Type:       newColor(true, color.FgCyan).SprintfFunc(),
		Atom:       newColor(true, color.FgGreen).SprintfFunc(),
		Complexity: newColor(true, color.FgMagenta).SprintfFunc(),
	}
}

// run reads the input, from files[0] if given and from stdin otherwise,
// and writes the formatted expression to out.
func run(opts *options, stdin io.Reader, out, errOut io.Writer, files []string) error {
	logger := newLogger(errOut, opts.Verbose)
	logger.Debug("resolved config",
		"threshold", opts.ComplexityThreshold,
		"short_quantifiers", opts.ShortQuantifiers,
		"base_indent", opts.BaseIndent,
		"style", opts.Style)

	var (
		in  string
		err error
	)
	if len(files) > 0 && files[0] != "-" {
		in, err = readFile(files[0])
	} else {
		if !opts.Silent {
			fmt.Fprintln(errOut, prompt)
		}
		in, err = readInput(stdin, opts.Multiline)
	}
	if err != nil {
		return err
	}
	logger.Debug("read input", "bytes", len(in), "multiline", opts.Multiline)

	root, err := parser.Parse(in)
	if err != nil {
		return fmt.Errorf("error parsing input: %w", err)
	}
	if root == nil {
		logger.Debug("empty input")
	} else {
		logger.Debug("parsed input", "type", root.Type(), "complexity", root.Complexity())
	}

	if opts.Debug {
		if _, err := fmt.Fprintln(out, "final result:"); err != nil {
			return err
		}
		if err := ast.Fprint(out, root, treeColors(opts.Color)); err != nil {
			return fmt.Errorf("error writing tree: %w", err)
		}
	}

	if opts.Diff {
		formatted, err := printer.Sprint(root, opts.Config)
		if err != nil {
			return err
		}
		return writeDiff(out, in, formatted, opts.Color)
	}

	if err := printer.Fprint(out, root, opts.Config); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	if root == nil {
		return nil
	}
	_, err = io.WriteString(out, "\n")
	return err
}
