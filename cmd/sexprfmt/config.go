package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/xiam/sexprfmt/printer"
)

// FileConfig is the content of a configuration file. Unset fields keep
// their defaults.
type FileConfig struct {
	ComplexityThreshold *int   `yaml:"complexity_threshold"`
	ShortQuantifiers    *bool  `yaml:"short_quantifiers"`
	BaseIndent          *int   `yaml:"base_indent"`
	Style               string `yaml:"style"`
	Silent              *bool  `yaml:"silent"`
	Multiline           *bool  `yaml:"multiline"`
}

func loadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}
	fc := &FileConfig{}
	if err := yaml.UnmarshalWithOptions(data, fc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("could not decode config %q: %w", path, err)
	}
	return fc, nil
}

// options is the resolved configuration of a run.
type options struct {
	printer.Config

	Silent    bool
	Multiline bool
	Debug     bool
	Diff      bool
	Color     bool
	Verbose   bool
}

// resolve merges defaults, the configuration file and the command line, in
// increasing order of precedence. explicit holds the names of the options
// given on the command line.
func (cfg *MainConfig) resolve(explicit map[string]bool, terminal bool) (*options, error) {
	opts := &options{
		Config:    printer.DefaultConfig(),
		Silent:    cfg.Silent,
		Multiline: cfg.Multiline,
		Debug:     cfg.Debug,
		Diff:      cfg.Diff,
		Color:     cfg.Color || terminal,
		Verbose:   cfg.Verbose,
	}

	if cfg.ConfigFile != "" {
		fc, err := loadFileConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := opts.apply(fc); err != nil {
			return nil, fmt.Errorf("config %q: %w", cfg.ConfigFile, err)
		}
	}

	if explicit["c"] {
		opts.ComplexityThreshold = cfg.Threshold
	}
	if explicit["i"] {
		opts.BaseIndent = cfg.Indent
	}
	if explicit["style"] {
		style, err := printer.ParseStyle(cfg.Style)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts.Style = style
	}
	opts.ShortQuantifiers = opts.ShortQuantifiers || cfg.ShortQuantifiers

	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return opts, nil
}

func (opts *options) apply(fc *FileConfig) error {
	if fc.ComplexityThreshold != nil {
		opts.ComplexityThreshold = *fc.ComplexityThreshold
	}
	if fc.BaseIndent != nil {
		opts.BaseIndent = *fc.BaseIndent
	}
	if fc.ShortQuantifiers != nil {
		opts.ShortQuantifiers = *fc.ShortQuantifiers
	}
	if fc.Style != "" {
		style, err := printer.ParseStyle(fc.Style)
		if err != nil {
			return err
		}
		opts.Style = style
	}
	if fc.Silent != nil {
		opts.Silent = opts.Silent || *fc.Silent
	}
	if fc.Multiline != nil {
		opts.Multiline = opts.Multiline || *fc.Multiline
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
