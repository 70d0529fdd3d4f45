// internal/summarycli/options.go
package summarycli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"mafcohort/internal/cli"
	"mafcohort/internal/clibase"
	"mafcohort/internal/version"
)

// Options holds all CLI flags for the mafsummary tool.
type Options struct {
	clibase.Common

	// PlotFile is where the six-panel figure lands; empty skips rendering.
	PlotFile string
}

// NewFlagSet mirrors cli.NewFlagSet for the summary tool.
func NewFlagSet(name string) *pflag.FlagSet { return cli.NewFlagSet(name) }

// PrintUsage writes the tool banner and flag table to w.
func PrintUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, `%s: cohort summary and diagnostic figure from MAF + clinical tables

Builds the enriched cohort summary (classification, variant-type, SNV-class
and per-sample breakdowns, top genes with sample fractions) and optionally
renders it as a six-panel PNG.

Version: %s

Usage of %s:
%s`, fs.Name(), version.Version, fs.Name(), fs.FlagUsages())
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	noHeader := clibase.Register(fs, &opt.Common)
	fs.StringVar(&opt.PlotFile, "plot", "", "write the six-panel summary figure (PNG) to this path")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	opt.Header = !*noHeader

	if args := fs.Args(); len(args) > 0 {
		return opt, fmt.Errorf("unexpected arguments: %v", args)
	}
	return opt, nil
}
