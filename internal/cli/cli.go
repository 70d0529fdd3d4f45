// internal/cli/cli.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"mafcohort/internal/clibase"
	"mafcohort/internal/version"
)

// Options holds all CLI flags for the mafcohort pipeline tool.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a clean FlagSet with ContinueOnError and declaration
// ordering preserved in usage output.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	return fs
}

// PrintUsage writes the tool banner and flag table to w.
func PrintUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, `%s: cohort mutation reports from MAF + clinical tables

Joins mutation calls to clinical metadata on the patient barcode prefix,
filters to non-silent variants, and reports top mutated genes and
per-patient gene prevalence.

Version: %s

Usage of %s:
%s`, fs.Name(), version.Version, fs.Name(), fs.FlagUsages())
}

// ParseArgs registers and parses all flags, returning an Options struct.
// Up to two positionals are accepted as MAF and clinical paths when the
// corresponding flags are unset. Validation runs later, after config-file
// merging.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	noHeader := clibase.Register(fs, &opt.Common)

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	opt.Header = !*noHeader

	if err := applyPositionals(fs.Args(), &opt.Common); err != nil {
		return opt, err
	}
	return opt, nil
}

func applyPositionals(args []string, c *clibase.Common) error {
	switch len(args) {
	case 0:
	case 1:
		if c.MAFFile == "" {
			c.MAFFile = args[0]
		} else {
			return fmt.Errorf("unexpected argument %q (--maf already set)", args[0])
		}
	case 2:
		if c.MAFFile != "" || c.ClinicalFile != "" {
			return fmt.Errorf("positional arguments conflict with --maf/--clinical")
		}
		c.MAFFile, c.ClinicalFile = args[0], args[1]
	default:
		return fmt.Errorf("too many arguments: %v", args)
	}
	return nil
}
