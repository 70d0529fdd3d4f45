// internal/clibase/common.go

// Package clibase holds the CLI fields and validation shared by mafcohort
// and mafsummary.
package clibase

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"mafcohort/internal/output"
)

// Common holds CLI fields shared by both tools.
type Common struct {
	// Input
	MAFFile      string
	ClinicalFile string
	ClinicalKey  string

	// Analysis
	TopN int

	// Output
	Output string // text|json
	Header bool

	// Misc
	ConfigFile string
	Quiet      bool
	Version    bool
	Help       bool
}

// Register wires shared flags onto fs and returns a pointer to the
// "no-header" bool; set Common.Header = !noHeader after parsing.
func Register(fs *pflag.FlagSet, c *Common) *bool {
	// Inputs
	fs.StringVarP(&c.MAFFile, "maf", "m", "", "mutation annotation (MAF) file")
	fs.StringVarP(&c.ClinicalFile, "clinical", "c", "", "clinical metadata TSV")
	fs.StringVar(&c.ClinicalKey, "clinical-key", "", "patient identifier column (default: auto-detect)")

	// Analysis
	fs.IntVarP(&c.TopN, "top", "n", 10, "report the top N genes [10]")

	// Output
	fs.StringVarP(&c.Output, "output", "o", output.FormatText, "output format: text | json [text]")
	noHeader := fs.Bool("no-header", false, "suppress header line in text/TSV [false]")

	// Misc
	fs.StringVar(&c.ConfigFile, "config", "", "YAML run config (flags win over file values)")
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress non-essential log output [false]")
	fs.BoolVarP(&c.Version, "version", "v", false, "print version and exit [false]")
	fs.BoolVarP(&c.Help, "help", "h", false, "show this help message [false]")

	return noHeader
}

// Validate applies shared CLI invariants used by both tools. Called after
// config-file merging, so file-sourced values are checked too.
func Validate(c *Common) error {
	if c.MAFFile == "" {
		return errors.New("--maf is required")
	}
	if c.ClinicalFile == "" {
		return errors.New("--clinical is required")
	}
	if c.TopN < 1 {
		return errors.New("--top must be ≥ 1")
	}
	switch c.Output {
	case output.FormatText, output.FormatJSON:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}
