// internal/config/config.go

// Package config loads an optional YAML run configuration. Flags the user
// set explicitly always win over file values; the file only fills the gaps.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mafcohort/internal/clibase"
)

// File mirrors the shared CLI surface plus the plot path used by mafsummary.
type File struct {
	MAF         string `yaml:"maf"`
	Clinical    string `yaml:"clinical"`
	ClinicalKey string `yaml:"clinical_key"`
	Top         int    `yaml:"top"`
	Output      string `yaml:"output"`
	Plot        string `yaml:"plot"`
	Quiet       bool   `yaml:"quiet"`
}

// Load reads and strictly decodes a YAML run config; unknown keys are
// rejected so typos surface instead of silently doing nothing.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// Merge copies file values into c for every flag the user did not set.
// changed reports whether a flag was set on the command line (pflag's
// FlagSet.Changed).
func (f *File) Merge(c *clibase.Common, changed func(name string) bool) {
	if f.MAF != "" && !changed("maf") {
		c.MAFFile = f.MAF
	}
	if f.Clinical != "" && !changed("clinical") {
		c.ClinicalFile = f.Clinical
	}
	if f.ClinicalKey != "" && !changed("clinical-key") {
		c.ClinicalKey = f.ClinicalKey
	}
	if f.Top != 0 && !changed("top") {
		c.TopN = f.Top
	}
	if f.Output != "" && !changed("output") {
		c.Output = f.Output
	}
	if f.Quiet && !changed("quiet") {
		c.Quiet = true
	}
}
