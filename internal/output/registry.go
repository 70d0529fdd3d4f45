// internal/output/registry.go
package output

import (
	"fmt"
	"io"

	"mafcohort/pkg/api"
)

// Writer registries (format → handler). Writers register in init() from
// their own files; dispatch never hard-codes a format switch.
var (
	ReportWriters  = map[string]func(w io.Writer, r api.ReportV1, header bool) error{}
	SummaryWriters = map[string]func(w io.Writer, s api.SummaryV1, header bool) error{}
)

// RegisterReport installs a report writer (last registration wins).
func RegisterReport(format string, fn func(io.Writer, api.ReportV1, bool) error) {
	ReportWriters[format] = fn
}

// RegisterSummary installs a summary writer (last registration wins).
func RegisterSummary(format string, fn func(io.Writer, api.SummaryV1, bool) error) {
	SummaryWriters[format] = fn
}

// WriteReport dispatches a pipeline report to the writer for format.
func WriteReport(format string, w io.Writer, r api.ReportV1, header bool) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r, header)
}

// WriteSummary dispatches a cohort summary to the writer for format.
func WriteSummary(format string, w io.Writer, s api.SummaryV1, header bool) error {
	fn, ok := SummaryWriters[format]
	if !ok {
		return fmt.Errorf("unknown summary format %q (no writer registered)", format)
	}
	return fn(w, s, header)
}
