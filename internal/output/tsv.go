// internal/output/tsv.go
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"mafcohort/pkg/api"
)

func init() {
	RegisterReport(FormatText, WriteReportTSV)
	RegisterSummary(FormatText, WriteSummaryTSV)
}

// WriteReportTSV writes the two report tables as TSV: top genes by count,
// then gene prevalence, separated by a blank line. Cohort-level totals go
// out as '#' comment lines so the tables stay machine-parseable.
func WriteReportTSV(w io.Writer, r api.ReportV1, header bool) error {
	if header {
		if _, err := fmt.Fprintf(w, "# total_patients: %d\n# mutation_rows: %d\n# non_silent_rows: %d\n",
			r.TotalPatients, r.MutationRows, r.NonSilentRows); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, GeneCountTSVHeader); err != nil {
			return err
		}
	}
	for _, g := range r.TopGenes {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", g.Gene, g.Count); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if header {
		if _, err := fmt.Fprintln(w, PrevalenceTSVHeader); err != nil {
			return err
		}
	}
	for _, p := range r.Prevalence {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%.4f\n", p.Gene, p.MutatedPatients, p.Fraction); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummaryTSV writes the per-gene summary table. The classification
// breakdown folds into one column as "label:count" pairs, counts descending.
func WriteSummaryTSV(w io.Writer, s api.SummaryV1, header bool) error {
	if header {
		if _, err := fmt.Fprintf(w,
			"# total_samples: %d\n# total_variants: %d\n# transitions: %d\n# transversions: %d\n# median_per_sample: %.1f\n",
			s.TotalSamples, s.TotalVariants, s.Transitions, s.Transversions, s.MedianPerSample); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, GeneSummaryTSVHeader); err != nil {
			return err
		}
	}
	for _, g := range s.Genes {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%.4f\t%s\n",
			g.Gene, g.Total, g.MutatedSamples, g.FractionAffected, foldBreakdown(g.ByClass)); err != nil {
			return err
		}
	}
	return nil
}

func foldBreakdown(byClass map[string]int) string {
	type lc struct {
		label string
		count int
	}
	list := make([]lc, 0, len(byClass))
	for l, n := range byClass {
		list = append(list, lc{l, n})
	}
	sort.Slice(list, func(i, k int) bool {
		if list[i].count != list[k].count {
			return list[i].count > list[k].count
		}
		return list[i].label < list[k].label
	})
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = fmt.Sprintf("%s:%d", e.label, e.count)
	}
	return strings.Join(parts, ";")
}
