// internal/output/json.go
package output

import (
	"io"

	"mafcohort-core/cohort"
	"mafcohort-core/summary"
	"mafcohort/internal/jsonutil"
	"mafcohort/pkg/api"
)

func init() {
	RegisterReport(FormatJSON, func(w io.Writer, r api.ReportV1, _ bool) error {
		return jsonutil.EncodePretty(w, r)
	})
	RegisterSummary(FormatJSON, func(w io.Writer, s api.SummaryV1, _ bool) error {
		return jsonutil.EncodePretty(w, s)
	})
}

// ToReport converts pipeline results to the stable wire schema (v1).
func ToReport(totalPatients, mutationRows, nonSilentRows int, top []cohort.GeneCount, prev []cohort.GenePrevalence) api.ReportV1 {
	r := api.ReportV1{
		TotalPatients: totalPatients,
		MutationRows:  mutationRows,
		NonSilentRows: nonSilentRows,
		TopGenes:      make([]api.GeneCountV1, 0, len(top)),
		Prevalence:    make([]api.GenePrevalenceV1, 0, len(prev)),
	}
	for _, g := range top {
		r.TopGenes = append(r.TopGenes, api.GeneCountV1{Gene: g.Gene, Count: g.Count})
	}
	for _, p := range prev {
		r.Prevalence = append(r.Prevalence, api.GenePrevalenceV1{
			Gene:            p.Gene,
			MutatedPatients: p.Patients,
			Fraction:        p.Fraction,
		})
	}
	return r
}

// ToSummary converts a cohort summary to the stable wire schema (v1).
func ToSummary(c *summary.Cohort) api.SummaryV1 {
	s := api.SummaryV1{
		TotalSamples:    c.TotalSamples,
		TotalVariants:   c.TotalVariants,
		Transitions:     c.Transitions,
		Transversions:   c.Transversions,
		MedianPerSample: c.MedianPerSample,
		MeanPerSample:   c.MeanPerSample,
		Classifications: toLabelCounts(c.ClassTotals),
		VariantTypes:    toLabelCounts(c.TypeTotals),
		SNVClasses:      toLabelCounts(c.SNVClassTotals),
	}
	for _, g := range c.Genes {
		byClass := make(map[string]int, len(g.ByClass))
		for k, v := range g.ByClass {
			byClass[k] = v
		}
		s.Genes = append(s.Genes, api.GeneSummaryV1{
			Gene:             g.Gene,
			Total:            g.Total,
			ByClass:          byClass,
			MutatedSamples:   g.MutatedSamples,
			FractionAffected: g.FractionAffected,
		})
	}
	return s
}

func toLabelCounts(in []summary.LabelCount) []api.LabelCountV1 {
	out := make([]api.LabelCountV1, 0, len(in))
	for _, lc := range in {
		out = append(out, api.LabelCountV1{Label: lc.Label, Count: lc.Count})
	}
	return out
}
