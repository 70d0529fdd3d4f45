// core/summary/summary.go
package summary

import (
	"sort"

	"mafcohort-core/clinical"
	"mafcohort-core/cohort"
	"mafcohort-core/maf"
)

// TopGeneCount is how many genes the summary carries for the gene panel.
const TopGeneCount = 10

// LabelCount is a (label, count) pair used by the histogram breakdowns.
type LabelCount struct {
	Label string
	Count int
}

// SampleSummary holds one sample's non-silent variant load.
type SampleSummary struct {
	Barcode string
	Total   int
	ByClass map[string]int
}

// GeneSummary holds one gene's breakdown plus the fraction of cohort
// samples carrying at least one non-silent variant in it.
type GeneSummary struct {
	Gene             string
	Total            int
	ByClass          map[string]int
	MutatedSamples   int
	FractionAffected float64
}

// Cohort is the summary object the diagnostic figure renders from. All
// breakdowns cover non-silent rows only; TotalSamples counts every sample
// in the MAF regardless of classification.
type Cohort struct {
	TotalSamples     int
	TotalVariants    int
	ClassTotals      []LabelCount // descending by count
	TypeTotals       []LabelCount // descending by count
	SNVClassTotals   []LabelCount // fixed SNVClasses order
	Transitions      int
	Transversions    int
	Samples          []SampleSummary // descending by total
	Genes            []GeneSummary   // top TopGeneCount by mutated samples
	MedianPerSample  float64
	MeanPerSample    float64
	ClinicalColumns  []string
	AnnotatedSamples int // samples with a clinical row
}

// Build constructs the cohort summary from a raw MAF and an adapted
// clinical table. The clinical table must already carry the MAF sample
// column name (see AdaptClinical); the MAF must carry the variant type and
// allele columns. Either violation is a missing-column error naming the
// offending column.
func Build(muts *maf.Table, clin *clinical.Table) (*Cohort, error) {
	if clin.KeyColumn != maf.ColSample {
		return nil, &clinical.MissingColumnError{Path: clin.Path, Column: maf.ColSample}
	}
	for _, col := range []string{maf.ColVariantType, maf.ColRefAllele, maf.ColTumorAllele} {
		if !muts.HasColumn(col) {
			return nil, &maf.MissingColumnError{Path: muts.Path, Column: col}
		}
	}

	c := &Cohort{ClinicalColumns: clin.Columns}

	allSamples := map[string]struct{}{}
	classTotals := map[string]int{}
	typeTotals := map[string]int{}
	snvTotals := map[string]int{}
	bySample := map[string]*SampleSummary{}
	byGene := map[string]*GeneSummary{}
	geneSamples := map[string]map[string]struct{}{}
	var sampleOrder, geneOrder []string

	for _, r := range muts.Records {
		allSamples[r.Sample] = struct{}{}
		if !cohort.IsNonSilent(r.Classification) {
			continue
		}
		c.TotalVariants++
		classTotals[r.Classification]++
		if r.VariantType != "" {
			typeTotals[r.VariantType]++
		}
		if class, ok := SNVClass(r.RefAllele, r.TumorAllele); ok {
			snvTotals[class]++
			if IsTransition(class) {
				c.Transitions++
			} else {
				c.Transversions++
			}
		}

		ss := bySample[r.Sample]
		if ss == nil {
			ss = &SampleSummary{Barcode: r.Sample, ByClass: map[string]int{}}
			bySample[r.Sample] = ss
			sampleOrder = append(sampleOrder, r.Sample)
		}
		ss.Total++
		ss.ByClass[r.Classification]++

		gs := byGene[r.Gene]
		if gs == nil {
			gs = &GeneSummary{Gene: r.Gene, ByClass: map[string]int{}}
			byGene[r.Gene] = gs
			geneSamples[r.Gene] = map[string]struct{}{}
			geneOrder = append(geneOrder, r.Gene)
		}
		gs.Total++
		gs.ByClass[r.Classification]++
		geneSamples[r.Gene][r.Sample] = struct{}{}
	}

	c.TotalSamples = len(allSamples)
	c.ClassTotals = sortedCounts(classTotals)
	c.TypeTotals = sortedCounts(typeTotals)
	for _, class := range SNVClasses {
		c.SNVClassTotals = append(c.SNVClassTotals, LabelCount{Label: class, Count: snvTotals[class]})
	}

	for _, s := range sampleOrder {
		c.Samples = append(c.Samples, *bySample[s])
	}
	sort.SliceStable(c.Samples, func(i, k int) bool { return c.Samples[i].Total > c.Samples[k].Total })

	for _, g := range geneOrder {
		gs := byGene[g]
		gs.MutatedSamples = len(geneSamples[g])
		if c.TotalSamples > 0 {
			gs.FractionAffected = float64(gs.MutatedSamples) / float64(c.TotalSamples)
		}
		c.Genes = append(c.Genes, *gs)
	}
	sort.SliceStable(c.Genes, func(i, k int) bool { return c.Genes[i].MutatedSamples > c.Genes[k].MutatedSamples })
	if len(c.Genes) > TopGeneCount {
		c.Genes = c.Genes[:TopGeneCount]
	}

	if n := len(c.Samples); n > 0 {
		c.MeanPerSample = float64(c.TotalVariants) / float64(n)
		totals := make([]int, n)
		for i, s := range c.Samples {
			totals[i] = s.Total
		}
		sort.Ints(totals)
		if n%2 == 1 {
			c.MedianPerSample = float64(totals[n/2])
		} else {
			c.MedianPerSample = float64(totals[n/2-1]+totals[n/2]) / 2
		}
	}

	clinKeys := map[string]struct{}{}
	for _, row := range clin.Rows {
		clinKeys[row.Key] = struct{}{}
	}
	for s := range bySample {
		if _, ok := clinKeys[s]; ok {
			c.AnnotatedSamples++
			continue
		}
		// Clinical exports are often patient-level; accept prefix matches.
		if len(s) >= cohort.PatientKeyLen {
			if _, ok := clinKeys[s[:cohort.PatientKeyLen]]; ok {
				c.AnnotatedSamples++
			}
		}
	}
	return c, nil
}

func sortedCounts(m map[string]int) []LabelCount {
	out := make([]LabelCount, 0, len(m))
	for label, n := range m {
		out = append(out, LabelCount{Label: label, Count: n})
	}
	sort.Slice(out, func(i, k int) bool {
		if out[i].Count != out[k].Count {
			return out[i].Count > out[k].Count
		}
		return out[i].Label < out[k].Label
	})
	return out
}
