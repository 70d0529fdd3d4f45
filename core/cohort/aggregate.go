// core/cohort/aggregate.go
package cohort

import "sort"

// GeneCount is one row of the top-genes report.
type GeneCount struct {
	Gene  string
	Count int
}

// GenePrevalence is one row of the prevalence report. Fraction is
// Patients/TotalPatients over the full joined table's patient count.
type GenePrevalence struct {
	Gene     string
	Patients int
	Fraction float64
}

// TopGenes groups the filtered rows by gene, counts occurrences, and returns
// the top n sorted descending by count. Ties are broken by first-encountered
// gene order in the input; with a fixed input file the result is stable.
func TopGenes(filtered []Joined, n int) []GeneCount {
	counts := make(map[string]int)
	var order []string
	for _, j := range filtered {
		if _, seen := counts[j.Gene]; !seen {
			order = append(order, j.Gene)
		}
		counts[j.Gene]++
	}

	out := make([]GeneCount, 0, len(order))
	for _, g := range order {
		out = append(out, GeneCount{Gene: g, Count: counts[g]})
	}
	sort.SliceStable(out, func(i, k int) bool { return out[i].Count > out[k].Count })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Prevalence restricts the filtered rows to genes, deduplicates to distinct
// (gene, patient) pairs so repeat hits in one patient count once, and
// reports per-gene patient counts as a fraction of totalPatients. Output is
// sorted descending by patient count; ties keep the order of genes.
func Prevalence(filtered []Joined, genes []GeneCount, totalPatients int) []GenePrevalence {
	wanted := make(map[string]int, len(genes))
	for i, g := range genes {
		wanted[g.Gene] = i
	}

	patients := make([]map[string]struct{}, len(genes))
	for _, j := range filtered {
		i, ok := wanted[j.Gene]
		if !ok {
			continue
		}
		if patients[i] == nil {
			patients[i] = make(map[string]struct{})
		}
		patients[i][j.PatientKey] = struct{}{}
	}

	out := make([]GenePrevalence, 0, len(genes))
	for i, g := range genes {
		p := GenePrevalence{Gene: g.Gene, Patients: len(patients[i])}
		if totalPatients > 0 {
			p.Fraction = float64(p.Patients) / float64(totalPatients)
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, k int) bool { return out[i].Patients > out[k].Patients })
	return out
}
