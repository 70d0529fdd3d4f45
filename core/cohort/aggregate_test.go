// core/cohort/aggregate_test.go
package cohort

import (
	"math"
	"testing"

	"mafcohort-core/maf"
)

func rec(gene, class string) maf.Record {
	return maf.Record{Gene: gene, Classification: class}
}

func jrow(gene, patient string) Joined {
	return Joined{Record: maf.Record{Gene: gene}, PatientKey: patient}
}

func TestTopGenes(t *testing.T) {
	var filtered []Joined
	add := func(gene string, n int) {
		for i := 0; i < n; i++ {
			filtered = append(filtered, Joined{Record: rec(gene, "Missense_Mutation")})
		}
	}
	add("TP53", 5)
	add("PIK3CA", 3)
	add("TTN", 5)
	add("GATA3", 1)

	top := TopGenes(filtered, 3)
	if len(top) != 3 {
		t.Fatalf("want 3, got %d", len(top))
	}
	// TP53 ties TTN at 5; TP53 was encountered first.
	if top[0].Gene != "TP53" || top[1].Gene != "TTN" || top[2].Gene != "PIK3CA" {
		t.Fatalf("order: %+v", top)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Count > top[i-1].Count {
			t.Fatalf("not sorted descending: %+v", top)
		}
	}
}

func TestTopGenes_FewerThanN(t *testing.T) {
	filtered := []Joined{{Record: rec("TP53", "Missense_Mutation")}}
	if got := TopGenes(filtered, 10); len(got) != 1 {
		t.Fatalf("want min(n, distinct): %+v", got)
	}
	if got := TopGenes(nil, 10); len(got) != 0 {
		t.Fatalf("empty input: %+v", got)
	}
}

func TestPrevalence_DistinctPatients(t *testing.T) {
	// One patient hit 5 times in the same gene counts once.
	filtered := []Joined{
		jrow("TP53", "P1"), jrow("TP53", "P1"), jrow("TP53", "P1"),
		jrow("TP53", "P1"), jrow("TP53", "P1"),
		jrow("TP53", "P2"),
		jrow("GATA3", "P2"),
	}
	genes := []GeneCount{{Gene: "TP53", Count: 6}, {Gene: "GATA3", Count: 1}}
	prev := Prevalence(filtered, genes, 4)
	if prev[0].Gene != "TP53" || prev[0].Patients != 2 {
		t.Fatalf("dedupe failed: %+v", prev[0])
	}
	if prev[0].Fraction != 0.5 || prev[1].Fraction != 0.25 {
		t.Fatalf("fractions: %+v", prev)
	}
	for _, p := range prev {
		if p.Fraction < 0 || p.Fraction > 1 {
			t.Fatalf("fraction out of range: %+v", p)
		}
	}
}

func TestPrevalence_DenominatorFromUnfilteredJoin(t *testing.T) {
	// Mutation rows: (S1,GeneA,Missense), (S1,GeneA,Missense), (S2,GeneA,Silent)
	// after filtering only the two Missense rows remain; GeneA count = 2,
	// prevalence = 1 of 2 patients.
	joined := []Joined{
		{Record: maf.Record{Gene: "GeneA", Classification: "Missense_Mutation"}, PatientKey: "PATIENT0001-"[:12]},
		{Record: maf.Record{Gene: "GeneA", Classification: "Missense_Mutation"}, PatientKey: "PATIENT0001-"[:12]},
		{Record: maf.Record{Gene: "GeneA", Classification: "Silent"}, PatientKey: "PATIENT0002-"[:12]},
	}
	total := CountPatients(joined)
	filtered := FilterNonSilent(joined)
	if len(filtered) != 2 {
		t.Fatalf("want 2 after filter, got %d", len(filtered))
	}
	top := TopGenes(filtered, 10)
	if len(top) != 1 || top[0].Count != 2 {
		t.Fatalf("GeneA count: %+v", top)
	}
	prev := Prevalence(filtered, top, total)
	if math.Abs(prev[0].Fraction-0.5) > 1e-12 {
		t.Fatalf("want 0.50, got %v", prev[0].Fraction)
	}
}

func TestPrevalence_ZeroPatients(t *testing.T) {
	prev := Prevalence(nil, []GeneCount{{Gene: "TP53"}}, 0)
	if prev[0].Fraction != 0 {
		t.Fatalf("zero denominator must not NaN: %+v", prev)
	}
}
