// internal/render/figure_test.go
package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mafcohort-core/summary"
)

func testCohort() *summary.Cohort {
	return &summary.Cohort{
		TotalSamples:  3,
		TotalVariants: 4,
		ClassTotals: []summary.LabelCount{
			{Label: "Missense_Mutation", Count: 2},
			{Label: "Nonsense_Mutation", Count: 1},
			{Label: "Frame_Shift_Del", Count: 1},
		},
		TypeTotals: []summary.LabelCount{{Label: "SNP", Count: 3}, {Label: "DEL", Count: 1}},
		SNVClassTotals: []summary.LabelCount{
			{Label: "C>T", Count: 1}, {Label: "C>G", Count: 0}, {Label: "C>A", Count: 1},
			{Label: "T>C", Count: 1}, {Label: "T>G", Count: 0}, {Label: "T>A", Count: 0},
		},
		Transitions:   2,
		Transversions: 1,
		Samples: []summary.SampleSummary{
			{Barcode: "S1", Total: 2, ByClass: map[string]int{"Missense_Mutation": 2}},
			{Barcode: "S2", Total: 2, ByClass: map[string]int{"Nonsense_Mutation": 1, "Frame_Shift_Del": 1}},
		},
		Genes: []summary.GeneSummary{
			{Gene: "TP53", Total: 3, MutatedSamples: 2, FractionAffected: 2.0 / 3.0,
				ByClass: map[string]int{"Missense_Mutation": 2, "Nonsense_Mutation": 1}},
			{Gene: "GATA3", Total: 1, MutatedSamples: 1, FractionAffected: 1.0 / 3.0,
				ByClass: map[string]int{"Frame_Shift_Del": 1}},
		},
		MedianPerSample: 2,
		MeanPerSample:   2,
	}
}

func TestSummaryFigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.png")
	require.NoError(t, SummaryFigure(testCohort(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(data) > 1000, "figure suspiciously small: %d bytes", len(data))
	require.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4], "not a PNG")
}

func TestSummaryFigure_EmptyCohort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, SummaryFigure(&summary.Cohort{}, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NotZero(t, info.Size())
}

func TestSummaryFigure_BadPath(t *testing.T) {
	err := SummaryFigure(testCohort(), filepath.Join(t.TempDir(), "missing", "dir", "x.png"))
	require.Error(t, err)
}
