// internal/output/constants_snapshot_test.go
package output

import "testing"

func TestTSVHeaders_Stable(t *testing.T) {
	if GeneCountTSVHeader != "gene\tcount" {
		t.Fatalf("GeneCountTSVHeader changed: %q", GeneCountTSVHeader)
	}
	if PrevalenceTSVHeader != "gene\tmutated_patients\tfraction" {
		t.Fatalf("PrevalenceTSVHeader changed: %q", PrevalenceTSVHeader)
	}
	if GeneSummaryTSVHeader != "gene\ttotal\tmutated_samples\tfraction_affected\tclassification_breakdown" {
		t.Fatalf("GeneSummaryTSVHeader changed: %q", GeneSummaryTSVHeader)
	}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" {
		t.Fatal("output format constants changed")
	}
}
