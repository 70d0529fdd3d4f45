// internal/output/headers.go
package output

// Canonical header rows for text/TSV outputs. Keep these as the single
// source of truth; all writers should use them.
const (
	GeneCountTSVHeader   = "gene\tcount"
	PrevalenceTSVHeader  = "gene\tmutated_patients\tfraction"
	GeneSummaryTSVHeader = "gene\ttotal\tmutated_samples\tfraction_affected\tclassification_breakdown"
)
