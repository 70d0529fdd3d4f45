// pkg/api/reports_v1.go
package api

// GeneCountV1 is the stable JSON schema for one top-genes row.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type GeneCountV1 struct {
	Gene  string `json:"gene"`
	Count int    `json:"count"`
}

// GenePrevalenceV1 is the stable schema for one prevalence row. Fraction is
// MutatedPatients over the run's total patient count.
type GenePrevalenceV1 struct {
	Gene            string  `json:"gene"`
	MutatedPatients int     `json:"mutated_patients"`
	Fraction        float64 `json:"fraction"`
}

// ReportV1 is the stable schema for a full pipeline run.
type ReportV1 struct {
	TotalPatients int                `json:"total_patients"`
	MutationRows  int                `json:"mutation_rows"`
	NonSilentRows int                `json:"non_silent_rows"`
	TopGenes      []GeneCountV1      `json:"top_genes"`
	Prevalence    []GenePrevalenceV1 `json:"prevalence"`
}

// LabelCountV1 is a (label, count) pair.
type LabelCountV1 struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// GeneSummaryV1 is the stable schema for one gene row of the cohort summary.
type GeneSummaryV1 struct {
	Gene             string         `json:"gene"`
	Total            int            `json:"total"`
	ByClass          map[string]int `json:"by_classification"`
	MutatedSamples   int            `json:"mutated_samples"`
	FractionAffected float64        `json:"fraction_affected"`
}

// SummaryV1 is the stable schema for the cohort summary object.
type SummaryV1 struct {
	TotalSamples    int             `json:"total_samples"`
	TotalVariants   int             `json:"total_variants"`
	Classifications []LabelCountV1  `json:"classifications"`
	VariantTypes    []LabelCountV1  `json:"variant_types"`
	SNVClasses      []LabelCountV1  `json:"snv_classes"`
	Transitions     int             `json:"transitions"`
	Transversions   int             `json:"transversions"`
	MedianPerSample float64         `json:"median_per_sample"`
	MeanPerSample   float64         `json:"mean_per_sample"`
	Genes           []GeneSummaryV1 `json:"genes"`
}
