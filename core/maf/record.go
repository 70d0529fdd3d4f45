// core/maf/record.go
package maf

// Canonical MAF column names. The loader matches these case-sensitively,
// following the MAF convention of underscore-separated title case.
const (
	ColGene           = "Hugo_Symbol"
	ColClassification = "Variant_Classification"
	ColSample         = "Tumor_Sample_Barcode"
	ColVariantType    = "Variant_Type"
	ColRefAllele      = "Reference_Allele"
	ColTumorAllele    = "Tumor_Seq_Allele2"
)

// RequiredColumns must be present in every input MAF; the remaining columns
// in the schema are only needed for summary construction and are validated
// there, not at load time.
var RequiredColumns = []string{ColGene, ColClassification, ColSample}

// Record is one mutation call. Optional fields are empty strings when the
// source file lacks the corresponding column.
type Record struct {
	Gene           string
	Classification string
	Sample         string
	VariantType    string
	RefAllele      string
	TumorAllele    string
}

// Table is a loaded MAF: the records in file order plus the header actually
// seen, so downstream stages can distinguish "column absent" from "value empty".
type Table struct {
	Path    string
	Columns []string
	Records []Record
}

// HasColumn reports whether the source file carried the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
