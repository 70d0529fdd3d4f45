// core/clinical/table.go

// Package clinical loads per-patient metadata tables. Unlike MAF, clinical
// exports vary between cohorts, so rows keep their attributes by column name
// and only the patient identifier is typed.
package clinical

import "fmt"

// KeyCandidates are the identifier columns tried, in order, when the caller
// does not name one. Sample-level identifiers are accepted; the cohort join
// reduces them to the patient prefix.
var KeyCandidates = []string{"Tumor_Sample_Barcode", "bcr_patient_barcode", "Patient_ID"}

// MissingColumnError reports an identifier column absent from the header.
type MissingColumnError struct {
	Path   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: column %q not found", e.Path, e.Column)
}

// Row is one patient's metadata. Fields holds every column value keyed by
// header name, including the key column itself.
type Row struct {
	Key    string
	Fields map[string]string
}

// Table is a loaded clinical export. KeyColumn names the column Row.Key was
// taken from.
type Table struct {
	Path      string
	Columns   []string
	KeyColumn string
	Rows      []Row
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
