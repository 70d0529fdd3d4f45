// core/cohort/key.go

// Package cohort owns the join-and-aggregate pipeline: patient key
// derivation, the mutation/clinical left join, the non-silent filter, and
// the gene-level count and prevalence aggregations.
package cohort

import "fmt"

// PatientKeyLen is the fixed patient-barcode prefix length (TCGA convention:
// TCGA-XX-XXXX identifies the patient, longer suffixes identify sample,
// vial, portion and so on).
const PatientKeyLen = 12

// MalformedKeyError reports a sample barcode too short to carry a patient
// prefix. Truncating such a barcode would silently corrupt the join, so it
// is always surfaced.
type MalformedKeyError struct {
	Barcode string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("sample barcode %q is shorter than the %d-character patient prefix", e.Barcode, PatientKeyLen)
}

// PatientKey derives the patient identifier from a sample barcode.
func PatientKey(barcode string) (string, error) {
	if len(barcode) < PatientKeyLen {
		return "", &MalformedKeyError{Barcode: barcode}
	}
	return barcode[:PatientKeyLen], nil
}
