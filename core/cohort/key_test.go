// core/cohort/key_test.go
package cohort

import (
	"errors"
	"testing"
)

func TestPatientKey(t *testing.T) {
	k, err := PatientKey("TCGA-A1-A0SB-01A-11D")
	if err != nil || k != "TCGA-A1-A0SB" {
		t.Fatalf("PatientKey: %q %v", k, err)
	}

	// Exactly the prefix length is fine.
	k, err = PatientKey("PATIENT00001")
	if err != nil || k != "PATIENT00001" {
		t.Fatalf("PatientKey exact-length: %q %v", k, err)
	}
}

func TestPatientKey_Short(t *testing.T) {
	_, err := PatientKey("SHORT")
	var mke *MalformedKeyError
	if !errors.As(err, &mke) {
		t.Fatalf("want MalformedKeyError, got %v", err)
	}
	if mke.Barcode != "SHORT" {
		t.Fatalf("error must carry the barcode: %+v", mke)
	}
}
