// core/summary/adapter_test.go
package summary

import (
	"errors"
	"testing"

	"mafcohort-core/clinical"
	"mafcohort-core/maf"
)

func TestAdaptClinical(t *testing.T) {
	in := &clinical.Table{
		Path:      "clin.tsv",
		Columns:   []string{"bcr_patient_barcode", "stage"},
		KeyColumn: "bcr_patient_barcode",
		Rows: []clinical.Row{
			{Key: "TCGA-A1-A0SB", Fields: map[string]string{"bcr_patient_barcode": "TCGA-A1-A0SB", "stage": "II"}},
		},
	}
	out, err := AdaptClinical(in)
	if err != nil {
		t.Fatalf("AdaptClinical: %v", err)
	}
	if out.KeyColumn != maf.ColSample || !out.HasColumn(maf.ColSample) {
		t.Fatalf("key column not renamed: %+v", out.Columns)
	}
	if out.Rows[0].Fields[maf.ColSample] != "TCGA-A1-A0SB" {
		t.Fatalf("row fields not renamed: %+v", out.Rows[0].Fields)
	}
	if _, stale := out.Rows[0].Fields["bcr_patient_barcode"]; stale {
		t.Fatal("old key column must not survive the rename")
	}
	// Input untouched.
	if in.KeyColumn != "bcr_patient_barcode" || in.Columns[0] != "bcr_patient_barcode" {
		t.Fatalf("input mutated: %+v", in)
	}
}

func TestAdaptClinical_AlreadyAdapted(t *testing.T) {
	in := &clinical.Table{Path: "clin.tsv", Columns: []string{maf.ColSample}, KeyColumn: maf.ColSample}
	out, err := AdaptClinical(in)
	if err != nil || out != in {
		t.Fatalf("already-adapted table should pass through: %v", err)
	}
}

func TestAdaptClinical_NoKey(t *testing.T) {
	_, err := AdaptClinical(&clinical.Table{Path: "clin.tsv", Columns: []string{"foo"}})
	var mce *clinical.MissingColumnError
	if !errors.As(err, &mce) || mce.Column != maf.ColSample {
		t.Fatalf("want missing %q, got %v", maf.ColSample, err)
	}
}
