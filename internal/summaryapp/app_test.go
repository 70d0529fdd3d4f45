// internal/summaryapp/app_test.go
package summaryapp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"mafcohort/pkg/api"
)

const mafFixture = `#version 2.4
Hugo_Symbol	Variant_Classification	Tumor_Sample_Barcode	Variant_Type	Reference_Allele	Tumor_Seq_Allele2
TP53	Missense_Mutation	TCGA-A1-A0SB-01A	SNP	C	T
TP53	Nonsense_Mutation	TCGA-A1-A0SD-01A	SNP	G	T
GATA3	Frame_Shift_Del	TCGA-A1-A0SD-01A	DEL	T	-
PIK3CA	Silent	TCGA-A1-A0SE-01A	SNP	A	G
`

const clinFixture = `bcr_patient_barcode	stage
TCGA-A1-A0SB	II
TCGA-A1-A0SD	I
`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	mafPath := filepath.Join(dir, "cohort.maf")
	clinPath := filepath.Join(dir, "clin.tsv")
	require.NoError(t, os.WriteFile(mafPath, []byte(mafFixture), 0o644))
	require.NoError(t, os.WriteFile(clinPath, []byte(clinFixture), 0o644))
	return mafPath, clinPath
}

func TestRun_JSONSummary(t *testing.T) {
	mafPath, clinPath := writeFixtures(t)
	var out, errBuf bytes.Buffer

	code := Run([]string{"-m", mafPath, "-c", clinPath, "-o", "json"}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())

	var s api.SummaryV1
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	require.Equal(t, 3, s.TotalSamples)
	require.Equal(t, 3, s.TotalVariants, "silent row excluded")
	require.Equal(t, "TP53", s.Genes[0].Gene)
	require.Equal(t, 2, s.Genes[0].MutatedSamples)
	// Rename adapter ran: loader detected bcr_patient_barcode, summary wants
	// the MAF sample column.
	require.Contains(t, errBuf.String(), "clinical key column renamed")
}

func TestRun_TextSummary(t *testing.T) {
	mafPath, clinPath := writeFixtures(t)
	var out, errBuf bytes.Buffer

	code := Run([]string{"-m", mafPath, "-c", clinPath}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	require.Contains(t, out.String(), "# total_samples: 3")
	require.Contains(t, out.String(), "TP53\t2\t2\t0.6667\t")
}

func TestRun_MissingAlleleColumns(t *testing.T) {
	dir := t.TempDir()
	mafPath := filepath.Join(dir, "thin.maf")
	clinPath := filepath.Join(dir, "clin.tsv")
	thin := "Hugo_Symbol\tVariant_Classification\tTumor_Sample_Barcode\nTP53\tMissense_Mutation\tTCGA-A1-A0SB-01A\n"
	require.NoError(t, os.WriteFile(mafPath, []byte(thin), 0o644))
	require.NoError(t, os.WriteFile(clinPath, []byte(clinFixture), 0o644))

	var out, errBuf bytes.Buffer
	code := Run([]string{"-m", mafPath, "-c", clinPath}, &out, &errBuf)
	require.Equal(t, 3, code)
	require.Contains(t, errBuf.String(), "Variant_Type")
}

func TestRun_UsageAndVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	require.Equal(t, 0, Run(nil, &out, &errBuf))
	require.Contains(t, out.String(), "Usage of mafsummary")

	out.Reset()
	require.Equal(t, 0, Run([]string{"--version"}, &out, &errBuf))
	require.Contains(t, out.String(), "mafsummary version")

	out.Reset()
	errBuf.Reset()
	require.Equal(t, 2, Run([]string{"stray-positional"}, &out, &errBuf))
}
