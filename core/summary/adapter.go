// core/summary/adapter.go

// Package summary re-derives an enriched cohort summary from the raw
// mutation and clinical tables: per-classification, per-variant-type,
// per-SNV-class and per-sample breakdowns plus top-gene sample fractions.
// It is the input to the multi-panel diagnostic figure.
package summary

import (
	"mafcohort-core/clinical"
	"mafcohort-core/maf"
)

// AdaptClinical renames the clinical table's key column to the MAF sample
// column name the summarizer expects.
//
// Pre: tbl was loaded with a detected or explicit key column.
// Post: the returned copy has KeyColumn == maf.ColSample and carries that
// column in its header and in every row's field map; tbl is not modified.
//
// A table with no key column cannot be adapted and fails with
// *clinical.MissingColumnError naming maf.ColSample.
func AdaptClinical(tbl *clinical.Table) (*clinical.Table, error) {
	if tbl.KeyColumn == "" {
		return nil, &clinical.MissingColumnError{Path: tbl.Path, Column: maf.ColSample}
	}
	if tbl.KeyColumn == maf.ColSample {
		return tbl, nil
	}

	out := &clinical.Table{Path: tbl.Path, KeyColumn: maf.ColSample}
	out.Columns = make([]string, len(tbl.Columns))
	for i, c := range tbl.Columns {
		if c == tbl.KeyColumn {
			c = maf.ColSample
		}
		out.Columns[i] = c
	}
	out.Rows = make([]clinical.Row, len(tbl.Rows))
	for i, r := range tbl.Rows {
		nr := clinical.Row{Key: r.Key, Fields: make(map[string]string, len(r.Fields))}
		for k, v := range r.Fields {
			if k == tbl.KeyColumn {
				k = maf.ColSample
			}
			nr.Fields[k] = v
		}
		out.Rows[i] = nr
	}
	return out, nil
}
