// core/cohort/join.go
package cohort

import (
	"mafcohort-core/clinical"
	"mafcohort-core/maf"
)

// Joined is one mutation row augmented with its patient key and, when the
// clinical table has that patient, the clinical row. Clinical is nil for
// unmatched rows; the left side is never dropped.
type Joined struct {
	maf.Record
	PatientKey string
	Clinical   *clinical.Row
}

// JoinStats describes one LeftJoin run, for logging.
type JoinStats struct {
	Left          int // mutation rows in = joined rows out
	Matched       int // rows with a clinical match
	DuplicateKeys int // clinical rows discarded by first-wins keying
}

// LeftJoin joins every mutation row against the clinical table on the
// derived patient key, preserving mutation row order. Clinical identifiers
// longer than the patient prefix (sample-level barcodes) are reduced to it;
// duplicate clinical keys keep the first row. A mutation barcode shorter
// than the prefix aborts the join with *MalformedKeyError.
func LeftJoin(muts []maf.Record, clin *clinical.Table) ([]Joined, JoinStats, error) {
	stats := JoinStats{Left: len(muts)}

	byPatient := make(map[string]*clinical.Row, len(clin.Rows))
	for i := range clin.Rows {
		k := clin.Rows[i].Key
		if len(k) > PatientKeyLen {
			k = k[:PatientKeyLen]
		}
		if _, dup := byPatient[k]; dup {
			stats.DuplicateKeys++
			continue
		}
		byPatient[k] = &clin.Rows[i]
	}

	out := make([]Joined, 0, len(muts))
	for _, m := range muts {
		key, err := PatientKey(m.Sample)
		if err != nil {
			return nil, stats, err
		}
		j := Joined{Record: m, PatientKey: key}
		if row, ok := byPatient[key]; ok {
			j.Clinical = row
			stats.Matched++
		}
		out = append(out, j)
	}
	return out, stats, nil
}

// CountPatients returns the number of distinct patient keys in the joined
// table. Prevalence denominators must come from the full joined table, not a
// filtered subset.
func CountPatients(joined []Joined) int {
	seen := make(map[string]struct{}, len(joined))
	for _, j := range joined {
		seen[j.PatientKey] = struct{}{}
	}
	return len(seen)
}
