// core/cohort/filter.go
package cohort

// NonSilent is the closed set of variant classifications expected to alter
// the protein product. Membership is exact and case-sensitive.
var NonSilent = map[string]struct{}{
	"Frame_Shift_Del":        {},
	"Frame_Shift_Ins":        {},
	"In_Frame_Del":           {},
	"In_Frame_Ins":           {},
	"Missense_Mutation":      {},
	"Nonsense_Mutation":      {},
	"Nonstop_Mutation":       {},
	"Splice_Site":            {},
	"Translation_Start_Site": {},
}

// IsNonSilent reports membership in the NonSilent set.
func IsNonSilent(classification string) bool {
	_, ok := NonSilent[classification]
	return ok
}

// FilterNonSilent keeps rows whose classification is non-silent, preserving
// order. Rows outside the set are dropped, never an error.
func FilterNonSilent(joined []Joined) []Joined {
	out := make([]Joined, 0, len(joined))
	for _, j := range joined {
		if IsNonSilent(j.Classification) {
			out = append(out, j)
		}
	}
	return out
}
