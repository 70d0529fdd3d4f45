// core/summary/snv.go
package summary

// SNVClasses is the fixed reporting order for base-substitution classes
// after pyrimidine normalization.
var SNVClasses = []string{"C>T", "C>G", "C>A", "T>C", "T>G", "T>A"}

var complement = map[byte]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A'}

// SNVClass normalizes a ref>alt single-base substitution to its
// pyrimidine-context class (A>G reads as T>C on the other strand). The
// second return is false for non-SNVs: indels, multi-base alleles, "-" or
// ambiguous bases.
func SNVClass(ref, alt string) (string, bool) {
	if len(ref) != 1 || len(alt) != 1 || ref == alt {
		return "", false
	}
	r, a := ref[0], alt[0]
	if _, ok := complement[r]; !ok {
		return "", false
	}
	if _, ok := complement[a]; !ok {
		return "", false
	}
	if r == 'A' || r == 'G' {
		r, a = complement[r], complement[a]
	}
	return string(r) + ">" + string(a), true
}

// IsTransition reports whether a normalized class is a purine-purine /
// pyrimidine-pyrimidine exchange (C>T, T>C); everything else in SNVClasses
// is a transversion.
func IsTransition(class string) bool {
	return class == "C>T" || class == "T>C"
}
