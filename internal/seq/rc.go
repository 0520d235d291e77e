// Package seq holds nucleotide helpers shared by k-mer extraction and the
// FASTA loader.
package seq

// complement maps every byte to its IUPAC complement; bytes outside the
// table map to 'N'. S, W, N and the gap '-' are their own complements.
var complement = func() (t [256]byte) {
	for i := range t {
		t[i] = 'N'
	}
	for _, p := range []string{"AT", "CG", "RY", "KM", "BV", "DH", "SS", "WW", "NN", "--"} {
		t[p[0]], t[p[1]] = p[1], p[0]
	}
	return t
}()

// RevComp returns the reverse complement of an upper-case sequence, used for
// the second strand of every genome. Empty input yields nil.
func RevComp(s []byte) []byte {
	if len(s) == 0 {
		return nil
	}
	out := make([]byte, len(s))
	for i, b := range s {
		out[len(s)-1-i] = complement[b]
	}
	return out
}

// IsAmbiguous reports whether b is anything other than A, C, G or T.
func IsAmbiguous(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return false
	}
	return true
}

// CountAmbiguous returns the number of non-ACGT letters in s.
func CountAmbiguous(s []byte) int {
	n := 0
	for _, b := range s {
		if IsAmbiguous(b) {
			n++
		}
	}
	return n
}
