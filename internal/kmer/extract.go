package kmer

import "kmerfreq/internal/seq"

// Extract returns every k-length substring of s, in order, at stride 1.
// It returns nil when k <= 0 or k > len(s).
func Extract(s []byte, k int) []string {
	if k <= 0 || k > len(s) {
		return nil
	}
	out := make([]string, 0, len(s)-k+1)
	for i := 0; i+k <= len(s); i++ {
		out = append(out, string(s[i:i+k]))
	}
	return out
}

// ExtractAll returns the forward-strand k-mers of s followed by the k-mers of
// its reverse complement. Duplicates are kept.
func ExtractAll(s []byte, k int) []string {
	fwd := Extract(s, k)
	rev := Extract(seq.RevComp(s), k)
	if len(rev) == 0 {
		return fwd
	}
	return append(fwd, rev...)
}
