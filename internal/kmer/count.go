package kmer

import "fmt"

// Counts holds one occurrence count per universe row.
type Counts []int

// Total is the number of k-mer occurrences tallied.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Values returns the counts as float64, for plotting.
func (c Counts) Values() []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = float64(v)
	}
	return out
}

// Count tallies kmers against u. Every universe row starts at zero.
func Count(u *Universe, kmers []string) (Counts, error) {
	counts := make(Counts, u.Len())
	for _, km := range kmers {
		i, ok := u.Index(km)
		if !ok {
			return nil, fmt.Errorf("%w: %q (universe k=%d, k-mer length %d)", ErrUnknownKmer, km, u.K(), len(km))
		}
		counts[i]++
	}
	return counts, nil
}

// CountSequence extracts both strands of s with the universe's k and counts them.
func CountSequence(u *Universe, s []byte) (Counts, error) {
	return Count(u, ExtractAll(s, u.K()))
}
