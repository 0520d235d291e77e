package kmer

import "sort"

// Universe is the sorted set of distinct k-mers seen on either strand of a
// collection of sequences. Every k-mer is interned to its row index, so count
// vectors built against the same Universe share one coordinate space.
type Universe struct {
	k     int
	kmers []string
	index map[string]int
}

// NewUniverse pools the k-mers of every sequence (both strands) and returns
// their distinct set. It fails when k <= 0 or when no sequence is long
// enough to yield a single k-mer.
func NewUniverse(seqs [][]byte, k int) (*Universe, error) {
	if k <= 0 {
		return nil, &ParameterError{K: k, Reason: "k must be >= 1"}
	}
	seen := make(map[string]struct{})
	for _, s := range seqs {
		for _, km := range ExtractAll(s, k) {
			seen[km] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, &ParameterError{K: k, Reason: "k exceeds the length of every sequence; no k-mers extracted"}
	}

	kmers := make([]string, 0, len(seen))
	for km := range seen {
		kmers = append(kmers, km)
	}
	sort.Strings(kmers)

	index := make(map[string]int, len(kmers))
	for i, km := range kmers {
		index[km] = i
	}
	return &Universe{k: k, kmers: kmers, index: index}, nil
}

// K is the k-mer length the universe was built with.
func (u *Universe) K() int { return u.k }

// Len is the number of distinct k-mers.
func (u *Universe) Len() int { return len(u.kmers) }

// At returns the k-mer at row i.
func (u *Universe) At(i int) string { return u.kmers[i] }

// Kmers returns the rows in lexicographic order. The slice must not be modified.
func (u *Universe) Kmers() []string { return u.kmers }

// Index returns the row of km.
func (u *Universe) Index(km string) (int, bool) {
	i, ok := u.index[km]
	return i, ok
}
