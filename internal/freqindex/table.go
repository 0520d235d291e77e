// Package freqindex stacks per-sequence k-mer counts into a table and
// normalizes each column into a frequency distribution.
package freqindex

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"kmerfreq/internal/kmer"
)

// DegenerateSequenceError reports a sequence with no k-mer occurrences,
// whose column cannot be normalized.
type DegenerateSequenceError struct {
	ID string
	K  int
}

func (e *DegenerateSequenceError) Error() string {
	return fmt.Sprintf("sequence %q yields no %d-mers (shorter than k); cannot normalize its frequencies", e.ID, e.K)
}

// Column is one sequence's counts and frequencies, aligned with Table.Kmers.
type Column struct {
	ID     string
	Counts kmer.Counts
	Total  int
	Freqs  []float64
}

// Table is the k-mer frequency index: rows are k-mers in lexicographic order,
// columns are sequences in input order.
type Table struct {
	K       int
	Kmers   []string
	Columns []Column
}

// Build normalizes counts (one vector per id, in the same order) over the
// rows of u. Every column must come from kmer.Count against u.
func Build(u *kmer.Universe, ids []string, counts []kmer.Counts) (*Table, error) {
	if len(ids) != len(counts) {
		return nil, fmt.Errorf("freqindex: %d ids for %d count vectors", len(ids), len(counts))
	}
	if len(ids) == 0 {
		return nil, errors.New("freqindex: no sequences")
	}
	t := &Table{K: u.K(), Kmers: u.Kmers(), Columns: make([]Column, 0, len(ids))}
	for i, id := range ids {
		c := counts[i]
		if len(c) != u.Len() {
			return nil, fmt.Errorf("freqindex: column %q has %d rows, universe has %d", id, len(c), u.Len())
		}
		freqs := c.Values()
		sum := floats.Sum(freqs)
		if sum == 0 {
			return nil, &DegenerateSequenceError{ID: id, K: u.K()}
		}
		for j := range freqs {
			freqs[j] /= sum
		}
		t.Columns = append(t.Columns, Column{ID: id, Counts: c, Total: int(sum), Freqs: freqs})
	}
	return t, nil
}

// IDs returns the column headers.
func (t *Table) IDs() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.ID
	}
	return out
}

// Row returns the frequencies of row i across all columns.
func (t *Table) Row(i int) []float64 {
	out := make([]float64, len(t.Columns))
	for j, c := range t.Columns {
		out[j] = c.Freqs[i]
	}
	return out
}
