// internal/output/json.go
package output

import (
	"kmerfreq/internal/freqindex"
	"kmerfreq/pkg/api"
)

// ToAPIIndex converts a table to the stable wire schema (v1).
func ToAPIIndex(t *freqindex.Table) api.FreqIndexV1 {
	v := api.FreqIndexV1{
		K:         t.K,
		Kmers:     append([]string(nil), t.Kmers...),
		Sequences: make([]api.SequenceV1, 0, len(t.Columns)),
	}
	for _, c := range t.Columns {
		v.Sequences = append(v.Sequences, api.SequenceV1{
			ID:     c.ID,
			Total:  c.Total,
			Counts: append([]int(nil), c.Counts...),
			Freqs:  append([]float64(nil), c.Freqs...),
		})
	}
	return v
}

// ToAPIRow converts row i of t.
func ToAPIRow(t *freqindex.Table, i int) api.KmerRowV1 {
	r := api.KmerRowV1{Kmer: t.Kmers[i], Freqs: make(map[string]float64, len(t.Columns))}
	for _, c := range t.Columns {
		r.Freqs[c.ID] = c.Freqs[i]
	}
	return r
}
