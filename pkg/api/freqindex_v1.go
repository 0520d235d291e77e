// pkg/api/freqindex_v1.go
package api

// FreqIndexV1 is the stable JSON schema for a whole frequency index.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FreqIndexV1 struct {
	K         int          `json:"k"`
	Kmers     []string     `json:"kmers"`
	Sequences []SequenceV1 `json:"sequences"`
}

// SequenceV1 is one column of the index; Counts and Freqs align with Kmers.
type SequenceV1 struct {
	ID     string    `json:"id"`
	Total  int       `json:"total"`
	Counts []int     `json:"counts"`
	Freqs  []float64 `json:"freqs"`
}

// KmerRowV1 is one JSONL line: a k-mer and its frequency per sequence ID.
type KmerRowV1 struct {
	Kmer  string             `json:"kmer"`
	Freqs map[string]float64 `json:"freqs"`
}
