// Package pipeline runs loaded FASTA records through the k-mer chain:
// universe, per-sequence counts, frequency table.
//
// It is orchestration-only; presentation lives in writers and plotting.
package pipeline
