// Package kmer extracts overlapping k-mers from both strands of a sequence,
// builds the shared k-mer universe and counts occurrences against it.
//
// It never imports app, cli, writers or plotting; keep it domain-only.
package kmer
