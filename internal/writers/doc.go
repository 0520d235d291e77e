// Package writers serializes a frequency table into the index formats.
//
// Design:
//   • Writers own all presentation knowledge (delimiters, float formatting).
//   • kmer and freqindex stay domain-only.
package writers
