// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"kmerfreq/internal/fasta"
	"kmerfreq/internal/freqindex"
	"kmerfreq/internal/kmer"
)

// Config controls the k-mer pipeline.
type Config struct {
	K int
}

// Result is the output of one run.
type Result struct {
	Universe *kmer.Universe
	IDs      []string      // display identifiers, input order
	Counts   []kmer.Counts // aligned with IDs
	Table    *freqindex.Table
}

// Run builds the universe once over all records, counts every record against
// it and normalizes the counts. The context is checked between records.
// A single record shorter than k fails with a ParameterError that also
// matches freqindex.DegenerateSequenceError for that record.
func Run(ctx context.Context, cfg Config, recs []fasta.Record) (*Result, error) {
	seqs := make([][]byte, len(recs))
	for i, r := range recs {
		seqs[i] = r.Seq
	}
	u, err := kmer.NewUniverse(seqs, cfg.K)
	if err != nil {
		var pe *kmer.ParameterError
		if len(recs) == 1 && cfg.K > 0 && errors.As(err, &pe) {
			pe.Err = &freqindex.DegenerateSequenceError{ID: recs[0].ID, K: cfg.K}
		}
		return nil, err
	}

	res := &Result{
		Universe: u,
		IDs:      make([]string, 0, len(recs)),
		Counts:   make([]kmer.Counts, 0, len(recs)),
	}
	for _, r := range recs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := kmer.CountSequence(u, r.Seq)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", r.ID, err)
		}
		res.IDs = append(res.IDs, r.ID)
		res.Counts = append(res.Counts, c)
	}

	tab, err := freqindex.Build(u, res.IDs, res.Counts)
	if err != nil {
		return nil, err
	}
	res.Table = tab
	return res, nil
}
