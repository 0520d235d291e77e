package app

import (
	"context"
	"errors"

	"kmerfreq/internal/fasta"
	"kmerfreq/internal/kmer"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2 // bad flags, unreadable or malformed input, unusable k
	ExitRuntime     = 3 // degenerate sequence, internal error, output failure
	ExitInterrupted = 130
)

// exitCode maps a run error onto the process exit status.
func exitCode(err error) int {
	var (
		ie *fasta.InputError
		pe *kmer.ParameterError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitInterrupted
	case errors.As(err, &ie), errors.As(err, &pe):
		return ExitUsage
	default:
		// degenerate sequences, internal errors, output failures
		return ExitRuntime
	}
}
