package kmer

import (
	"errors"
	"fmt"
)

// ErrUnknownKmer means a counted k-mer is not part of the universe, which
// only happens when the universe was built with a different k.
var ErrUnknownKmer = errors.New("k-mer not in universe")

// ParameterError reports an unusable k. Err, when set, carries the
// per-sequence cause (a lone sequence shorter than k).
type ParameterError struct {
	K      int
	Reason string
	Err    error
}

func (e *ParameterError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid k=%d: %s: %v", e.K, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid k=%d: %s", e.K, e.Reason)
}

func (e *ParameterError) Unwrap() error { return e.Err }
