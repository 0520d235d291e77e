package fasta

import (
	"errors"
	"fmt"
)

var (
	ErrNoRecords      = errors.New("no FASTA records")
	ErrOrphanSequence = errors.New("sequence data before the first '>' header")
	ErrEmptyID        = errors.New("header has no identifier")
	ErrDuplicateID    = errors.New("duplicate sequence identifier")
	ErrInvalidResidue = errors.New("invalid nucleotide letter")
)

// InputError reports a FASTA file that is missing, unreadable or malformed.
// Line is 1-based; 0 means the error is not tied to a line.
type InputError struct {
	Path string
	Line int
	Err  error
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("fasta %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("fasta %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
