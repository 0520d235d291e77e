// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/biogo/biogo/alphabet"
)

// Record is one parsed FASTA entry.
type Record struct {
	Header string // full header line, leading '>' and description included
	ID     string // header without '>' up to the first whitespace
	Seq    []byte // upper-cased residues
}

// DisplayID derives the identifier used in outputs from a raw header line.
func DisplayID(header string) string {
	h := strings.TrimPrefix(header, ">")
	if i := strings.IndexFunc(h, unicode.IsSpace); i >= 0 {
		return h[:i]
	}
	return h
}

// Load reads every record from path ("-" for stdin, gzip detected).
// Records keep file order.
func Load(path string) ([]Record, error) {
	rc, err := openFASTA(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer func() { _ = rc.Close() }()
	return Parse(rc, path)
}

// Parse reads FASTA records from r. name is only used in error messages.
func Parse(r io.Reader, name string) ([]Record, error) {
	br := bufio.NewReader(r)
	var (
		recs   []Record
		cur    *Record
		buf    []byte
		seen   = map[string]int{}
		lineNo int
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Seq = bytes.Clone(buf)
		recs = append(recs, *cur)
		buf = buf[:0]
	}

	for {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, &InputError{Path: name, Line: lineNo, Err: err}
		}
		eof := err == io.EOF
		if eof && len(line) == 0 {
			break
		}
		lineNo++
		line = bytes.TrimRight(line, "\r\n")

		switch {
		case len(bytes.TrimSpace(line)) == 0:
		case line[0] == '>':
			flush()
			header := string(line)
			id := DisplayID(header)
			if id == "" {
				return nil, &InputError{Path: name, Line: lineNo, Err: ErrEmptyID}
			}
			if first, dup := seen[id]; dup {
				return nil, &InputError{Path: name, Line: lineNo,
					Err: fmt.Errorf("%w %q (first seen on line %d)", ErrDuplicateID, id, first)}
			}
			seen[id] = lineNo
			cur = &Record{Header: header, ID: id}
		default:
			if cur == nil {
				return nil, &InputError{Path: name, Line: lineNo, Err: ErrOrphanSequence}
			}
			for _, b := range bytes.ToUpper(bytes.TrimSpace(line)) {
				if b == ' ' || b == '\t' {
					continue
				}
				if !alphabet.DNAredundant.IsValid(alphabet.Letter(b)) {
					return nil, &InputError{Path: name, Line: lineNo,
						Err: fmt.Errorf("%w %q in record %q", ErrInvalidResidue, b, cur.ID)}
				}
				buf = append(buf, b)
			}
		}
		if eof {
			break
		}
	}
	flush()
	if len(recs) == 0 {
		return nil, &InputError{Path: name, Err: ErrNoRecords}
	}
	return recs, nil
}
