// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"kmerfreq/internal/freqindex"
)

// Options are shared by all index writers.
type Options struct {
	Precision int // digits after the decimal point; -1 = shortest round-trip
}

// DefaultOptions prints every frequency at full precision.
var DefaultOptions = Options{Precision: -1}

// IndexWriter serializes one table.
type IndexWriter func(w io.Writer, t *freqindex.Table, o Options) error

// IndexWriters maps format name to writer. Register in init() blocks.
var IndexWriters = map[string]IndexWriter{}

// RegisterIndex adds or replaces (last wins) the writer for format.
func RegisterIndex(format string, fn IndexWriter) { IndexWriters[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(IndexWriters))
	for f := range IndexWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteIndex dispatches to the writer registered for format.
func WriteIndex(format string, w io.Writer, t *freqindex.Table, o Options) error {
	fn, ok := IndexWriters[format]
	if !ok {
		return fmt.Errorf("unknown index format %q (no writer registered)", format)
	}
	return fn(w, t, o)
}
