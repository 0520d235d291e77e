package clibase

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrPrintedAndExitOK is returned by ParseArgs after --examples; the caller
// prints the quickstart and exits 0 without reading any FASTA input.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Example is one quickstart entry. Cmd may contain %[1]s for the program name.
type Example struct {
	Note string
	Cmd  string
}

// PrintExamples writes the quickstart block for name: each example as a
// commented note followed by its indented command line.
func PrintExamples(out io.Writer, name string, examples []Example) {
	if out == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s quickstart\n\n", name)
	for i, ex := range examples {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  # %s\n  %s\n", ex.Note, fmt.Sprintf(ex.Cmd, name))
	}
	fmt.Fprintf(&b, "\nRun %s --help for every flag.\n", name)
	_, _ = io.WriteString(out, b.String())
}
