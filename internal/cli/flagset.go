package cli

import (
	"flag"
	"fmt"
	"io"

	"kmerfreq/internal/clibase"
)

// NewFlagSet returns a FlagSet with ContinueOnError and the shared usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [flags] <sequences.fasta>\n", name)
	})
	return fs
}
