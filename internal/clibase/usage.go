// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"kmerfreq/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints tool-specific sections (usage line, examples) before the flag blocks.
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – k-mer frequency index for FASTA sequences\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nK-mers:")
		fmt.Fprintf(out, "  -k int                      K-mer length [%s]\n", def("k"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output file           Frequency index path ('-' for STDOUT) [%s]\n", def("output"))
		fmt.Fprintf(out, "      --format string         Index format: csv | tsv | json | jsonl [%s]\n", def("format"))
		fmt.Fprintf(out, "      --precision int         Digits after the decimal point (-1=shortest) [%s]\n", def("precision"))
		fmt.Fprintf(out, "      --plot file             Histogram figure (PNG) [%s]\n", def("plot"))
		fmt.Fprintf(out, "      --no-plot               Skip the histogram figure [%s]\n", def("no-plot"))
		fmt.Fprintf(out, "      --plot-width float      Figure width in inches (0=4 per sequence) [%s]\n", def("plot-width"))
		fmt.Fprintf(out, "      --plot-height float     Figure height in inches [%s]\n", def("plot-height"))
		fmt.Fprintf(out, "      --bins int              Histogram bins [%s]\n", def("bins"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress progress and warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
