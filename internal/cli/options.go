// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"kmerfreq/internal/clibase"
	"kmerfreq/internal/cliutil"
	"kmerfreq/internal/output"
	"kmerfreq/internal/writers"
)

// DefaultK is the k-mer length used when -k is not given.
const DefaultK = 3

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	FastaPath string

	// K-mers
	K int

	// Output
	Output     string
	Format     string
	Precision  int
	PlotFile   string
	NoPlot     bool
	PlotWidth  float64 // inches; 0 = 4 per sequence
	PlotHeight float64 // inches
	Bins       int

	// Misc
	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags may appear before or after the FASTA path.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, examples bool

	fs.IntVar(&opt.K, "k", DefaultK, "k-mer length")

	fs.StringVar(&opt.Output, "output", output.DefaultIndexFile, "frequency index path ('-' = stdout)")
	fs.StringVar(&opt.Output, "o", output.DefaultIndexFile, "alias of --output")
	fs.StringVar(&opt.Format, "format", output.FormatCSV, "index format: csv | tsv | json | jsonl")
	fs.IntVar(&opt.Precision, "precision", -1, "digits after the decimal point (-1 = shortest)")
	fs.StringVar(&opt.PlotFile, "plot", output.DefaultPlotFile, "histogram figure (PNG)")
	fs.BoolVar(&opt.NoPlot, "no-plot", false, "skip the histogram figure")
	fs.Float64Var(&opt.PlotWidth, "plot-width", 0, "figure width in inches (0 = 4 per sequence)")
	fs.Float64Var(&opt.PlotHeight, "plot-height", 4, "figure height in inches")
	fs.IntVar(&opt.Bins, "bins", 10, "histogram bins")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress and warnings")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&examples, "examples", false, "show quickstart examples and exit")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand)")
	fs.BoolVar(&help, "help", false, "show this help message")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}

	path, err := cliutil.SinglePositional("FASTA file", posArgs)
	if err != nil {
		return opt, err
	}
	opt.FastaPath = path

	if opt.K < 1 {
		return opt, errors.New("-k must be ≥ 1")
	}
	if opt.Output == "" {
		return opt, errors.New("--output must not be empty")
	}
	if _, ok := writers.IndexWriters[opt.Format]; !ok {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if opt.Precision < -1 {
		return opt, errors.New("--precision must be ≥ -1")
	}
	if !opt.NoPlot && opt.PlotFile == "" {
		return opt, errors.New("--plot must not be empty (use --no-plot to skip the figure)")
	}
	if opt.PlotWidth < 0 || opt.PlotHeight <= 0 {
		return opt, errors.New("--plot-width must be ≥ 0 and --plot-height > 0")
	}
	if opt.Bins < 1 {
		return opt, errors.New("--bins must be ≥ 1")
	}
	return opt, nil
}

// PrintExamples writes the quickstart shown by --examples.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, []clibase.Example{
		{Note: "3-mer index and histograms with default file names", Cmd: "%[1]s genomes.fasta"},
		{Note: "5-mers, TSV on stdout, no figure", Cmd: "%[1]s -k 5 --format tsv -o - --no-plot genomes.fasta"},
		{Note: "gzip input from a pipe", Cmd: "zcat genomes.fa.gz | %[1]s -k 4 -"},
	})
}
