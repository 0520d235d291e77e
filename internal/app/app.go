// internal/app/app.go
package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"

	"kmerfreq/internal/cli"
	"kmerfreq/internal/clibase"
	"kmerfreq/internal/cmdutil"
	"kmerfreq/internal/fasta"
	"kmerfreq/internal/kmer"
	"kmerfreq/internal/pipeline"
	"kmerfreq/internal/plotting"
	"kmerfreq/internal/seq"
	"kmerfreq/internal/version"
	"kmerfreq/internal/writers"
)

const name = "kmerfreq"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, name)
			return flush(outw, stderr, ExitOK)
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.SetOutput(outw)
		fs.Usage()
		flush(outw, stderr, ExitOK)
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, ExitOK)
	}

	if err := run(parent, opts, outw, stderr); err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		code := exitCode(err)
		switch {
		case code == ExitInterrupted:
			cmdutil.Errorf(stderr, "interrupted")
		case errors.Is(err, kmer.ErrUnknownKmer):
			cmdutil.Errorf(stderr, "internal: %v", err)
		default:
			cmdutil.Errorf(stderr, "%v", err)
		}
		return code
	}
	return flush(outw, stderr, ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// run loads the FASTA file, builds the frequency index and writes both
// outputs. Either every requested output lands or none does.
func run(ctx context.Context, opts cli.Options, stdout io.Writer, stderr io.Writer) error {
	recs, err := fasta.Load(opts.FastaPath)
	if err != nil {
		return err
	}
	for _, r := range recs {
		if n := seq.CountAmbiguous(r.Seq); n > 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "%s: %d ambiguous or gap letters; their k-mers are counted as-is", r.ID, n)
		}
		if len(r.Seq) < opts.K {
			cmdutil.Warnf(stderr, opts.Quiet, "%s: length %d is shorter than k=%d", r.ID, len(r.Seq), opts.K)
		}
	}

	res, err := pipeline.Run(ctx, pipeline.Config{K: opts.K}, recs)
	if err != nil {
		return err
	}
	cmdutil.Infof(stderr, opts.Quiet, "%d sequences, k=%d, %d distinct k-mers", len(res.IDs), opts.K, res.Universe.Len())

	var outs batch
	defer outs.discard()

	if !opts.NoPlot {
		series := make([]plotting.Series, len(res.IDs))
		for i, id := range res.IDs {
			series[i] = plotting.Series{ID: id, Counts: res.Counts[i].Values()}
		}
		popt := plotting.Options{
			Bins:   opts.Bins,
			Width:  vg.Length(opts.PlotWidth) * vg.Inch,
			Height: vg.Length(opts.PlotHeight) * vg.Inch,
		}
		if err := outs.stage(opts.PlotFile, func(w io.Writer) error {
			return plotting.Render(w, series, popt)
		}); err != nil {
			return fmt.Errorf("write histograms: %w", err)
		}
	}

	wopt := writers.Options{Precision: opts.Precision}
	var index bytes.Buffer
	if opts.Output == "-" {
		if err := writers.WriteIndex(opts.Format, &index, res.Table, wopt); err != nil {
			return err
		}
	} else if err := outs.stage(opts.Output, func(w io.Writer) error {
		return writers.WriteIndex(opts.Format, w, res.Table, wopt)
	}); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := outs.commit(); err != nil {
		return err
	}
	for _, f := range outs {
		cmdutil.Infof(stderr, opts.Quiet, "wrote %s", f.final)
	}
	if opts.Output == "-" {
		_, err := index.WriteTo(stdout)
		return err
	}
	return nil
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		cmdutil.Errorf(stderr, "%v", e)
		return ExitRuntime
	}
	return code
}
