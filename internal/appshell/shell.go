// Package appshell is the process boundary for kmerfreq: it owns os.Args,
// the standard streams, signal handling and os.Exit so that the app package
// can be driven from tests with plain writers.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature of app.RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// exitInterrupted is the conventional 128+SIGINT status.
const exitInterrupted = 130

// Main runs one kmerfreq invocation and exits the process. SIGINT and SIGTERM
// cancel the context passed to run; a run that was cancelled but still
// reported success exits 130, since its outputs were never published.
// With no arguments at all the usage text is shown.
func Main(run RunFunc) {
	os.Exit(exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

func exec(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if code == 0 && ctx.Err() != nil {
		return exitInterrupted
	}
	return code
}
