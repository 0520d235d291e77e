package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kmerfreq/internal/app"
)

func TestCanceledRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "in.fa", genomes)
	out := filepath.Join(dir, "index.csv")
	png := filepath.Join(dir, "hist.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := app.RunContext(ctx, []string{"-o", out, "--plot", png, fa}, &stdout, &stderr)
	if code != 130 {
		t.Fatalf("exit %d, want 130 (stderr=%s)", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "interrupted") {
		t.Errorf("stderr %q", stderr.String())
	}
	for _, p := range []string{out, png} {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s written by canceled run", p)
		}
	}
}
