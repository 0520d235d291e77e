package cmdutil

import (
	"bytes"
	"testing"
)

func TestWarnfQuiet(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, true, "x %d", 1)
	Infof(&b, true, "y")
	if b.Len() != 0 {
		t.Fatalf("quiet wrote %q", b.String())
	}
}

func TestPrefixes(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "ambiguous %s", "N")
	Infof(&b, false, "read %d", 2)
	Errorf(&b, "boom")
	want := "WARN: ambiguous N\nread 2\nerror: boom\n"
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}
