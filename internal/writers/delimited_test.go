package writers

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"kmerfreq/internal/freqindex"
	"kmerfreq/internal/kmer"
)

func table(t *testing.T) *freqindex.Table {
	t.Helper()
	seqs := [][]byte{[]byte("AAAA"), []byte("AACC")}
	u, err := kmer.NewUniverse(seqs, 2)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	var counts []kmer.Counts
	for _, s := range seqs {
		c, err := kmer.CountSequence(u, s)
		if err != nil {
			t.Fatalf("CountSequence: %v", err)
		}
		counts = append(counts, c)
	}
	tab, err := freqindex.Build(u, []string{"s1", "s2"}, counts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tab
}

func TestWriteCSV(t *testing.T) {
	var b bytes.Buffer
	if err := WriteIndex("csv", &b, table(t), DefaultOptions); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	// universe: AA AC CC GG GT TT
	// s1 AAAA: AA3 TT3 ; s2 AACC: AA AC CC + GG GT TT
	want := strings.Join([]string{
		",s1,s2",
		"AA,0.5,0.16666666666666666",
		"AC,0,0.16666666666666666",
		"CC,0,0.16666666666666666",
		"GG,0,0.16666666666666666",
		"GT,0,0.16666666666666666",
		"TT,0.5,0.16666666666666666",
	}, "\n") + "\n"
	if b.String() != want {
		t.Fatalf("csv mismatch:\n got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteTSVPrecision(t *testing.T) {
	var b bytes.Buffer
	if err := WriteIndex("tsv", &b, table(t), Options{Precision: 3}); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	r := csv.NewReader(&b)
	r.Comma = '\t'
	recs, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(recs) != 7 || recs[0][1] != "s1" || recs[1][2] != "0.167" || recs[2][1] != "0.000" {
		t.Fatalf("unexpected tsv: %v", recs)
	}
}

func TestUnknownIndexFormatError(t *testing.T) {
	var b bytes.Buffer
	err := WriteIndex("nope-format", &b, table(t), DefaultOptions)
	if err == nil || !strings.Contains(err.Error(), "unknown index format") {
		t.Fatalf("want unknown format error, got %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := Formats()
	if len(got) != 4 || got[0] != "csv" || got[1] != "json" || got[2] != "jsonl" || got[3] != "tsv" {
		t.Fatalf("Formats = %v", got)
	}
}
