package kmer

import (
	"errors"
	"sort"
	"testing"
)

func bs(ss ...string) [][]byte {
	out := make([][]byte, len(ss))
	for i, s := range ss {
		out[i] = []byte(s)
	}
	return out
}

func TestUniverseSortedUniqueSuperset(t *testing.T) {
	seqs := bs("ACGTTGCA", "GGGATTACA", "CCC")
	u, err := NewUniverse(seqs, 3)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	if !sort.StringsAreSorted(u.Kmers()) {
		t.Errorf("universe not sorted: %v", u.Kmers())
	}
	seen := map[string]bool{}
	for i, km := range u.Kmers() {
		if seen[km] {
			t.Errorf("duplicate k-mer %q", km)
		}
		seen[km] = true
		if j, ok := u.Index(km); !ok || j != i {
			t.Errorf("Index(%q) = %d,%v want %d,true", km, j, ok, i)
		}
		if u.At(i) != km {
			t.Errorf("At(%d) = %q, want %q", i, u.At(i), km)
		}
	}
	for _, s := range seqs {
		for _, km := range ExtractAll(s, 3) {
			if !seen[km] {
				t.Errorf("k-mer %q of %s missing from universe", km, s)
			}
		}
	}
	if u.K() != 3 {
		t.Errorf("K() = %d", u.K())
	}
}

func TestUniverseDisjoint(t *testing.T) {
	// AAAA/TTTT and CCCC/GGGG share no k-mers on either strand.
	a, c := []byte("AAAA"), []byte("CCCC")
	ua, _ := NewUniverse([][]byte{a}, 2)
	uc, _ := NewUniverse([][]byte{c}, 2)
	u, err := NewUniverse([][]byte{a, c}, 2)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	if u.Len() != ua.Len()+uc.Len() {
		t.Fatalf("universe size %d, want %d+%d", u.Len(), ua.Len(), uc.Len())
	}
	want := []string{"AA", "CC", "GG", "TT"}
	for i, km := range want {
		if u.At(i) != km {
			t.Errorf("row %d = %q, want %q", i, u.At(i), km)
		}
	}
}

func TestUniverseParameterErrors(t *testing.T) {
	cases := []struct {
		name string
		seqs [][]byte
		k    int
	}{
		{"zero k", bs("ACGT"), 0},
		{"negative k", bs("ACGT"), -1},
		{"k too long", bs("AC", "ACG"), 4},
		{"no sequences", nil, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewUniverse(c.seqs, c.k)
			var pe *ParameterError
			if !errors.As(err, &pe) {
				t.Fatalf("want *ParameterError, got %v", err)
			}
			if pe.K != c.k {
				t.Errorf("K = %d, want %d", pe.K, c.k)
			}
		})
	}
}

func TestUniverseToleratesShortSequence(t *testing.T) {
	u, err := NewUniverse(bs("AC", "ACGT"), 3)
	if err != nil {
		t.Fatalf("NewUniverse: %v", err)
	}
	// ACGT: ACG, CGT forward; ACG, CGT reverse.
	if u.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (%v)", u.Len(), u.Kmers())
	}
}

func TestParameterErrorCause(t *testing.T) {
	cause := errors.New(`sequence "tiny" yields no 9-mers`)
	err := error(&ParameterError{K: 9, Reason: "k exceeds the length of every sequence", Err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("cause not reachable through Unwrap: %v", err)
	}
	want := `invalid k=9: k exceeds the length of every sequence: sequence "tiny" yields no 9-mers`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if got := (&ParameterError{K: 0, Reason: "k must be >= 1"}).Error(); got != "invalid k=0: k must be >= 1" {
		t.Errorf("Error() = %q", got)
	}
}
