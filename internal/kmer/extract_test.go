package kmer

import (
	"reflect"
	"testing"
)

func TestExtractCounts(t *testing.T) {
	seqs := []string{"", "A", "ACG", "ACGTACGTTT", "NNACGRYT"}
	for _, s := range seqs {
		for k := 1; k <= 12; k++ {
			want := len(s) - k + 1
			if want < 0 {
				want = 0
			}
			if got := len(Extract([]byte(s), k)); got != want {
				t.Errorf("len(Extract(%q, %d)) = %d, want %d", s, k, got, want)
			}
			if got := len(ExtractAll([]byte(s), k)); got != 2*want {
				t.Errorf("len(ExtractAll(%q, %d)) = %d, want %d", s, k, got, 2*want)
			}
		}
	}
}

func TestExtractNonPositiveK(t *testing.T) {
	if got := Extract([]byte("ACGT"), 0); got != nil {
		t.Errorf("k=0: got %v, want nil", got)
	}
	if got := Extract([]byte("ACGT"), -2); got != nil {
		t.Errorf("k=-2: got %v, want nil", got)
	}
}

func TestExtractAllPalindrome(t *testing.T) {
	got := ExtractAll([]byte("ACGT"), 2)
	want := []string{"AC", "CG", "GT", "AC", "CG", "GT"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractAll(ACGT, 2) = %v, want %v", got, want)
	}
}

func TestExtractAllOrder(t *testing.T) {
	got := ExtractAll([]byte("AAC"), 2)
	want := []string{"AA", "AC", "GT", "TT"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractAll(AAC, 2) = %v, want %v", got, want)
	}
}

func TestExtractShorterThanK(t *testing.T) {
	if got := ExtractAll([]byte("AC"), 3); len(got) != 0 {
		t.Fatalf("want no k-mers, got %v", got)
	}
}
