package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"kmerfreq/pkg/api"
)

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WriteIndex("json", &b, table(t), DefaultOptions); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	var got api.FreqIndexV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.K != 2 || len(got.Kmers) != 6 || len(got.Sequences) != 2 {
		t.Fatalf("unexpected index %+v", got)
	}
	s1 := got.Sequences[0]
	if s1.ID != "s1" || s1.Total != 6 || s1.Counts[0] != 3 || s1.Freqs[0] != 0.5 {
		t.Fatalf("unexpected s1 %+v", s1)
	}
}

func TestWriteJSONL(t *testing.T) {
	var b bytes.Buffer
	if err := WriteIndex("jsonl", &b, table(t), DefaultOptions); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	sc := bufio.NewScanner(&b)
	var rows []api.KmerRowV1
	for sc.Scan() {
		var r api.KmerRowV1
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		rows = append(rows, r)
	}
	if len(rows) != 6 || rows[0].Kmer != "AA" || rows[5].Kmer != "TT" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if rows[0].Freqs["s1"] != 0.5 || rows[1].Freqs["s1"] != 0 {
		t.Fatalf("unexpected freqs %+v", rows[:2])
	}
}
