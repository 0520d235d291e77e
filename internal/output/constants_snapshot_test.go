package output

import "testing"

func TestDefaults_Stable(t *testing.T) {
	if DefaultIndexFile != "coronaviruses_freq_index.csv" {
		t.Fatalf("DefaultIndexFile changed: %q", DefaultIndexFile)
	}
	if DefaultPlotFile != "kmer_histograms.png" {
		t.Fatalf("DefaultPlotFile changed: %q", DefaultPlotFile)
	}
	if IndexCorner != "" {
		t.Fatalf("IndexCorner changed: %q", IndexCorner)
	}
}
