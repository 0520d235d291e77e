package output

// DefaultIndexFile is where the frequency index goes unless --output says otherwise.
const DefaultIndexFile = "coronaviruses_freq_index.csv"

// DefaultPlotFile is the histogram figure written unless --no-plot is given.
const DefaultPlotFile = "kmer_histograms.png"

// Delimited index formats.
const (
	FormatCSV = "csv"
	FormatTSV = "tsv"
)

// IndexCorner is the first header cell, above the k-mer row labels.
const IndexCorner = ""

// Structured formats, through pkg/api (v1).
const (
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)
