package writers

import (
	"encoding/json"
	"io"

	"kmerfreq/internal/freqindex"
	"kmerfreq/internal/jsonlutil"
	"kmerfreq/internal/jsonutil"
	"kmerfreq/internal/output"
	"kmerfreq/pkg/api"
)

func init() {
	RegisterIndex(output.FormatJSON, writeJSON)
	RegisterIndex(output.FormatJSONL, writeJSONL)
}

// JSON carries full float64 precision; Options.Precision only applies to
// delimited formats.
func writeJSON(w io.Writer, t *freqindex.Table, _ Options) error {
	return jsonutil.EncodePretty(w, output.ToAPIIndex(t))
}

func writeJSONL(w io.Writer, t *freqindex.Table, _ Options) error {
	in, done := jsonlutil.Start(w, 64, func(enc *json.Encoder, r api.KmerRowV1) error {
		return enc.Encode(r)
	}, IsBrokenPipe)
	for i := range t.Kmers {
		in <- output.ToAPIRow(t, i)
	}
	close(in)
	return <-done
}
