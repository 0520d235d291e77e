package writers

import (
	"encoding/csv"
	"io"
	"strconv"

	"kmerfreq/internal/freqindex"
	"kmerfreq/internal/output"
)

func init() {
	RegisterIndex(output.FormatCSV, delimited(','))
	RegisterIndex(output.FormatTSV, delimited('\t'))
}

// FormatFreq renders one cell.
func FormatFreq(f float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func delimited(comma rune) IndexWriter {
	return func(w io.Writer, t *freqindex.Table, o Options) error {
		cw := csv.NewWriter(w)
		cw.Comma = comma

		header := append([]string{output.IndexCorner}, t.IDs()...)
		if err := cw.Write(header); err != nil {
			return err
		}
		rec := make([]string, len(t.Columns)+1)
		for i, km := range t.Kmers {
			rec[0] = km
			for j, c := range t.Columns {
				rec[j+1] = FormatFreq(c.Freqs[i], o.Precision)
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}
}
