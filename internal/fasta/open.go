package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

var gzipMagic = []byte{0x1f, 0x8b}

// source is an opened FASTA input: the (possibly decompressed) stream plus
// everything that has to be closed once the records are loaded.
type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openFASTA opens path for Load. "-" reads stdin. Compressed genomes are
// recognised by the gzip magic bytes, so zcat is optional even on a pipe;
// a .gz name without the magic still goes through gzip and fails loudly.
func openFASTA(path string) (io.ReadCloser, error) {
	src := &source{}
	var f io.Reader
	if path == "-" {
		f = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		f = fh
		src.closers = append(src.closers, fh)
	}

	br := bufio.NewReader(f)
	head, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(head, gzipMagic) && !strings.HasSuffix(path, ".gz") {
		src.Reader = br
		return src, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	src.Reader = gr
	src.closers = append([]io.Closer{gr}, src.closers...)
	return src, nil
}
