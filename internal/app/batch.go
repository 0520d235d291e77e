package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// staged is an output fully written to a temp file next to its target.
type staged struct {
	tmp   string
	final string
	done  bool // renamed into place
}

// batch collects the outputs of one run so they can be published together.
type batch []*staged

// stage writes one output into a temp file in the target directory.
// Nothing is visible at the target path until commit.
func (b *batch) stage(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	f := &staged{tmp: tmp.Name(), final: path}
	*b = append(*b, f)

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	return tmp.Close()
}

// commit renames every staged file into place. If a rename fails, outputs
// already published by this call are removed again.
func (b batch) commit() error {
	for _, f := range b {
		if err := os.Rename(f.tmp, f.final); err != nil {
			for _, g := range b {
				if g.done {
					_ = os.Remove(g.final)
					g.done = false
				}
			}
			return fmt.Errorf("publish %s: %w", f.final, err)
		}
		f.done = true
	}
	return nil
}

// discard removes temp files that were never published.
func (b batch) discard() {
	for _, f := range b {
		if !f.done {
			_ = os.Remove(f.tmp)
		}
	}
}
