// Package plotting renders per-sequence k-mer count histograms.
package plotting

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultBins matches the usual histogram default of ten equal-width bins.
const DefaultBins = 10

// Series is the per-k-mer occurrence counts of one sequence.
type Series struct {
	ID     string
	Counts []float64
}

// Options controls the rendered figure. Zero values pick defaults.
type Options struct {
	Bins   int
	Width  vg.Length // whole figure; default 4in per series
	Height vg.Length // default 4in
}

func (o Options) withDefaults(n int) Options {
	if o.Bins <= 0 {
		o.Bins = DefaultBins
	}
	if o.Width <= 0 {
		o.Width = vg.Length(n) * 4 * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = 4 * vg.Inch
	}
	return o
}

// Histograms builds one plot per series. All plots share the same y range.
func Histograms(series []Series, bins int) ([]*plot.Plot, error) {
	if len(series) == 0 {
		return nil, errors.New("plotting: no series")
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	plots := make([]*plot.Plot, len(series))
	maxY := 0.0
	for i, s := range series {
		h, err := plotter.NewHist(plotter.Values(s.Counts), bins)
		if err != nil {
			return nil, fmt.Errorf("plotting %s: %w", s.ID, err)
		}
		for _, b := range h.Bins {
			if b.Weight > maxY {
				maxY = b.Weight
			}
		}
		p := plot.New()
		p.Title.Text = s.ID
		p.X.Label.Text = "k-mer count"
		if i == 0 {
			p.Y.Label.Text = "k-mers"
		}
		p.Add(h)
		plots[i] = p
	}
	for _, p := range plots {
		p.Y.Min = 0
		p.Y.Max = maxY
	}
	return plots, nil
}

// Render draws the histograms side by side and writes a PNG to w.
func Render(w io.Writer, series []Series, opt Options) error {
	opt = opt.withDefaults(len(series))
	plots, err := Histograms(series, opt.Bins)
	if err != nil {
		return err
	}

	img := vgimg.New(opt.Width, opt.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for j, p := range plots {
		p.Draw(canvases[0][j])
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("plotting: write png: %w", err)
	}
	return nil
}

// WriteFile renders the figure to path. The PNG goes to a temp file in the
// same directory first, so a failed render never leaves a partial image.
func WriteFile(path string, series []Series, opt Options) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Render(tmp, series, opt); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
