package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-eeg/plotdata/freq"
	"github.com/cwbudde/algo-eeg/plotdata/topo"
)

// Default output sizes.
const (
	SpectrumWidth  = 10 * vg.Inch
	SpectrumHeight = 5 * vg.Inch
	TopomapSize    = 6 * vg.Inch
)

// bandColors shades consecutive bands.
var bandColors = []color.Color{
	color.NRGBA{R: 0x44, G: 0x01, B: 0x54, A: 0x20},
	color.NRGBA{R: 0x31, G: 0x68, B: 0x8e, A: 0x20},
	color.NRGBA{R: 0x35, G: 0xb7, B: 0x79, A: 0x20},
	color.NRGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 0x20},
}

// Spectrum plots every trace of axis against its domain. Bands are shaded
// behind the traces and the axis limits follow the extent. names labels the
// traces in the legend; missing names fall back to the trace index.
func Spectrum(axis *freq.Axis, names []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = axis.Label()
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Power"

	e := axis.Extent()
	p.X.Min, p.X.Max = e.X.Min, e.X.Max
	if !e.Y.IsEmpty() {
		p.Y.Min, p.Y.Max = e.Y.Min, e.Y.Max

		for i, b := range axis.Bands() {
			lo, hi := math.Max(b.Low, e.X.Min), math.Min(b.High, e.X.Max)
			if lo >= hi {
				continue
			}
			poly, err := plotter.NewPolygon(plotter.XYs{
				{X: lo, Y: e.Y.Min}, {X: hi, Y: e.Y.Min},
				{X: hi, Y: e.Y.Max}, {X: lo, Y: e.Y.Max},
			})
			if err != nil {
				return nil, fmt.Errorf("band %s: %w", b.Name, err)
			}
			poly.Color = bandColors[i%len(bandColors)]
			poly.LineStyle.Width = 0
			p.Add(poly)
		}
	}
	p.Add(plotter.NewGrid())

	domain := axis.Domain()
	for i, tr := range axis.Traces() {
		pts := make(plotter.XYs, len(tr))
		for j, v := range tr {
			pts[j] = plotter.XY{X: domain[j], Y: v}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("trace %d: %w", i, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(traceName(names, i), line)
	}

	p.Legend.Top = true
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// Topomap draws g as a heat map inside the head outline with the electrodes
// of ip on top. Colours span the normalized range [-1, 1].
func Topomap(g *topo.Grid, ip *topo.Interpolator) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ip.Name()
	p.HideAxes()
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1

	hm := plotter.NewHeatMap(flipped{g}, palette.Heat(64, 1))
	hm.Min, hm.Max = -1, 1
	hm.NaN = color.Transparent
	p.Add(hm)

	head, err := plotter.NewLine(headOutline(128))
	if err != nil {
		return nil, fmt.Errorf("head outline: %w", err)
	}
	head.Width = vg.Points(1.5)
	p.Add(head)

	n := ip.ElectrodeCount()
	if n == 0 {
		return p, nil
	}
	pts := make(plotter.XYs, n)
	for i := range n {
		pos, _ := topo.Position(i)
		pts[i] = plotter.XY{X: pos.X, Y: -pos.Y}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("electrodes: %w", err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Color = color.Black
	sc.GlyphStyle.Radius = vg.Points(2)
	p.Add(sc)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: ip.Labels()})
	if err != nil {
		return nil, fmt.Errorf("electrode labels: %w", err)
	}
	p.Add(labels)
	return p, nil
}

// WritePNG encodes p as a PNG of the given size to w.
func WritePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SavePNG writes p to path.
func SavePNG(p *plot.Plot, width, height vg.Length, path string) error {
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func traceName(names []string, i int) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return fmt.Sprintf("trace %d", i)
}

// headOutline returns the unit circle closed on itself, plus a nose
// pointing up.
func headOutline(segments int) plotter.XYs {
	pts := make(plotter.XYs, 0, segments+4)
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts = append(pts, plotter.XY{X: math.Cos(a), Y: math.Sin(a)})
	}
	return append(pts,
		plotter.XY{X: 0.1, Y: math.Sqrt(1 - 0.01)},
		plotter.XY{X: 0, Y: 1.1},
		plotter.XY{X: -0.1, Y: math.Sqrt(1 - 0.01)},
	)
}

// flipped mirrors a grid vertically.
type flipped struct {
	g *topo.Grid
}

func (f flipped) Dims() (c, r int) { return f.g.Dims() }

func (f flipped) Z(c, r int) float64 {
	_, n := f.g.Dims()
	return f.g.Z(c, n-1-r)
}

func (f flipped) X(c int) float64 { return f.g.X(c) }

func (f flipped) Y(r int) float64 {
	_, n := f.g.Dims()
	return -f.g.Y(n - 1 - r)
}
