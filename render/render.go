package render

import (
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/isoline/geom"
	"github.com/katalvlaran/isoline/grid"
)

// Options controls the rendered picture.
type Options struct {
	// Title is printed above the plot; empty for none.
	Title string
	// Threshold decides which samples are drawn filled (value >= Threshold).
	Threshold float64
	// CellSize is the distance between neighbouring samples.
	CellSize vg.Length
	// ShowValues prints each sample value next to its dot.
	ShowValues bool

	InsideColor  color.Color
	OutsideColor color.Color
	LineColor    color.Color
	LineWidth    vg.Length
	DotRadius    vg.Length
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{
		CellSize:     vg.Points(36),
		InsideColor:  color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		OutsideColor: color.Gray{Y: 0xa0},
		LineColor:    color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		LineWidth:    vg.Points(2),
		DotRadius:    vg.Points(3),
	}
}

// formats lists the extensions accepted by plot.WriterTo.
var formats = map[string]struct{}{
	"png": {}, "svg": {}, "pdf": {}, "eps": {},
	"jpg": {}, "jpeg": {}, "tif": {}, "tiff": {},
}

// Plot builds a *plot.Plot showing g and c.
// Returns ErrEmptyGrid if g is nil or has no samples.
func Plot(g *grid.Grid, c geom.Contour, opts Options) (*plot.Plot, error) {
	if g == nil || g.Empty() {
		return nil, ErrEmptyGrid
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	dots, err := samples(g, opts)
	if err != nil {
		return nil, err
	}
	p.Add(dots)

	if opts.ShowValues {
		labels, err := valueLabels(g)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	p.Add(&contourLines{
		segs: c.Finite(),
		style: draw.LineStyle{
			Color: opts.LineColor,
			Width: opts.LineWidth,
		},
	})

	return p, nil
}

// Size returns the canvas size for g: one CellSize per grid step plus a
// margin for axes and title.
func Size(g *grid.Grid, opts Options) (w, h vg.Length) {
	const margin = 2 // cells
	cell := opts.CellSize
	if cell <= 0 {
		cell = DefaultOptions().CellSize
	}
	return cell * vg.Length(g.Cols()-1+margin), cell * vg.Length(g.Rows()-1+margin)
}

// Write renders g and c to w in the given format ("png", "svg", ...).
func Write(w io.Writer, g *grid.Grid, c geom.Contour, format string, opts Options) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if _, ok := formats[format]; !ok {
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	p, err := Plot(g, c, opts)
	if err != nil {
		return err
	}
	width, height := Size(g, opts)
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", format, err)
	}
	return nil
}

// Save renders g and c to path; the format follows the file extension.
func Save(path string, g *grid.Grid, c geom.Contour, opts Options) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := formats[format]; !ok {
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	p, err := Plot(g, c, opts)
	if err != nil {
		return err
	}
	width, height := Size(g, opts)
	return p.Save(width, height, path)
}

// samples returns a scatter of every sample, coloured by side.
func samples(g *grid.Grid, opts Options) (*plotter.Scatter, error) {
	xys := make(plotter.XYs, 0, g.Rows()*g.Cols())
	inside := make([]bool, 0, cap(xys))
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			xys = append(xys, plotter.XY{X: float64(x), Y: float64(y)})
			inside = append(inside, g.At(x, y) >= opts.Threshold)
		}
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("render: samples: %w", err)
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		if inside[i] {
			return draw.GlyphStyle{Color: opts.InsideColor, Radius: opts.DotRadius, Shape: draw.CircleGlyph{}}
		}
		return draw.GlyphStyle{Color: opts.OutsideColor, Radius: opts.DotRadius, Shape: draw.RingGlyph{}}
	}
	return s, nil
}

// valueLabels prints each sample value beside its dot.
func valueLabels(g *grid.Grid) (*plotter.Labels, error) {
	var l plotter.XYLabels
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			l.XYs = append(l.XYs, plotter.XY{X: float64(x), Y: float64(y)})
			l.Labels = append(l.Labels, strconv.FormatFloat(g.At(x, y), 'g', 3, 64))
		}
	}
	labels, err := plotter.NewLabels(l)
	if err != nil {
		return nil, fmt.Errorf("render: labels: %w", err)
	}
	labels.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
	return labels, nil
}

// contourLines is a plot.Plotter stroking independent two-point segments.
type contourLines struct {
	segs  geom.Contour
	style draw.LineStyle
}

// Plot implements plot.Plotter.
func (cl *contourLines) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, s := range cl.segs {
		c.StrokeLine2(cl.style, trX(s.A.X), trY(s.A.Y), trX(s.B.X), trY(s.B.Y))
	}
}

// DataRange implements plot.DataRanger.
func (cl *contourLines) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(cl.segs) == 0 {
		return 0, 0, 0, 0
	}
	xmin, ymin = cl.segs[0].A.X, cl.segs[0].A.Y
	xmax, ymax = xmin, ymin
	for _, s := range cl.segs {
		for _, pt := range [2]geom.Point{s.A, s.B} {
			xmin, xmax = min(xmin, pt.X), max(xmax, pt.X)
			ymin, ymax = min(ymin, pt.Y), max(ymax, pt.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}
