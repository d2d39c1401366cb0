// Package shapeplot draws circles and rectangles onto a gonum plot.
//
// The plotter only reads validated accessors of the shapes it is given, so it
// performs no validation of its own beyond its styling options.
package shapeplot

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cdr.dev/slog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/shapes/lib/color"
	"oss.terrastruct.com/shapes/lib/geo"
	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/lib/shape"
)

const (
	DEFAULT_TITLE = "My 2D Shapes"

	// circles are drawn as polygons with this many sides
	circleSegments = 128
	viewPadding    = 0.05
)

type Plotter struct {
	plot    *plot.Plot
	opts    *Options
	circle  color.Style
	rect    color.Style
	patches []patch
}

type patch struct {
	shape shape.Shape
	style color.Style
}

// New returns a plotter with an empty, gridded canvas. A nil opts uses
// DefaultOptions.
func New(title string, opts *Options) (_ *Plotter, err error) {
	defer xdefer.Errorf(&err, "failed to create plotter")

	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	circle, err := color.NewStyle(opts.CircleColor, opts.Alpha)
	if err != nil {
		return nil, err
	}
	rect, err := color.NewStyle(opts.RectangleColor, opts.Alpha)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X-axis"
	p.Y.Label.Text = "Y-axis"
	p.Add(plotter.NewGrid())

	pl := &Plotter{
		plot:   p,
		opts:   opts,
		circle: circle,
		rect:   rect,
	}
	p.Add(pl)
	return pl, nil
}

// Add queues s for drawing. Shapes other than circles and rectangles are
// skipped with a warning and Add returns false.
func (p *Plotter) Add(ctx context.Context, s shape.Shape) bool {
	switch s := s.(type) {
	case *shape.Circle:
		if s == nil {
			break
		}
		p.patches = append(p.patches, patch{shape: s, style: p.circle})
		return true
	case *shape.Rectangle:
		if s == nil {
			break
		}
		p.patches = append(p.patches, patch{shape: s, style: p.rect})
		return true
	}
	log.Warn(ctx, "cannot draw unknown shape type", slog.F("type", fmt.Sprintf("%T", s)))
	return false
}

func (p *Plotter) Len() int {
	return len(p.patches)
}

// View returns the region of data space the axes will show: the bounds of
// every added shape, grown to a square and padded.
func (p *Plotter) View() *geo.Box {
	var bounds *geo.Box
	for _, pt := range p.patches {
		bounds = bounds.Union(pt.shape.GetBox())
	}
	if bounds == nil || (bounds.Width == 0 && bounds.Height == 0) {
		c := geo.NewPoint(0, 0)
		if bounds != nil {
			c = bounds.Origin
		}
		return geo.NewBox(geo.NewPoint(c.X-1, c.Y-1), 2, 2)
	}
	return bounds.Square().Pad(viewPadding)
}

// WriteTo renders the plot in format, one of the gonum vg formats such as
// svg, png or pdf.
func (p *Plotter) WriteTo(w io.Writer, format string) (err error) {
	defer xdefer.Errorf(&err, "failed to render %s plot", format)

	p.fitAxes()
	size := vg.Length(p.opts.Size) * vg.Inch
	wt, err := p.plot.WriterTo(size, size, strings.ToLower(format))
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save renders the plot to path, picking the format from its extension.
func (p *Plotter) Save(path string) (err error) {
	defer xdefer.Errorf(&err, "failed to save plot to %s", path)

	format := Format(path)
	if format == "" {
		return fmt.Errorf("missing file extension")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := p.WriteTo(f, format); err != nil {
		return err
	}
	return f.Close()
}

// Format returns the render format implied by path's extension, or "" when
// there is none.
func Format(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func (p *Plotter) fitAxes() {
	view := p.View()
	far := view.Max()
	p.plot.X.Min, p.plot.X.Max = view.Origin.X, far.X
	p.plot.Y.Min, p.plot.Y.Max = view.Origin.Y, far.Y
}

// Plot implements plot.Plotter.
func (p *Plotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	tr := func(x, y float64) vg.Point {
		return vg.Point{X: trX(x), Y: trY(y)}
	}

	for _, pt := range p.patches {
		var pts []vg.Point
		switch s := pt.shape.(type) {
		case *shape.Circle:
			pts = make([]vg.Point, 0, circleSegments)
			for i := 0; i < circleSegments; i++ {
				theta := 2 * math.Pi * float64(i) / circleSegments
				pts = append(pts, tr(s.X()+s.Radius()*math.Cos(theta), s.Y()+s.Radius()*math.Sin(theta)))
			}
		case *shape.Rectangle:
			x0, y0 := s.X(), s.Y()
			x1, y1 := x0+s.Width(), y0+s.Height()
			pts = []vg.Point{tr(x0, y0), tr(x1, y0), tr(x1, y1), tr(x0, y1)}
		}
		c.FillPolygon(pt.style.Fill, pts)
		outline := append(pts[:len(pts):len(pts)], pts[0])
		c.StrokeLines(draw.LineStyle{Color: pt.style.Stroke, Width: vg.Points(1)}, c.ClipLinesXY(outline)...)
	}
}
