package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"floorplan/pkg/geometry"
)

// SVG renders onto an SVG document. Plan coordinates map to SVG user units
// through the extent with the y axis flipped. Color strings pass straight
// through; SVG understands both hex values and plain color words.
type SVG struct {
	canvas   *svg.SVG
	widthPx  float64
	heightPx float64
	extent   Extent
}

// NewSVG starts an SVG document of the given pixel size on w. Call Close
// after drawing to finish the document.
func NewSVG(w io.Writer, widthPx, heightPx float64) *SVG {
	c := svg.New(w)
	c.Start(widthPx, heightPx)
	c.Rect(0, 0, widthPx, heightPx, "fill:white")
	return &SVG{canvas: c, widthPx: widthPx, heightPx: heightPx}
}

// SVGForFigure sizes an SVG canvas from a figure's inch dimensions at 96
// units per inch, the CSS pixel density.
func SVGForFigure(w io.Writer, widthIn, heightIn float64) *SVG {
	if widthIn <= 0 {
		widthIn = 16
	}
	if heightIn <= 0 {
		heightIn = 20
	}
	return NewSVG(w, widthIn*96, heightIn*96)
}

// Close finishes the SVG document.
func (s *SVG) Close() {
	s.canvas.End()
}

// SetExtent establishes the plan-to-device mapping.
func (s *SVG) SetExtent(xMin, yMin, xMax, yMax float64) {
	s.extent = Extent{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

// SetTitle draws the figure title centered along the top edge.
func (s *SVG) SetTitle(title string) {
	if title == "" {
		return
	}
	s.canvas.Text(s.widthPx/2, 24, title, "text-anchor:middle;font-size:18px;font-weight:bold;fill:black")
}

func (s *SVG) toDevice(p geometry.Point2D) (float64, float64) {
	if !s.extent.Valid() {
		return p.X, s.heightPx - p.Y
	}
	x := (p.X - s.extent.XMin) / s.extent.Width() * s.widthPx
	y := (p.Y - s.extent.YMin) / s.extent.Height() * s.heightPx
	return x, s.heightPx - y
}

func (s *SVG) scaleX(d float64) float64 {
	if !s.extent.Valid() {
		return d
	}
	return d / s.extent.Width() * s.widthPx
}

func (s *SVG) scaleY(d float64) float64 {
	if !s.extent.Valid() {
		return d
	}
	return d / s.extent.Height() * s.heightPx
}

func colorOr(c, fallback string) string {
	if c == "" {
		return fallback
	}
	return c
}

func strokeStyle(style LineStyle) string {
	out := fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none", colorOr(style.Color, "black"), style.Width)
	if style.Dashed {
		out += ";stroke-dasharray:6,4"
	}
	return out
}

func shapeStyle(fill, stroke string, strokeWidth float64) string {
	out := "fill:" + colorOr(fill, "none")
	if stroke != "" && strokeWidth > 0 {
		out += fmt.Sprintf(";stroke:%s;stroke-width:%g", stroke, strokeWidth)
	}
	return out
}

// FillRect fills an axis-aligned rectangle and strokes its outline.
func (s *SVG) FillRect(r geometry.Rect, fill string, stroke string, strokeWidth float64) {
	x, y := s.toDevice(geometry.Point2D{X: r.X, Y: r.Top()})
	s.canvas.Rect(x, y, s.scaleX(r.Width), s.scaleY(r.Height), shapeStyle(fill, stroke, strokeWidth))
}

// StrokeRect strokes a rectangle outline.
func (s *SVG) StrokeRect(r geometry.Rect, style LineStyle) {
	x, y := s.toDevice(geometry.Point2D{X: r.X, Y: r.Top()})
	s.canvas.Rect(x, y, s.scaleX(r.Width), s.scaleY(r.Height), strokeStyle(style))
}

// Line draws a straight segment.
func (s *SVG) Line(a, b geometry.Point2D, style LineStyle) {
	x1, y1 := s.toDevice(a)
	x2, y2 := s.toDevice(b)
	s.canvas.Line(x1, y1, x2, y2, strokeStyle(style))
}

// Circle draws a filled circle with an outline.
func (s *SVG) Circle(center geometry.Point2D, radius float64, fill string, stroke string, strokeWidth float64) {
	x, y := s.toDevice(center)
	s.canvas.Circle(x, y, s.scaleX(radius), shapeStyle(fill, stroke, strokeWidth))
}

// Ellipse draws a filled axis-aligned ellipse with an outline.
func (s *SVG) Ellipse(center geometry.Point2D, rx, ry float64, fill string, stroke string, strokeWidth float64) {
	x, y := s.toDevice(center)
	s.canvas.Ellipse(x, y, s.scaleX(rx), s.scaleY(ry), shapeStyle(fill, stroke, strokeWidth))
}

// Arc strokes a circular arc. The y flip reverses the sweep, so a plan
// counter-clockwise arc is emitted counter-sweep in device space.
func (s *SVG) Arc(center geometry.Point2D, radius, theta1, theta2 float64, style LineStyle) {
	start := arcPoint(center, radius, theta1)
	end := arcPoint(center, radius, theta2)
	x1, y1 := s.toDevice(start)
	x2, y2 := s.toDevice(end)
	rx := s.scaleX(radius)
	ry := s.scaleY(radius)
	large := theta2-theta1 > 180 || theta1-theta2 > 180
	s.canvas.Arc(x1, y1, rx, ry, 0, large, false, x2, y2, strokeStyle(style))
}

// Text draws a string at the anchor point. Multi-line text becomes stacked
// text elements.
func (s *SVG) Text(at geometry.Point2D, text string, opts TextOptions) {
	if text == "" {
		return
	}
	x, y := s.toDevice(at)
	size := opts.Size
	if size <= 0 {
		size = 9
	}
	// Plan font sizes are points at 100 DPI; scale to CSS pixels.
	px := size * 96 / 72

	style := fmt.Sprintf("font-size:%.1fpx;fill:%s;font-family:sans-serif", px, colorOr(opts.Color, "black"))
	switch opts.HAlign {
	case AlignCenter:
		style += ";text-anchor:middle"
	case AlignEnd:
		style += ";text-anchor:end"
	}
	if opts.Bold {
		style += ";font-weight:bold"
	}
	if opts.Italic {
		style += ";font-style:italic"
	}

	lines := splitLines(text)
	lineHeight := px * 1.2
	switch opts.VAlign {
	case AlignCenter:
		y -= lineHeight*float64(len(lines))/2 - lineHeight*0.8
	case AlignStart:
		y += lineHeight * 0.8
	}

	if opts.Rotation != 0 {
		s.canvas.Gtransform(fmt.Sprintf("rotate(%g,%g,%g)", -opts.Rotation, x, y))
		defer s.canvas.Gend()
	}
	for i, line := range lines {
		s.canvas.Text(x, y+float64(i)*lineHeight, line, style)
	}
}
