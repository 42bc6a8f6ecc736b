package render

import (
	"io"

	"github.com/go-pdf/fpdf"

	"floorplan/pkg/colorutil"
	"floorplan/pkg/geometry"
)

// PDF renders onto a PDF document, one page per floor. Pages are sized in
// points from the figure's inch dimensions. Arcs are sampled into
// polylines so every backend shares one angle convention.
type PDF struct {
	doc      *fpdf.Fpdf
	widthPt  float64
	heightPt float64
	extent   Extent
}

// NewPDF creates an empty PDF document. Call StartPage before drawing each
// floor.
func NewPDF() *PDF {
	doc := fpdf.NewCustom(&fpdf.InitType{UnitStr: "pt", Size: fpdf.SizeType{Wd: 1152, Ht: 1440}})
	doc.SetFont("Helvetica", "", 9)
	return &PDF{doc: doc}
}

// StartPage begins a new page sized from the figure's inch dimensions.
func (p *PDF) StartPage(widthIn, heightIn float64) {
	if widthIn <= 0 {
		widthIn = 16
	}
	if heightIn <= 0 {
		heightIn = 20
	}
	p.widthPt = widthIn * 72
	p.heightPt = heightIn * 72
	p.doc.AddPageFormat("P", fpdf.SizeType{Wd: p.widthPt, Ht: p.heightPt})
	p.extent = Extent{}
}

// Output writes the finished document.
func (p *PDF) Output(w io.Writer) error {
	return p.doc.Output(w)
}

// Err reports the document's sticky error state.
func (p *PDF) Err() error {
	if p.doc.Err() {
		return p.doc.Error()
	}
	return nil
}

// SetExtent establishes the plan-to-page mapping.
func (p *PDF) SetExtent(xMin, yMin, xMax, yMax float64) {
	p.extent = Extent{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

// SetTitle draws the figure title centered along the top edge.
func (p *PDF) SetTitle(title string) {
	if title == "" {
		return
	}
	p.doc.SetFont("Helvetica", "B", 16)
	p.doc.SetTextColor(0, 0, 0)
	w := p.doc.GetStringWidth(title)
	p.doc.Text(p.widthPt/2-w/2, 24, title)
	p.doc.SetFont("Helvetica", "", 9)
}

func (p *PDF) toDevice(pt geometry.Point2D) (float64, float64) {
	if !p.extent.Valid() {
		return pt.X, p.heightPt - pt.Y
	}
	x := (pt.X - p.extent.XMin) / p.extent.Width() * p.widthPt
	y := (pt.Y - p.extent.YMin) / p.extent.Height() * p.heightPt
	return x, p.heightPt - y
}

func (p *PDF) scaleX(d float64) float64 {
	if !p.extent.Valid() {
		return d
	}
	return d / p.extent.Width() * p.widthPt
}

func (p *PDF) scaleY(d float64) float64 {
	if !p.extent.Valid() {
		return d
	}
	return d / p.extent.Height() * p.heightPt
}

func (p *PDF) setDraw(style LineStyle) {
	c := colorutil.ToRGBA(style.Color)
	p.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	w := style.Width
	if w <= 0 {
		w = 1
	}
	p.doc.SetLineWidth(w)
	if style.Dashed {
		p.doc.SetDashPattern([]float64{4, 3}, 0)
	} else {
		p.doc.SetDashPattern([]float64{}, 0)
	}
}

func (p *PDF) setFill(fill string) {
	c := colorutil.ToRGBA(fill)
	p.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
}

// FillRect fills an axis-aligned rectangle and strokes its outline.
func (p *PDF) FillRect(r geometry.Rect, fill string, stroke string, strokeWidth float64) {
	x, y := p.toDevice(geometry.Point2D{X: r.X, Y: r.Top()})
	p.setFill(fill)
	mode := "F"
	if stroke != "" && strokeWidth > 0 {
		p.setDraw(LineStyle{Color: stroke, Width: strokeWidth})
		mode = "FD"
	}
	p.doc.Rect(x, y, p.scaleX(r.Width), p.scaleY(r.Height), mode)
}

// StrokeRect strokes a rectangle outline.
func (p *PDF) StrokeRect(r geometry.Rect, style LineStyle) {
	x, y := p.toDevice(geometry.Point2D{X: r.X, Y: r.Top()})
	p.setDraw(style)
	p.doc.Rect(x, y, p.scaleX(r.Width), p.scaleY(r.Height), "D")
}

// Line draws a straight segment.
func (p *PDF) Line(a, b geometry.Point2D, style LineStyle) {
	x1, y1 := p.toDevice(a)
	x2, y2 := p.toDevice(b)
	p.setDraw(style)
	p.doc.Line(x1, y1, x2, y2)
}

// Circle draws a filled circle with an outline.
func (p *PDF) Circle(center geometry.Point2D, radius float64, fill string, stroke string, strokeWidth float64) {
	p.Ellipse(center, radius, radius, fill, stroke, strokeWidth)
}

// Ellipse draws a filled axis-aligned ellipse with an outline.
func (p *PDF) Ellipse(center geometry.Point2D, rx, ry float64, fill string, stroke string, strokeWidth float64) {
	x, y := p.toDevice(center)
	p.setFill(fill)
	mode := "F"
	if stroke != "" && strokeWidth > 0 {
		p.setDraw(LineStyle{Color: stroke, Width: strokeWidth})
		mode = "FD"
	}
	p.doc.Ellipse(x, y, p.scaleX(rx), p.scaleY(ry), 0, mode)
}

// Arc strokes a circular arc sampled into a polyline.
func (p *PDF) Arc(center geometry.Point2D, radius, theta1, theta2 float64, style LineStyle) {
	if theta2 < theta1 {
		theta1, theta2 = theta2, theta1
	}
	steps := int(theta2-theta1) / 3
	if steps < 8 {
		steps = 8
	}
	prev := arcPoint(center, radius, theta1)
	for i := 1; i <= steps; i++ {
		theta := theta1 + (theta2-theta1)*float64(i)/float64(steps)
		next := arcPoint(center, radius, theta)
		p.Line(prev, next, style)
		prev = next
	}
}

// Text draws a string at the anchor point.
func (p *PDF) Text(at geometry.Point2D, text string, opts TextOptions) {
	if text == "" {
		return
	}
	x, y := p.toDevice(at)
	size := opts.Size
	if size <= 0 {
		size = 9
	}

	style := ""
	if opts.Bold {
		style += "B"
	}
	if opts.Italic {
		style += "I"
	}
	p.doc.SetFont("Helvetica", style, size)
	c := colorutil.ToRGBA(colorOr(opts.Color, "black"))
	p.doc.SetTextColor(int(c.R), int(c.G), int(c.B))

	if opts.Rotation != 0 {
		p.doc.TransformBegin()
		p.doc.TransformRotate(opts.Rotation, x, y)
		defer p.doc.TransformEnd()
	}

	lines := splitLines(text)
	lineHeight := size * 1.2
	switch opts.VAlign {
	case AlignCenter:
		y -= lineHeight*float64(len(lines))/2 - lineHeight*0.8
	case AlignStart:
		y += lineHeight * 0.8
	}
	for i, line := range lines {
		lx := x
		switch opts.HAlign {
		case AlignCenter:
			lx -= p.doc.GetStringWidth(line) / 2
		case AlignEnd:
			lx -= p.doc.GetStringWidth(line)
		}
		p.doc.Text(lx, y+float64(i)*lineHeight, line)
	}
}
