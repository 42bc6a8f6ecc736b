package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"floorplan/pkg/colorutil"
	"floorplan/pkg/geometry"
)

// Raster renders onto an in-memory RGBA image. Plan coordinates map onto
// the pixel grid through the extent, with the y axis flipped so plan north
// is image up. Text uses a fixed bitmap face, so font sizes and rotation
// are approximated: size selects nothing and rotated labels draw
// horizontal.
type Raster struct {
	img    *image.RGBA
	extent Extent
	face   font.Face
}

// NewRaster creates a raster canvas of the given pixel size with a white
// background.
func NewRaster(widthPx, heightPx int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorutil.White}, image.Point{}, draw.Src)
	return &Raster{img: img, face: basicfont.Face7x13}
}

// RasterForFigure sizes a raster canvas from a figure's inch dimensions and
// DPI.
func RasterForFigure(widthIn, heightIn float64, dpi int) *Raster {
	if widthIn <= 0 {
		widthIn = 16
	}
	if heightIn <= 0 {
		heightIn = 20
	}
	if dpi < 72 {
		dpi = 72
	}
	return NewRaster(int(widthIn*float64(dpi)), int(heightIn*float64(dpi)))
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// SetExtent establishes the plan-to-pixel mapping.
func (r *Raster) SetExtent(xMin, yMin, xMax, yMax float64) {
	r.extent = Extent{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}

// SetTitle draws the figure title centered along the top edge.
func (r *Raster) SetTitle(title string) {
	if title == "" {
		return
	}
	w := r.img.Bounds().Dx()
	r.drawString(w/2, 20, title, colorutil.Black, AlignCenter)
}

func (r *Raster) toPixel(p geometry.Point2D) (int, int) {
	b := r.img.Bounds()
	if !r.extent.Valid() {
		return int(p.X), b.Dy() - int(p.Y)
	}
	px := (p.X - r.extent.XMin) / r.extent.Width() * float64(b.Dx())
	py := (p.Y - r.extent.YMin) / r.extent.Height() * float64(b.Dy())
	return int(math.Round(px)), b.Dy() - int(math.Round(py))
}

// scaleX converts a plan-space length to pixels along x.
func (r *Raster) scaleX(d float64) int {
	if !r.extent.Valid() {
		return int(d)
	}
	return int(math.Round(d / r.extent.Width() * float64(r.img.Bounds().Dx())))
}

func (r *Raster) scaleY(d float64) int {
	if !r.extent.Valid() {
		return int(d)
	}
	return int(math.Round(d / r.extent.Height() * float64(r.img.Bounds().Dy())))
}

func (r *Raster) setPixel(x, y int, c color.RGBA) {
	if (image.Point{X: x, Y: y}).In(r.img.Bounds()) {
		r.img.SetRGBA(x, y, c)
	}
}

// FillRect fills an axis-aligned rectangle and strokes its outline.
func (r *Raster) FillRect(rect geometry.Rect, fill string, stroke string, strokeWidth float64) {
	x0, y0 := r.toPixel(geometry.Point2D{X: rect.X, Y: rect.Y})
	x1, y1 := r.toPixel(geometry.Point2D{X: rect.Right(), Y: rect.Top()})
	// y flips, so y1 < y0.
	c := colorutil.ToRGBA(fill)
	for y := y1; y <= y0; y++ {
		for x := x0; x <= x1; x++ {
			r.setPixel(x, y, c)
		}
	}
	if stroke != "" && strokeWidth > 0 {
		r.StrokeRect(rect, LineStyle{Color: stroke, Width: strokeWidth})
	}
}

// StrokeRect strokes a rectangle outline.
func (r *Raster) StrokeRect(rect geometry.Rect, style LineStyle) {
	corners := rect.Corners()
	for i := range corners {
		r.Line(corners[i], corners[(i+1)%4], style)
	}
}

// Line draws a straight segment with Bresenham stepping. Widths above one
// are approximated by offsetting along the minor axis; dashes alternate six
// pixels on, four off.
func (r *Raster) Line(a, b geometry.Point2D, style LineStyle) {
	x0, y0 := r.toPixel(a)
	x1, y1 := r.toPixel(b)
	c := colorutil.ToRGBA(style.Color)
	thickness := int(math.Round(style.Width))
	if thickness < 1 {
		thickness = 1
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	steep := -dy > dx

	x, y := x0, y0
	step := 0
	for {
		if !style.Dashed || step%10 < 6 {
			for o := -thickness / 2; o <= (thickness-1)/2; o++ {
				if steep {
					r.setPixel(x+o, y, c)
				} else {
					r.setPixel(x, y+o, c)
				}
			}
		}
		if x == x1 && y == y1 {
			break
		}
		step++
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Circle draws a filled circle with an outline. The radius is a plan-space
// length measured along x.
func (r *Raster) Circle(center geometry.Point2D, radius float64, fill string, stroke string, strokeWidth float64) {
	r.Ellipse(center, radius, radius, fill, stroke, strokeWidth)
}

// Ellipse draws a filled axis-aligned ellipse with an outline, by scanline.
func (r *Raster) Ellipse(center geometry.Point2D, rx, ry float64, fill string, stroke string, strokeWidth float64) {
	cx, cy := r.toPixel(center)
	prx := r.scaleX(rx)
	pry := r.scaleY(ry)
	if prx < 1 {
		prx = 1
	}
	if pry < 1 {
		pry = 1
	}

	if fill != "" {
		c := colorutil.ToRGBA(fill)
		for dy := -pry; dy <= pry; dy++ {
			// Half-width of the ellipse at this scanline.
			f := 1 - float64(dy*dy)/float64(pry*pry)
			if f < 0 {
				continue
			}
			half := int(float64(prx) * math.Sqrt(f))
			for dx := -half; dx <= half; dx++ {
				r.setPixel(cx+dx, cy+dy, c)
			}
		}
	}
	if stroke != "" && strokeWidth > 0 {
		sc := colorutil.ToRGBA(stroke)
		steps := 4 * (prx + pry)
		if steps < 16 {
			steps = 16
		}
		for i := 0; i <= steps; i++ {
			theta := 2 * math.Pi * float64(i) / float64(steps)
			r.setPixel(cx+int(float64(prx)*math.Cos(theta)), cy+int(float64(pry)*math.Sin(theta)), sc)
		}
	}
}

// Arc strokes a circular arc by sampling it into short segments.
func (r *Raster) Arc(center geometry.Point2D, radius, theta1, theta2 float64, style LineStyle) {
	if theta2 < theta1 {
		theta1, theta2 = theta2, theta1
	}
	steps := int(theta2-theta1) + 1
	if steps < 8 {
		steps = 8
	}
	prev := arcPoint(center, radius, theta1)
	for i := 1; i <= steps; i++ {
		theta := theta1 + (theta2-theta1)*float64(i)/float64(steps)
		next := arcPoint(center, radius, theta)
		r.Line(prev, next, style)
		prev = next
	}
}

func arcPoint(center geometry.Point2D, radius, thetaDeg float64) geometry.Point2D {
	rad := thetaDeg * math.Pi / 180
	return geometry.Point2D{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// Text draws a string at the anchor point. Multi-line text stacks downward
// from the anchor.
func (r *Raster) Text(at geometry.Point2D, text string, opts TextOptions) {
	if text == "" {
		return
	}
	px, py := r.toPixel(at)
	c := colorutil.ToRGBA(opts.Color)
	if opts.Color == "" {
		c = colorutil.Black
	}

	lines := splitLines(text)
	lineHeight := r.face.Metrics().Height.Ceil()
	total := lineHeight * len(lines)
	switch opts.VAlign {
	case AlignCenter:
		py -= total/2 - lineHeight
	case AlignEnd:
		py -= total - lineHeight
	}
	for i, line := range lines {
		r.drawString(px, py+i*lineHeight, line, c, opts.HAlign)
	}
}

func (r *Raster) drawString(px, py int, s string, c color.RGBA, halign string) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
	}
	width := d.MeasureString(s).Ceil()
	switch halign {
	case AlignCenter:
		px -= width / 2
	case AlignEnd:
		px -= width
	}
	d.Dot = fixed.P(px, py)
	d.DrawString(s)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
