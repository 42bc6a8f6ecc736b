// Package render draws floor plans onto pluggable canvas backends. All
// drawing goes through the Canvas interface in plan coordinates (feet,
// y up); each backend owns the mapping to its device space. Element
// renderers apply the configured scale factor before touching the canvas.
package render

import (
	"floorplan/pkg/geometry"
)

// Horizontal and vertical text anchors.
const (
	AlignStart  = "start"
	AlignCenter = "center"
	AlignEnd    = "end"
)

// LineStyle styles a stroked primitive. Width is in points, independent of
// the plan scale.
type LineStyle struct {
	Color  string
	Width  float64
	Dashed bool
}

// TextOptions styles a text draw. Rotation is degrees counter-clockwise
// about the anchor point.
type TextOptions struct {
	Size     float64
	Color    string
	HAlign   string
	VAlign   string
	Rotation float64
	Bold     bool
	Italic   bool
}

// Canvas is a drawing surface in plan coordinates. SetExtent must be called
// before any drawing so the backend can establish its device mapping;
// drawing outside the extent is clipped, not an error.
type Canvas interface {
	// SetExtent declares the plan-coordinate viewport.
	SetExtent(xMin, yMin, xMax, yMax float64)
	// SetTitle sets the figure title drawn above the plan.
	SetTitle(title string)

	FillRect(r geometry.Rect, fill string, stroke string, strokeWidth float64)
	StrokeRect(r geometry.Rect, style LineStyle)
	Line(a, b geometry.Point2D, style LineStyle)
	Circle(center geometry.Point2D, radius float64, fill string, stroke string, strokeWidth float64)
	Ellipse(center geometry.Point2D, rx, ry float64, fill string, stroke string, strokeWidth float64)
	// Arc strokes a circular arc from theta1 to theta2, degrees counter-
	// clockwise from the positive x axis.
	Arc(center geometry.Point2D, radius, theta1, theta2 float64, style LineStyle)
	Text(at geometry.Point2D, text string, opts TextOptions)
}

// Extent is a plan-coordinate viewport shared by the backends.
type Extent struct {
	XMin, YMin, XMax, YMax float64
}

// Width returns the extent's width in feet.
func (e Extent) Width() float64 { return e.XMax - e.XMin }

// Height returns the extent's height in feet.
func (e Extent) Height() float64 { return e.YMax - e.YMin }

// Valid reports whether the extent has positive area.
func (e Extent) Valid() bool { return e.XMax > e.XMin && e.YMax > e.YMin }
