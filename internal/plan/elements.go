package plan

import (
	"fmt"
	"math"

	"floorplan/pkg/geometry"
)

// Room is a labeled rectangular space.
type Room struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	Label         string
	Color         string
	TextColor     string
	FontSize      float64
	AutoDimension bool
	Notes         []string
}

// Bounds returns the room's footprint.
func (r Room) Bounds() geometry.Rect {
	return geometry.NewRect(r.X, r.Y, r.Width, r.Height)
}

// Area returns the room's floor area in square feet.
func (r Room) Area() float64 {
	return r.Width * r.Height
}

// Validate returns soft warnings for implausible geometry. Warnings never
// stop a render.
func (r Room) Validate() []string {
	var warnings []string
	name := r.Label
	if name == "" {
		name = "unnamed room"
	}
	if r.Width <= 0 || r.Height <= 0 {
		warnings = append(warnings, fmt.Sprintf("room %q has non-positive dimensions %gx%g", name, r.Width, r.Height))
	}
	if r.Width > 100 || r.Height > 100 {
		warnings = append(warnings, fmt.Sprintf("room %q side exceeds 100 ft (%gx%g)", name, r.Width, r.Height))
	}
	return warnings
}

// Door is a wall opening with a quarter-circle swing arc. (X, Y) is the
// hinge-side end of the opening; Width is the leaf width in feet.
type Door struct {
	X           float64
	Y           float64
	Width       float64
	Direction   Direction
	Swing       Swing
	Orientation Orientation

	// KnownSwing is false when the direction or swing string in the source
	// record was unrecognized; the renderer then draws the default arc.
	KnownSwing bool
}

// Validate returns soft warnings for implausible door widths.
func (d Door) Validate() []string {
	var warnings []string
	if d.Width < 2 || d.Width > 8 {
		warnings = append(warnings, fmt.Sprintf("door width %g ft outside typical range [2, 8]", d.Width))
	}
	if !d.KnownSwing {
		warnings = append(warnings, fmt.Sprintf("door at (%g, %g) has unrecognized direction/swing, drawing default arc", d.X, d.Y))
	}
	return warnings
}

// Window is a wall opening drawn as a filled band with a center line.
type Window struct {
	X           float64
	Y           float64
	Width       float64
	Orientation Orientation
}

// Validate returns soft warnings for implausible window widths.
func (w Window) Validate() []string {
	if w.Width > 20 {
		return []string{fmt.Sprintf("window width %g ft exceeds 20 ft", w.Width)}
	}
	return nil
}

// Stairs is a straight stair run with evenly spaced treads and a travel
// label. Orientation is the stepping axis: a vertical run steps along its
// height, a horizontal run along its width.
type Stairs struct {
	X           float64
	Y           float64
	Width       float64
	Height      float64
	NumSteps    int
	Orientation Orientation
	Label       string
}

// Bounds returns the stair run's footprint.
func (s Stairs) Bounds() geometry.Rect {
	return geometry.NewRect(s.X, s.Y, s.Width, s.Height)
}

// Fireplace is a hearth box with a fixed-proportion firebox inset.
type Fireplace struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Label  string
}

// Firebox returns the inner firebox rectangle: 60% of the width centered
// horizontally, 70% of the height from the bottom.
func (f Fireplace) Firebox() geometry.Rect {
	return geometry.NewRect(f.X+0.2*f.Width, f.Y, 0.6*f.Width, 0.7*f.Height)
}

// Furniture is a free-standing item drawn as a rectangle, circle, or
// ellipse. For circles and ellipses (X, Y) is the center; for rectangles it
// is the bottom-left corner. Rotation applies to the label only.
type Furniture struct {
	Kind     FurnitureKind
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Color    string
	Label    string
	Rotation float64
}

// TextAnnotation is free-floating text on the plan.
type TextAnnotation struct {
	X        float64
	Y        float64
	Text     string
	FontSize float64
	Style    string
	Color    string
}

// LineAnnotation is a free-floating line segment, e.g. a false wall marker.
type LineAnnotation struct {
	X1        float64
	Y1        float64
	X2        float64
	Y2        float64
	Color     string
	LineWidth float64
	Dashed    bool
}

// Length returns the segment length in feet.
func (l LineAnnotation) Length() float64 {
	return math.Hypot(l.X2-l.X1, l.Y2-l.Y1)
}

// Midpoint returns the segment's midpoint.
func (l LineAnnotation) Midpoint() geometry.Point2D {
	return geometry.Point2D{X: (l.X1 + l.X2) / 2, Y: (l.Y1 + l.Y2) / 2}
}

// IsHorizontal reports whether both endpoints share a y coordinate.
func (l LineAnnotation) IsHorizontal() bool {
	return l.Y1 == l.Y2
}

// IsVertical reports whether both endpoints share an x coordinate.
func (l LineAnnotation) IsVertical() bool {
	return l.X1 == l.X2
}

// TheaterSeating lays out theater chairs in a rows-by-seats grid.
type TheaterSeating struct {
	StartX      float64
	StartY      float64
	Rows        int
	SeatsPerRow int
	SeatWidth   float64
	SeatDepth   float64
	RowSpacing  float64
	SeatSpacing float64
}

// Normalize repairs degenerate grid values in place.
func (t *TheaterSeating) Normalize() {
	if t.Rows < 1 {
		t.Rows = 1
	}
	if t.SeatsPerRow < 1 {
		t.SeatsPerRow = 1
	}
	if t.SeatWidth <= 0 {
		t.SeatWidth = 2.5
	}
	if t.SeatDepth <= 0 {
		t.SeatDepth = 2.5
	}
	if t.RowSpacing <= 0 {
		t.RowSpacing = t.SeatDepth * 2
	}
	if t.SeatSpacing <= 0 {
		t.SeatSpacing = t.SeatWidth * 1.5
	}
}

// Seats returns the bottom-left corner of every seat, row-major from the
// front row.
func (t TheaterSeating) Seats() []geometry.Point2D {
	seats := make([]geometry.Point2D, 0, t.Rows*t.SeatsPerRow)
	for row := 0; row < t.Rows; row++ {
		for seat := 0; seat < t.SeatsPerRow; seat++ {
			seats = append(seats, geometry.Point2D{
				X: t.StartX + float64(row)*t.RowSpacing,
				Y: t.StartY + float64(seat)*t.SeatSpacing,
			})
		}
	}
	return seats
}

// HotTub is a circular spa. It is drawn only when Radius is positive.
type HotTub struct {
	X      float64
	Y      float64
	Radius float64
	Label  string
	Color  string
}

// Present reports whether the hot tub should be drawn at all.
func (h HotTub) Present() bool {
	return h.Radius > 0
}

// Pool is the indoor pool composite: the surrounding deck area, the water
// rectangle, an optional hot tub, and an optional spa caption anchor.
type Pool struct {
	Area   Room
	Water  Room
	HotTub HotTub

	// SpaLabelX/Y anchor the spa caption; the caption is drawn only when
	// both coordinates are non-zero.
	SpaLabelX float64
	SpaLabelY float64
}

// SpaLabelPresent reports whether the spa caption should be drawn.
func (p Pool) SpaLabelPresent() bool {
	return p.SpaLabelX != 0 && p.SpaLabelY != 0
}

// Validate warns when the water rectangle leaves the deck area.
func (p Pool) Validate() []string {
	if p.Water.Width <= 0 || p.Water.Height <= 0 {
		return nil
	}
	deck := p.Area.Bounds()
	water := p.Water.Bounds()
	if water.X < deck.X || water.Y < deck.Y || water.Right() > deck.Right() || water.Top() > deck.Top() {
		return []string{"pool extends outside its deck area"}
	}
	return nil
}

// Theater is the home theater composite: the room, its seating grid, and
// the false wall holding the screen.
type Theater struct {
	Room      Room
	Seating   TheaterSeating
	FalseWall LineAnnotation
	WallLabel string
}
