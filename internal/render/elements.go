package render

import (
	"strings"

	"floorplan/internal/config"
	"floorplan/internal/plan"
	"floorplan/pkg/colorutil"
	"floorplan/pkg/geometry"
)

// Element renderers translate typed plan elements into canvas calls. Plan
// coordinates are multiplied by the configured scale factor on the way in,
// so the canvas extent must be scaled the same way.

func scaled(cfg *config.Drawing, r geometry.Rect) geometry.Rect {
	return geometry.NewRect(cfg.ApplyScale(r.X), cfg.ApplyScale(r.Y), cfg.ApplyScale(r.Width), cfg.ApplyScale(r.Height))
}

func scaledPt(cfg *config.Drawing, p geometry.Point2D) geometry.Point2D {
	return geometry.Point2D{X: cfg.ApplyScale(p.X), Y: cfg.ApplyScale(p.Y)}
}

// RoomLabel builds the room's center text: the label, the dimension
// caption when both the room and the run enable auto dimensions, then any
// notes, one per line.
func RoomLabel(cfg *config.Drawing, r plan.Room) string {
	lines := make([]string, 0, 2+len(r.Notes))
	if r.Label != "" {
		lines = append(lines, r.Label)
	}
	if r.AutoDimension && cfg.AutoDimensions {
		if caption := geometry.FormatRoomDimensions(r.Width, r.Height); caption != "" {
			lines = append(lines, caption)
		}
	}
	lines = append(lines, r.Notes...)
	return strings.Join(lines, "\n")
}

// DrawRoom fills the room's footprint and centers its label text.
func DrawRoom(c Canvas, cfg *config.Drawing, r plan.Room) {
	rect := scaled(cfg, r.Bounds())
	c.FillRect(rect, cfg.Color(r.Color), "black", cfg.WallThick)

	if text := RoomLabel(cfg, r); text != "" {
		c.Text(rect.Center(), text, TextOptions{
			Size:   r.FontSize,
			Color:  cfg.Color(r.TextColor),
			HAlign: AlignCenter,
			VAlign: AlignCenter,
		})
	}
}

// DrawDoor paints the wall gap, the swing arc, and the door leaf. The gap
// goes first in the background color, slightly wider than the wall stroke,
// so the opening reads through the room outline. A door whose swing could
// not be resolved gets only the generic arc, no leaf.
func DrawDoor(c Canvas, cfg *config.Drawing, d plan.Door) {
	gap := d.Gap()
	c.Line(scaledPt(cfg, gap[0]), scaledPt(cfg, gap[1]), LineStyle{
		Color: "white",
		Width: cfg.WallThick + 1,
	})

	arc := d.Arc()
	c.Arc(scaledPt(cfg, arc.Center), cfg.ApplyScale(d.Width), arc.Theta1, arc.Theta2, LineStyle{
		Color: "black",
		Width: cfg.Styles.DoorArcLineWidth,
	})
	if d.KnownSwing {
		c.Line(scaledPt(cfg, arc.Leaf[0]), scaledPt(cfg, arc.Leaf[1]), LineStyle{
			Color: "black",
			Width: cfg.Styles.DoorPanelLineWidth,
		})
	}
}

// DrawWindow draws a window as a filled band across the wall with a center
// line.
func DrawWindow(c Canvas, cfg *config.Drawing, w plan.Window) {
	thick := cfg.Styles.WindowThickness
	var band geometry.Rect
	var center [2]geometry.Point2D
	if w.Orientation == plan.Vertical {
		band = geometry.NewRect(w.X-thick/2, w.Y, thick, w.Width)
		center = [2]geometry.Point2D{{X: w.X, Y: w.Y}, {X: w.X, Y: w.Y + w.Width}}
	} else {
		band = geometry.NewRect(w.X, w.Y-thick/2, w.Width, thick)
		center = [2]geometry.Point2D{{X: w.X, Y: w.Y}, {X: w.X + w.Width, Y: w.Y}}
	}

	c.FillRect(scaled(cfg, band), cfg.Color("window"), "black", cfg.Styles.WindowLineWidth)
	c.Line(scaledPt(cfg, center[0]), scaledPt(cfg, center[1]), LineStyle{
		Color: "black",
		Width: cfg.Styles.WindowCenterLineWidth,
	})
}

// DrawStairs draws a stair run: the outline, evenly spaced treads
// perpendicular to travel, and the travel label centered on the run.
func DrawStairs(c Canvas, cfg *config.Drawing, s plan.Stairs) {
	rect := scaled(cfg, s.Bounds())
	c.FillRect(rect, cfg.Styles.StairsFaceColor, "black", cfg.Styles.StairsLineWidth)

	tread := LineStyle{Color: "black", Width: cfg.Styles.StairsStepLineWidth}
	vertical := s.Orientation == plan.Vertical
	for i := 0; i < s.NumSteps; i++ {
		f := float64(i) / float64(s.NumSteps)
		if vertical {
			y := rect.Y + f*rect.Height
			c.Line(geometry.Point2D{X: rect.X, Y: y}, geometry.Point2D{X: rect.Right(), Y: y}, tread)
		} else {
			x := rect.X + f*rect.Width
			c.Line(geometry.Point2D{X: x, Y: rect.Y}, geometry.Point2D{X: x, Y: rect.Top()}, tread)
		}
	}

	if s.Label != "" {
		rotation := 0.0
		if vertical {
			rotation = 90
		}
		c.Text(rect.Center(), s.Label, TextOptions{
			Size:     cfg.Styles.StairsLabelSize,
			Color:    "black",
			HAlign:   AlignCenter,
			VAlign:   AlignCenter,
			Rotation: rotation,
		})
	}
}

// DrawFireplace draws the surround, the inset firebox, and the label
// floated just above the surround's top edge.
func DrawFireplace(c Canvas, cfg *config.Drawing, f plan.Fireplace) {
	hearth := scaled(cfg, geometry.NewRect(f.X, f.Y, f.Width, f.Height))
	c.FillRect(hearth, cfg.Styles.FireplaceFaceColor, "black", cfg.Styles.FireplaceLineWidth)
	c.FillRect(scaled(cfg, f.Firebox()), cfg.Styles.FireplaceInnerColor, "", 0)

	if f.Label != "" {
		at := geometry.Point2D{X: hearth.Center().X, Y: hearth.Top() + cfg.ApplyScale(1)}
		c.Text(at, f.Label, TextOptions{
			Size:   cfg.Styles.FireplaceLabelSize,
			Color:  "black",
			HAlign: AlignCenter,
		})
	}
}

// DrawFurniture draws one furniture item. Circles and ellipses anchor at
// their center, rectangles at the bottom-left corner; rotation tilts the
// label only.
func DrawFurniture(c Canvas, cfg *config.Drawing, f plan.Furniture) {
	fill := cfg.Color(f.Color)
	var labelAt geometry.Point2D

	switch f.Kind {
	case plan.FurnitureCircle:
		center := scaledPt(cfg, geometry.Point2D{X: f.X, Y: f.Y})
		c.Circle(center, cfg.ApplyScale(f.Width/2), fill, "black", 1)
		labelAt = center
	case plan.FurnitureEllipse:
		center := scaledPt(cfg, geometry.Point2D{X: f.X, Y: f.Y})
		c.Ellipse(center, cfg.ApplyScale(f.Width/2), cfg.ApplyScale(f.Height/2), fill, "black", 1)
		labelAt = center
	default:
		rect := scaled(cfg, geometry.NewRect(f.X, f.Y, f.Width, f.Height))
		c.FillRect(rect, fill, "black", 1)
		labelAt = rect.Center()
	}

	if f.Label != "" {
		c.Text(labelAt, f.Label, TextOptions{
			Size:     6,
			Color:    "black",
			HAlign:   AlignCenter,
			VAlign:   AlignCenter,
			Rotation: f.Rotation,
		})
	}
}

// DrawTextAnnotation draws free-floating text.
func DrawTextAnnotation(c Canvas, cfg *config.Drawing, t plan.TextAnnotation) {
	c.Text(scaledPt(cfg, geometry.Point2D{X: t.X, Y: t.Y}), t.Text, TextOptions{
		Size:   t.FontSize,
		Color:  cfg.Color(t.Color),
		HAlign: AlignCenter,
		VAlign: AlignCenter,
		Bold:   t.Style == "bold",
		Italic: t.Style == "italic",
	})
}

// DrawLineAnnotation draws a free-floating line segment.
func DrawLineAnnotation(c Canvas, cfg *config.Drawing, l plan.LineAnnotation) {
	c.Line(
		scaledPt(cfg, geometry.Point2D{X: l.X1, Y: l.Y1}),
		scaledPt(cfg, geometry.Point2D{X: l.X2, Y: l.Y2}),
		LineStyle{Color: cfg.Color(l.Color), Width: l.LineWidth, Dashed: l.Dashed},
	)
}

// DrawTheaterSeating draws the seat grid as dark chair boxes.
func DrawTheaterSeating(c Canvas, cfg *config.Drawing, t plan.TheaterSeating) {
	for _, seat := range t.Seats() {
		rect := scaled(cfg, geometry.NewRect(seat.X, seat.Y, t.SeatWidth, t.SeatDepth))
		c.FillRect(rect, cfg.Color("chair"), "black", cfg.Styles.TheaterChairLineWidth)
	}
}

// DrawTheater draws the theater composite: the room, the seat grid, the
// false wall, and its label.
func DrawTheater(c Canvas, cfg *config.Drawing, t plan.Theater) {
	DrawRoom(c, cfg, t.Room)
	DrawTheaterSeating(c, cfg, t.Seating)
	DrawLineAnnotation(c, cfg, t.FalseWall)
	if t.WallLabel != "" {
		mid := geometry.Point2D{X: (t.FalseWall.X1 + t.FalseWall.X2) / 2, Y: t.FalseWall.Y1 + 0.8}
		c.Text(scaledPt(cfg, mid), t.WallLabel, TextOptions{
			Size:   6,
			Color:  "black",
			HAlign: AlignCenter,
		})
	}
}

// DrawPool draws the pool composite: the deck area, the water with a
// darkened outline, the hot tub when present, and the spa caption when its
// anchor is set.
func DrawPool(c Canvas, cfg *config.Drawing, p plan.Pool) {
	area := p.Area
	areaRect := scaled(cfg, area.Bounds())
	c.FillRect(areaRect, cfg.Color(area.Color), "black", cfg.Styles.PoolAreaLineWidth)

	if p.Water.Width > 0 && p.Water.Height > 0 {
		waterColor := cfg.Color(p.Water.Color)
		waterRect := scaled(cfg, p.Water.Bounds())
		c.FillRect(waterRect, waterColor, colorutil.Darken(waterColor, 0.3), cfg.Styles.PoolLineWidth)
		if p.Water.Label != "" {
			c.Text(waterRect.Center(), p.Water.Label, TextOptions{
				Size:   cfg.Styles.PoolLabelSize,
				Color:  "white",
				HAlign: AlignCenter,
				VAlign: AlignCenter,
				Bold:   true,
			})
		}
	}

	if p.HotTub.Present() {
		center := scaledPt(cfg, geometry.Point2D{X: p.HotTub.X, Y: p.HotTub.Y})
		tubColor := cfg.Color(p.HotTub.Color)
		c.Circle(center, cfg.ApplyScale(p.HotTub.Radius), tubColor, colorutil.Darken(tubColor, 0.3), cfg.Styles.PoolLineWidth)
		if p.HotTub.Label != "" {
			c.Text(center, p.HotTub.Label, TextOptions{
				Size:   cfg.Styles.HotTubLabelSize,
				Color:  "black",
				HAlign: AlignCenter,
				VAlign: AlignCenter,
			})
		}
	}

	if p.SpaLabelPresent() {
		c.Text(scaledPt(cfg, geometry.Point2D{X: p.SpaLabelX, Y: p.SpaLabelY}), "Spa Area", TextOptions{
			Size:   cfg.Styles.SpaLabelSize,
			Color:  "black",
			HAlign: AlignCenter,
			Italic: true,
		})
	}

	if area.Label != "" {
		c.Text(geometry.Point2D{X: areaRect.Center().X, Y: areaRect.Top() - cfg.ApplyScale(2)}, area.Label, TextOptions{
			Size:   cfg.Styles.PoolAreaLabelSize,
			Color:  "black",
			HAlign: AlignCenter,
			Bold:   true,
		})
	}
}

// DrawGrid draws the debug alignment grid across the extent.
func DrawGrid(c Canvas, cfg *config.Drawing, extent Extent) {
	if cfg.GridSpacing <= 0 {
		return
	}
	style := LineStyle{Color: "lightgray", Width: 0.5, Dashed: true}
	spacing := float64(cfg.GridSpacing)

	start := gridStart(extent.XMin, spacing)
	for x := start; x <= extent.XMax; x += spacing {
		c.Line(
			scaledPt(cfg, geometry.Point2D{X: x, Y: extent.YMin}),
			scaledPt(cfg, geometry.Point2D{X: x, Y: extent.YMax}),
			style,
		)
	}
	start = gridStart(extent.YMin, spacing)
	for y := start; y <= extent.YMax; y += spacing {
		c.Line(
			scaledPt(cfg, geometry.Point2D{X: extent.XMin, Y: y}),
			scaledPt(cfg, geometry.Point2D{X: extent.XMax, Y: y}),
			style,
		)
	}
}

// gridStart returns the first grid line at or after min.
func gridStart(min, spacing float64) float64 {
	n := min / spacing
	floor := float64(int(n))
	if floor < n {
		floor++
	}
	return floor * spacing
}

// DrawNorthArrow draws the north marker: a circle, an upward arrow, and an
// N above it.
func DrawNorthArrow(c Canvas, cfg *config.Drawing, x, y float64) {
	center := scaledPt(cfg, geometry.Point2D{X: x, Y: y})
	radius := cfg.ApplyScale(cfg.Styles.NorthArrowCircleRadius * 2.5)
	style := LineStyle{Color: "black", Width: cfg.Styles.NorthArrowLineWidth}

	c.Circle(center, radius, "", "black", cfg.Styles.NorthArrowLineWidth)
	tail := geometry.Point2D{X: center.X, Y: center.Y - radius*0.7}
	tip := geometry.Point2D{X: center.X, Y: center.Y + radius*0.7}
	c.Line(tail, tip, style)
	c.Line(tip, geometry.Point2D{X: tip.X - radius*0.25, Y: tip.Y - radius*0.4}, style)
	c.Line(tip, geometry.Point2D{X: tip.X + radius*0.25, Y: tip.Y - radius*0.4}, style)
	c.Text(geometry.Point2D{X: center.X, Y: center.Y + radius*1.6}, "N", TextOptions{
		Size:   cfg.Styles.NorthArrowFontSize,
		Color:  "black",
		HAlign: AlignCenter,
		Bold:   true,
	})
}

// DrawDimensionArrows draws the overall width and height captions along the
// bottom and left edges of the measured span.
func DrawDimensionArrows(c Canvas, cfg *config.Drawing, span geometry.Rect, widthLabel, heightLabel string) {
	if widthLabel == "" {
		widthLabel = geometry.FormatDimension(span.Width, true)
	}
	if heightLabel == "" {
		heightLabel = geometry.FormatDimension(span.Height, true)
	}
	style := LineStyle{Color: cfg.Styles.DimensionColor, Width: 1}
	offset := 3.0

	// Width arrow along the bottom.
	y := span.Y - offset
	a := scaledPt(cfg, geometry.Point2D{X: span.X, Y: y})
	b := scaledPt(cfg, geometry.Point2D{X: span.Right(), Y: y})
	c.Line(a, b, style)
	drawArrowhead(c, cfg, a, 1, 0)
	drawArrowhead(c, cfg, b, -1, 0)
	c.Text(scaledPt(cfg, geometry.Point2D{X: span.Center().X, Y: y - 1.5}), widthLabel, TextOptions{
		Size:   cfg.Styles.DimensionFontSize,
		Color:  cfg.Styles.DimensionColor,
		HAlign: AlignCenter,
		VAlign: AlignEnd,
	})

	// Height arrow along the left edge.
	x := span.X - offset
	a = scaledPt(cfg, geometry.Point2D{X: x, Y: span.Y})
	b = scaledPt(cfg, geometry.Point2D{X: x, Y: span.Top()})
	c.Line(a, b, style)
	drawArrowhead(c, cfg, a, 0, 1)
	drawArrowhead(c, cfg, b, 0, -1)
	c.Text(scaledPt(cfg, geometry.Point2D{X: x - 1.5, Y: span.Center().Y}), heightLabel, TextOptions{
		Size:     cfg.Styles.DimensionFontSize,
		Color:    cfg.Styles.DimensionColor,
		HAlign:   AlignCenter,
		Rotation: 90,
	})
}

// drawArrowhead draws a small open arrowhead at p pointing along (dx, dy).
func drawArrowhead(c Canvas, cfg *config.Drawing, p geometry.Point2D, dx, dy float64) {
	size := cfg.ApplyScale(1.2)
	style := LineStyle{Color: cfg.Styles.DimensionColor, Width: 1}
	// Perpendicular components spread the barbs.
	c.Line(p, geometry.Point2D{X: p.X + dx*size - dy*size*0.4, Y: p.Y + dy*size - dx*size*0.4}, style)
	c.Line(p, geometry.Point2D{X: p.X + dx*size + dy*size*0.4, Y: p.Y + dy*size + dx*size*0.4}, style)
}
