package render

import (
	"floorplan/internal/config"
	"floorplan/internal/plan"
	"floorplan/pkg/geometry"
)

// Fallback plan extents used when a floor's figure section gives none.
// They frame the built-in plan with room for dimension arrows.
var (
	mainFloorExtent = Extent{XMin: -32, XMax: 85, YMin: -5, YMax: 120}
	basementExtent  = Extent{XMin: -5, XMax: 65, YMin: -5, YMax: 105}
)

// FloorExtent resolves a floor's plan extent from its figure section,
// falling back to the given default.
func FloorExtent(fig config.FigureSpec, fallback Extent) Extent {
	if xMin, xMax, yMin, yMax, ok := fig.Extent(); ok {
		return Extent{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	}
	return fallback
}

func setupFigure(c Canvas, cfg *config.Drawing, fig config.FigureSpec, fallback Extent) Extent {
	extent := FloorExtent(fig, fallback)
	c.SetExtent(
		cfg.ApplyScale(extent.XMin), cfg.ApplyScale(extent.YMin),
		cfg.ApplyScale(extent.XMax), cfg.ApplyScale(extent.YMax),
	)
	c.SetTitle(fig.Title)
	return extent
}

// dimensionSpan measures the floor's room bounds for the overall dimension
// arrows. A floor with no rooms falls back to a span inset from the extent
// so the arrows always draw.
func dimensionSpan(section config.FloorSection, name string, extent Extent) geometry.Rect {
	floor, _ := plan.NewFloor(name, section)
	if bounds := floor.Bounds(); bounds.Area() > 0 {
		return bounds
	}
	inset := 5.0
	return geometry.NewRect(
		extent.XMin+inset, extent.YMin+inset,
		extent.Width()-2*inset, extent.Height()-2*inset,
	)
}

// DrawMainFloor draws a main floor section in its fixed pass order: grid,
// rooms, doors, windows, fireplaces, stairs, dimension arrows, north
// arrow. Later passes paint over earlier ones, which is what keeps door
// gaps visible through room outlines.
func DrawMainFloor(c Canvas, cfg *config.Drawing, section config.FloorSection) {
	extent := setupFigure(c, cfg, section.Figure, mainFloorExtent)

	if cfg.DebugMode {
		DrawGrid(c, cfg, extent)
	}
	DrawRooms(c, cfg, section.Rooms)
	DrawDoors(c, cfg, section.Doors)
	DrawWindows(c, cfg, section.Windows)
	DrawFireplaces(c, cfg, section.Fireplaces)
	DrawStairsBatch(c, cfg, section.Stairs)
	DrawFurnitureBatch(c, cfg, section.Furniture)
	DrawTextAnnotations(c, cfg, section.TextAnnotations)
	DrawLineAnnotations(c, cfg, section.LineAnnotations)

	span := dimensionSpan(section, "main_floor", extent)
	DrawDimensionArrows(c, cfg, span, section.Dimensions.WidthLabel, section.Dimensions.HeightLabel)

	if cfg.ShowNorthArrow {
		x, y := northArrowAt(section, extent)
		DrawNorthArrow(c, cfg, x, y)
	}
}

// DrawBasement draws a basement section: grid, rooms, the theater and pool
// composites, doors, stairs, furniture, annotations, dimension arrows, the
// ceiling note, and the north arrow.
func DrawBasement(c Canvas, cfg *config.Drawing, section config.FloorSection) {
	extent := setupFigure(c, cfg, section.Figure, basementExtent)

	if cfg.DebugMode {
		DrawGrid(c, cfg, extent)
	}
	DrawRooms(c, cfg, section.Rooms)

	if section.Theater != nil {
		if theater, _ := decodeTheaterSection(section.Theater); theater != nil {
			DrawTheater(c, cfg, *theater)
		}
	}
	if section.Pool != nil {
		if pool := decodePoolSection(section.Pool); pool != nil {
			DrawPool(c, cfg, *pool)
		}
	}

	DrawDoors(c, cfg, section.Doors)
	DrawWindows(c, cfg, section.Windows)
	DrawStairsBatch(c, cfg, section.Stairs)
	DrawFurnitureBatch(c, cfg, section.Furniture)
	DrawTextAnnotations(c, cfg, section.TextAnnotations)
	DrawLineAnnotations(c, cfg, section.LineAnnotations)

	span := dimensionSpan(section, "basement", extent)
	DrawDimensionArrows(c, cfg, span, section.Dimensions.WidthLabel, section.Dimensions.HeightLabel)

	if note := section.CeilingNote; note != nil && note.Text != "" {
		size := note.FontSize
		if size <= 0 {
			size = 8
		}
		c.Text(scaledPt(cfg, geometry.Point2D{X: note.X, Y: note.Y}), note.Text, TextOptions{
			Size:   size,
			Color:  "black",
			HAlign: AlignCenter,
			Italic: true,
		})
	}

	if cfg.ShowNorthArrow {
		x, y := northArrowAt(section, extent)
		DrawNorthArrow(c, cfg, x, y)
	}
}

func northArrowAt(section config.FloorSection, extent Extent) (float64, float64) {
	if na := section.NorthArrow; na != nil {
		return na.X, na.Y
	}
	return extent.XMax - 6, extent.YMax - 8
}

// decodeTheaterSection and decodePoolSection reuse the plan decoders
// through a single-floor shim so the compose pass and the validation pass
// agree on the decoded shapes.

func decodeTheaterSection(section *config.TheaterSection) (*plan.Theater, []string) {
	floor, warnings := plan.NewFloor("theater", config.FloorSection{Theater: section})
	return floor.Theater, warnings
}

func decodePoolSection(section *config.PoolSection) *plan.Pool {
	floor, _ := plan.NewFloor("pool", config.FloorSection{Pool: section})
	return floor.Pool
}

// DrawFloor dispatches on the floor name so callers can render either
// floor through one entry point.
func DrawFloor(c Canvas, cfg *config.Drawing, name string, section config.FloorSection) {
	if name == "basement" {
		DrawBasement(c, cfg, section)
		return
	}
	DrawMainFloor(c, cfg, section)
}
