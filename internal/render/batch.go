package render

import (
	"log/slog"

	"floorplan/internal/config"
	"floorplan/internal/plan"
)

// Batch drivers decode raw element records and draw what decodes cleanly.
// A record that fails to decode is logged and skipped; the rest of the
// batch still draws. Each driver returns the number of elements drawn.

func drawBatch[T any](c Canvas, cfg *config.Drawing, kind string, records []map[string]any,
	decode func(map[string]any) (T, error), draw func(Canvas, *config.Drawing, T)) int {

	drawn := 0
	for i, rec := range records {
		el, err := decode(rec)
		if err != nil {
			slog.Warn("skipping element", "kind", kind, "index", i, "err", err)
			continue
		}
		draw(c, cfg, el)
		drawn++
	}
	if drawn < len(records) {
		slog.Warn("batch drew partially", "kind", kind, "drawn", drawn, "total", len(records))
	}
	return drawn
}

// DrawRooms draws a batch of room records.
func DrawRooms(c Canvas, cfg *config.Drawing, records []map[string]any) int {
	return drawBatch(c, cfg, "room", records, plan.DecodeRoom, DrawRoom)
}

// DrawDoors draws a batch of door records.
func DrawDoors(c Canvas, cfg *config.Drawing, records []map[string]any) int {
	return drawBatch(c, cfg, "door", records, plan.DecodeDoor, DrawDoor)
}

// DrawWindows draws a batch of window records.
func DrawWindows(c Canvas, cfg *config.Drawing, records []map[string]any) int {
	return drawBatch(c, cfg, "window", records, plan.DecodeWindow, DrawWindow)
}

// DrawStairsBatch draws a batch of staircase records.
func DrawStairsBatch(c Canvas, cfg *config.Drawing, records []map[string]any) int {
	return drawBatch(c, cfg, "stairs", records, plan.DecodeStairs, DrawStairs)
}

// DrawFireplaces draws a batch of fireplace records.
func DrawFireplaces(c Canvas, cfg *config.Drawing, records []map[string]any) int {
	return drawBatch(c, cfg, "fireplace", records, plan.DecodeFireplace, DrawFireplace)
}

// DrawFurnitureBatch draws a batch of furniture records.
func DrawFurnitureBatch(c Canvas, cfg *config.Drawing, records []map[string]any) int {
	return drawBatch(c, cfg, "furniture", records, plan.DecodeFurniture, DrawFurniture)
}

// DrawTextAnnotations draws a batch of text annotation records.
func DrawTextAnnotations(c Canvas, cfg *config.Drawing, records []map[string]any) int {
	return drawBatch(c, cfg, "text_annotation", records, plan.DecodeTextAnnotation, DrawTextAnnotation)
}

// DrawLineAnnotations draws a batch of line annotation records.
func DrawLineAnnotations(c Canvas, cfg *config.Drawing, records []map[string]any) int {
	return drawBatch(c, cfg, "line_annotation", records, plan.DecodeLineAnnotation, DrawLineAnnotation)
}
