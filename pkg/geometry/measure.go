package geometry

import (
	"fmt"
	"math"
)

// FormatDimension formats a decimal-feet value as a feet-and-inches string,
// e.g. 14.5 -> `14'-6"`. Inches that round to 12 carry into the next foot.
// With includeInches false the value rounds to the nearest whole foot
// (six inches and above round up), e.g. 14.5 -> `15'`.
func FormatDimension(feet float64, includeInches bool) string {
	wholeFeet := int(feet)
	inches := int(math.Round((feet - float64(wholeFeet)) * 12))

	if inches == 12 {
		wholeFeet++
		inches = 0
	}

	if includeInches {
		return fmt.Sprintf("%d'-%d\"", wholeFeet, inches)
	}
	if inches >= 6 {
		wholeFeet++
	}
	return fmt.Sprintf("%d'", wholeFeet)
}

// FormatRoomDimensions formats width and height as a "W x H" caption.
func FormatRoomDimensions(width, height float64) string {
	return fmt.Sprintf("%s x %s", FormatDimension(width, true), FormatDimension(height, true))
}

// FormatArea formats an area in square feet with the given number of
// decimal places.
func FormatArea(area float64, precision int) string {
	if precision <= 0 {
		return fmt.Sprintf("%d sq ft", int(math.Round(area)))
	}
	return fmt.Sprintf("%.*f sq ft", precision, area)
}

// CalculateArea returns width * height.
func CalculateArea(width, height float64) float64 {
	return width * height
}

// RoomsAdjacent reports whether two rectangles share a wall: one rectangle's
// edge lies within tolerance of the opposite edge of the other AND their
// extents overlap on the perpendicular axis. Rectangles that merely touch at
// a corner are not adjacent.
func RoomsAdjacent(r1, r2 Rect, tolerance float64) bool {
	// r1 right edge against r2 left edge, or r1 left against r2 right.
	if math.Abs(r1.Right()-r2.X) <= tolerance || math.Abs(r1.X-r2.Right()) <= tolerance {
		if r1.Y < r2.Top() && r1.Top() > r2.Y {
			return true
		}
	}
	// r1 top edge against r2 bottom edge, or r1 bottom against r2 top.
	if math.Abs(r1.Top()-r2.Y) <= tolerance || math.Abs(r1.Y-r2.Top()) <= tolerance {
		if r1.X < r2.Right() && r1.Right() > r2.X {
			return true
		}
	}
	return false
}

// TotalFloorArea sums width*height over raw room records. Records missing
// either dimension are skipped rather than treated as zero-area.
func TotalFloorArea(rooms []map[string]any) float64 {
	total := 0.0
	for _, room := range rooms {
		w, okW := NumericField(room, "width")
		h, okH := NumericField(room, "height")
		if okW && okH {
			total += w * h
		}
	}
	return total
}

// NumericField extracts a numeric value from a raw record, coercing the
// integer types YAML decoding produces.
func NumericField(record map[string]any, key string) (float64, bool) {
	v, ok := record[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
