package plan

import (
	"testing"
)

func TestDecodeRoomRequiredFields(t *testing.T) {
	_, err := DecodeRoom(map[string]any{"x": 0.0, "y": 0.0, "width": 10.0})
	if err == nil {
		t.Fatal("expected error for missing height")
	}

	_, err = DecodeRoom(map[string]any{"x": "zero", "y": 0.0, "width": 10.0, "height": 5.0})
	if err == nil {
		t.Fatal("expected error for non-numeric x")
	}
}

func TestDecodeRoomDefaults(t *testing.T) {
	r, err := DecodeRoom(map[string]any{"x": 1, "y": 2, "width": 10, "height": 8, "label": "Den"})
	if err != nil {
		t.Fatal(err)
	}
	if !r.AutoDimension {
		t.Error("auto_dimension should default to true")
	}
	if r.FontSize != 9 {
		t.Errorf("font size = %v, want 9", r.FontSize)
	}
	if r.TextColor != "black" {
		t.Errorf("text color = %q, want black", r.TextColor)
	}
}

func TestDecodeRoomRepairsNegativeDimensions(t *testing.T) {
	r, err := DecodeRoom(map[string]any{"x": 0, "y": 0, "width": -10, "height": 8})
	if err != nil {
		t.Fatal(err)
	}
	if r.Width != 10 {
		t.Errorf("width = %v, want repaired magnitude 10", r.Width)
	}
}

func TestDecodeRoomIgnoresUnknownKeys(t *testing.T) {
	r, err := DecodeRoom(map[string]any{
		"x": 0, "y": 0, "width": 5, "height": 5,
		"zoning_code": "R1", "editor_locked": true,
	})
	if err != nil {
		t.Fatalf("unknown keys should be ignored: %v", err)
	}
	if r.Width != 5 {
		t.Errorf("width = %v", r.Width)
	}
}

func TestDecodeDoorUnknownSwingKept(t *testing.T) {
	d, err := DecodeDoor(map[string]any{"x": 0, "y": 0, "width": 3, "direction": "sideways", "swing": "up"})
	if err != nil {
		t.Fatal(err)
	}
	if d.KnownSwing {
		t.Error("unrecognized direction should mark the door for the default arc")
	}
	warnings := d.Validate()
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want one about the swing", warnings)
	}
}

func TestDecodeDoorOrientationFromDirection(t *testing.T) {
	d, err := DecodeDoor(map[string]any{"x": 0, "y": 0, "width": 3, "direction": "up", "swing": "right"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Orientation != Vertical {
		t.Errorf("orientation = %v, want vertical for an up door", d.Orientation)
	}
}

func TestDecodeFurnitureTypeAlias(t *testing.T) {
	f, err := DecodeFurniture(map[string]any{"type": "circle", "x": 5, "y": 5, "width": 4})
	if err != nil {
		t.Fatal(err)
	}
	if f.Kind != FurnitureCircle {
		t.Errorf("kind = %v, want circle", f.Kind)
	}
	if f.Height != 4 {
		t.Errorf("circle height = %v, want width fallback 4", f.Height)
	}
}

func TestDecodeFurnitureRectangleNeedsHeight(t *testing.T) {
	_, err := DecodeFurniture(map[string]any{"furniture_type": "rectangle", "x": 0, "y": 0, "width": 4})
	if err == nil {
		t.Fatal("rectangle without height should fail to decode")
	}
}

func TestDecodeFurnitureUnknownKind(t *testing.T) {
	_, err := DecodeFurniture(map[string]any{"furniture_type": "beanbag", "x": 0, "y": 0, "width": 2})
	if err == nil {
		t.Fatal("unknown furniture type should fail to decode")
	}
}

func TestDecodeStairsDefaults(t *testing.T) {
	s, err := DecodeStairs(map[string]any{"x": 0, "y": 0, "width": 4, "height": 12})
	if err != nil {
		t.Fatal(err)
	}
	if s.NumSteps != 8 {
		t.Errorf("num steps = %d, want 8", s.NumSteps)
	}
	if s.Orientation != Horizontal {
		t.Errorf("orientation = %v, want horizontal", s.Orientation)
	}
	if s.Label != "UP" {
		t.Errorf("label = %q, want UP", s.Label)
	}
}

func TestDecodeStairsOrientation(t *testing.T) {
	tests := []struct {
		name string
		rec  map[string]any
		want Orientation
	}{
		{"explicit horizontal", map[string]any{"orientation": "horizontal"}, Horizontal},
		{"explicit vertical", map[string]any{"orientation": "vertical"}, Vertical},
		{"direction up alias", map[string]any{"direction": "up"}, Vertical},
		{"direction down alias", map[string]any{"direction": "down"}, Vertical},
		{"direction right alias", map[string]any{"direction": "right"}, Horizontal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := map[string]any{"x": 0, "y": 0, "width": 4, "height": 12}
			for k, v := range tt.rec {
				rec[k] = v
			}
			s, err := DecodeStairs(rec)
			if err != nil {
				t.Fatal(err)
			}
			if s.Orientation != tt.want {
				t.Errorf("orientation = %v, want %v", s.Orientation, tt.want)
			}
		})
	}
}

func TestLineAnnotationDerivedGeometry(t *testing.T) {
	l := LineAnnotation{X1: 1, Y1: 2, X2: 4, Y2: 6}
	if got := l.Length(); got != 5 {
		t.Errorf("length = %v, want 5", got)
	}
	mid := l.Midpoint()
	if mid.X != 2.5 || mid.Y != 4 {
		t.Errorf("midpoint = %v, want (2.5, 4)", mid)
	}
	if l.IsHorizontal() || l.IsVertical() {
		t.Error("diagonal segment should be neither axis aligned")
	}

	h := LineAnnotation{X1: 0, Y1: 3, X2: 10, Y2: 3}
	if !h.IsHorizontal() || h.IsVertical() {
		t.Error("flat segment should be horizontal only")
	}
	v := LineAnnotation{X1: 7, Y1: 0, X2: 7, Y2: 9}
	if !v.IsVertical() || v.IsHorizontal() {
		t.Error("plumb segment should be vertical only")
	}
}

func TestDecodeTextAnnotationRequiresText(t *testing.T) {
	_, err := DecodeTextAnnotation(map[string]any{"x": 0, "y": 0})
	if err == nil {
		t.Fatal("annotation without text should fail to decode")
	}
}

func TestDecodeTheaterSeatingNormalizes(t *testing.T) {
	s := DecodeTheaterSeating(map[string]any{"rows": 0, "seats_per_row": -3})
	if s.Rows != 1 || s.SeatsPerRow != 1 {
		t.Errorf("grid = %dx%d, want at least 1x1", s.Rows, s.SeatsPerRow)
	}
	if s.SeatWidth <= 0 || s.RowSpacing <= 0 {
		t.Error("spacing defaults should be positive")
	}
}

func TestDecodeHotTubAbsentWithoutRadius(t *testing.T) {
	h := DecodeHotTub(map[string]any{"x": 5, "y": 5})
	if h.Present() {
		t.Error("hot tub without radius should be absent")
	}
	h = DecodeHotTub(map[string]any{"x": 5, "y": 5, "radius": 3})
	if !h.Present() {
		t.Error("hot tub with radius should be present")
	}
}
