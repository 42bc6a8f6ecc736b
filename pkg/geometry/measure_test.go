package geometry

import (
	"math"
	"testing"
)

func TestFormatDimension(t *testing.T) {
	cases := []struct {
		feet          float64
		includeInches bool
		want          string
	}{
		{14.5, true, `14'-6"`},
		{14.5, false, `15'`},
		{14.99, true, `15'-0"`}, // inches round to 12 and carry
		{14.99, false, `15'`},
		{15.0, true, `15'-0"`},
		{15.0, false, `15'`},
		{14.2, false, `14'`},
		{0.25, true, `0'-3"`},
		{0, true, `0'-0"`},
		{10.041, true, `10'-0"`}, // rounds down to whole feet
	}
	for _, tc := range cases {
		got := FormatDimension(tc.feet, tc.includeInches)
		if got != tc.want {
			t.Errorf("FormatDimension(%v, %v) = %q, want %q", tc.feet, tc.includeInches, got, tc.want)
		}
	}
}

func TestFormatRoomDimensions(t *testing.T) {
	got := FormatRoomDimensions(12.5, 10)
	want := `12'-6" x 10'-0"`
	if got != want {
		t.Errorf("FormatRoomDimensions(12.5, 10) = %q, want %q", got, want)
	}
}

func TestFormatArea(t *testing.T) {
	if got := FormatArea(150.4, 0); got != "150 sq ft" {
		t.Errorf("FormatArea(150.4, 0) = %q", got)
	}
	if got := FormatArea(150.46, 1); got != "150.5 sq ft" {
		t.Errorf("FormatArea(150.46, 1) = %q", got)
	}
}

func TestRoomsAdjacent(t *testing.T) {
	base := NewRect(0, 0, 10, 10)

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"shares right wall", NewRect(10, 2, 5, 5), true},
		{"shares left wall", NewRect(-5, 0, 5, 10), true},
		{"shares top wall", NewRect(3, 10, 4, 4), true},
		{"shares bottom wall", NewRect(0, -6, 10, 6), true},
		{"within tolerance", NewRect(10.3, 0, 5, 5), true},
		{"beyond tolerance", NewRect(11, 0, 5, 5), false},
		{"corner touch only", NewRect(10, 10, 5, 5), false},
		{"far away", NewRect(50, 50, 5, 5), false},
	}
	for _, tc := range cases {
		if got := RoomsAdjacent(base, tc.other, 0.5); got != tc.want {
			t.Errorf("%s: RoomsAdjacent = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTotalFloorArea(t *testing.T) {
	rooms := []map[string]any{
		{"width": 10.0, "height": 10.0},
		{"width": 5, "height": 4},
		{"width": 6.0}, // missing height, skipped
		{"label": "no dims"},
	}
	if got := TotalFloorArea(rooms); got != 120 {
		t.Errorf("TotalFloorArea = %v, want 120", got)
	}
}

func TestNumericFieldCoercion(t *testing.T) {
	rec := map[string]any{"a": 3, "b": int64(4), "c": 5.5, "d": "nope"}
	if v, ok := NumericField(rec, "a"); !ok || v != 3 {
		t.Errorf("int field: got %v, %v", v, ok)
	}
	if v, ok := NumericField(rec, "b"); !ok || v != 4 {
		t.Errorf("int64 field: got %v, %v", v, ok)
	}
	if v, ok := NumericField(rec, "c"); !ok || v != 5.5 {
		t.Errorf("float field: got %v, %v", v, ok)
	}
	if _, ok := NumericField(rec, "d"); ok {
		t.Error("string field should not coerce")
	}
	if _, ok := NumericField(rec, "missing"); ok {
		t.Error("missing field should not coerce")
	}
}

func TestRotationRoundTrip(t *testing.T) {
	r := NewRect(3, 7, 10, 4)
	maxX, maxY := 60.0, 40.0

	cw := Rotate90CW(r, maxY)
	back := Rotate90CCW(cw, maxY)
	if math.Abs(back.X-r.X) > 1e-9 || math.Abs(back.Y-r.Y) > 1e-9 ||
		back.Width != r.Width || back.Height != r.Height {
		t.Errorf("CW then CCW did not round trip: %+v != %+v", back, r)
	}

	mirrored := MirrorHorizontal(MirrorHorizontal(r, maxX), maxX)
	if mirrored != r {
		t.Errorf("double horizontal mirror changed rect: %+v != %+v", mirrored, r)
	}
}

func TestRotate90CW(t *testing.T) {
	r := NewRect(0, 0, 10, 5)
	got := Rotate90CW(r, 40)
	want := NewRect(35, 0, 5, 10)
	if got != want {
		t.Errorf("Rotate90CW = %+v, want %+v", got, want)
	}
}
