package plan

import (
	"fmt"
	"math"

	"floorplan/pkg/geometry"
)

// Decoding works on the raw records the config package hands over. Unknown
// keys are ignored so documents can carry annotations for other tools;
// missing or ill-typed required keys are an error for that one record, not
// for the floor.

func numField(rec map[string]any, key string) (float64, bool) {
	return geometry.NumericField(rec, key)
}

func requireNum(rec map[string]any, key string) (float64, error) {
	v, ok := rec[key]
	if !ok {
		return 0, fmt.Errorf("missing required field %q", key)
	}
	n, ok := numField(rec, key)
	if !ok {
		return 0, fmt.Errorf("field %q has non-numeric value %v", key, v)
	}
	return n, nil
}

// requireDim reads a required dimension, repairing a negative value to its
// magnitude. Validation reports the repair separately.
func requireDim(rec map[string]any, key string) (float64, error) {
	n, err := requireNum(rec, key)
	if err != nil {
		return 0, err
	}
	return math.Abs(n), nil
}

func numOr(rec map[string]any, key string, fallback float64) float64 {
	if n, ok := numField(rec, key); ok {
		return n
	}
	return fallback
}

func intOr(rec map[string]any, key string, fallback int) int {
	if n, ok := numField(rec, key); ok {
		return int(n)
	}
	return fallback
}

func strOr(rec map[string]any, key, fallback string) string {
	if s, ok := rec[key].(string); ok {
		return s
	}
	return fallback
}

func boolOr(rec map[string]any, key string, fallback bool) bool {
	if b, ok := rec[key].(bool); ok {
		return b
	}
	return fallback
}

func strList(rec map[string]any, key string) []string {
	raw, ok := rec[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// DecodeRoom decodes one room record. x, y, width, and height are required.
func DecodeRoom(rec map[string]any) (Room, error) {
	var r Room
	var err error
	if r.X, err = requireNum(rec, "x"); err != nil {
		return Room{}, err
	}
	if r.Y, err = requireNum(rec, "y"); err != nil {
		return Room{}, err
	}
	if r.Width, err = requireDim(rec, "width"); err != nil {
		return Room{}, err
	}
	if r.Height, err = requireDim(rec, "height"); err != nil {
		return Room{}, err
	}
	r.Label = strOr(rec, "label", "")
	r.Color = strOr(rec, "color", "")
	r.TextColor = strOr(rec, "text_color", "black")
	r.FontSize = numOr(rec, "font_size", 9)
	r.AutoDimension = boolOr(rec, "auto_dimension", true)
	r.Notes = strList(rec, "notes")
	return r, nil
}

// DecodeDoor decodes one door record. x, y, and width are required;
// unrecognized direction or swing values keep the record but mark it for
// the default arc.
func DecodeDoor(rec map[string]any) (Door, error) {
	var d Door
	var err error
	if d.X, err = requireNum(rec, "x"); err != nil {
		return Door{}, err
	}
	if d.Y, err = requireNum(rec, "y"); err != nil {
		return Door{}, err
	}
	if d.Width, err = requireDim(rec, "width"); err != nil {
		return Door{}, err
	}
	dir, dirOK := ParseDirection(strOr(rec, "direction", "right"))
	swing, swingOK := ParseSwing(strOr(rec, "swing", "up"))
	d.Direction = dir
	d.Swing = swing
	d.KnownSwing = dirOK && swingOK
	if s, ok := rec["orientation"].(string); ok {
		d.Orientation = ParseOrientation(s)
	} else if dir == DirUp || dir == DirDown {
		d.Orientation = Vertical
	} else {
		d.Orientation = Horizontal
	}
	return d, nil
}

// DecodeWindow decodes one window record. x, y, and width are required.
func DecodeWindow(rec map[string]any) (Window, error) {
	var w Window
	var err error
	if w.X, err = requireNum(rec, "x"); err != nil {
		return Window{}, err
	}
	if w.Y, err = requireNum(rec, "y"); err != nil {
		return Window{}, err
	}
	if w.Width, err = requireDim(rec, "width"); err != nil {
		return Window{}, err
	}
	w.Orientation = ParseOrientation(strOr(rec, "orientation", ""))
	return w, nil
}

// DecodeStairs decodes one staircase record. The stepping axis comes from
// the orientation key, defaulting to horizontal; a direction key is
// accepted as an alias, with up/down meaning a vertical run.
func DecodeStairs(rec map[string]any) (Stairs, error) {
	var s Stairs
	var err error
	if s.X, err = requireNum(rec, "x"); err != nil {
		return Stairs{}, err
	}
	if s.Y, err = requireNum(rec, "y"); err != nil {
		return Stairs{}, err
	}
	if s.Width, err = requireDim(rec, "width"); err != nil {
		return Stairs{}, err
	}
	if s.Height, err = requireDim(rec, "height"); err != nil {
		return Stairs{}, err
	}
	s.NumSteps = intOr(rec, "num_steps", 8)
	if s.NumSteps < 1 {
		s.NumSteps = 1
	}
	if v, ok := rec["orientation"].(string); ok {
		s.Orientation = ParseOrientation(v)
	} else if v, ok := rec["direction"].(string); ok {
		if dir, known := ParseDirection(v); known && (dir == DirUp || dir == DirDown) {
			s.Orientation = Vertical
		} else {
			s.Orientation = Horizontal
		}
	} else {
		s.Orientation = Horizontal
	}
	s.Label = strOr(rec, "label", "UP")
	return s, nil
}

// DecodeFireplace decodes one fireplace record.
func DecodeFireplace(rec map[string]any) (Fireplace, error) {
	var f Fireplace
	var err error
	if f.X, err = requireNum(rec, "x"); err != nil {
		return Fireplace{}, err
	}
	if f.Y, err = requireNum(rec, "y"); err != nil {
		return Fireplace{}, err
	}
	if f.Width, err = requireDim(rec, "width"); err != nil {
		return Fireplace{}, err
	}
	if f.Height, err = requireDim(rec, "height"); err != nil {
		return Fireplace{}, err
	}
	f.Label = strOr(rec, "label", "")
	return f, nil
}

// DecodeFurniture decodes one furniture record. Both furniture_type and the
// shorter type key name the shape; circles default their height to the
// width (the diameter).
func DecodeFurniture(rec map[string]any) (Furniture, error) {
	var f Furniture
	var err error
	if f.X, err = requireNum(rec, "x"); err != nil {
		return Furniture{}, err
	}
	if f.Y, err = requireNum(rec, "y"); err != nil {
		return Furniture{}, err
	}
	if f.Width, err = requireDim(rec, "width"); err != nil {
		return Furniture{}, err
	}
	kindStr := strOr(rec, "furniture_type", strOr(rec, "type", string(FurnitureRectangle)))
	kind, ok := ParseFurnitureKind(kindStr)
	if !ok {
		return Furniture{}, fmt.Errorf("unknown furniture type %q", kindStr)
	}
	f.Kind = kind
	f.Height = math.Abs(numOr(rec, "height", 0))
	if f.Height == 0 {
		if kind == FurnitureRectangle {
			return Furniture{}, fmt.Errorf("missing required field %q", "height")
		}
		f.Height = f.Width
	}
	f.Color = strOr(rec, "color", "")
	f.Label = strOr(rec, "label", "")
	f.Rotation = numOr(rec, "rotation", 0)
	return f, nil
}

// DecodeTextAnnotation decodes one text annotation record.
func DecodeTextAnnotation(rec map[string]any) (TextAnnotation, error) {
	var t TextAnnotation
	var err error
	if t.X, err = requireNum(rec, "x"); err != nil {
		return TextAnnotation{}, err
	}
	if t.Y, err = requireNum(rec, "y"); err != nil {
		return TextAnnotation{}, err
	}
	t.Text = strOr(rec, "text", "")
	if t.Text == "" {
		return TextAnnotation{}, fmt.Errorf("missing required field %q", "text")
	}
	t.FontSize = numOr(rec, "font_size", 8)
	t.Style = strOr(rec, "style", "")
	t.Color = strOr(rec, "color", "black")
	return t, nil
}

// DecodeLineAnnotation decodes one line annotation record.
func DecodeLineAnnotation(rec map[string]any) (LineAnnotation, error) {
	var l LineAnnotation
	var err error
	if l.X1, err = requireNum(rec, "x1"); err != nil {
		return LineAnnotation{}, err
	}
	if l.Y1, err = requireNum(rec, "y1"); err != nil {
		return LineAnnotation{}, err
	}
	if l.X2, err = requireNum(rec, "x2"); err != nil {
		return LineAnnotation{}, err
	}
	if l.Y2, err = requireNum(rec, "y2"); err != nil {
		return LineAnnotation{}, err
	}
	l.Color = strOr(rec, "color", "black")
	l.LineWidth = numOr(rec, "line_width", 1)
	l.Dashed = strOr(rec, "style", "") == "dashed"
	return l, nil
}

// DecodeTheaterSeating decodes the seating grid of a theater section.
func DecodeTheaterSeating(rec map[string]any) TheaterSeating {
	t := TheaterSeating{
		StartX:      numOr(rec, "start_x", 0),
		StartY:      numOr(rec, "start_y", 0),
		Rows:        intOr(rec, "rows", 1),
		SeatsPerRow: intOr(rec, "seats_per_row", 1),
		SeatWidth:   numOr(rec, "seat_width", 0),
		SeatDepth:   numOr(rec, "seat_depth", 0),
		RowSpacing:  numOr(rec, "row_spacing", 0),
		SeatSpacing: numOr(rec, "seat_spacing", 0),
	}
	t.Normalize()
	return t
}

// DecodeHotTub decodes the hot tub of a pool section. A missing or
// non-positive radius yields an absent hot tub, not an error.
func DecodeHotTub(rec map[string]any) HotTub {
	return HotTub{
		X:      numOr(rec, "x", 0),
		Y:      numOr(rec, "y", 0),
		Radius: numOr(rec, "radius", 0),
		Label:  strOr(rec, "label", "Hot Tub"),
		Color:  strOr(rec, "color", "spa"),
	}
}
