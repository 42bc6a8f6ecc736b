package render

import (
	"strings"
	"testing"

	"floorplan/internal/config"
	"floorplan/internal/plan"
	"floorplan/pkg/geometry"
)

// recorder captures canvas calls so tests can assert on draw order and
// geometry without rasterizing anything.
type recorder struct {
	extent Extent
	title  string
	ops    []op
}

type op struct {
	kind  string
	rect  geometry.Rect
	a, b  geometry.Point2D
	text  string
	color string
	style LineStyle
	opts  TextOptions
}

func (r *recorder) SetExtent(xMin, yMin, xMax, yMax float64) {
	r.extent = Extent{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}
}
func (r *recorder) SetTitle(title string) { r.title = title }
func (r *recorder) FillRect(rect geometry.Rect, fill, stroke string, strokeWidth float64) {
	r.ops = append(r.ops, op{kind: "fillrect", rect: rect, color: fill})
}
func (r *recorder) StrokeRect(rect geometry.Rect, style LineStyle) {
	r.ops = append(r.ops, op{kind: "strokerect", rect: rect, style: style})
}
func (r *recorder) Line(a, b geometry.Point2D, style LineStyle) {
	r.ops = append(r.ops, op{kind: "line", a: a, b: b, style: style})
}
func (r *recorder) Circle(center geometry.Point2D, radius float64, fill, stroke string, strokeWidth float64) {
	r.ops = append(r.ops, op{kind: "circle", a: center, color: fill})
}
func (r *recorder) Ellipse(center geometry.Point2D, rx, ry float64, fill, stroke string, strokeWidth float64) {
	r.ops = append(r.ops, op{kind: "ellipse", a: center, color: fill})
}
func (r *recorder) Arc(center geometry.Point2D, radius, theta1, theta2 float64, style LineStyle) {
	r.ops = append(r.ops, op{kind: "arc", a: center, style: style})
}
func (r *recorder) Text(at geometry.Point2D, text string, opts TextOptions) {
	r.ops = append(r.ops, op{kind: "text", a: at, text: text, opts: opts})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) first(kind string) (op, bool) {
	for _, o := range r.ops {
		if o.kind == kind {
			return o, true
		}
	}
	return op{}, false
}

func testDrawing() *config.Drawing {
	return config.DefaultDrawing()
}

func TestDrawRoomScalesGeometry(t *testing.T) {
	cfg := testDrawing()
	cfg.Scale = 2.0
	rec := &recorder{}

	DrawRoom(rec, cfg, plan.Room{X: 0, Y: 0, Width: 20, Height: 15, Label: "Living Room", AutoDimension: true})

	fill, ok := rec.first("fillrect")
	if !ok {
		t.Fatal("room should fill its footprint")
	}
	want := geometry.NewRect(0, 0, 40, 30)
	if fill.rect != want {
		t.Errorf("scaled footprint = %+v, want %+v", fill.rect, want)
	}
}

func TestDrawRoomResolvesPaletteColor(t *testing.T) {
	cfg := testDrawing()
	rec := &recorder{}

	DrawRoom(rec, cfg, plan.Room{Width: 20, Height: 15, Color: "living"})
	fill, _ := rec.first("fillrect")
	if fill.color != "#fff3e0" {
		t.Errorf("fill color = %q, want the configured living hex", fill.color)
	}
}

func TestRoomLabelComposition(t *testing.T) {
	cfg := testDrawing()
	room := plan.Room{Width: 12.5, Height: 10, Label: "Den", AutoDimension: true, Notes: []string{"vaulted"}}

	got := RoomLabel(cfg, room)
	want := "Den\n12'-6\" x 10'-0\"\nvaulted"
	if got != want {
		t.Errorf("RoomLabel = %q, want %q", got, want)
	}

	// Room-level opt out suppresses the caption even when the run allows it.
	room.AutoDimension = false
	if got := RoomLabel(cfg, room); strings.Contains(got, "x") {
		t.Errorf("opted-out room still captioned: %q", got)
	}

	// Run-level opt out wins over the room.
	room.AutoDimension = true
	cfg.AutoDimensions = false
	if got := RoomLabel(cfg, room); strings.Contains(got, `12'`) {
		t.Errorf("run opt out should drop the caption: %q", got)
	}
}

func TestDrawDoorPasses(t *testing.T) {
	cfg := testDrawing()
	rec := &recorder{}

	door, err := plan.DecodeDoor(map[string]any{"x": 5, "y": 5, "width": 3, "direction": "down", "swing": "left"})
	if err != nil {
		t.Fatal(err)
	}
	DrawDoor(rec, cfg, door)

	if got := rec.count("arc"); got != 1 {
		t.Errorf("arcs = %d, want 1", got)
	}
	// Gap line plus the leaf line.
	if got := rec.count("line"); got != 2 {
		t.Errorf("lines = %d, want 2", got)
	}
	gap, _ := rec.first("line")
	if gap.style.Color != "white" {
		t.Errorf("first line should be the white wall gap, got %q", gap.style.Color)
	}
	if gap.style.Width != cfg.WallThick+1 {
		t.Errorf("gap width = %v, want wall thickness + 1", gap.style.Width)
	}
}

func TestDrawDoorUnresolvedSwingArcOnly(t *testing.T) {
	cfg := testDrawing()
	rec := &recorder{}

	door, err := plan.DecodeDoor(map[string]any{"x": 5, "y": 5, "width": 3, "direction": "diagonal", "swing": "up"})
	if err != nil {
		t.Fatal(err)
	}
	DrawDoor(rec, cfg, door)

	if got := rec.count("arc"); got != 1 {
		t.Errorf("arcs = %d, want the generic quarter arc", got)
	}
	// Only the white wall gap, no leaf line.
	if got := rec.count("line"); got != 1 {
		t.Errorf("lines = %d, want gap only", got)
	}
}

func TestDrawStairsTreads(t *testing.T) {
	cfg := testDrawing()
	rec := &recorder{}

	DrawStairs(rec, cfg, plan.Stairs{X: 0, Y: 0, Width: 10, Height: 4, NumSteps: 5, Label: "UP"})

	if got := rec.count("line"); got != 5 {
		t.Errorf("tread lines = %d, want one per step", got)
	}
	// Horizontal run: treads are vertical, spanning the full height.
	tread, _ := rec.first("line")
	if tread.a.X != tread.b.X {
		t.Errorf("tread should be vertical, got %+v -> %+v", tread.a, tread.b)
	}

	rec = &recorder{}
	DrawStairs(rec, cfg, plan.Stairs{X: 0, Y: 0, Width: 4, Height: 10, NumSteps: 5, Orientation: plan.Vertical, Label: "DN"})
	tread, _ = rec.first("line")
	if tread.a.Y != tread.b.Y {
		t.Errorf("vertical run treads should be horizontal, got %+v -> %+v", tread.a, tread.b)
	}
	label, ok := rec.first("text")
	if !ok || label.opts.Rotation != 90 {
		t.Error("vertical run label should rotate 90 degrees")
	}
}

func TestDrawFireplaceLabelAboveSurround(t *testing.T) {
	cfg := testDrawing()
	rec := &recorder{}

	DrawFireplace(rec, cfg, plan.Fireplace{X: 10, Y: 20, Width: 6, Height: 2, Label: "Fireplace"})

	label, ok := rec.first("text")
	if !ok {
		t.Fatal("fireplace label should draw")
	}
	if label.a.Y <= 22 {
		t.Errorf("label y = %v, want above the surround top 22", label.a.Y)
	}
	if label.a.X != 13 {
		t.Errorf("label x = %v, want centered at 13", label.a.X)
	}
}

func TestFurnitureBatchPartialFailure(t *testing.T) {
	cfg := testDrawing()
	rec := &recorder{}

	records := []map[string]any{
		{"furniture_type": "rectangle", "x": 0, "y": 0, "width": 4, "height": 2},
		{"furniture_type": "circle", "x": 5, "y": 5, "width": 3},
		{"furniture_type": "ellipse", "x": 8, "y": 8, "width": 4, "height": 2},
		{"furniture_type": "hologram", "x": 1, "y": 1, "width": 1}, // bad
		{"furniture_type": "rectangle", "x": 2, "y": 2, "width": 3, "height": 3},
	}
	if drawn := DrawFurnitureBatch(rec, cfg, records); drawn != 4 {
		t.Errorf("drawn = %d, want 4", drawn)
	}
}

func TestDrawMainFloorPassOrder(t *testing.T) {
	cfg := testDrawing()
	cfg.DebugMode = true
	rec := &recorder{}

	doc := config.Default()
	DrawMainFloor(rec, cfg, doc.MainFloor)

	if rec.title != "Main Floor Plan" {
		t.Errorf("title = %q", rec.title)
	}
	if !rec.extent.Valid() {
		t.Fatal("extent must be set before drawing")
	}

	// Debug grid lines come before the first room fill.
	firstFill := -1
	firstLine := -1
	for i, o := range rec.ops {
		if o.kind == "fillrect" && firstFill < 0 {
			firstFill = i
		}
		if o.kind == "line" && firstLine < 0 {
			firstLine = i
		}
	}
	if firstLine < 0 || firstFill < 0 || firstLine > firstFill {
		t.Errorf("grid lines (%d) should precede room fills (%d)", firstLine, firstFill)
	}

	if rec.count("arc") != len(doc.MainFloor.Doors) {
		t.Errorf("arcs = %d, want one per door (%d)", rec.count("arc"), len(doc.MainFloor.Doors))
	}
}

func TestDrawMainFloorExtentScaled(t *testing.T) {
	cfg := testDrawing()
	cfg.Scale = 2.0
	rec := &recorder{}

	section := config.FloorSection{
		Figure: config.FigureSpec{XMin: 0, XMax: 50, YMin: 0, YMax: 40},
	}
	DrawMainFloor(rec, cfg, section)

	if rec.extent.XMax != 100 || rec.extent.YMax != 80 {
		t.Errorf("extent = %+v, want scaled to (100, 80)", rec.extent)
	}
}

func TestDrawBasementComposites(t *testing.T) {
	cfg := testDrawing()
	rec := &recorder{}

	doc := config.Default()
	DrawBasement(rec, cfg, doc.Basement)

	// 2x4 theater seats plus furniture and windows all land as fills.
	if rec.count("fillrect") < 8 {
		t.Errorf("fills = %d, want at least the seat grid", rec.count("fillrect"))
	}
	// Hot tub plus circular furniture.
	if rec.count("circle") < 2 {
		t.Errorf("circles = %d, want hot tub and poker table", rec.count("circle"))
	}

	var sawCeilingNote bool
	for _, o := range rec.ops {
		if o.kind == "text" && strings.Contains(o.text, "Ceilings") {
			sawCeilingNote = true
		}
	}
	if !sawCeilingNote {
		t.Error("ceiling note should draw")
	}
}

func TestGridStart(t *testing.T) {
	if got := gridStart(-32, 10); got != -30 {
		t.Errorf("gridStart(-32, 10) = %v, want -30", got)
	}
	if got := gridStart(0, 10); got != 0 {
		t.Errorf("gridStart(0, 10) = %v, want 0", got)
	}
	if got := gridStart(3, 10); got != 10 {
		t.Errorf("gridStart(3, 10) = %v, want 10", got)
	}
}
