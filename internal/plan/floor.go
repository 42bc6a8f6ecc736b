package plan

import (
	"fmt"
	"strings"

	"floorplan/internal/config"
	"floorplan/pkg/geometry"
)

// Floor is the typed model of one decoded floor. It backs spatial queries,
// validation, and the area summary; the renderers consume the same records
// through the batch drawing helpers.
type Floor struct {
	Name   string
	Figure config.FigureSpec

	Rooms           []Room
	Doors           []Door
	Windows         []Window
	Stairs          []Stairs
	Fireplaces      []Fireplace
	Furniture       []Furniture
	TextAnnotations []TextAnnotation
	LineAnnotations []LineAnnotation

	Theater *Theater
	Pool    *Pool
}

// NewFloor decodes a floor section into a typed Floor. Records that fail to
// decode are skipped and reported in the returned warnings; decoding never
// fails outright.
func NewFloor(name string, section config.FloorSection) (*Floor, []string) {
	f := &Floor{Name: name, Figure: section.Figure}
	var warnings []string

	warn := func(kind string, i int, err error) {
		warnings = append(warnings, fmt.Sprintf("%s: %s[%d]: %v", name, kind, i, err))
	}

	for i, rec := range section.Rooms {
		r, err := DecodeRoom(rec)
		if err != nil {
			warn("rooms", i, err)
			continue
		}
		f.Rooms = append(f.Rooms, r)
	}
	for i, rec := range section.Doors {
		d, err := DecodeDoor(rec)
		if err != nil {
			warn("doors", i, err)
			continue
		}
		f.Doors = append(f.Doors, d)
	}
	for i, rec := range section.Windows {
		w, err := DecodeWindow(rec)
		if err != nil {
			warn("windows", i, err)
			continue
		}
		f.Windows = append(f.Windows, w)
	}
	for i, rec := range section.Stairs {
		s, err := DecodeStairs(rec)
		if err != nil {
			warn("stairs", i, err)
			continue
		}
		f.Stairs = append(f.Stairs, s)
	}
	for i, rec := range section.Fireplaces {
		fp, err := DecodeFireplace(rec)
		if err != nil {
			warn("fireplaces", i, err)
			continue
		}
		f.Fireplaces = append(f.Fireplaces, fp)
	}
	for i, rec := range section.Furniture {
		fu, err := DecodeFurniture(rec)
		if err != nil {
			warn("furniture", i, err)
			continue
		}
		f.Furniture = append(f.Furniture, fu)
	}
	for i, rec := range section.TextAnnotations {
		t, err := DecodeTextAnnotation(rec)
		if err != nil {
			warn("text_annotations", i, err)
			continue
		}
		f.TextAnnotations = append(f.TextAnnotations, t)
	}
	for i, rec := range section.LineAnnotations {
		l, err := DecodeLineAnnotation(rec)
		if err != nil {
			warn("line_annotations", i, err)
			continue
		}
		f.LineAnnotations = append(f.LineAnnotations, l)
	}

	if section.Theater != nil {
		theater, tw := decodeTheater(section.Theater)
		for _, w := range tw {
			warnings = append(warnings, name+": theater: "+w)
		}
		f.Theater = theater
	}
	if section.Pool != nil {
		pool, pw := decodePool(section.Pool)
		for _, w := range pw {
			warnings = append(warnings, name+": pool: "+w)
		}
		f.Pool = pool
	}

	return f, warnings
}

func decodeTheater(section *config.TheaterSection) (*Theater, []string) {
	var warnings []string
	t := &Theater{}
	room, err := DecodeRoom(section.Room)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("room: %v", err))
		return nil, warnings
	}
	t.Room = room
	t.Seating = DecodeTheaterSeating(section.Seating)
	if wall := section.FalseWall; wall != nil {
		x := numOr(wall, "x", room.X)
		y := numOr(wall, "y", room.Y+room.Height)
		w := numOr(wall, "width", room.Width)
		t.FalseWall = LineAnnotation{X1: x, Y1: y, X2: x + w, Y2: y, Color: "black", LineWidth: 2, Dashed: true}
		t.WallLabel = strOr(wall, "label", "")
	}
	return t, warnings
}

func decodePool(section *config.PoolSection) (*Pool, []string) {
	var warnings []string
	p := &Pool{}
	area, err := DecodeRoom(section.Area)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("area: %v", err))
		return nil, warnings
	}
	p.Area = area
	water, err := DecodeRoom(section.Pool)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("pool: %v", err))
	} else {
		p.Water = water
	}
	if section.HotTub != nil {
		p.HotTub = DecodeHotTub(section.HotTub)
	}
	if section.SpaLabel != nil {
		p.SpaLabelX = numOr(section.SpaLabel, "x", 0)
		p.SpaLabelY = numOr(section.SpaLabel, "y", 0)
	}
	warnings = append(warnings, p.Validate()...)
	return p, warnings
}

// TotalArea sums the area of every room on the floor, including the
// theater room and pool deck when present.
func (f *Floor) TotalArea() float64 {
	total := 0.0
	for _, r := range f.Rooms {
		total += r.Area()
	}
	if f.Theater != nil {
		total += f.Theater.Room.Area()
	}
	if f.Pool != nil {
		total += f.Pool.Area.Area()
	}
	return total
}

// AllRooms returns every room on the floor, including composite rooms.
func (f *Floor) AllRooms() []Room {
	rooms := make([]Room, 0, len(f.Rooms)+2)
	rooms = append(rooms, f.Rooms...)
	if f.Theater != nil {
		rooms = append(rooms, f.Theater.Room)
	}
	if f.Pool != nil {
		rooms = append(rooms, f.Pool.Area)
	}
	return rooms
}

// Bounds returns the union of all room footprints. The zero Rect means the
// floor has no rooms.
func (f *Floor) Bounds() geometry.Rect {
	rooms := f.AllRooms()
	if len(rooms) == 0 {
		return geometry.Rect{}
	}
	bounds := rooms[0].Bounds()
	for _, r := range rooms[1:] {
		bounds = bounds.Union(r.Bounds())
	}
	return bounds
}

// RoomByLabel finds a room by its label, case-insensitively.
func (f *Floor) RoomByLabel(label string) (Room, bool) {
	for _, r := range f.AllRooms() {
		if strings.EqualFold(r.Label, label) {
			return r, true
		}
	}
	return Room{}, false
}

// FindRoomAt returns the first room containing the point.
func (f *Floor) FindRoomAt(p geometry.Point2D) (Room, bool) {
	for _, r := range f.AllRooms() {
		if r.Bounds().Contains(p) {
			return r, true
		}
	}
	return Room{}, false
}

// AdjacentRooms returns the labels of rooms sharing a wall with the named
// room, within tolerance.
func (f *Floor) AdjacentRooms(label string, tolerance float64) []string {
	room, ok := f.RoomByLabel(label)
	if !ok {
		return nil
	}
	var adjacent []string
	for _, other := range f.AllRooms() {
		if strings.EqualFold(other.Label, room.Label) {
			continue
		}
		if geometry.RoomsAdjacent(room.Bounds(), other.Bounds(), tolerance) {
			adjacent = append(adjacent, other.Label)
		}
	}
	return adjacent
}

// Validate runs the per-element soft checks plus the pairwise room overlap
// pass. Two rooms overlap when their shared area exceeds half the smaller
// room's area.
func (f *Floor) Validate() []string {
	var warnings []string
	for _, r := range f.Rooms {
		warnings = append(warnings, r.Validate()...)
	}
	for _, d := range f.Doors {
		warnings = append(warnings, d.Validate()...)
	}
	for _, w := range f.Windows {
		warnings = append(warnings, w.Validate()...)
	}
	if f.Pool != nil {
		warnings = append(warnings, f.Pool.Validate()...)
	}

	rooms := f.AllRooms()
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			if overlapsSignificantly(rooms[i], rooms[j]) {
				warnings = append(warnings, fmt.Sprintf("rooms %q and %q overlap significantly",
					roomName(rooms[i]), roomName(rooms[j])))
			}
		}
	}
	return warnings
}

func roomName(r Room) string {
	if r.Label != "" {
		return r.Label
	}
	return fmt.Sprintf("room at (%g, %g)", r.X, r.Y)
}

// overlapsSignificantly reports whether the shared area of two rooms
// exceeds half the smaller room's area. Small incidental overlaps from
// shared walls stay below the threshold.
func overlapsSignificantly(a, b Room) bool {
	inter := a.Bounds().Intersection(b.Bounds())
	if inter.Area() == 0 {
		return false
	}
	minArea := a.Area()
	if b.Area() < minArea {
		minArea = b.Area()
	}
	if minArea <= 0 {
		return false
	}
	return inter.Area()/minArea > 0.5
}
