package plan

import (
	"floorplan/internal/config"
)

// Builder assembles a Floor programmatically, for callers generating plans
// in code instead of loading a document. Add methods return the builder for
// chaining.
type Builder struct {
	floor *Floor
}

// NewBuilder starts an empty floor with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{floor: &Floor{Name: name}}
}

// Figure sets the output figure geometry.
func (b *Builder) Figure(fig config.FigureSpec) *Builder {
	b.floor.Figure = fig
	return b
}

// Room adds a labeled room.
func (b *Builder) Room(r Room) *Builder {
	if r.FontSize <= 0 {
		r.FontSize = 9
	}
	if r.TextColor == "" {
		r.TextColor = "black"
	}
	b.floor.Rooms = append(b.floor.Rooms, r)
	return b
}

// Door adds a door. The direction and swing are assumed valid; use
// DecodeDoor for untrusted input.
func (b *Builder) Door(d Door) *Builder {
	d.KnownSwing = true
	if d.Orientation == "" {
		if d.Direction == DirUp || d.Direction == DirDown {
			d.Orientation = Vertical
		} else {
			d.Orientation = Horizontal
		}
	}
	b.floor.Doors = append(b.floor.Doors, d)
	return b
}

// Window adds a window.
func (b *Builder) Window(w Window) *Builder {
	if w.Orientation == "" {
		w.Orientation = Horizontal
	}
	b.floor.Windows = append(b.floor.Windows, w)
	return b
}

// Stairs adds a staircase.
func (b *Builder) Stairs(s Stairs) *Builder {
	if s.NumSteps < 1 {
		s.NumSteps = 8
	}
	if s.Label == "" {
		s.Label = "UP"
	}
	b.floor.Stairs = append(b.floor.Stairs, s)
	return b
}

// Fireplace adds a fireplace.
func (b *Builder) Fireplace(f Fireplace) *Builder {
	b.floor.Fireplaces = append(b.floor.Fireplaces, f)
	return b
}

// Furniture adds a furniture item.
func (b *Builder) Furniture(f Furniture) *Builder {
	if f.Kind == "" {
		f.Kind = FurnitureRectangle
	}
	if f.Height <= 0 && f.Kind != FurnitureRectangle {
		f.Height = f.Width
	}
	b.floor.Furniture = append(b.floor.Furniture, f)
	return b
}

// Theater sets the home theater composite.
func (b *Builder) Theater(t Theater) *Builder {
	seating := t.Seating
	seating.Normalize()
	t.Seating = seating
	b.floor.Theater = &t
	return b
}

// Pool sets the indoor pool composite.
func (b *Builder) Pool(p Pool) *Builder {
	b.floor.Pool = &p
	return b
}

// Build returns the assembled floor.
func (b *Builder) Build() *Floor {
	return b.floor
}

// BedroomSuite adds a bedroom with an attached bathroom and closet to the
// right, plus the connecting doors. width and height size the bedroom;
// the bathroom and closet split a 10 ft strip on its right edge.
func (b *Builder) BedroomSuite(x, y, width, height float64, label string) *Builder {
	bathHeight := height * 0.6
	b.Room(Room{X: x, Y: y, Width: width, Height: height, Label: label, Color: "bedroom"})
	b.Room(Room{X: x + width, Y: y, Width: 10, Height: bathHeight, Label: label + " Bath", Color: "bathroom"})
	b.Room(Room{X: x + width, Y: y + bathHeight, Width: 10, Height: height - bathHeight, Label: label + " Closet", Color: "closet"})
	b.Door(Door{X: x + width, Y: y + bathHeight/2, Width: 2.5, Direction: DirUp, Swing: SwingRight})
	b.Door(Door{X: x + width, Y: y + bathHeight + (height-bathHeight)/2, Width: 2.5, Direction: DirUp, Swing: SwingLeft})
	return b
}

// KitchenWithPantry adds a kitchen with a pantry carved from its lower-left
// corner.
func (b *Builder) KitchenWithPantry(x, y, width, height float64) *Builder {
	pantryW, pantryH := width*0.3, height*0.4
	b.Room(Room{X: x, Y: y + pantryH, Width: width, Height: height - pantryH, Label: "Kitchen", Color: "kitchen"})
	b.Room(Room{X: x, Y: y, Width: pantryW, Height: pantryH, Label: "Pantry", Color: "closet"})
	b.Door(Door{X: x + pantryW/4, Y: y + pantryH, Width: 2.5, Direction: DirRight, Swing: SwingDown})
	return b
}

// Garage adds a garage with its vehicle door on the bottom wall.
func (b *Builder) Garage(x, y, width, height float64) *Builder {
	b.Room(Room{X: x, Y: y, Width: width, Height: height, Label: "Garage", Color: "garage"})
	b.Door(Door{X: x + width*0.15, Y: y, Width: width * 0.7, Direction: DirRight, Swing: SwingUp})
	return b
}

// TheaterRoom adds a dark home theater with a seating grid sized to the
// room and a false wall across the top edge for the screen.
func (b *Builder) TheaterRoom(x, y, width, height float64, rows, seatsPerRow int) *Builder {
	seating := TheaterSeating{
		StartX:      x + 3,
		StartY:      y + 3,
		Rows:        rows,
		SeatsPerRow: seatsPerRow,
	}
	seating.Normalize()
	return b.Theater(Theater{
		Room:      Room{X: x, Y: y, Width: width, Height: height, Label: "Home Theater", Color: "theater", TextColor: "white"},
		Seating:   seating,
		FalseWall: LineAnnotation{X1: x, Y1: y + height - 2, X2: x + width, Y2: y + height - 2, Color: "black", LineWidth: 2, Dashed: true},
		WallLabel: "Screen Wall",
	})
}

// PoolArea adds an indoor pool deck with the water inset by margin and a
// hot tub in the deck's upper-right corner.
func (b *Builder) PoolArea(x, y, width, height, margin float64) *Builder {
	tubRadius := margin * 0.8
	return b.Pool(Pool{
		Area:   Room{X: x, Y: y, Width: width, Height: height, Label: "Indoor Pool", Color: "pool_area"},
		Water:  Room{X: x + margin, Y: y + margin, Width: width - 2*margin, Height: height - 2*margin, Label: "Pool", Color: "pool"},
		HotTub: HotTub{X: x + width - margin, Y: y + height - margin, Radius: tubRadius, Label: "Hot Tub", Color: "spa"},
	})
}
