// Package plan defines the typed floor plan model: rooms, openings,
// fixtures, and furniture, plus the Floor container that holds a decoded
// floor and answers spatial queries about it. Raw configuration records are
// decoded here; everything downstream works with typed elements.
package plan

import "strings"

// Direction is the wall axis a door sits on, or the travel direction of a
// staircase.
type Direction string

const (
	DirRight Direction = "right"
	DirLeft  Direction = "left"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// ParseDirection normalizes a direction string. Unknown values are reported
// so the door renderer can fall back to its default arc.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DirRight, DirLeft, DirUp, DirDown:
		return d, true
	}
	return DirRight, false
}

// Swing is the side a door leaf swings toward, relative to its wall.
type Swing string

const (
	SwingUp    Swing = "up"
	SwingDown  Swing = "down"
	SwingLeft  Swing = "left"
	SwingRight Swing = "right"
)

// ParseSwing normalizes a swing string.
func ParseSwing(s string) (Swing, bool) {
	sw := Swing(strings.ToLower(strings.TrimSpace(s)))
	switch sw {
	case SwingUp, SwingDown, SwingLeft, SwingRight:
		return sw, true
	}
	return SwingUp, false
}

// Orientation is the axis of a wall-mounted element.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// ParseOrientation normalizes an orientation string; anything unrecognized
// is horizontal.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), string(Vertical)) {
		return Vertical
	}
	return Horizontal
}

// FurnitureKind is the shape drawn for a furniture item.
type FurnitureKind string

const (
	FurnitureRectangle FurnitureKind = "rectangle"
	FurnitureCircle    FurnitureKind = "circle"
	FurnitureEllipse   FurnitureKind = "ellipse"
)

// ParseFurnitureKind normalizes a furniture shape string.
func ParseFurnitureKind(s string) (FurnitureKind, bool) {
	k := FurnitureKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case FurnitureRectangle, FurnitureCircle, FurnitureEllipse:
		return k, true
	}
	return FurnitureRectangle, false
}
