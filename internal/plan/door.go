package plan

import "floorplan/pkg/geometry"

// ArcSpec describes how to draw a door's swing: a quarter arc centered on
// the hinge plus the door leaf segment. Angles are degrees counter-
// clockwise from the positive x axis; the arc radius equals the leaf
// width.
type ArcSpec struct {
	Center geometry.Point2D
	Theta1 float64
	Theta2 float64
	Leaf   [2]geometry.Point2D
}

// Arc resolves the door's swing geometry from its direction and swing
// pair. Doors with an unrecognized pair get the default arc, a quarter
// circle opening up-and-right from the hinge, so every configured door
// still shows on the plan.
func (d Door) Arc() ArcSpec {
	x, y, w := d.X, d.Y, d.Width

	horizontalLeaf := [2]geometry.Point2D{{X: x, Y: y}, {X: x + w, Y: y}}
	verticalLeaf := [2]geometry.Point2D{{X: x, Y: y}, {X: x, Y: y + w}}

	if !d.KnownSwing {
		return ArcSpec{Center: geometry.Point2D{X: x, Y: y}, Theta1: 0, Theta2: 90, Leaf: horizontalLeaf}
	}

	switch d.Direction {
	case DirRight:
		switch d.Swing {
		case SwingUp:
			return ArcSpec{Center: geometry.Point2D{X: x, Y: y}, Theta1: 0, Theta2: 90, Leaf: horizontalLeaf}
		case SwingDown:
			return ArcSpec{Center: geometry.Point2D{X: x, Y: y}, Theta1: 270, Theta2: 360, Leaf: horizontalLeaf}
		}
	case DirLeft:
		switch d.Swing {
		case SwingUp:
			return ArcSpec{Center: geometry.Point2D{X: x + w, Y: y}, Theta1: 90, Theta2: 180, Leaf: horizontalLeaf}
		case SwingDown:
			return ArcSpec{Center: geometry.Point2D{X: x + w, Y: y}, Theta1: 180, Theta2: 270, Leaf: horizontalLeaf}
		}
	case DirUp:
		switch d.Swing {
		case SwingRight:
			return ArcSpec{Center: geometry.Point2D{X: x, Y: y}, Theta1: 0, Theta2: 90, Leaf: verticalLeaf}
		case SwingLeft:
			return ArcSpec{Center: geometry.Point2D{X: x, Y: y + w}, Theta1: 270, Theta2: 360, Leaf: verticalLeaf}
		}
	case DirDown:
		switch d.Swing {
		case SwingRight:
			return ArcSpec{Center: geometry.Point2D{X: x, Y: y + w}, Theta1: 270, Theta2: 360, Leaf: verticalLeaf}
		case SwingLeft:
			return ArcSpec{Center: geometry.Point2D{X: x, Y: y}, Theta1: 90, Theta2: 180, Leaf: verticalLeaf}
		}
	}

	return ArcSpec{Center: geometry.Point2D{X: x, Y: y}, Theta1: 0, Theta2: 90, Leaf: horizontalLeaf}
}

// Gap returns the wall opening segment the renderer paints over in the
// background color before drawing the arc.
func (d Door) Gap() [2]geometry.Point2D {
	if d.Orientation == Vertical {
		return [2]geometry.Point2D{{X: d.X, Y: d.Y}, {X: d.X, Y: d.Y + d.Width}}
	}
	return [2]geometry.Point2D{{X: d.X, Y: d.Y}, {X: d.X + d.Width, Y: d.Y}}
}
