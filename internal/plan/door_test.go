package plan

import (
	"testing"

	"floorplan/pkg/geometry"
)

func arcOf(direction Direction, swing Swing) ArcSpec {
	d := Door{X: 10, Y: 20, Width: 3, Direction: direction, Swing: swing, KnownSwing: true}
	return d.Arc()
}

func TestDoorArcTable(t *testing.T) {
	cases := []struct {
		direction Direction
		swing     Swing
		center    geometry.Point2D
		theta1    float64
		theta2    float64
	}{
		{DirRight, SwingUp, geometry.Point2D{X: 10, Y: 20}, 0, 90},
		{DirRight, SwingDown, geometry.Point2D{X: 10, Y: 20}, 270, 360},
		{DirLeft, SwingUp, geometry.Point2D{X: 13, Y: 20}, 90, 180},
		{DirLeft, SwingDown, geometry.Point2D{X: 13, Y: 20}, 180, 270},
		{DirUp, SwingRight, geometry.Point2D{X: 10, Y: 20}, 0, 90},
		{DirUp, SwingLeft, geometry.Point2D{X: 10, Y: 23}, 270, 360},
		{DirDown, SwingRight, geometry.Point2D{X: 10, Y: 23}, 270, 360},
		{DirDown, SwingLeft, geometry.Point2D{X: 10, Y: 20}, 90, 180},
	}
	for _, tc := range cases {
		arc := arcOf(tc.direction, tc.swing)
		if arc.Center != tc.center || arc.Theta1 != tc.theta1 || arc.Theta2 != tc.theta2 {
			t.Errorf("%s/%s: got center %v angles (%g, %g), want center %v angles (%g, %g)",
				tc.direction, tc.swing, arc.Center, arc.Theta1, arc.Theta2, tc.center, tc.theta1, tc.theta2)
		}
	}
}

func TestDoorLeafOrientation(t *testing.T) {
	horizontal := arcOf(DirRight, SwingUp)
	wantH := [2]geometry.Point2D{{X: 10, Y: 20}, {X: 13, Y: 20}}
	if horizontal.Leaf != wantH {
		t.Errorf("horizontal leaf = %v, want %v", horizontal.Leaf, wantH)
	}

	vertical := arcOf(DirUp, SwingLeft)
	wantV := [2]geometry.Point2D{{X: 10, Y: 20}, {X: 10, Y: 23}}
	if vertical.Leaf != wantV {
		t.Errorf("vertical leaf = %v, want %v", vertical.Leaf, wantV)
	}
}

func TestDoorArcFallback(t *testing.T) {
	d := Door{X: 10, Y: 20, Width: 3, Direction: DirRight, Swing: SwingUp, KnownSwing: false}
	arc := d.Arc()
	if arc.Theta1 != 0 || arc.Theta2 != 90 {
		t.Errorf("fallback arc angles = (%g, %g), want (0, 90)", arc.Theta1, arc.Theta2)
	}
	if arc.Center != (geometry.Point2D{X: 10, Y: 20}) {
		t.Errorf("fallback arc center = %v, want hinge", arc.Center)
	}
}

func TestDoorGap(t *testing.T) {
	h := Door{X: 10, Y: 20, Width: 3, Orientation: Horizontal}
	gap := h.Gap()
	if gap[1] != (geometry.Point2D{X: 13, Y: 20}) {
		t.Errorf("horizontal gap end = %v", gap[1])
	}

	v := Door{X: 10, Y: 20, Width: 3, Orientation: Vertical}
	gap = v.Gap()
	if gap[1] != (geometry.Point2D{X: 10, Y: 23}) {
		t.Errorf("vertical gap end = %v", gap[1])
	}
}
