package geometry

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(NewPoint2D(5, 5)) {
		t.Error("center should be contained")
	}
	if !r.Contains(NewPoint2D(0, 0)) {
		t.Error("corner should be contained")
	}
	if r.Contains(NewPoint2D(10.1, 5)) {
		t.Error("point past right edge should not be contained")
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	got := a.Intersection(b)
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Errorf("Intersection = %+v, want %+v", got, want)
	}

	c := NewRect(20, 20, 5, 5)
	if zero := a.Intersection(c); zero != (Rect{}) {
		t.Errorf("disjoint intersection = %+v, want zero", zero)
	}
}

func TestRectOverlapsTolerance(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(9.9, 0, 10, 10)

	if !a.Overlaps(b, 0) {
		t.Error("rects sharing 0.1 ft should overlap with zero tolerance")
	}
	// Negative tolerance shrinks the rects, ignoring the sliver.
	if a.Overlaps(b, -0.5) {
		t.Error("0.1 ft sliver should be ignored at -0.5 tolerance")
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 5, 10)
	got := a.Union(b)
	want := NewRect(0, 0, 25, 15)
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point2D{{X: 2, Y: 3}, {X: -1, Y: 8}, {X: 5, Y: 0}}
	got := BoundingBox(points)
	want := NewRect(-1, 0, 6, 8)
	if got != want {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}

	if empty := BoundingBox(nil); empty != (Rect{}) {
		t.Errorf("BoundingBox(nil) = %+v, want zero", empty)
	}
}

func TestCornersOrder(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	corners := r.Corners()
	want := [4]Point2D{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	if corners != want {
		t.Errorf("Corners = %v, want %v", corners, want)
	}
}

func TestPointDistance(t *testing.T) {
	if d := NewPoint2D(0, 0).Distance(NewPoint2D(3, 4)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}
