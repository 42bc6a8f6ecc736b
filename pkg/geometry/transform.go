package geometry

// Rotate90CW rotates a rectangle 90 degrees clockwise within a layout of
// height maxY. Width and height swap.
func Rotate90CW(r Rect, maxY float64) Rect {
	return Rect{
		X:      maxY - r.Y - r.Height,
		Y:      r.X,
		Width:  r.Height,
		Height: r.Width,
	}
}

// Rotate90CCW rotates a rectangle 90 degrees counter-clockwise within a
// layout of width maxX. Width and height swap.
func Rotate90CCW(r Rect, maxX float64) Rect {
	return Rect{
		X:      r.Y,
		Y:      maxX - r.X - r.Width,
		Width:  r.Height,
		Height: r.Width,
	}
}

// MirrorHorizontal mirrors a rectangle across the vertical center line of a
// layout of width maxX.
func MirrorHorizontal(r Rect, maxX float64) Rect {
	return Rect{X: maxX - r.X - r.Width, Y: r.Y, Width: r.Width, Height: r.Height}
}

// MirrorVertical mirrors a rectangle across the horizontal center line of a
// layout of height maxY.
func MirrorVertical(r Rect, maxY float64) Rect {
	return Rect{X: r.X, Y: maxY - r.Y - r.Height, Width: r.Width, Height: r.Height}
}

// Translate shifts a rectangle by a delta.
func Translate(r Rect, dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
