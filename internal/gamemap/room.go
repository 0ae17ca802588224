package gamemap

// Rect is an axis-aligned rectangle with inclusive corners, used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from an origin and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other with a 1-tile buffer on all
// sides, so accepted rooms never touch even corner to corner.
func (r Rect) Intersects(other Rect) bool {
	return r.X1-1 <= other.X2 && r.X2+1 >= other.X1 &&
		r.Y1-1 <= other.Y2 && r.Y2+1 >= other.Y1
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Width returns the horizontal extent in tiles.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the vertical extent in tiles.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }
