package mapgen

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in tile coordinates. Width and height
// are in tiles; Right and Bottom are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Union returns the minimal rectangle covering both rectangles.
func (r Rect) Union(other Rect) Rect {
	left := min(r.X, other.X)
	top := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Inflate grows the rectangle by n tiles on every side.
func (r Rect) Inflate(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Inset shrinks the rectangle by n tiles on every side. The result may be
// empty; callers must check Width/Height before sampling from it.
func (r Rect) Inset(n int) Rect {
	return r.Inflate(-n)
}
