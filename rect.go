package turnip

// Rect is an axis-aligned rectangle, used for the extents of loops and
// worlds and for the viewport of snapshots.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// PointRect returns the zero-area rectangle at pt, suitable as the start of
// a sequence of [Rect.UnionPoint] calls.
func PointRect(pt Point) Rect { return Rect{pt.X, pt.Y, pt.X, pt.Y} }

// Abs returns r with its corners ordered so that width and height are not
// negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns X1 − X0, which is negative for unordered rectangles.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0, which is negative for unordered rectangles.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Point { return Point{0.5 * (r.X0 + r.X1), 0.5 * (r.Y0 + r.Y1)} }

// Contains reports whether pt lies in r, excluding the right and bottom
// edges.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing the ordered rectangles r and
// o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint extends the ordered rectangle r to include pt, which may lie on
// its new boundary.
func (r Rect) UnionPoint(pt Point) Rect { return r.Union(PointRect(pt)) }

// Inflate grows r by dx on the left and right and by dy on the top and
// bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	r = r.Abs()
	return Rect{r.X0 - dx, r.Y0 - dy, r.X1 + dx, r.Y1 + dy}
}
