package turnip

import "iter"

// Item is anything in a world that can be dragged around in the editor.
type Item interface {
	MoveBy(v Vec2)
}

// Loop is a closed chain of nodes, identified by its origin node. A loop
// with three or more nodes is a polygon, one with two nodes is a line and
// one with a single node is a point.
type Loop struct {
	origin *Node
}

var _ Item = (*Loop)(nil)

// NewLoop returns a loop consisting of a single node at pos.
func NewLoop(pos Point) *Loop {
	return &Loop{origin: NewNode(pos)}
}

// Origin returns the loop's designated first node.
func (l *Loop) Origin() *Node { return l.origin }

// Nodes returns the loop's nodes, starting at the origin.
func (l *Loop) Nodes() iter.Seq[*Node] { return l.origin.Nodes() }

// Segments returns the loop's segments, starting at the origin.
func (l *Loop) Segments() iter.Seq[Segment] { return l.origin.Segments() }

// Positions returns the positions of the loop's nodes, starting at the
// origin.
func (l *Loop) Positions() iter.Seq[Point] { return l.origin.Positions() }

// Count returns the number of nodes in the loop.
func (l *Loop) Count() int { return l.origin.Count() }

// Contains reports whether pt lies inside the loop's polygon.
func (l *Loop) Contains(pt Point) bool {
	return PointInPolygon(l.Positions(), pt)
}

// MoveBy translates every node of the loop.
func (l *Loop) MoveBy(v Vec2) {
	for n := range l.Nodes() {
		n.MoveBy(v)
	}
}

// BoundingBox returns the smallest rectangle enclosing all of the loop's
// nodes.
func (l *Loop) BoundingBox() Rect {
	r := PointRect(l.origin.Position)
	for pt := range l.Positions() {
		r = r.UnionPoint(pt)
	}
	return r
}

// SignedArea returns the signed area of the loop's polygon. In the editor's
// y-down space, loops that bodies can stand on top of have negative area.
func (l *Loop) SignedArea() float64 {
	var area float64
	for s := range l.Segments() {
		area += Vec2(s.Start.Position).Cross(Vec2(s.End.Position))
	}
	return 0.5 * area
}

// Supports returns the supports around the loop in the order a body moving
// forward encounters them: every segment with a length, preceded by its
// start node whenever contact transfers from the previous segment onto that
// node. A loop whose nodes all coincide yields its zero-length segments.
func (l *Loop) Supports() iter.Seq[Support] {
	return func(yield func(Support) bool) {
		solid := false
		for s := range l.Segments() {
			if !s.IsDegenerate() {
				solid = true
				break
			}
		}
		for s := range l.Segments() {
			if solid && s.IsDegenerate() {
				continue
			}
			if !s.IsDegenerate() && s.transfersToStart() {
				if !yield(s.Start.Support()) {
					return
				}
			}
			if !yield(s.Support()) {
				return
			}
		}
	}
}
