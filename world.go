package turnip

import (
	"iter"
	"slices"
)

// World is an ordered collection of loops. The order is the order in which
// loops were added; queries that return the first match search in that
// order.
//
// A World is not safe for concurrent use.
type World struct {
	loops []*Loop
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{}
}

// AddLoop creates a single-node loop at pos and appends it to the world.
func (w *World) AddLoop(pos Point) *Loop {
	l := NewLoop(pos)
	w.loops = append(w.loops, l)
	return l
}

// Clear removes all loops.
func (w *World) Clear() {
	clear(w.loops)
	w.loops = w.loops[:0]
}

// Len returns the number of loops in the world.
func (w *World) Len() int { return len(w.loops) }

// Loop returns the i'th loop.
func (w *World) Loop(i int) *Loop { return w.loops[i] }

// Loops returns the world's loops in order.
func (w *World) Loops() iter.Seq[*Loop] {
	return slices.Values(w.loops)
}

// Nodes returns the nodes of all loops, loop by loop.
func (w *World) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, l := range w.loops {
			for n := range l.Nodes() {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// Segments returns the segments of all loops, loop by loop.
func (w *World) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for n := range w.Nodes() {
			if !yield(n.SuccSegment()) {
				return
			}
		}
	}
}

// Supports returns the supports of all loops, loop by loop.
func (w *World) Supports() iter.Seq[Support] {
	return func(yield func(Support) bool) {
		for _, l := range w.loops {
			for s := range l.Supports() {
				if !yield(s) {
					return
				}
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing all nodes. It returns
// false for an empty world.
func (w *World) BoundingBox() (Rect, bool) {
	if len(w.loops) == 0 {
		return Rect{}, false
	}
	r := w.loops[0].BoundingBox()
	for _, l := range w.loops[1:] {
		r = r.Union(l.BoundingBox())
	}
	return r, true
}

// PickNode returns the first node within radius of pos, or nil.
func (w *World) PickNode(pos Point, radius float64) *Node {
	r2 := sq(radius)
	for n := range w.Nodes() {
		if n.DistanceSquared(pos) <= r2 {
			return n
		}
	}
	return nil
}

// NearestSegment returns the segment closest to pos and its squared
// distance. Of several equally close segments the first one wins. It returns
// false for an empty world.
func (w *World) NearestSegment(pos Point) (Segment, float64, bool) {
	var (
		best  Segment
		bestD float64
		found bool
	)
	for s := range w.Segments() {
		d := s.DistanceSquared(pos)
		if !found || d < bestD {
			best, bestD, found = s, d, true
		}
	}
	return best, bestD, found
}

// PickSegment returns the segment closest to pos if it is within radius.
func (w *World) PickSegment(pos Point, radius float64) (Segment, bool) {
	s, d, ok := w.NearestSegment(pos)
	if !ok || d > sq(radius) {
		return Segment{}, false
	}
	return s, true
}

// PickLoop returns the first loop containing pos, or nil.
func (w *World) PickLoop(pos Point) *Loop {
	for _, l := range w.loops {
		if l.Contains(pos) {
			return l
		}
	}
	return nil
}

// Encroached returns the first segment support in world order that a body of
// the given radius at pos is in contact with.
func (w *World) Encroached(pos Point, radius float64) (Support, bool) {
	for s := range w.Segments() {
		if sup := s.Support(); sup.Encroaches(pos, radius) {
			return sup, true
		}
	}
	return Support{}, false
}
