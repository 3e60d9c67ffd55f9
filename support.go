package turnip

import (
	"fmt"
	"math"
)

// minSupportLength is the length assigned to supports whose contact path
// collapses, such as the vertex of a straight joint. It keeps parameter
// arithmetic finite.
const minSupportLength = 1e-9

// SupportKind identifies the variant of a [Support].
type SupportKind uint8

const (
	// NoSupport is the kind of the zero Support.
	NoSupport SupportKind = iota
	// VertexSupport supports a body pivoting around a node.
	VertexSupport
	// SegmentSupport supports a body sliding along a segment.
	SegmentSupport
)

func (k SupportKind) String() string {
	switch k {
	case NoSupport:
		return "none"
	case VertexSupport:
		return "vertex"
	case SegmentSupport:
		return "segment"
	default:
		return fmt.Sprintf("SupportKind(%d)", uint8(k))
	}
}

// Support is a place on a loop's boundary that a circular body can rest
// against: either a node, around which the body pivots, or a segment, along
// which it slides. Node is set for vertex supports, Segment for segment
// supports.
//
// Supports are small values and compare equal when they refer to the same
// element.
type Support struct {
	Kind    SupportKind
	Node    *Node
	Segment Segment
}

func (s Support) String() string {
	switch s.Kind {
	case VertexSupport:
		return fmt.Sprintf("vertex %v", s.Node.Position)
	case SegmentSupport:
		return fmt.Sprintf("segment %v–%v", s.Segment.Start.Position, s.Segment.End.Position)
	default:
		return "no support"
	}
}

// IsZero reports whether s is the zero Support.
func (s Support) IsZero() bool { return s.Kind == NoSupport }

// Pred returns the support a body moves onto when it leaves s backwards.
// A vertex hands off to the segment ending at it. A segment hands off to its
// start node at convex joints and to the previous segment otherwise.
// Zero-length segments are passed over, so coincident nodes act as a single
// joint, represented by the last node of the run.
func (s Support) Pred() Support {
	switch s.Kind {
	case VertexSupport:
		return prevSolid(s.Node.PredSegment()).Support()
	case SegmentSupport:
		if s.Segment.transfersToStart() {
			return s.Segment.Start.Support()
		}
		return prevSolid(s.Segment.Pred()).Support()
	default:
		return s
	}
}

// Succ is the counterpart of [Support.Pred] for bodies moving forward.
func (s Support) Succ() Support {
	switch s.Kind {
	case VertexSupport:
		return nextSolid(s.Node.SuccSegment()).Support()
	case SegmentSupport:
		next := nextSolid(s.Segment.Succ())
		if s.Segment.transfersToEnd() {
			return next.Start.Support()
		}
		return next.Support()
	default:
		return s
	}
}

// Encroaches reports whether a body of the given radius centered at pos is in
// contact with s: it must overlap the element and lie within the element's
// bounds, so that contact is made with this element and not with one of its
// neighbours.
func (s Support) Encroaches(pos Point, radius float64) bool {
	switch s.Kind {
	case VertexSupport:
		n := s.Node
		if !(n.DistanceSquared(pos) < sq(radius)) {
			return false
		}
		u := pos.Sub(n.Position)
		return n.StartBound().Cross(u) <= 0 && n.EndBound().Cross(u) > 0
	case SegmentSupport:
		seg := s.Segment
		if seg.IsDegenerate() {
			return false
		}
		return seg.DistanceSquared(pos) <= sq(radius) && seg.InBounds(pos)
	default:
		return false
	}
}

// Length returns the length of the path traced by the center of a body of
// the given radius while it is in contact with s.
func (s Support) Length(radius float64) float64 {
	switch s.Kind {
	case VertexSupport:
		return max(vertexSweep(s.Node)*radius, minSupportLength)
	case SegmentSupport:
		line, dir := segmentOffset(s.Segment, radius)
		return max(line.Span().Dot(dir), minSupportLength)
	default:
		return minSupportLength
	}
}

// Activate binds s to a body of the given radius, positioned at the start of
// the support and at rest.
func (s Support) Activate(radius float64) *ActiveSupport {
	a := s.activate(radius)
	return &a
}

func (s Support) activate(radius float64) ActiveSupport {
	a := ActiveSupport{
		support: s,
		radius:  radius,
		length:  s.Length(radius),
	}
	switch s.Kind {
	case VertexSupport:
		a.center = s.Node.Position
		a.startBound = s.Node.StartBound()
		a.alpha = vertexSweep(s.Node)
	case SegmentSupport:
		a.line, a.dir = segmentOffset(s.Segment, radius)
	}
	return a
}

// vertexSweep returns the angle a body pivots through around n, from the
// normal of the incoming segment to that of the outgoing one.
func vertexSweep(n *Node) float64 {
	return UnitAngle(n.StartBound(), n.EndBound())
}

// segmentOffset returns the path traced by the center of a body of the given
// radius sliding along seg, and the direction of travel. Each end is pushed
// out along the respective bound so that the path stays at exactly radius
// from the segment.
func segmentOffset(seg Segment, radius float64) (Line, Vec2) {
	dir := seg.Direction()
	return Line{
		P0: seg.Start.Position.Translate(boundOffset(seg.StartBound(), dir, radius)),
		P1: seg.End.Position.Translate(boundOffset(seg.EndBound(), dir, radius)),
	}, dir
}

func boundOffset(bound, dir Vec2, radius float64) Vec2 {
	c := math.Abs(bound.Cross(dir))
	if !(c > normEpsilon) {
		c = 1
	}
	return bound.Mul(radius / c)
}
