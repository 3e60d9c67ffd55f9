package turnip

// Segment is the edge between a node and its successor. Segments are not
// stored; they are constructed on demand and compare equal when they join
// the same pair of nodes.
type Segment struct {
	Start *Node
	End   *Node
}

var _ Item = Segment{}

// Pred returns the segment ending at s.Start.
func (s Segment) Pred() Segment { return Segment{Start: s.Start.pred, End: s.Start} }

// Succ returns the segment starting at s.End.
func (s Segment) Succ() Segment { return Segment{Start: s.End, End: s.End.succ} }

// Span returns the vector from the segment's start to its end.
func (s Segment) Span() Vec2 { return s.End.Position.Sub(s.Start.Position) }

// Direction returns the unit vector along the segment. A zero-length segment
// takes the direction of the next segment with a length, or ⟨1, 0⟩ if the
// loop has none.
func (s Segment) Direction() Vec2 {
	if !s.IsDegenerate() {
		return s.Span().Normalize()
	}
	if t := nextSolid(s); !t.IsDegenerate() {
		return t.Span().Normalize()
	}
	return Vec(1, 0)
}

// Normal returns the unit normal on the side of the segment that bodies rest
// against.
func (s Segment) Normal() Vec2 { return s.Direction().Lhp() }

func (s Segment) Length() float64 { return s.Span().Hypot() }

func (s Segment) Center() Point { return s.Start.Position.Midpoint(s.End.Position) }

// Line returns the segment's geometry.
func (s Segment) Line() Line { return Line{P0: s.Start.Position, P1: s.End.Position} }

// IsDegenerate reports whether the segment has no usable direction, which is
// the case for the self-segment of a single-node loop and for coincident
// nodes.
func (s Segment) IsDegenerate() bool {
	return s.Start == s.End || coincident(s.Start.Position, s.End.Position)
}

// nextSolid returns s, or the first segment after it that is not
// degenerate. It returns s if the whole loop is degenerate.
func nextSolid(s Segment) Segment {
	for t := s; ; t = t.Succ() {
		if !t.IsDegenerate() {
			return t
		}
		if t.End == s.Start {
			return s
		}
	}
}

// prevSolid is the counterpart of nextSolid walking backwards.
func prevSolid(s Segment) Segment {
	for t := s; ; t = t.Pred() {
		if !t.IsDegenerate() {
			return t
		}
		if t.Start == s.End {
			return s
		}
	}
}

// DistanceSquared returns the squared distance between pt and the segment.
func (s Segment) DistanceSquared(pt Point) float64 {
	return PointToSegmentDistSq(s.Start.Position, s.End.Position, pt)
}

// Project returns the orthogonal projection of pt onto the line through the
// segment. It is not clamped to the segment.
func (s Segment) Project(pt Point) Point {
	return s.Eval(ProjectToSegmentParam(s.Start.Position, s.End.Position, pt))
}

func (s Segment) Eval(t float64) Point {
	return s.Start.Position.Lerp(s.End.Position, t)
}

// InsertNode splits the segment by inserting a new node at pos after its
// start.
func (s Segment) InsertNode(pos Point) *Node {
	return s.Start.InsertSucc(pos)
}

// MoveBy translates both endpoints. For the self-segment of a single-node
// loop the node is moved once.
func (s Segment) MoveBy(v Vec2) {
	s.Start.MoveBy(v)
	if s.End != s.Start {
		s.End.MoveBy(v)
	}
}

// StartBound returns the unit vector delimiting the segment's contact region
// at its start. At a reflex joint it is the bisector of the joint; otherwise
// it is the segment's normal.
func (s Segment) StartBound() Vec2 {
	u := s.Start.ToPred()
	v := s.Start.ToSucc()
	if u.Cross(v) < 0 {
		return Bisector(v, u).NormalizeOr(s.Normal())
	}
	return v.Lhp().NormalizeOr(s.Normal())
}

// EndBound is the counterpart of [Segment.StartBound] at the segment's end.
func (s Segment) EndBound() Vec2 {
	u := s.End.ToPred()
	v := s.End.ToSucc()
	if u.Cross(v) < 0 {
		return Bisector(v, u).NormalizeOr(s.Normal())
	}
	return u.Rhp().NormalizeOr(s.Normal())
}

// InStartBound reports whether pt lies on the segment's side of its start
// bound.
func (s Segment) InStartBound(pt Point) bool {
	return s.StartBound().Cross(pt.Sub(s.Start.Position)) <= 0
}

// InEndBound reports whether pt lies on the segment's side of its end bound.
func (s Segment) InEndBound(pt Point) bool {
	return s.EndBound().Cross(pt.Sub(s.End.Position)) > 0
}

// InBounds reports whether pt lies between the segment's two bounds.
func (s Segment) InBounds(pt Point) bool {
	return s.InStartBound(pt) && s.InEndBound(pt)
}

// Support returns the segment support of s.
func (s Segment) Support() Support {
	return Support{Kind: SegmentSupport, Segment: s}
}

// transfersToStart reports whether a body leaving the segment backwards
// continues around the start node, rather than directly onto the previous
// segment. That is the case at convex joints and at the tip of a fold,
// where the previous segment doubles back along this one.
func (s Segment) transfersToStart() bool {
	tp := s.Start.ToPred()
	sp := s.Span()
	c := tp.Cross(sp)
	return c > 0 || (c == 0 && tp.Dot(sp) > 0)
}

// transfersToEnd is the counterpart of transfersToStart at the end node.
func (s Segment) transfersToEnd() bool {
	ts := s.End.ToSucc()
	sp := s.Span()
	c := ts.Cross(sp)
	return c > 0 || (c == 0 && ts.Dot(sp) < 0)
}
