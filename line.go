package turnip

// Line is a straight path between two positions. Unlike [Segment] it carries
// no topology; the path traced by a body's center along a segment is a Line.
type Line struct {
	P0, P1 Point
}

// Span returns the vector from P0 to P1.
func (l Line) Span() Vec2 { return l.P1.Sub(l.P0) }

func (l Line) Length() float64 { return l.Span().Hypot() }

// Direction returns the unit vector pointing from P0 to P1, or ⟨1, 0⟩ for a
// line of zero length.
func (l Line) Direction() Vec2 { return l.Span().NormalizeOr(Vec(1, 0)) }

// Eval returns the point at parameter t, with P0 at 0 and P1 at 1.
func (l Line) Eval(t float64) Point { return l.P0.Lerp(l.P1, t) }

// Project returns the unclamped parameter of the orthogonal projection of pt
// onto the line.
func (l Line) Project(pt Point) float64 { return ProjectToSegmentParam(l.P0, l.P1, pt) }

// Offset returns the line moved by v.
func (l Line) Offset(v Vec2) Line { return Line{l.P0.Translate(v), l.P1.Translate(v)} }

func (l Line) Transform(aff Affine) Line { return Line{l.P0.Transform(aff), l.P1.Transform(aff)} }
