package turnip

import (
	"iter"
	"math"
)

// Bisector returns an unnormalized vector bisecting the angle between u and
// v. The inputs are normalized first.
//
// The construction depends on the angle between u and v so that it stays
// numerically stable close to 0° and 180°:
//
//   - for angles of at least 90° it uses the difference of the
//     perpendiculars,
//   - for sharper angles in clockwise order it uses the negated sum,
//   - otherwise it uses the plain sum.
func Bisector(u, v Vec2) Vec2 {
	return bisectorOfNormalized(u.NormalizeOr(Vec(1, 0)), v.NormalizeOr(Vec(1, 0)))
}

func bisectorOfNormalized(u, v Vec2) Vec2 {
	if u.Dot(v) <= 0 {
		return Vec2{X: v.Y - u.Y, Y: u.X - v.X}
	}
	if u.Cross(v) <= 0 {
		return Vec2{X: -u.X - v.X, Y: -u.Y - v.Y}
	}
	return Vec2{X: u.X + v.X, Y: u.Y + v.Y}
}

// UnitAngle returns the angle θ ∈ [0, 2π) such that u.Rotate(-θ) points in
// the direction of v.
func UnitAngle(u, v Vec2) float64 {
	th := -math.Atan2(u.Cross(v), u.Dot(v))
	if th < 0 {
		th += 2 * math.Pi
	}
	if th >= 2*math.Pi {
		th = 0
	}
	return th
}

// PointToSegmentDistSq returns the squared distance between p and the closed
// segment [a, b].
func PointToSegmentDistSq(a, b, p Point) float64 {
	ab := b.Sub(a)
	pa := a.Sub(p)
	pb := b.Sub(p)
	if ab.Dot(pa)*ab.Dot(pb) < 0 {
		return sq(pa.Cross(pb)) / ab.Hypot2()
	}
	return min(pa.Hypot2(), pb.Hypot2())
}

// ProjectToSegmentParam returns the parameter of the orthogonal projection
// of p onto the line through a and b, with a at 0 and b at 1. The result is
// not clamped. A zero-length segment projects everything to 0.
func ProjectToSegmentParam(a, b, p Point) float64 {
	u := b.Sub(a)
	l2 := u.Hypot2()
	if l2 == 0 {
		return 0
	}
	return u.Dot(p.Sub(a)) / l2
}

// PointInPolygon reports whether p lies inside the polygon with the given
// vertices, using the even-odd rule. The polygon is implicitly closed.
// Horizontal edges do not count as crossings.
func PointInPolygon(poly iter.Seq[Point], p Point) bool {
	var (
		inside      bool
		first, prev Point
		seen        bool
	)
	edge := func(start, end Point) {
		if (p.Y-start.Y)*(p.Y-end.Y) >= 0 {
			return
		}
		t := (p.Y - start.Y) / (end.Y - start.Y)
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return
		}
		if p.X <= start.X+t*(end.X-start.X) {
			inside = !inside
		}
	}
	for pt := range poly {
		if !seen {
			first, prev, seen = pt, pt, true
			continue
		}
		edge(prev, pt)
		prev = pt
	}
	if !seen {
		return false
	}
	edge(prev, first)
	return inside
}

func sq(x float64) float64 { return x * x }

func clamp(x, lo, hi float64) float64 {
	if x <= lo {
		return lo
	}
	if x >= hi {
		return hi
	}
	return x
}
