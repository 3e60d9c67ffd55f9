package turnip

import (
	"fmt"
	"math"
)

// normEpsilon is the length below which a vector is treated as having no
// direction.
const normEpsilon = 1e-12

// Vec2 is a displacement in the plane: the difference of two [Point] values,
// a direction of travel or a surface normal.
type Vec2 struct {
	X, Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// VecFromAngle returns the unit vector at angle th, in radians, from ⟨1, 0⟩
// towards ⟨0, 1⟩.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Mul scales v by f.
func (v Vec2) Mul(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Negate returns ⟨-x, -y⟩.
func (v Vec2) Negate() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the determinant of v and o. It is positive when o lies
// counter-clockwise of v in a y-up space, which is clockwise on screen.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Lerp interpolates linearly between v at t = 0 and o at t = 1.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return v.Add(o.Sub(v).Mul(t)) }

// Normalize returns the unit vector pointing along v, or the zero vector if
// v has no direction. It never returns NaN.
func (v Vec2) Normalize() Vec2 { return v.NormalizeOr(Vec2{}) }

// NormalizeOr is like [Vec2.Normalize] but returns fallback when v is
// shorter than normEpsilon.
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	h := v.Hypot()
	if !(h > normEpsilon) {
		return fallback
	}
	return v.Mul(1 / h)
}

// Rotate returns v rotated by th radians, turning ⟨1, 0⟩ towards ⟨0, 1⟩ for
// positive angles.
func (v Vec2) Rotate(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lhp returns the left-hand perpendicular ⟨-y, x⟩, v rotated by a quarter
// turn in the positive direction. Bodies rest on the Lhp side of a segment.
func (v Vec2) Lhp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }

// Rhp returns ⟨y, -x⟩, the opposite of [Vec2.Lhp].
func (v Vec2) Rhp() Vec2 { return Vec2{X: v.Y, Y: -v.X} }

func (v Vec2) IsInf() bool { return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) }
func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }
