package turnip

import (
	"fmt"
	"math"
)

// Point is a position in the plane. The editor works in a y-down space, with
// gravity pointing towards positive y.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) String() string { return fmt.Sprintf("(%g, %g)", pt.X, pt.Y) }

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point { return Point{X: pt.X + v.X, Y: pt.Y + v.Y} }

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y} }

// Transform maps pt through aff.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Lerp interpolates linearly between pt at t = 0 and o at t = 1.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (pt.X + o.X), Y: 0.5 * (pt.Y + o.Y)}
}

func (pt Point) Distance(o Point) float64 { return math.Hypot(pt.X-o.X, pt.Y-o.Y) }

func (pt Point) DistanceSquared(o Point) float64 { return pt.Sub(o).Hypot2() }
