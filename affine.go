package turnip

import (
	"iter"
	"math"
)

// Affine is a 2D affine transform with coefficients (a, b, c, d, e, f),
// representing the matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Snapshots use it to map world space onto image pixels.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale returns a transform scaling x and y independently.
func Scale(x, y float64) Affine { return Affine{x, 0, 0, y, 0, 0} }

// Translate returns a transform moving points by v.
func Translate(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

// FitRect returns the transform that uniformly scales and translates src so
// that it is centered in dst and as large as possible without exceeding it.
// A degenerate src is only translated to the center of dst.
func FitRect(src, dst Rect) Affine {
	src, dst = src.Abs(), dst.Abs()
	s := math.Inf(1)
	if w := src.Width(); w > 0 {
		s = dst.Width() / w
	}
	if h := src.Height(); h > 0 {
		s = min(s, dst.Height()/h)
	}
	if math.IsInf(s, 1) {
		s = 1
	}
	return Translate(Point{}.Sub(src.Center())).
		ThenScale(s, s).
		ThenTranslate(dst.Center().Sub(Point{}))
}

// Mul returns the transform applying o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale returns aff followed by a scale of (x, y).
func (aff Affine) ThenScale(x, y float64) Affine { return Scale(x, y).Mul(aff) }

// ThenTranslate returns aff followed by a translation by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

func (aff Affine) Determinant() float64 { return aff.N0*aff.N3 - aff.N1*aff.N2 }

// ScaleFactor returns the factor by which a uniformly scaling transform
// scales lengths, such as a body's radius.
func (aff Affine) ScaleFactor() float64 { return math.Sqrt(math.Abs(aff.Determinant())) }

// Transform maps every value of seq through aff.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				return
			}
		}
	}
}
