package turnip

import (
	"slices"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6)).ThenScale(2, 3)), Pt(16, 30), epsilon)
	assertNear(t, p.Transform(Scale(2, 3).ThenTranslate(Vec(-6, 0))), Pt(0, 12), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestFitRect(t *testing.T) {
	const epsilon = 1e-9
	src := Rect{0, 0, 100, 50}
	dst := Rect{0, 0, 400, 400}
	aff := FitRect(src, dst)

	assertNear(t, Pt(0, 0).Transform(aff), Pt(0, 100), epsilon)
	assertNear(t, Pt(100, 50).Transform(aff), Pt(400, 300), epsilon)
	assertNear(t, src.Center().Transform(aff), dst.Center(), epsilon)
	assertClose(t, aff.ScaleFactor(), 4, epsilon)
	if d := aff.Determinant(); !(d > 0) {
		t.Errorf("fitting flips the image: determinant %v", d)
	}

	// Flipped rectangles describe the same extents.
	flipped := FitRect(Rect{100, 50, 0, 0}, Rect{400, 400, 0, 0})
	diff(t, aff, flipped, approx)

	point := FitRect(Rect{5, 5, 5, 5}, dst)
	assertNear(t, Pt(5, 5).Transform(point), Pt(200, 200), epsilon)
	assertClose(t, point.ScaleFactor(), 1, epsilon)
}

func TestTransformSeq(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 2)}
	got := slices.Collect(Transform(slices.Values(pts), Translate(Vec(1, 1))))
	diff(t, []Point{Pt(1, 1), Pt(2, 3)}, got)

	var n int
	for range Transform(slices.Values(pts), Identity) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iteration did not stop after break")
	}
}
