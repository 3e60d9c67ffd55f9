package turnip

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if got.Distance(want) > epsilon {
		t.Errorf("got %v, want %v (±%g)", got, want, epsilon)
	}
}

func assertClose(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon || math.IsNaN(got) {
		t.Errorf("got %v, want %v (±%g)", got, want, epsilon)
	}
}

// loopOf builds a loop through pts in order.
func loopOf(w *World, pts ...Point) *Loop {
	l := w.AddLoop(pts[0])
	n := l.Origin()
	for _, pt := range pts[1:] {
		n = n.InsertSucc(pt)
	}
	return l
}

// platform returns a 100×50 box with its top edge at y=0, oriented so that
// bodies rest on its outside.
func platform(w *World) *Loop {
	return loopOf(w, Pt(100, 0), Pt(0, 0), Pt(0, 50), Pt(100, 50))
}

func checkLinks(t *testing.T, l *Loop) {
	t.Helper()
	for n := range l.Nodes() {
		if n.Pred().Succ() != n {
			t.Errorf("pred of %v does not link back", n.Position)
		}
		if n.Succ().Pred() != n {
			t.Errorf("succ of %v does not link back", n.Position)
		}
	}
}
