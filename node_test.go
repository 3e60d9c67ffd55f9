package turnip

import (
	"slices"
	"testing"
)

func TestNewNodeIsSelfLinked(t *testing.T) {
	n := NewNode(Pt(1, 2))
	if n.Pred() != n || n.Succ() != n {
		t.Fatal("fresh node is not self-linked")
	}
	if c := n.Count(); c != 1 {
		t.Errorf("got count %d, want 1", c)
	}
	segs := slices.Collect(n.Segments())
	if len(segs) != 1 || segs[0] != (Segment{n, n}) {
		t.Errorf("got segments %v, want the self-segment", segs)
	}
	if !segs[0].IsDegenerate() {
		t.Error("self-segment is not degenerate")
	}
}

func TestInsertKeepsChainConsistent(t *testing.T) {
	w := NewWorld()
	l := loopOf(w, Pt(0, 0), Pt(10, 0), Pt(10, 10))
	const n = 3

	o := l.Origin()
	inserted := 0
	for i := range 4 {
		o.InsertPred(Pt(float64(-i), -1))
		inserted++
		checkLinks(t, l)
		o.Succ().InsertSucc(Pt(float64(i), 20))
		inserted++
		checkLinks(t, l)
	}

	if c := l.Count(); c != n+inserted {
		t.Errorf("got %d nodes, want %d", c, n+inserted)
	}
	steps := 0
	for m := o.Succ(); m != o; m = m.Succ() {
		steps++
		if steps > n+inserted {
			t.Fatal("successor chain does not return to origin")
		}
	}
	if steps+1 != n+inserted {
		t.Errorf("chain length %d, want %d", steps+1, n+inserted)
	}
}

func TestInsertOrder(t *testing.T) {
	n := NewNode(Pt(0, 0))
	b := n.InsertSucc(Pt(1, 0))
	b.InsertSucc(Pt(2, 0))
	n.InsertPred(Pt(3, 0))

	want := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	diff(t, want, slices.Collect(n.Positions()))
}

func TestInsertAdaptive(t *testing.T) {
	w := NewWorld()
	l := loopOf(w, Pt(0, 0), Pt(10, 0), Pt(5, 10))
	o := l.Origin()

	m := o.InsertAdaptive(Pt(9, 1))
	if o.Succ() != m {
		t.Errorf("node closer to successor was not inserted after origin")
	}
	m = o.InsertAdaptive(Pt(4, 9))
	if o.Pred() != m {
		t.Errorf("node closer to predecessor was not inserted before origin")
	}
	checkLinks(t, l)
	if c := l.Count(); c != 5 {
		t.Errorf("got %d nodes, want 5", c)
	}
}

func TestMoveBy(t *testing.T) {
	w := NewWorld()
	l := loopOf(w, Pt(0, 0), Pt(10, 0), Pt(10, 10))

	nodes := slices.Collect(l.Nodes())
	nodes[1].MoveBy(Vec(1, 2))
	diff(t, Pt(11, 2), nodes[1].Position)

	l.Origin().SuccSegment().MoveBy(Vec(-1, 0))
	diff(t, []Point{Pt(-1, 0), Pt(10, 2), Pt(10, 10)}, slices.Collect(l.Positions()))

	l.MoveBy(Vec(0, 5))
	diff(t, []Point{Pt(-1, 5), Pt(10, 7), Pt(10, 15)}, slices.Collect(l.Positions()))
	checkLinks(t, l)

	single := NewNode(Pt(0, 0))
	single.SuccSegment().MoveBy(Vec(1, 1))
	diff(t, Pt(1, 1), single.Position)
}

func TestIterationStopsEarly(t *testing.T) {
	w := NewWorld()
	l := loopOf(w, Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	var seen int
	for range l.Segments() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("saw %d segments, want 2", seen)
	}
}

func TestSegmentGeometry(t *testing.T) {
	w := NewWorld()
	l := loopOf(w, Pt(0, 0), Pt(10, 0))
	s := l.Origin().SuccSegment()

	assertClose(t, s.Length(), 10, 0)
	diff(t, Pt(5, 0), s.Center())
	diff(t, Vec(0, 1), s.Normal())
	diff(t, Pt(4, 0), s.Project(Pt(4, 7)))
	if s.Succ().Succ() != s {
		t.Error("successor of successor is not the segment itself")
	}
	if s.Succ() != s.Pred() {
		t.Error("two-node loop has distinct predecessor and successor segments")
	}

	m := s.InsertNode(Pt(5, 5))
	if m.Pred() != s.Start || m.Succ() != s.End {
		t.Error("InsertNode did not split the segment")
	}
}

func TestLoopSignedArea(t *testing.T) {
	w := NewWorld()
	if a := platform(w).SignedArea(); a != -5000 {
		t.Errorf("got area %v, want -5000", a)
	}
	r := loopOf(w, Pt(0, 0), Pt(0, 50), Pt(100, 50), Pt(100, 0)).BoundingBox()
	diff(t, Rect{0, 0, 100, 50}, r)
}
