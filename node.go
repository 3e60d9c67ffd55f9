package turnip

import "iter"

// Node is a vertex of a loop. The nodes of a loop form a circular doubly
// linked list: for every node n, n.Pred().Succ() == n and n.Succ().Pred() == n.
//
// Nodes are only ever created by [NewNode], which yields a self-linked
// single-node loop, and by splicing new nodes into an existing chain.
type Node struct {
	// Position is the node's location. It may be changed freely; moving a
	// node never affects topology.
	Position Point

	pred *Node
	succ *Node
}

var _ Item = (*Node)(nil)

// NewNode returns a node at pos that forms a loop of its own.
func NewNode(pos Point) *Node {
	n := &Node{Position: pos}
	n.pred = n
	n.succ = n
	return n
}

// Pred returns the node preceding n in its loop.
func (n *Node) Pred() *Node { return n.pred }

// Succ returns the node following n in its loop.
func (n *Node) Succ() *Node { return n.succ }

// PredSegment returns the segment ending at n.
func (n *Node) PredSegment() Segment { return Segment{Start: n.pred, End: n} }

// SuccSegment returns the segment starting at n.
func (n *Node) SuccSegment() Segment { return Segment{Start: n, End: n.succ} }

// ToPred returns the vector pointing from n to its predecessor. Neighbours
// at the same position as n are skipped, so that coincident nodes form a
// single joint.
func (n *Node) ToPred() Vec2 { return n.distinctPred().Position.Sub(n.Position) }

// ToSucc is the counterpart of [Node.ToPred] towards the successor.
func (n *Node) ToSucc() Vec2 { return n.distinctSucc().Position.Sub(n.Position) }

// distinctPred returns the nearest predecessor of n at a different position,
// or n.pred if every node of the loop coincides with n.
func (n *Node) distinctPred() *Node {
	for m := n.pred; m != n; m = m.pred {
		if !coincident(m.Position, n.Position) {
			return m
		}
	}
	return n.pred
}

func (n *Node) distinctSucc() *Node {
	for m := n.succ; m != n; m = m.succ {
		if !coincident(m.Position, n.Position) {
			return m
		}
	}
	return n.succ
}

func coincident(p, q Point) bool { return !(p.Sub(q).Hypot() > normEpsilon) }

// StartBound returns the outward normal of the segment ending at n. It
// delimits the side of the node's contact wedge facing the predecessor.
func (n *Node) StartBound() Vec2 {
	return n.ToPred().Rhp().NormalizeOr(Vec(0, -1))
}

// EndBound returns the outward normal of the segment starting at n.
func (n *Node) EndBound() Vec2 {
	return n.ToSucc().Lhp().NormalizeOr(Vec(0, -1))
}

// IsReflex reports whether the joint at n bends into the free side, so that
// a body sliding past it moves straight from one segment onto the next.
func (n *Node) IsReflex() bool {
	return n.ToPred().Cross(n.ToSucc()) < 0
}

// InsertPred splices a new node at pos between n and its predecessor and
// returns it.
func (n *Node) InsertPred(pos Point) *Node {
	m := &Node{Position: pos, pred: n.pred, succ: n}
	n.pred.succ = m
	n.pred = m
	return m
}

// InsertSucc splices a new node at pos between n and its successor and
// returns it.
func (n *Node) InsertSucc(pos Point) *Node {
	m := &Node{Position: pos, pred: n, succ: n.succ}
	n.succ.pred = m
	n.succ = m
	return m
}

// InsertAdaptive inserts a new node at pos next to n, on the side of the
// neighbour that pos is closer to.
func (n *Node) InsertAdaptive(pos Point) *Node {
	if pos.DistanceSquared(n.pred.Position) < pos.DistanceSquared(n.succ.Position) {
		return n.InsertPred(pos)
	}
	return n.InsertSucc(pos)
}

// MoveBy translates the node.
func (n *Node) MoveBy(v Vec2) {
	n.Position = n.Position.Translate(v)
}

// DistanceSquared returns the squared distance between the node and pt.
func (n *Node) DistanceSquared(pt Point) float64 {
	return n.Position.DistanceSquared(pt)
}

// Nodes returns the nodes of n's loop, starting at n and following the
// successor links. The sequence reflects the live chain.
func (n *Node) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		m := n
		for {
			if !yield(m) {
				return
			}
			m = m.succ
			if m == n {
				return
			}
		}
	}
}

// Segments returns the segments of n's loop, starting with the segment
// leaving n.
func (n *Node) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for m := range n.Nodes() {
			if !yield(m.SuccSegment()) {
				return
			}
		}
	}
}

// Positions returns the positions of the nodes of n's loop, starting at n.
func (n *Node) Positions() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for m := range n.Nodes() {
			if !yield(m.Position) {
				return
			}
		}
	}
}

// Count returns the number of nodes in n's loop.
func (n *Node) Count() int {
	c := 0
	for range n.Nodes() {
		c++
	}
	return c
}

// Support returns the vertex support of n.
func (n *Node) Support() Support {
	return Support{Kind: VertexSupport, Node: n}
}
