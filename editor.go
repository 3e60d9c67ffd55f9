package turnip

import "log/slog"

// Mode is the editor's interaction mode.
type Mode uint8

const (
	// EditMode edits loops.
	EditMode Mode = iota
	// PlayMode spawns and steps the body.
	PlayMode
)

func (m Mode) String() string {
	switch m {
	case EditMode:
		return "edit"
	case PlayMode:
		return "play"
	default:
		return "unknown"
	}
}

// Editor is the state of an interactive editing session over a world. The
// front end translates its input events into calls on the editor and reads
// back the hover, insert and selection state to draw highlights.
type Editor struct {
	World  *World
	Tuning Tuning
	Mode   Mode
	// Body is the spawned body, if any.
	Body *Body

	hover     Item
	insert    Segment
	hasInsert bool
	selection Item
	dragging  bool
	anchor    Point
}

// NewEditor returns an editor in edit mode.
func NewEditor(w *World, t Tuning) *Editor {
	return &Editor{World: w, Tuning: t}
}

// Hover returns what is under the cursor: a *Node, a Segment or a *Loop. It
// is nil when nothing is.
func (e *Editor) Hover() Item { return e.hover }

// InsertCandidate returns the segment a click would insert a node into.
func (e *Editor) InsertCandidate() (Segment, bool) { return e.insert, e.hasInsert }

// Selection returns the item last clicked, or nil.
func (e *Editor) Selection() Item { return e.selection }

// Dragging reports whether the selection follows the cursor.
func (e *Editor) Dragging() bool { return e.dragging }

// UpdateHover updates the hover and insert state for a cursor at pos. The
// candidates are tried in order: a node within the node hover radius, the
// nearest segment within the segment hover radius, a loop containing pos and
// finally, as an insert candidate only, the nearest segment within the
// insert radius.
func (e *Editor) UpdateHover(pos Point) {
	e.hover = nil
	e.insert, e.hasInsert = Segment{}, false

	if n := e.World.PickNode(pos, e.Tuning.NodeHoverRadius); n != nil {
		e.hover = n
		return
	}
	s, d, ok := e.World.NearestSegment(pos)
	if ok && d <= sq(e.Tuning.SegmentHoverRadius) {
		e.hover = s
		return
	}
	if l := e.World.PickLoop(pos); l != nil {
		e.hover = l
		return
	}
	if ok && d <= sq(e.Tuning.SegmentInsertRadius) {
		e.insert, e.hasInsert = s, true
	}
}

// Press handles a click at pos and returns the resulting selection.
//
// In edit mode, a click with an insert candidate inserts a new node there,
// a click on a hovered item selects it and a click on empty space starts a
// new loop. Either way the selection can then be dragged. In play mode, a
// click spawns the body at pos, replacing any previous one.
func (e *Editor) Press(pos Point) Item {
	if e.Mode == PlayMode {
		e.Body = NewBody(pos, e.Tuning.Radius)
		e.selection = nil
		return nil
	}

	e.UpdateHover(pos)
	switch {
	case e.hasInsert:
		e.selection = e.insert.InsertNode(pos)
		Logger().Debug("inserted node", slog.Float64("x", pos.X), slog.Float64("y", pos.Y))
	case e.hover != nil:
		e.selection = e.hover
	default:
		e.selection = e.World.AddLoop(pos).Origin()
		Logger().Debug("added loop", slog.Float64("x", pos.X), slog.Float64("y", pos.Y))
	}
	e.dragging = true
	e.anchor = pos
	e.UpdateHover(pos)
	return e.selection
}

// Extend inserts a node at pos next to the selected node, on whichever side
// pos is closer to, and selects it. It returns nil if the selection is not a
// node.
func (e *Editor) Extend(pos Point) *Node {
	n, ok := e.selection.(*Node)
	if !ok || e.Mode != EditMode {
		return nil
	}
	m := n.InsertAdaptive(pos)
	e.selection = m
	return m
}

// Drag moves the selection along with a cursor now at pos.
func (e *Editor) Drag(pos Point) {
	if e.dragging && e.selection != nil {
		e.selection.MoveBy(pos.Sub(e.anchor))
	}
	e.anchor = pos
}

// Release ends a drag.
func (e *Editor) Release() {
	e.dragging = false
}

// ToggleMode switches between edit and play mode and returns the new mode.
// Leaving play mode removes the body.
func (e *Editor) ToggleMode() Mode {
	e.dragging = false
	switch e.Mode {
	case EditMode:
		e.Mode = PlayMode
		e.hover, e.hasInsert = nil, false
	default:
		e.Mode = EditMode
		e.Body = nil
	}
	return e.Mode
}

// Tick advances the session by dt seconds. Only play mode has anything to
// simulate.
func (e *Editor) Tick(dt float64, in Input) {
	if e.Mode != PlayMode || e.Body == nil {
		return
	}
	e.Body.Step(e.World, in, e.Tuning, dt)
}
