// Package turnip implements the geometry engine of a 2D level editor in which
// a circular body rolls along hand-drawn polygonal loops.
//
// # Loops, nodes and segments
//
// Level geometry consists of loops. A [Loop] is a closed chain of [Node]
// values, each linked to its predecessor and successor. New nodes are spliced
// into an existing chain with [Node.InsertPred], [Node.InsertSucc] and
// [Node.InsertAdaptive]. A [Segment] is the edge between a node and its
// successor; segments are not stored but constructed on demand.
//
// Loops, nodes and worlds expose their contents as iterators over the live
// chain, such as [Loop.Nodes], [Loop.Segments] and [World.Segments]. Use
// [slices.Collect] to take a snapshot.
//
// # Supports
//
// A [Support] is a part of a loop's boundary that a body can be in contact
// with: a vertex, around which the body pivots, or a segment, along which it
// slides. Activating a support for a radius yields an [ActiveSupport], which
// maps a parameter in [0, 1] to the position of the body's center.
// [ActiveSupport.Advance] moves the body along the boundary and hands it off
// to neighbouring supports as it runs past their ends, so that the body
// travels the path of a circle rolling around the loop.
//
// Which side of a loop a body rests against is determined by the loop's
// orientation: bodies stay on the left-hand side of each segment's direction
// in a y-down space; see [Segment.Normal].
//
// # Editing
//
// [World] holds the loops and answers picking queries. [Editor] layers hover,
// selection and node insertion on top of that for interactive front ends,
// and steps the [Body] in play mode.
//
// # Persistence
//
// Worlds implement [io.WriterTo] and [io.ReaderFrom] for a compact binary
// format; see [World.ReadFrom].
package turnip
