// Package interchange converts worlds to and from a JSON document meant for
// other tools.
package interchange

import (
	"errors"
	"fmt"
	"io"

	json "github.com/json-iterator/go"
	"github.com/mkacz/turnip"
)

// FormatVersion is the version written to and accepted in documents.
const FormatVersion = 1

// Document is the JSON form of a world.
type Document struct {
	Version int    `json:"version"`
	Loops   []Loop `json:"loops"`
}

// Loop lists a loop's node positions in order, starting at its origin.
type Loop struct {
	Nodes []Node `json:"nodes"`
}

// Node is a node position.
type Node struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ErrInvalid is returned for documents that do not describe a world.
var ErrInvalid = errors.New("interchange: invalid document")

// FromWorld returns the document describing w.
func FromWorld(w *turnip.World) Document {
	doc := Document{Version: FormatVersion, Loops: make([]Loop, 0, w.Len())}
	for l := range w.Loops() {
		var jl Loop
		for pt := range l.Positions() {
			jl.Nodes = append(jl.Nodes, Node{X: pt.X, Y: pt.Y})
		}
		doc.Loops = append(doc.Loops, jl)
	}
	return doc
}

// World builds the world described by doc.
func (doc Document) World() (*turnip.World, error) {
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalid, doc.Version)
	}
	w := turnip.NewWorld()
	for i, jl := range doc.Loops {
		if len(jl.Nodes) == 0 {
			return nil, fmt.Errorf("%w: loop %d has no nodes", ErrInvalid, i)
		}
		n := w.AddLoop(turnip.Pt(jl.Nodes[0].X, jl.Nodes[0].Y)).Origin()
		for _, jn := range jl.Nodes[1:] {
			n = n.InsertSucc(turnip.Pt(jn.X, jn.Y))
		}
	}
	return w, nil
}

// Encode writes w to out as indented JSON.
func Encode(out io.Writer, w *turnip.World) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromWorld(w)); err != nil {
		return fmt.Errorf("interchange: encoding world: %w", err)
	}
	return nil
}

// Decode reads a world from a JSON document.
func Decode(in io.Reader) (*turnip.World, error) {
	var doc Document
	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		return nil, fmt.Errorf("interchange: decoding world: %w", err)
	}
	return doc.World()
}
