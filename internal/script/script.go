// Package script drives an editor session from a line-oriented text script,
// so that edits can be replayed without a front end.
//
// Each line holds one command followed by its arguments, separated by
// spaces. Empty lines and lines starting with # are ignored.
//
//	hover X Y          print what is under the cursor at (X, Y)
//	click X Y          press at (X, Y)
//	drag X Y           move the cursor to (X, Y) while pressed
//	release            release the press
//	extend X Y         add a node next to the selected node
//	mode               toggle between edit and play mode
//	tick N [left|right] step play mode N times, holding a direction
//	body               print the state of the body
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mkacz/turnip"
)

// Error is a failure on a particular script line.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// ErrUnknownCommand is wrapped by errors for lines with an unknown command.
var ErrUnknownCommand = errors.New("unknown command")

// Interpreter runs scripts against an editor.
type Interpreter struct {
	Editor *turnip.Editor
	// Out receives the output of hover, mode and body commands.
	Out io.Writer
	// DT is the length of a tick in seconds.
	DT float64
}

// Run executes the script read from r. It stops at the first failing line.
func (in *Interpreter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := in.exec(fields[0], fields[1:]); err != nil {
			return &Error{Line: line, Err: err}
		}
	}
	return sc.Err()
}

func (in *Interpreter) exec(cmd string, args []string) error {
	e := in.Editor
	switch cmd {
	case "hover":
		pt, err := point(args)
		if err != nil {
			return err
		}
		e.UpdateHover(pt)
		return in.printf("%s\n", in.describeHover())
	case "click":
		pt, err := point(args)
		if err != nil {
			return err
		}
		e.Press(pt)
	case "drag":
		pt, err := point(args)
		if err != nil {
			return err
		}
		e.Drag(pt)
	case "release":
		if err := arity(args, 0); err != nil {
			return err
		}
		e.Release()
	case "extend":
		pt, err := point(args)
		if err != nil {
			return err
		}
		if e.Extend(pt) == nil {
			return errors.New("extend: no node selected")
		}
	case "mode":
		if err := arity(args, 0); err != nil {
			return err
		}
		return in.printf("%s\n", e.ToggleMode())
	case "tick":
		return in.tick(args)
	case "body":
		if err := arity(args, 0); err != nil {
			return err
		}
		return in.printf("%s\n", describeBody(e.Body))
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
	return nil
}

func (in *Interpreter) tick(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("tick takes a count and an optional direction, got %d arguments", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid tick count %q", args[0])
	}
	var input turnip.Input
	if len(args) == 2 {
		switch args[1] {
		case "left":
			input.Left = true
		case "right":
			input.Right = true
		default:
			return fmt.Errorf("invalid direction %q", args[1])
		}
	}
	for range n {
		in.Editor.Tick(in.DT, input)
	}
	return nil
}

func (in *Interpreter) describeHover() string {
	e := in.Editor
	switch h := e.Hover().(type) {
	case *turnip.Node:
		return "node " + h.Position.String()
	case turnip.Segment:
		return fmt.Sprintf("segment %s %s", h.Start.Position, h.End.Position)
	case *turnip.Loop:
		i := 0
		for l := range e.World.Loops() {
			if l == h {
				break
			}
			i++
		}
		return fmt.Sprintf("loop %d", i)
	}
	if s, ok := e.InsertCandidate(); ok {
		return fmt.Sprintf("insert %s %s", s.Start.Position, s.End.Position)
	}
	return "nothing"
}

func describeBody(b *turnip.Body) string {
	if b == nil {
		return "no body"
	}
	state := "airborne"
	if a := b.ActiveSupport(); a != nil {
		state = a.Support().Kind.String()
	}
	return fmt.Sprintf("body (%.3f, %.3f) %s", b.Position.X, b.Position.Y, state)
}

func (in *Interpreter) printf(format string, args ...any) error {
	if in.Out == nil {
		return nil
	}
	_, err := fmt.Fprintf(in.Out, format, args...)
	return err
}

func arity(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	return nil
}

func point(args []string) (turnip.Point, error) {
	if err := arity(args, 2); err != nil {
		return turnip.Point{}, err
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return turnip.Point{}, fmt.Errorf("invalid x coordinate %q", args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return turnip.Point{}, fmt.Errorf("invalid y coordinate %q", args[1])
	}
	return turnip.Pt(x, y), nil
}
