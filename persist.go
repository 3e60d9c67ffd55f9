package turnip

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// ErrCorrupt is returned when a world file contains impossible values.
var ErrCorrupt = errors.New("turnip: corrupt world data")

// The binary world format is a big-endian int32 loop count, followed by each
// loop as an int32 node count and that many float32 (x, y) pairs in loop
// order.

var _ io.WriterTo = (*World)(nil)
var _ io.ReaderFrom = (*World)(nil)

// WriteTo writes the world in the binary world format.
func (w *World) WriteTo(dst io.Writer) (int64, error) {
	cw := &countingWriter{w: dst}
	if len(w.loops) > math.MaxInt32 {
		return 0, fmt.Errorf("turnip: too many loops to encode: %d", len(w.loops))
	}
	if err := binary.Write(cw, binary.BigEndian, int32(len(w.loops))); err != nil {
		return cw.n, fmt.Errorf("turnip: writing loop count: %w", err)
	}
	for i, l := range w.loops {
		c := l.Count()
		if c > math.MaxInt32 {
			return cw.n, fmt.Errorf("turnip: loop %d has too many nodes to encode: %d", i, c)
		}
		if err := binary.Write(cw, binary.BigEndian, int32(c)); err != nil {
			return cw.n, fmt.Errorf("turnip: writing loop %d: %w", i, err)
		}
		for pt := range l.Positions() {
			xy := [2]float32{float32(pt.X), float32(pt.Y)}
			if err := binary.Write(cw, binary.BigEndian, xy); err != nil {
				return cw.n, fmt.Errorf("turnip: writing loop %d: %w", i, err)
			}
		}
	}
	return cw.n, nil
}

// ReadFrom replaces the world's loops with those read from src in the binary
// world format.
//
// A loop header with zero nodes ends the read; it and all following loops
// are ignored and no error is returned. If src ends before all announced
// data has been read, the loops read completely so far are kept and the
// returned error wraps [io.ErrUnexpectedEOF].
func (w *World) ReadFrom(src io.Reader) (int64, error) {
	w.Clear()
	cr := &countingReader{r: src}

	var loopCount int32
	if err := binary.Read(cr, binary.BigEndian, &loopCount); err != nil {
		return cr.n, fmt.Errorf("turnip: reading loop count: %w", noEOF(err))
	}
	if loopCount < 0 {
		return cr.n, fmt.Errorf("%w: negative loop count %d", ErrCorrupt, loopCount)
	}

	var pts []Point
	for i := range int(loopCount) {
		var nodeCount int32
		if err := binary.Read(cr, binary.BigEndian, &nodeCount); err != nil {
			return cr.n, fmt.Errorf("turnip: reading loop %d: %w", i, noEOF(err))
		}
		if nodeCount == 0 {
			Logger().Warn("empty loop in world data, ignoring the remaining loops",
				slog.Int("loop", i),
				slog.Int("ignored", int(loopCount)-i))
			return cr.n, nil
		}
		if nodeCount < 0 {
			return cr.n, fmt.Errorf("%w: loop %d has negative node count %d", ErrCorrupt, i, nodeCount)
		}

		pts = pts[:0]
		for range nodeCount {
			var xy [2]float32
			if err := binary.Read(cr, binary.BigEndian, &xy); err != nil {
				return cr.n, fmt.Errorf("turnip: reading loop %d: %w", i, noEOF(err))
			}
			pts = append(pts, Pt(float64(xy[0]), float64(xy[1])))
		}

		n := w.AddLoop(pts[0]).Origin()
		for _, pt := range pts[1:] {
			n = n.InsertSucc(pt)
		}
	}
	return cr.n, nil
}

func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(b []byte) (int, error) {
	n, err := cr.r.Read(b)
	cr.n += int64(n)
	return n, err
}
