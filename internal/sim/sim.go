// Package sim runs a body through a world without a front end.
package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkacz/turnip"
	"go.uber.org/zap"
)

// Sample is the state of the body after a tick.
type Sample struct {
	Tick     int
	Time     float64
	Position turnip.Point
	Velocity turnip.Vec2
	Grounded bool
	// Support is the kind of support the body is on, NoSupport while it is
	// airborne.
	Support turnip.SupportKind
}

// Options configures a run.
type Options struct {
	// Start is where the body is spawned.
	Start turnip.Point
	// Ticks is the number of steps to simulate.
	Ticks int
	// DT is the length of a tick in seconds.
	DT float64
	// Input is held for the whole run.
	Input turnip.Input
	// Every reports every nth tick to the visitor. The last tick is always
	// reported. Zero means every tick.
	Every int
}

// ErrStop may be returned by a visitor to end a run early without error.
var ErrStop = errors.New("sim: stop")

// Run spawns a body at opts.Start and steps it opts.Ticks times, calling
// visit with the samples selected by opts.Every. It returns the body in its
// final state.
func Run(ctx context.Context, w *turnip.World, t turnip.Tuning, opts Options, visit func(Sample) error) (*turnip.Body, error) {
	if !(opts.DT > 0) {
		return nil, fmt.Errorf("sim: tick length must be positive, got %g", opts.DT)
	}
	if opts.Ticks < 0 {
		return nil, fmt.Errorf("sim: negative tick count %d", opts.Ticks)
	}
	every := max(opts.Every, 1)
	log := zap.L().Named("sim")

	b := turnip.NewBody(opts.Start, t.Radius)
	grounded := false
	for i := 1; i <= opts.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return b, err
		}
		b.Step(w, opts.Input, t, opts.DT)
		if g := b.Grounded(); g != grounded {
			grounded = g
			log.Debug("contact changed",
				zap.Int("tick", i),
				zap.Bool("grounded", g),
				zap.Float64("x", b.Position.X),
				zap.Float64("y", b.Position.Y))
		}
		if visit == nil || (i%every != 0 && i != opts.Ticks) {
			continue
		}
		if err := visit(sampleOf(b, i, opts.DT)); err != nil {
			if errors.Is(err, ErrStop) {
				return b, nil
			}
			return b, err
		}
	}
	return b, nil
}

func sampleOf(b *turnip.Body, tick int, dt float64) Sample {
	s := Sample{
		Tick:     tick,
		Time:     float64(tick) * dt,
		Position: b.Position,
		Velocity: b.Velocity,
		Grounded: b.Grounded(),
	}
	if a := b.ActiveSupport(); a != nil {
		s.Support = a.Support().Kind
	}
	return s
}
