package turnip

import (
	"log/slog"
	"math"
)

// maxHandoffs caps the number of supports a single [ActiveSupport.Advance]
// may pass through.
const maxHandoffs = 64

// SupportEval is the state of a body's center at some parameter of an
// active support.
type SupportEval struct {
	// Position of the body's center.
	Position Point
	// Direction is the unit tangent of the path in the direction of
	// increasing parameter.
	Direction Vec2
}

// ActiveSupport is a [Support] bound to a body of a fixed radius, together with
// the body's progress along it.
//
// Param is in [0, 1] between calls to Advance. Velocity is the body's speed
// along the path in units per second; positive values move towards the
// support's successor.
type ActiveSupport struct {
	Param    float64
	Velocity float64

	support Support
	radius  float64
	length  float64

	// Vertex supports.
	center     Point
	startBound Vec2
	alpha      float64

	// Segment supports.
	line Line
	dir  Vec2
}

// Support returns the support the body is currently in contact with.
func (a *ActiveSupport) Support() Support { return a.support }

// Radius returns the radius of the body.
func (a *ActiveSupport) Radius() float64 { return a.radius }

// Length returns the length of the path traced by the body's center along
// the current support.
func (a *ActiveSupport) Length() float64 { return a.length }

// Eval returns the position and direction of the body's center at
// parameter t.
func (a *ActiveSupport) Eval(t float64) SupportEval {
	switch a.support.Kind {
	case VertexSupport:
		u := a.startBound.Rotate(-a.alpha * t)
		return SupportEval{
			Position:  a.center.Translate(u.Mul(a.radius)),
			Direction: u.Rhp(),
		}
	case SegmentSupport:
		return SupportEval{
			Position:  a.line.Eval(t),
			Direction: a.dir,
		}
	default:
		return SupportEval{}
	}
}

// Current evaluates the support at the body's current parameter.
func (a *ActiveSupport) Current() SupportEval {
	return a.Eval(a.Param)
}

// Normal returns the unit vector pointing from the supporting surface
// towards the body's center at parameter t.
func (a *ActiveSupport) Normal(t float64) Vec2 {
	switch a.support.Kind {
	case VertexSupport:
		return a.startBound.Rotate(-a.alpha * t)
	default:
		return a.dir.Lhp()
	}
}

// ProjectParam returns the parameter of the point on the support's path
// closest to pos. It is the inverse of Eval for points on the path. The
// result is not clamped; positions behind the start of a vertex sweep map to
// negative parameters.
func (a *ActiveSupport) ProjectParam(pos Point) float64 {
	switch a.support.Kind {
	case VertexSupport:
		if !(a.alpha > normEpsilon) {
			return 0
		}
		d := pos.Sub(a.center).NormalizeOr(a.startBound)
		th := UnitAngle(a.startBound, d)
		if th > a.alpha+0.5*(2*math.Pi-a.alpha) {
			th -= 2 * math.Pi
		}
		return th / a.alpha
	case SegmentSupport:
		return a.line.Project(pos)
	default:
		return 0
	}
}

// Advance moves the body along the boundary for dt seconds at its current
// velocity. When the body runs past either end of the current support it is
// handed off to the neighbouring support, carrying over the distance it
// overshot, as often as needed. Advance returns the number of hand-offs.
func (a *ActiveSupport) Advance(dt float64) int {
	a.Param += a.Velocity * dt / a.length
	n := 0
	for ; n < maxHandoffs && (a.Param < 0 || a.Param > 1); n++ {
		if a.Param < 0 {
			over := -a.Param * a.length
			a.rebind(a.support.Pred())
			a.Param = 1 - over/a.length
		} else {
			over := (a.Param - 1) * a.length
			a.rebind(a.support.Succ())
			a.Param = over / a.length
		}
	}
	if n == maxHandoffs {
		Logger().Warn("hand-off cascade truncated", slog.Int("handoffs", n))
	}
	a.Param = clamp(a.Param, 0, 1)
	if n > 0 {
		Logger().Debug("support hand-off",
			slog.Int("handoffs", n),
			slog.Any("kind", a.support.Kind))
	}
	return n
}

// rebind replaces the current support with s, keeping the body's radius and
// speed.
func (a *ActiveSupport) rebind(s Support) {
	v := a.Velocity
	*a = s.activate(a.radius)
	a.Velocity = v
}
