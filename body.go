package turnip

import "log/slog"

// Input is the player's input for one physics step.
type Input struct {
	// Left and Right accelerate a grounded body towards the respective
	// side of the screen. Holding both cancels out.
	Left, Right bool
}

// Body is the circular character that rolls along loop boundaries. While
// airborne it falls freely; once it touches a segment it stays constrained
// to the boundary until gravity or its own speed pulls it off.
type Body struct {
	Position Point
	Velocity Vec2
	Radius   float64

	active *ActiveSupport
}

// NewBody returns an airborne body at rest.
func NewBody(pos Point, radius float64) *Body {
	return &Body{Position: pos, Radius: radius}
}

// Grounded reports whether the body is in contact with a support.
func (b *Body) Grounded() bool { return b.active != nil }

// ActiveSupport returns the support the body is constrained to, or nil while
// it is airborne.
func (b *Body) ActiveSupport() *ActiveSupport { return b.active }

// Attach constrains the body to s, at the point of s nearest to the body.
// Only the component of the body's velocity along the boundary is kept.
func (b *Body) Attach(s Support) {
	a := s.Activate(b.Radius)
	a.Param = clamp(a.ProjectParam(b.Position), 0, 1)
	ev := a.Current()
	a.Velocity = b.Velocity.Dot(ev.Direction)
	b.active = a
	b.Position = ev.Position
	b.Velocity = ev.Direction.Mul(a.Velocity)
	Logger().Debug("body landed",
		slog.Any("support", s.Kind),
		slog.Float64("param", a.Param),
		slog.Float64("speed", a.Velocity))
}

// Detach releases the body from its support, keeping its current velocity.
func (b *Body) Detach() {
	if b.active == nil {
		return
	}
	b.active = nil
	Logger().Debug("body airborne",
		slog.Float64("x", b.Position.X),
		slog.Float64("y", b.Position.Y))
}

// Step advances the body by dt seconds.
func (b *Body) Step(w *World, in Input, t Tuning, dt float64) {
	if !(dt > 0) {
		return
	}
	if b.active == nil {
		b.fall(w, t, dt)
		return
	}
	b.roll(in, t, dt)
}

func (b *Body) fall(w *World, t Tuning, dt float64) {
	b.Velocity = b.Velocity.Add(t.Gravity.Mul(dt))
	b.Position = b.Position.Translate(b.Velocity.Mul(dt))
	if s, ok := w.Encroached(b.Position, b.Radius); ok {
		b.Attach(s)
	}
}

func (b *Body) roll(in Input, t Tuning, dt float64) {
	a := b.active
	ev := a.Current()
	acc := t.Gravity.Dot(ev.Direction)
	if in.Left != in.Right {
		// Increasing the parameter moves the body right exactly when the
		// path points right.
		sign := 1.0
		if ev.Direction.X < 0 {
			sign = -1
		}
		if in.Left {
			sign = -sign
		}
		acc += sign * t.Accel
	}
	a.Velocity += acc * dt
	if t.MaxSpeed > 0 {
		a.Velocity = clamp(a.Velocity, -t.MaxSpeed, t.MaxSpeed)
	}
	a.Advance(dt)

	ev = a.Current()
	b.Position = ev.Position
	b.Velocity = ev.Direction.Mul(a.Velocity)

	// The surface can only push. Leave it when gravity pulls the body
	// away or does not provide the centripetal acceleration needed to
	// stay on a vertex.
	pressing := -t.Gravity.Dot(a.Normal(a.Param))
	var required float64
	if a.Support().Kind == VertexSupport {
		required = sq(a.Velocity) / a.Radius()
	}
	if required > pressing {
		b.Detach()
	}
}
