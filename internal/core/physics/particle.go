package physics

import (
	"math"

	"go.uber.org/zap/zapcore"
)

// Particle is a point mass: position, velocity and acceleration in world
// space, a damping factor and an inverse mass. It holds no discrete state
// and no external resources; lifetime is caller-managed.
//
// Mass is stored as its reciprocal. Integration multiplies force by inverse
// mass instead of dividing by mass, and an inverse mass of zero makes the
// particle immovable under applied force without any special casing.
type Particle struct {
	// Position is the particle's location in world space.
	Position Vector3

	// Velocity is the particle's linear velocity in world space.
	Velocity Vector3

	// Acceleration is the constant acceleration applied every step,
	// typically gravity. Force-derived acceleration is added on top.
	Acceleration Vector3

	// Damping is the per-unit-time multiplicative velocity decay, expected
	// within (0, 1]. 1 means no damping. It removes energy injected by
	// numerical integration error.
	Damping float64

	// forceAccum collects forces applied since the last integration step.
	// It is zeroed at the end of every Integrate call.
	forceAccum Vector3

	// inverseMass is 1/mass, or 0 for an immovable particle.
	inverseMass float64
}

// NewParticle creates a particle with the given kinematic state. Inverse
// mass defaults to 0 (immovable) until set through SetMass or
// SetInverseMass.
func NewParticle(position, velocity, acceleration Vector3, damping float64) *Particle {
	return &Particle{
		Position:     position,
		Velocity:     velocity,
		Acceleration: acceleration,
		Damping:      damping,
	}
}

// InverseMass returns the stored inverse mass. 0 means immovable.
func (p *Particle) InverseMass() float64 {
	return p.inverseMass
}

// SetInverseMass stores inv verbatim. No validation: physical sanity of
// negative or non-finite values is the caller's responsibility.
func (p *Particle) SetInverseMass(inv float64) {
	p.inverseMass = inv
}

// Mass returns 1/inverseMass. An immovable particle reports
// math.MaxFloat64 as the infinite-mass sentinel, never Inf or NaN.
func (p *Particle) Mass() float64 {
	if p.inverseMass == 0 {
		return math.MaxFloat64
	}
	return 1 / p.inverseMass
}

// SetMass stores the reciprocal of mass. Zero mass is not invertible and
// panics. Small masses make particles unstable under simulation.
func (p *Particle) SetMass(mass float64) {
	if mass == 0 {
		panic("physics: particle mass must be non-zero")
	}
	p.inverseMass = 1 / mass
}

// AddForce accumulates a force to be applied during the next integration
// step. Forces are converted to acceleration through the inverse mass, so
// an immovable particle ignores them.
func (p *Particle) AddForce(force Vector3) {
	p.forceAccum.AddInPlace(force)
}

// ClearAccumulator discards all accumulated force. Integrate does this
// automatically after each step.
func (p *Particle) ClearAccumulator() {
	p.forceAccum = Vector3{}
}

// Integrate advances the particle by duration seconds using semi-implicit
// Euler: position moves under the velocity from before this step, then
// velocity picks up this step's acceleration. Damping is applied as
// damping^duration so decay stays consistent across variable timesteps.
//
// duration must be positive; a zero or negative timestep is a caller bug
// and panics rather than being silently ignored.
func (p *Particle) Integrate(duration float64) {
	if duration <= 0 {
		panic("physics: integration duration must be positive")
	}

	p.Position.AddScaledVector(p.Velocity, duration)

	resultingAcc := p.Acceleration
	resultingAcc.AddScaledVector(p.forceAccum, p.inverseMass)

	p.Velocity.AddScaledVector(resultingAcc, duration)

	p.Velocity.ScaleInPlace(math.Pow(p.Damping, duration))

	p.ClearAccumulator()
}

// MarshalLogObject implements zapcore.ObjectMarshaler for structured
// diagnostics of a particle's full kinematic state.
func (p *Particle) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("position", p.Position); err != nil {
		return err
	}
	if err := enc.AddObject("velocity", p.Velocity); err != nil {
		return err
	}
	if err := enc.AddObject("acceleration", p.Acceleration); err != nil {
		return err
	}
	enc.AddFloat64("damping", p.Damping)
	enc.AddFloat64("inverseMass", p.inverseMass)
	return nil
}
