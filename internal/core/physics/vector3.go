package physics

import (
	"fmt"
	"math"

	"go.uber.org/zap/zapcore"
)

// Vector3 is a 3D vector in world space with double-precision components.
// It is a plain value type: pure operations take a value receiver and return
// a new vector, mutating operations take a pointer receiver and carry an
// explicit name (InPlace suffix or an imperative verb). There is no hidden
// aliasing between the two families.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a vector from three scalar components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of v and o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference of v and o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v with all three components multiplied by s.
// Integer scalars widen at the call site with an explicit float64 conversion.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// ComponentProduct returns the element-wise (Hadamard) product of v and o.
// This is distinct from Dot, which collapses to a scalar.
func (v Vector3) ComponentProduct(o Vector3) Vector3 {
	return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Dot returns the scalar product of v and o.
func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed vector product of v and o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Magnitude returns the Euclidean length of v.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of v. Cheaper than Magnitude
// when only comparing lengths.
func (v Vector3) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalized returns v scaled to unit length, leaving v unchanged.
// The zero vector is returned unchanged rather than dividing by zero.
func (v Vector3) Normalized() Vector3 {
	n := v
	n.Normalize()
	return n
}

// AddInPlace adds o to v component-wise.
func (v *Vector3) AddInPlace(o Vector3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// SubInPlace subtracts o from v component-wise.
func (v *Vector3) SubInPlace(o Vector3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// ScaleInPlace multiplies all three components of v by s.
func (v *Vector3) ScaleInPlace(s float64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// AddScaledVector adds o*s to v without allocating a temporary.
// Both integration steps are built on this.
func (v *Vector3) AddScaledVector(o Vector3, s float64) {
	v.X += o.X * s
	v.Y += o.Y * s
	v.Z += o.Z * s
}

// CrossInPlace overwrites v with the vector product v×o. All three results
// are computed from the original components before any is written back.
func (v *Vector3) CrossInPlace(o Vector3) {
	x, y, z := v.X, v.Y, v.Z
	v.X = y*o.Z - z*o.Y
	v.Y = z*o.X - x*o.Z
	v.Z = x*o.Y - y*o.X
}

// Normalize scales v to unit length in place. The zero vector is left
// unchanged so downstream math never sees NaN components.
func (v *Vector3) Normalize() {
	m := v.Magnitude()
	if m > 0 {
		v.ScaleInPlace(1 / m)
	}
}

// Invert negates all three components in place.
func (v *Vector3) Invert() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// String renders the vector for diagnostics: raw components, magnitude and
// normalized direction. The exact text carries no compatibility contract.
func (v Vector3) String() string {
	d := v.Normalized()
	return fmt.Sprintf(
		"value: [x = %g, y = %g, z = %g]; magnitude = %g; direction = [x = %g, y = %g, z = %g]",
		v.X, v.Y, v.Z, v.Magnitude(), d.X, d.Y, d.Z,
	)
}

// MarshalLogObject implements zapcore.ObjectMarshaler so vectors can be
// attached to structured log entries as a single field.
func (v Vector3) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("x", v.X)
	enc.AddFloat64("y", v.Y)
	enc.AddFloat64("z", v.Z)
	enc.AddFloat64("magnitude", v.Magnitude())
	return nil
}
