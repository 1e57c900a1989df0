package angle

import (
	"fmt"

	"github.com/banshee-data/geom/numerics"
)

// Angle is a magnitude of type T tagged with the unit U it is measured in.
// Angles are immutable values; every operation returns a fresh one.
type Angle[U Unit, T numerics.Number] struct {
	magnitude T
}

// New wraps a raw magnitude in unit U. No validation or reduction is
// performed.
func New[U Unit, T numerics.Number](magnitude T) Angle[U, T] {
	return Angle[U, T]{magnitude: magnitude}
}

// Magnitude returns the raw numeric value in the angle's own unit.
func (a Angle[U, T]) Magnitude() T { return a.magnitude }

// Zero returns the zero angle.
func Zero[U Unit, T numerics.Number]() Angle[U, T] {
	return Angle[U, T]{}
}

// Right returns a quarter turn (90° equivalent).
func Right[U Unit, T numerics.Number]() Angle[U, T] {
	return Angle[U, T]{magnitude: T(fullTurnOf[U]() / 4)}
}

// Straight returns a half turn (180° equivalent).
func Straight[U Unit, T numerics.Number]() Angle[U, T] {
	return Angle[U, T]{magnitude: T(fullTurnOf[U]() / 2)}
}

// Full returns one complete turn (360° equivalent).
func Full[U Unit, T numerics.Number]() Angle[U, T] {
	return Angle[U, T]{magnitude: T(fullTurnOf[U]())}
}

// MinValue returns the angle with the smallest representable magnitude.
func MinValue[U Unit, T numerics.Number]() Angle[U, T] {
	return Angle[U, T]{magnitude: numerics.MinValue[T]()}
}

// MaxValue returns the angle with the largest representable magnitude.
func MaxValue[U Unit, T numerics.Number]() Angle[U, T] {
	return Angle[U, T]{magnitude: numerics.MaxValue[T]()}
}

// Add returns a + b.
func (a Angle[U, T]) Add(b Angle[U, T]) Angle[U, T] {
	return Angle[U, T]{magnitude: a.magnitude + b.magnitude}
}

// Sub returns a − b.
func (a Angle[U, T]) Sub(b Angle[U, T]) Angle[U, T] {
	return Angle[U, T]{magnitude: a.magnitude - b.magnitude}
}

// Neg returns the angle with negated magnitude.
func (a Angle[U, T]) Neg() Angle[U, T] {
	return Angle[U, T]{magnitude: -a.magnitude}
}

// MulScalar returns the angle scaled by s.
func (a Angle[U, T]) MulScalar(s T) Angle[U, T] {
	return Angle[U, T]{magnitude: a.magnitude * s}
}

// DivScalar returns the angle divided by s.
func (a Angle[U, T]) DivScalar(s T) Angle[U, T] {
	return Angle[U, T]{magnitude: a.magnitude / s}
}

// Abs returns the angle with non-negative magnitude.
func (a Angle[U, T]) Abs() Angle[U, T] {
	return Angle[U, T]{magnitude: numerics.Abs(a.magnitude)}
}

// Compare orders two angles of the same unit by magnitude, returning
// -1, 0 or +1.
func (a Angle[U, T]) Compare(b Angle[U, T]) int {
	switch {
	case a.magnitude < b.magnitude:
		return -1
	case a.magnitude > b.magnitude:
		return 1
	}
	return 0
}

// Min returns the smaller of two angles.
func Min[U Unit, T numerics.Number](a, b Angle[U, T]) Angle[U, T] {
	if b.magnitude < a.magnitude {
		return b
	}
	return a
}

// Max returns the larger of two angles.
func Max[U Unit, T numerics.Number](a, b Angle[U, T]) Angle[U, T] {
	if b.magnitude > a.magnitude {
		return b
	}
	return a
}

// Lerp linearly interpolates between a and b; t=0 yields a, t=1 yields b.
func Lerp[U Unit, T numerics.Float](a, b Angle[U, T], t T) Angle[U, T] {
	return Angle[U, T]{magnitude: a.magnitude + (b.magnitude-a.magnitude)*t}
}

// String formats the angle as "<magnitude> <unit>", e.g. "90 deg".
func (a Angle[U, T]) String() string {
	var u U
	return fmt.Sprintf("%v %s", a.magnitude, u.unitName())
}

// CheckedAngle converts the magnitude to type To, failing with
// numerics.ErrOverflow when the value does not fit.
func CheckedAngle[To numerics.Number, U Unit, From numerics.Number](a Angle[U, From]) (Angle[U, To], error) {
	m, err := numerics.ConvertChecked[To](a.magnitude)
	if err != nil {
		return Angle[U, To]{}, fmt.Errorf("angle magnitude: %w", err)
	}
	return Angle[U, To]{magnitude: m}, nil
}

// SaturatingAngle converts the magnitude to type To, clamping
// out-of-range values to To's bounds.
func SaturatingAngle[To numerics.Number, U Unit, From numerics.Number](a Angle[U, From]) Angle[U, To] {
	return Angle[U, To]{magnitude: numerics.ConvertSaturating[To](a.magnitude)}
}

// TruncatingAngle converts the magnitude to type To using the destination
// type's native truncation behaviour.
func TruncatingAngle[To numerics.Number, U Unit, From numerics.Number](a Angle[U, From]) Angle[U, To] {
	return Angle[U, To]{magnitude: numerics.ConvertTruncating[To](a.magnitude)}
}
