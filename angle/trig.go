package angle

import (
	"math"

	"github.com/banshee-data/geom/numerics"
)

// Trigonometric evaluation converts the angle to radians first, because
// the underlying math functions operate on radian magnitudes. Callers
// holding degrees (or any other unit) therefore get correct results
// without converting themselves.

// Sin returns the sine of the angle.
func Sin[U Unit, T numerics.Float](a Angle[U, T]) T {
	r := ToRadians(a)
	return T(math.Sin(float64(r.magnitude)))
}

// Cos returns the cosine of the angle.
func Cos[U Unit, T numerics.Float](a Angle[U, T]) T {
	r := ToRadians(a)
	return T(math.Cos(float64(r.magnitude)))
}

// SinCos returns the sine and cosine of the angle in a single evaluation.
func SinCos[U Unit, T numerics.Float](a Angle[U, T]) (sin, cos T) {
	r := ToRadians(a)
	s, c := math.Sincos(float64(r.magnitude))
	return T(s), T(c)
}

// Tan returns the tangent of the angle.
func Tan[U Unit, T numerics.Float](a Angle[U, T]) T {
	r := ToRadians(a)
	return T(math.Tan(float64(r.magnitude)))
}

// Asin returns the angle in [−90°, 90°] whose sine is v, in radians.
func Asin[T numerics.Float](v T) Angle[Radians, T] {
	return Angle[Radians, T]{magnitude: T(math.Asin(float64(v)))}
}

// Acos returns the angle in [0°, 180°] whose cosine is v, in radians.
// Inputs outside [−1, 1] yield a NaN magnitude, matching math.Acos.
func Acos[T numerics.Float](v T) Angle[Radians, T] {
	return Angle[Radians, T]{magnitude: T(math.Acos(float64(v)))}
}

// Atan returns the angle whose tangent is v, in radians.
func Atan[T numerics.Float](v T) Angle[Radians, T] {
	return Angle[Radians, T]{magnitude: T(math.Atan(float64(v)))}
}

// Atan2 returns the angle of the point (x, y) from the positive X axis,
// in radians, using the signs of both arguments to pick the quadrant.
func Atan2[T numerics.Float](y, x T) Angle[Radians, T] {
	return Angle[Radians, T]{magnitude: T(math.Atan2(float64(y), float64(x)))}
}
