package cartesian3

import (
	"fmt"
	"math"

	"github.com/banshee-data/geom"
	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/numerics"
)

// Vector is a displacement or direction in space.
type Vector[T numerics.Number] struct {
	X, Y, Z T
}

// ZeroVector returns the zero displacement.
func ZeroVector[T numerics.Number]() Vector[T] {
	return Vector[T]{}
}

// UnitX returns the unit vector along the X axis.
func UnitX[T numerics.Number]() Vector[T] {
	return Vector[T]{X: 1}
}

// UnitY returns the unit vector along the Y axis.
func UnitY[T numerics.Number]() Vector[T] {
	return Vector[T]{Y: 1}
}

// UnitZ returns the unit vector along the Z axis.
func UnitZ[T numerics.Number]() Vector[T] {
	return Vector[T]{Z: 1}
}

// Add returns a + b.
func (a Vector[T]) Add(b Vector[T]) Vector[T] {
	return Vector[T]{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns a − b.
func (a Vector[T]) Sub(b Vector[T]) Vector[T] {
	return Vector[T]{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Neg returns the vector pointing the opposite way.
func (a Vector[T]) Neg() Vector[T] {
	return Vector[T]{X: -a.X, Y: -a.Y, Z: -a.Z}
}

// Scale returns the vector scaled by s.
func (a Vector[T]) Scale(s T) Vector[T] {
	return Vector[T]{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Div returns the vector divided by s.
func (a Vector[T]) Div(s T) Vector[T] {
	return Vector[T]{X: a.X / s, Y: a.Y / s, Z: a.Z / s}
}

// Dot returns the dot product of two vectors.
func (a Vector[T]) Dot(b Vector[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the vector cross product a × b.
func (a Vector[T]) Cross(b Vector[T]) Vector[T] {
	return Vector[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// MagnitudeSquared returns the squared Euclidean length.
func (a Vector[T]) MagnitudeSquared() T {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Compare orders vectors by squared magnitude. As in cartesian2, the
// ordering is direction-blind: equal-length vectors tie under Compare
// while remaining unequal under ==.
func (a Vector[T]) Compare(b Vector[T]) int {
	am, bm := a.MagnitudeSquared(), b.MagnitudeSquared()
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	}
	return 0
}

// Clamp limits each coordinate to the range spanned by lo and hi.
func (a Vector[T]) Clamp(lo, hi Vector[T]) Vector[T] {
	return Vector[T]{
		X: numerics.Clamp(a.X, lo.X, hi.X),
		Y: numerics.Clamp(a.Y, lo.Y, hi.Y),
		Z: numerics.Clamp(a.Z, lo.Z, hi.Z),
	}
}

// Component returns coordinate i (0 = X, 1 = Y, 2 = Z).
func (a Vector[T]) Component(i int) (T, error) {
	switch i {
	case 0:
		return a.X, nil
	case 1:
		return a.Y, nil
	case 2:
		return a.Z, nil
	}
	var zero T
	return zero, fmt.Errorf("cartesian3 vector component %d: %w", i, geom.ErrIndexOutOfRange)
}

// CoordinateSystem describes the vector's coordinate slots in order.
func (Vector[T]) CoordinateSystem() geom.System {
	t := geom.TypeName[T]()
	return geom.NewSystem("Cartesian3.Vector",
		geom.Coordinate{Name: "X", Type: t},
		geom.Coordinate{Name: "Y", Type: t},
		geom.Coordinate{Name: "Z", Type: t},
	)
}

// Magnitude returns the Euclidean length of v.
func Magnitude[T numerics.Float](v Vector[T]) T {
	return T(math.Sqrt(float64(v.MagnitudeSquared())))
}

// Normalize returns the unit vector in the direction of v. The zero
// vector is returned unchanged rather than signalling an error.
func Normalize[T numerics.Float](v Vector[T]) Vector[T] {
	m := Magnitude(v)
	if m == 0 {
		return v
	}
	return Vector[T]{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
}

// Lerp linearly interpolates between a and b; t=0 yields a, t=1 yields b.
func Lerp[T numerics.Float](a, b Vector[T], t T) Vector[T] {
	return Vector[T]{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// AngleBetween returns the unsigned angle between a and b, always in
// [0°, 180°]. Zero-length inputs propagate a NaN magnitude rather than
// erroring.
func AngleBetween[T numerics.Float](a, b Vector[T]) angle.Angle[angle.Radians, T] {
	m := math.Sqrt(float64(a.MagnitudeSquared())) * math.Sqrt(float64(b.MagnitudeSquared()))
	// Rounding can push the ratio past ±1 for (anti-)parallel vectors,
	// which would turn into NaN under Acos.
	cos := numerics.Clamp(float64(a.Dot(b))/m, -1, 1)
	return angle.Acos(T(cos))
}
