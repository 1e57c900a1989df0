package cartesian2

import (
	"fmt"
	"math"

	"github.com/banshee-data/geom"
	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/numerics"
)

// Vector is a displacement or direction in the plane.
type Vector[T numerics.Number] struct {
	X, Y T
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

// Add returns a + b.
func (a Vector[T]) Add(b Vector[T]) Vector[T] {
	return Vector[T]{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a − b.
func (a Vector[T]) Sub(b Vector[T]) Vector[T] {
	return Vector[T]{X: a.X - b.X, Y: a.Y - b.Y}
}

// Neg returns the vector pointing the opposite way.
func (a Vector[T]) Neg() Vector[T] {
	return Vector[T]{X: -a.X, Y: -a.Y}
}

// Scale returns the vector scaled by s.
func (a Vector[T]) Scale(s T) Vector[T] {
	return Vector[T]{X: s * a.X, Y: s * a.Y}
}

// Div returns the vector divided by s.
func (a Vector[T]) Div(s T) Vector[T] {
	return Vector[T]{X: a.X / s, Y: a.Y / s}
}

// Dot returns the dot product of two vectors.
func (a Vector[T]) Dot(b Vector[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the scalar pseudo-cross product a.X*b.Y − a.Y*b.X, the
// signed area of the parallelogram spanned by a and b.
func (a Vector[T]) Cross(b Vector[T]) T {
	return a.X*b.Y - a.Y*b.X
}

// MagnitudeSquared returns the squared Euclidean length.
func (a Vector[T]) MagnitudeSquared() T {
	return a.X*a.X + a.Y*a.Y
}

// Compare orders vectors by squared magnitude. Two vectors of equal
// length but different direction compare equal here while still being
// unequal under ==; the ordering is deliberately direction-blind so it
// can serve bounding and prioritisation uses cheaply.
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
	}
}

// Component returns coordinate i (0 = X, 1 = Y).
func (a Vector[T]) Component(i int) (T, error) {
	switch i {
	case 0:
		return a.X, nil
	case 1:
		return a.Y, nil
	}
	var zero T
	return zero, fmt.Errorf("cartesian2 vector component %d: %w", i, geom.ErrIndexOutOfRange)
}

// CoordinateSystem describes the vector's coordinate slots in order.
func (Vector[T]) CoordinateSystem() geom.System {
	t := geom.TypeName[T]()
	return geom.NewSystem("Cartesian2.Vector",
		geom.Coordinate{Name: "X", Type: t},
		geom.Coordinate{Name: "Y", Type: t},
	)
}

// Magnitude returns the Euclidean length of v.
func Magnitude[T numerics.Float](v Vector[T]) T {
	return T(math.Hypot(float64(v.X), float64(v.Y)))
}

// Normalize returns the unit vector in the direction of v. The zero
// vector is returned unchanged rather than signalling an error.
func Normalize[T numerics.Float](v Vector[T]) Vector[T] {
	m := Magnitude(v)
	if m == 0 {
		return v
	}
	return Vector[T]{X: v.X / m, Y: v.Y / m}
}

// Lerp linearly interpolates between a and b; t=0 yields a, t=1 yields b.
func Lerp[T numerics.Float](a, b Vector[T], t T) Vector[T] {
	return Vector[T]{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// AngleBetween returns the angle from a to b following the right-hand
// rule: positive when b lies counter-clockwise of a, negative otherwise.
// Zero-length inputs propagate a NaN magnitude rather than erroring.
func AngleBetween[T numerics.Float](a, b Vector[T]) angle.Angle[angle.Radians, T] {
	m := math.Sqrt(float64(a.MagnitudeSquared())) * math.Sqrt(float64(b.MagnitudeSquared()))
	// Rounding can push the ratio past ±1 for (anti-)parallel vectors,
	// which would turn into NaN under Acos.
	cos := numerics.Clamp(float64(a.Dot(b))/m, -1, 1)
	r := angle.Acos(T(cos))
	if a.Cross(b) < 0 {
		return r.Neg()
	}
	return r
}
