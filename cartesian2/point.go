// Package cartesian2 implements points and vectors in the two-dimensional
// cartesian coordinate system, generic over the coordinate type.
//
// A Point is a location, a Vector a displacement: Point−Point yields a
// Vector and Point±Vector yields a Point, but points have no vector-space
// algebra of their own (no Point+Point, no scalar multiply).
package cartesian2

import (
	"fmt"

	"github.com/banshee-data/geom"
	"github.com/banshee-data/geom/numerics"
)

// Point is a location in the plane.
type Point[T numerics.Number] struct {
	X, Y T
}

// ZeroPoint returns the origin.
func ZeroPoint[T numerics.Number]() Point[T] {
	return Point[T]{}
}

// MinPoint returns the point with the smallest representable coordinates.
func MinPoint[T numerics.Number]() Point[T] {
	m := numerics.MinValue[T]()
	return Point[T]{X: m, Y: m}
}

// MaxPoint returns the point with the largest representable coordinates.
func MaxPoint[T numerics.Number]() Point[T] {
	m := numerics.MaxValue[T]()
	return Point[T]{X: m, Y: m}
}

// Add translates the point by v.
func (p Point[T]) Add(v Vector[T]) Point[T] {
	return Point[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub translates the point by −v.
func (p Point[T]) Sub(v Vector[T]) Point[T] {
	return Point[T]{X: p.X - v.X, Y: p.Y - v.Y}
}

// Diff returns the displacement from q to p, i.e. p − q.
func (p Point[T]) Diff(q Point[T]) Vector[T] {
	return Vector[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Component returns coordinate i (0 = X, 1 = Y) for positional iteration
// by display and introspection code.
func (p Point[T]) Component(i int) (T, error) {
	switch i {
	case 0:
		return p.X, nil
	case 1:
		return p.Y, nil
	}
	var zero T
	return zero, fmt.Errorf("cartesian2 point component %d: %w", i, geom.ErrIndexOutOfRange)
}

// CoordinateSystem describes the point's coordinate slots in order.
func (Point[T]) CoordinateSystem() geom.System {
	t := geom.TypeName[T]()
	return geom.NewSystem("Cartesian2.Point",
		geom.Coordinate{Name: "X", Type: t},
		geom.Coordinate{Name: "Y", Type: t},
	)
}

// Distance returns the Euclidean distance between two points.
func Distance[T numerics.Float](p, q Point[T]) T {
	return Magnitude(p.Diff(q))
}

// DistanceSquared returns the squared Euclidean distance between two
// points, avoiding the square root.
func DistanceSquared[T numerics.Number](p, q Point[T]) T {
	d := p.Diff(q)
	return d.MagnitudeSquared()
}

// ManhattanDistance returns the sum of the absolute per-axis differences.
func ManhattanDistance[T numerics.Number](p, q Point[T]) T {
	return numerics.Abs(p.X-q.X) + numerics.Abs(p.Y-q.Y)
}

// LerpPoint linearly interpolates between p and q; t=0 yields p, t=1
// yields q.
func LerpPoint[T numerics.Float](p, q Point[T], t T) Point[T] {
	return Point[T]{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}
