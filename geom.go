// Package geom provides strongly-typed points, vectors and angles across
// Cartesian, polar and spherical coordinate systems, generic over the
// numeric representation of their components.
//
// The root package holds the coordinate-system metadata shared by every
// shape; the algebra lives in the subpackages:
//
//   - numerics: checked/saturating/truncating conversions between numeric types
//   - angle: unit-tagged angles (degrees, radians, gradians, revolutions)
//   - cartesian2, cartesian3: point/vector algebra
//   - polar, spherical: radial coordinates and transforms to cartesian
//   - tensors: bulk element-wise operations over slices
package geom

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange reports positional component access outside a shape's
// component count. It is never silently clamped.
var ErrIndexOutOfRange = errors.New("component index out of range")

// Coordinate describes one named, typed slot of a coordinate system.
type Coordinate struct {
	Name string
	Type string
}

// System is the static descriptor of a point or vector shape: an ordered
// list of its coordinate slots. It is consumed by debug and display tooling
// and plays no role in the algebra itself.
type System struct {
	name        string
	coordinates []Coordinate
}

// NewSystem builds a descriptor from the shape name and its coordinate
// slots in declared order.
func NewSystem(name string, coordinates ...Coordinate) System {
	return System{name: name, coordinates: coordinates}
}

// Name returns the shape name, e.g. "Polar.Point".
func (s System) Name() string { return s.name }

// Coordinates returns the coordinate slots in declared order. The returned
// slice is a copy; callers may not mutate the descriptor through it.
func (s System) Coordinates() []Coordinate {
	return slices.Clone(s.coordinates)
}

// TypeName reports the Go name of type T for use in coordinate
// descriptors, e.g. "float64".
func TypeName[T any]() string {
	var v T
	return fmt.Sprintf("%T", v)
}
