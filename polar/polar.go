// Package polar implements the polar coordinate system: a radius paired
// with an azimuth angle measured counter-clockwise from the positive X
// axis. The angle's unit and both numeric representations are carried in
// the point's type.
package polar

import (
	"fmt"

	"github.com/banshee-data/geom"
	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/numerics"
)

// Point is a location given by radius and azimuth. Components are
// immutable after construction.
type Point[U angle.Unit, TA numerics.Float, TR numerics.Float] struct {
	Radius  TR
	Azimuth angle.Angle[U, TA]
}

// New builds a point from its components. No validation or reduction is
// performed.
func New[U angle.Unit, TA numerics.Float, TR numerics.Float](radius TR, azimuth angle.Angle[U, TA]) Point[U, TA, TR] {
	return Point[U, TA, TR]{Radius: radius, Azimuth: azimuth}
}

// Zero returns the point at the origin.
func Zero[U angle.Unit, TA numerics.Float, TR numerics.Float]() Point[U, TA, TR] {
	return Point[U, TA, TR]{}
}

// MinPoint returns the point whose components hold their smallest
// representable values.
func MinPoint[U angle.Unit, TA numerics.Float, TR numerics.Float]() Point[U, TA, TR] {
	return Point[U, TA, TR]{
		Radius:  numerics.MinValue[TR](),
		Azimuth: angle.MinValue[U, TA](),
	}
}

// MaxPoint returns the point whose components hold their largest
// representable values.
func MaxPoint[U angle.Unit, TA numerics.Float, TR numerics.Float]() Point[U, TA, TR] {
	return Point[U, TA, TR]{
		Radius:  numerics.MaxValue[TR](),
		Azimuth: angle.MaxValue[U, TA](),
	}
}

// Component returns component i positionally: 0 = Radius, 1 = Azimuth
// magnitude.
func (p Point[U, TA, TR]) Component(i int) (float64, error) {
	switch i {
	case 0:
		return float64(p.Radius), nil
	case 1:
		return float64(p.Azimuth.Magnitude()), nil
	}
	return 0, fmt.Errorf("polar point component %d: %w", i, geom.ErrIndexOutOfRange)
}

// CoordinateSystem describes the point's coordinate slots in order.
func (Point[U, TA, TR]) CoordinateSystem() geom.System {
	return geom.NewSystem("Polar.Point",
		geom.Coordinate{Name: "Radius", Type: geom.TypeName[TR]()},
		geom.Coordinate{Name: "Azimuth", Type: geom.TypeName[angle.Angle[U, TA]]()},
	)
}

// Reduce returns the point with its azimuth mapped onto the canonical
// [0, full turn) range. The radius is unchanged.
func Reduce[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[U, TA, TR] {
	return Point[U, TA, TR]{
		Radius:  p.Radius,
		Azimuth: angle.Reduce(p.Azimuth).Angle,
	}
}

// ToDegrees converts the azimuth to degrees, keeping the radius.
func ToDegrees[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[angle.Degrees, TA, TR] {
	return Point[angle.Degrees, TA, TR]{Radius: p.Radius, Azimuth: angle.ToDegrees(p.Azimuth)}
}

// ToRadians converts the azimuth to radians, keeping the radius.
func ToRadians[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[angle.Radians, TA, TR] {
	return Point[angle.Radians, TA, TR]{Radius: p.Radius, Azimuth: angle.ToRadians(p.Azimuth)}
}

// ToGradians converts the azimuth to gradians, keeping the radius.
func ToGradians[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[angle.Gradians, TA, TR] {
	return Point[angle.Gradians, TA, TR]{Radius: p.Radius, Azimuth: angle.ToGradians(p.Azimuth)}
}

// ToRevolutions converts the azimuth to whole turns, keeping the radius.
func ToRevolutions[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[angle.Revolutions, TA, TR] {
	return Point[angle.Revolutions, TA, TR]{Radius: p.Radius, Azimuth: angle.ToRevolutions(p.Azimuth)}
}

// CheckedPoint converts both components to the given types, failing with
// numerics.ErrOverflow on the first component that does not fit.
func CheckedPoint[TA2 numerics.Float, TR2 numerics.Float, U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) (Point[U, TA2, TR2], error) {
	r, err := numerics.ConvertChecked[TR2](p.Radius)
	if err != nil {
		return Point[U, TA2, TR2]{}, fmt.Errorf("radius: %w", err)
	}
	az, err := angle.CheckedAngle[TA2](p.Azimuth)
	if err != nil {
		return Point[U, TA2, TR2]{}, fmt.Errorf("azimuth: %w", err)
	}
	return Point[U, TA2, TR2]{Radius: r, Azimuth: az}, nil
}

// SaturatingPoint converts both components, clamping out-of-range values
// to the destination bounds.
func SaturatingPoint[TA2 numerics.Float, TR2 numerics.Float, U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[U, TA2, TR2] {
	return Point[U, TA2, TR2]{
		Radius:  numerics.ConvertSaturating[TR2](p.Radius),
		Azimuth: angle.SaturatingAngle[TA2](p.Azimuth),
	}
}

// TruncatingPoint converts both components using the destination types'
// native truncation behaviour.
func TruncatingPoint[TA2 numerics.Float, TR2 numerics.Float, U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[U, TA2, TR2] {
	return Point[U, TA2, TR2]{
		Radius:  numerics.ConvertTruncating[TR2](p.Radius),
		Azimuth: angle.TruncatingAngle[TA2](p.Azimuth),
	}
}
