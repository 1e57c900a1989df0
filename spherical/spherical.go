// Package spherical implements the spherical coordinate system: a radius,
// an azimuth angle around the Z axis, and a polar (zenith) angle measured
// from the positive Z axis — a colatitude, not an elevation.
package spherical

import (
	"fmt"

	"github.com/banshee-data/geom"
	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/numerics"
)

// Point is a location given by radius, azimuth and polar angle.
// Components are immutable after construction.
type Point[U angle.Unit, TA numerics.Float, TR numerics.Float] struct {
	Radius  TR
	Azimuth angle.Angle[U, TA]
	Polar   angle.Angle[U, TA]
}

// New builds a point from its components. No validation or reduction is
// performed.
func New[U angle.Unit, TA numerics.Float, TR numerics.Float](radius TR, azimuth, polar angle.Angle[U, TA]) Point[U, TA, TR] {
	return Point[U, TA, TR]{Radius: radius, Azimuth: azimuth, Polar: polar}
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
		Polar:   angle.MinValue[U, TA](),
	}
}

// MaxPoint returns the point whose components hold their largest
// representable values.
func MaxPoint[U angle.Unit, TA numerics.Float, TR numerics.Float]() Point[U, TA, TR] {
	return Point[U, TA, TR]{
		Radius:  numerics.MaxValue[TR](),
		Azimuth: angle.MaxValue[U, TA](),
		Polar:   angle.MaxValue[U, TA](),
	}
}

// Component returns component i positionally: 0 = Radius, 1 = Azimuth
// magnitude, 2 = Polar magnitude.
func (p Point[U, TA, TR]) Component(i int) (float64, error) {
	switch i {
	case 0:
		return float64(p.Radius), nil
	case 1:
		return float64(p.Azimuth.Magnitude()), nil
	case 2:
		return float64(p.Polar.Magnitude()), nil
	}
	return 0, fmt.Errorf("spherical point component %d: %w", i, geom.ErrIndexOutOfRange)
}

// CoordinateSystem describes the point's coordinate slots in order.
func (Point[U, TA, TR]) CoordinateSystem() geom.System {
	at := geom.TypeName[angle.Angle[U, TA]]()
	return geom.NewSystem("Spherical.Point",
		geom.Coordinate{Name: "Radius", Type: geom.TypeName[TR]()},
		geom.Coordinate{Name: "Azimuth", Type: at},
		geom.Coordinate{Name: "Polar", Type: at},
	)
}

// Reduce canonicalizes the point's angles: the azimuth is mapped onto
// [0, full turn), and the polar angle onto [0, half turn] by folding
// values above a half turn back as fullTurn − polar.
//
// The fold mirrors the point through the Z axis: a geometrically faithful
// reduction would also rotate the azimuth by a half turn when folding,
// but this reduction leaves the azimuth untouched, so a point whose
// polar angle folds maps to (−x, −y, z) of the original location. The
// behaviour is kept for compatibility and pinned by tests.
func Reduce[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[U, TA, TR] {
	azimuth := angle.Reduce(p.Azimuth).Angle
	polar := angle.Reduce(p.Polar).Angle
	if polar.Compare(angle.Straight[U, TA]()) > 0 {
		polar = angle.Full[U, TA]().Sub(polar)
	}
	return Point[U, TA, TR]{Radius: p.Radius, Azimuth: azimuth, Polar: polar}
}

// ToDegrees converts both angles to degrees, keeping the radius.
func ToDegrees[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[angle.Degrees, TA, TR] {
	return Point[angle.Degrees, TA, TR]{
		Radius:  p.Radius,
		Azimuth: angle.ToDegrees(p.Azimuth),
		Polar:   angle.ToDegrees(p.Polar),
	}
}

// ToRadians converts both angles to radians, keeping the radius.
func ToRadians[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[angle.Radians, TA, TR] {
	return Point[angle.Radians, TA, TR]{
		Radius:  p.Radius,
		Azimuth: angle.ToRadians(p.Azimuth),
		Polar:   angle.ToRadians(p.Polar),
	}
}

// ToGradians converts both angles to gradians, keeping the radius.
func ToGradians[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[angle.Gradians, TA, TR] {
	return Point[angle.Gradians, TA, TR]{
		Radius:  p.Radius,
		Azimuth: angle.ToGradians(p.Azimuth),
		Polar:   angle.ToGradians(p.Polar),
	}
}

// ToRevolutions converts both angles to whole turns, keeping the radius.
func ToRevolutions[U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[angle.Revolutions, TA, TR] {
	return Point[angle.Revolutions, TA, TR]{
		Radius:  p.Radius,
		Azimuth: angle.ToRevolutions(p.Azimuth),
		Polar:   angle.ToRevolutions(p.Polar),
	}
}

// CheckedPoint converts all components to the given types, failing with
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
	pol, err := angle.CheckedAngle[TA2](p.Polar)
	if err != nil {
		return Point[U, TA2, TR2]{}, fmt.Errorf("polar: %w", err)
	}
	return Point[U, TA2, TR2]{Radius: r, Azimuth: az, Polar: pol}, nil
}

// SaturatingPoint converts all components, clamping out-of-range values
// to the destination bounds.
func SaturatingPoint[TA2 numerics.Float, TR2 numerics.Float, U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[U, TA2, TR2] {
	return Point[U, TA2, TR2]{
		Radius:  numerics.ConvertSaturating[TR2](p.Radius),
		Azimuth: angle.SaturatingAngle[TA2](p.Azimuth),
		Polar:   angle.SaturatingAngle[TA2](p.Polar),
	}
}

// TruncatingPoint converts all components using the destination types'
// native truncation behaviour.
func TruncatingPoint[TA2 numerics.Float, TR2 numerics.Float, U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) Point[U, TA2, TR2] {
	return Point[U, TA2, TR2]{
		Radius:  numerics.ConvertTruncating[TR2](p.Radius),
		Azimuth: angle.TruncatingAngle[TA2](p.Azimuth),
		Polar:   angle.TruncatingAngle[TA2](p.Polar),
	}
}
