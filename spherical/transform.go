package spherical

import (
	"fmt"
	"math"

	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/cartesian3"
	"github.com/banshee-data/geom/numerics"
)

// ToCartesian converts a spherical point to cartesian coordinates:
//
//	x = r·sin(polar)·cos(azimuth)
//	y = r·sin(polar)·sin(azimuth)
//	z = r·cos(polar)
//
// The signature requires radian angles, so passing another unit is a
// compile error rather than a runtime check. Sine and cosine are
// evaluated once per angle and the four scalars reused across the three
// coordinates; trig evaluation dominates the cost of this transform.
func ToCartesian[T numerics.Float](p Point[angle.Radians, T, T]) cartesian3.Point[T] {
	sinAz, cosAz := angle.SinCos(p.Azimuth)
	sinPol, cosPol := angle.SinCos(p.Polar)
	return cartesian3.Point[T]{
		X: p.Radius * sinPol * cosAz,
		Y: p.Radius * sinPol * sinAz,
		Z: p.Radius * cosPol,
	}
}

// ToCartesianAs is the fully generic transform: radius type, angle type
// and output coordinate type may all differ. Components are brought to
// TOut through checked conversion before the transform, so out-of-range
// inputs surface numerics.ErrOverflow instead of silently losing range.
func ToCartesianAs[TOut numerics.Float, TA numerics.Float, TR numerics.Float](p Point[angle.Radians, TA, TR]) (cartesian3.Point[TOut], error) {
	q, err := CheckedPoint[TOut, TOut](p)
	if err != nil {
		return cartesian3.Point[TOut]{}, fmt.Errorf("spherical to cartesian: %w", err)
	}
	return ToCartesian(q), nil
}

// FromCartesian converts a cartesian point to spherical form with both
// angles in radians: the azimuth reduced to [0, 2π) and the polar angle
// in [0, π]. The origin maps to the zero point.
func FromCartesian[T numerics.Float](p cartesian3.Point[T]) Point[angle.Radians, T, T] {
	radius := T(math.Sqrt(float64(p.X*p.X + p.Y*p.Y + p.Z*p.Z)))
	if radius == 0 {
		return Point[angle.Radians, T, T]{}
	}
	azimuth := angle.Reduce(angle.Atan2(p.Y, p.X)).Angle
	polar := angle.Acos(p.Z / radius)
	return Point[angle.Radians, T, T]{Radius: radius, Azimuth: azimuth, Polar: polar}
}
