package polar

import (
	"fmt"
	"math"

	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/cartesian2"
	"github.com/banshee-data/geom/numerics"
)

// ToCartesian converts a polar point with uniform numeric type to
// cartesian coordinates: x = r·cos(azimuth), y = r·sin(azimuth). Sine
// and cosine are evaluated once and the azimuth may be in any unit (the
// trig layer bridges through radians).
func ToCartesian[U angle.Unit, T numerics.Float](p Point[U, T, T]) cartesian2.Point[T] {
	sin, cos := angle.SinCos(p.Azimuth)
	return cartesian2.Point[T]{
		X: p.Radius * cos,
		Y: p.Radius * sin,
	}
}

// ToCartesianAs is the fully generic transform: radius type, angle type
// and output coordinate type may all differ. Components are brought to
// TOut through checked conversion before the transform, so out-of-range
// inputs surface numerics.ErrOverflow instead of silently losing range.
func ToCartesianAs[TOut numerics.Float, U angle.Unit, TA numerics.Float, TR numerics.Float](p Point[U, TA, TR]) (cartesian2.Point[TOut], error) {
	q, err := CheckedPoint[TOut, TOut](p)
	if err != nil {
		return cartesian2.Point[TOut]{}, fmt.Errorf("polar to cartesian: %w", err)
	}
	return ToCartesian(q), nil
}

// FromCartesian converts a cartesian point to polar form with the
// azimuth in radians, reduced to [0, 2π). The origin maps to the zero
// point.
func FromCartesian[T numerics.Float](p cartesian2.Point[T]) Point[angle.Radians, T, T] {
	radius := T(math.Hypot(float64(p.X), float64(p.Y)))
	azimuth := angle.Reduce(angle.Atan2(p.Y, p.X)).Angle
	return Point[angle.Radians, T, T]{Radius: radius, Azimuth: azimuth}
}
