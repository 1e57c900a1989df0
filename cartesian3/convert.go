package cartesian3

import (
	"fmt"

	"github.com/banshee-data/geom/numerics"
)

// The conversion triad converts each coordinate independently and
// re-assembles the shape. On checked failure the first failing
// coordinate's error is surfaced.

// CheckedPoint converts p's coordinates to To, failing with
// numerics.ErrOverflow when a coordinate does not fit.
func CheckedPoint[To numerics.Number, From numerics.Number](p Point[From]) (Point[To], error) {
	x, err := numerics.ConvertChecked[To](p.X)
	if err != nil {
		return Point[To]{}, fmt.Errorf("coordinate X: %w", err)
	}
	y, err := numerics.ConvertChecked[To](p.Y)
	if err != nil {
		return Point[To]{}, fmt.Errorf("coordinate Y: %w", err)
	}
	z, err := numerics.ConvertChecked[To](p.Z)
	if err != nil {
		return Point[To]{}, fmt.Errorf("coordinate Z: %w", err)
	}
	return Point[To]{X: x, Y: y, Z: z}, nil
}

// SaturatingPoint converts p's coordinates to To, clamping out-of-range
// values to To's bounds.
func SaturatingPoint[To numerics.Number, From numerics.Number](p Point[From]) Point[To] {
	return Point[To]{
		X: numerics.ConvertSaturating[To](p.X),
		Y: numerics.ConvertSaturating[To](p.Y),
		Z: numerics.ConvertSaturating[To](p.Z),
	}
}

// TruncatingPoint converts p's coordinates to To using the destination
// type's native truncation behaviour.
func TruncatingPoint[To numerics.Number, From numerics.Number](p Point[From]) Point[To] {
	return Point[To]{
		X: numerics.ConvertTruncating[To](p.X),
		Y: numerics.ConvertTruncating[To](p.Y),
		Z: numerics.ConvertTruncating[To](p.Z),
	}
}

// CheckedVector converts v's coordinates to To, failing with
// numerics.ErrOverflow when a coordinate does not fit.
func CheckedVector[To numerics.Number, From numerics.Number](v Vector[From]) (Vector[To], error) {
	x, err := numerics.ConvertChecked[To](v.X)
	if err != nil {
		return Vector[To]{}, fmt.Errorf("coordinate X: %w", err)
	}
	y, err := numerics.ConvertChecked[To](v.Y)
	if err != nil {
		return Vector[To]{}, fmt.Errorf("coordinate Y: %w", err)
	}
	z, err := numerics.ConvertChecked[To](v.Z)
	if err != nil {
		return Vector[To]{}, fmt.Errorf("coordinate Z: %w", err)
	}
	return Vector[To]{X: x, Y: y, Z: z}, nil
}

// SaturatingVector converts v's coordinates to To, clamping out-of-range
// values to To's bounds.
func SaturatingVector[To numerics.Number, From numerics.Number](v Vector[From]) Vector[To] {
	return Vector[To]{
		X: numerics.ConvertSaturating[To](v.X),
		Y: numerics.ConvertSaturating[To](v.Y),
		Z: numerics.ConvertSaturating[To](v.Z),
	}
}

// TruncatingVector converts v's coordinates to To using the destination
// type's native truncation behaviour.
func TruncatingVector[To numerics.Number, From numerics.Number](v Vector[From]) Vector[To] {
	return Vector[To]{
		X: numerics.ConvertTruncating[To](v.X),
		Y: numerics.ConvertTruncating[To](v.Y),
		Z: numerics.ConvertTruncating[To](v.Z),
	}
}
