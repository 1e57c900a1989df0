package angle

import "github.com/banshee-data/geom/numerics"

// convertUnit rescales a magnitude from unit In to unit Out. The ratio is
// evaluated in the destination numeric type's own arithmetic rather than
// through an intermediate fixed type, so precision follows T. A same-unit
// conversion is the identity.
func convertUnit[Out Unit, In Unit, T numerics.Float](a Angle[In, T]) Angle[Out, T] {
	var in In
	var out Out
	if in.fullTurn() == out.fullTurn() {
		return Angle[Out, T]{magnitude: a.magnitude}
	}
	ratio := T(out.fullTurn()) / T(in.fullTurn())
	return Angle[Out, T]{magnitude: a.magnitude * ratio}
}

// ToDegrees converts an angle of any unit to degrees.
func ToDegrees[U Unit, T numerics.Float](a Angle[U, T]) Angle[Degrees, T] {
	return convertUnit[Degrees](a)
}

// ToRadians converts an angle of any unit to radians.
func ToRadians[U Unit, T numerics.Float](a Angle[U, T]) Angle[Radians, T] {
	return convertUnit[Radians](a)
}

// ToGradians converts an angle of any unit to gradians.
func ToGradians[U Unit, T numerics.Float](a Angle[U, T]) Angle[Gradians, T] {
	return convertUnit[Gradians](a)
}

// ToRevolutions converts an angle of any unit to whole turns.
func ToRevolutions[U Unit, T numerics.Float](a Angle[U, T]) Angle[Revolutions, T] {
	return convertUnit[Revolutions](a)
}
