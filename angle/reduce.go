package angle

import (
	"math"

	"github.com/banshee-data/geom/numerics"
)

// Reduced is an angle whose magnitude is guaranteed to lie in the
// canonical range [0, Full). Values of this type are produced only by
// Reduce; constructing an Angle with an in-range magnitude by hand does
// not carry the guarantee.
type Reduced[U Unit, T numerics.Float] struct {
	Angle[U, T]
}

// Reduce maps any finite magnitude onto its canonical representative in
// [0, Full). Negative inputs land in the positive range, e.g. −30° → 330°.
func Reduce[U Unit, T numerics.Float](a Angle[U, T]) Reduced[U, T] {
	full := fullTurnOf[U]()
	m := math.Mod(float64(a.magnitude), full)
	if m < 0 {
		m += full
	}
	// Rounding can land exactly on a full turn: the addition above for
	// tiny negative inputs, and the narrowing to T for values just under
	// full. Check after the narrowing so both cases stay in range.
	res := T(m)
	if res >= T(full) {
		res = 0
	}
	return Reduced[U, T]{Angle[U, T]{magnitude: res}}
}
