package numerics

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow reports a checked conversion whose source value is outside
// the destination type's representable range.
var ErrOverflow = errors.New("value out of range for destination type")

// ErrUnsupported reports a conversion involving a numeric type the
// protocol has no bounds for.
var ErrUnsupported = errors.New("unsupported numeric type")

// ConvertChecked converts v to To, failing with ErrOverflow when v is
// outside To's representable range. Fractional digits are discarded when
// To is an integer type; only the range is checked.
//
// Range comparison happens in float64, so integer values beyond 2^53 may
// be misjudged by one ULP at the extreme edges of int64/uint64.
func ConvertChecked[To Number, From Number](v From) (To, error) {
	var zero To
	lo, hi, ok := bounds[To]()
	if !ok {
		return zero, fmt.Errorf("convert to %T: %w", zero, ErrUnsupported)
	}
	if isNaN(v) || math.IsInf(float64(v), 0) {
		if isFloat[To]() {
			return To(v), nil
		}
		return zero, fmt.Errorf("convert %v to %T: %w", v, zero, ErrOverflow)
	}
	if float64(v) < float64(lo) || float64(v) > float64(hi) {
		return zero, fmt.Errorf("convert %v to %T: %w", v, zero, ErrOverflow)
	}
	return To(v), nil
}

// ConvertSaturating converts v to To, clamping out-of-range values to
// To's MinValue/MaxValue. NaN saturates to zero for integer destinations
// and passes through for floating-point ones. Destination types without
// known bounds (named numeric types) fall back to Go's native conversion
// with no clamping; use ConvertChecked to surface those as ErrUnsupported.
func ConvertSaturating[To Number, From Number](v From) To {
	lo, hi, ok := bounds[To]()
	if !ok {
		return To(v)
	}
	if isNaN(v) || math.IsInf(float64(v), 0) {
		if isFloat[To]() {
			return To(v)
		}
		if isNaN(v) {
			var zero To
			return zero
		}
	}
	if float64(v) < float64(lo) {
		return lo
	}
	if float64(v) > float64(hi) {
		return hi
	}
	return To(v)
}

// ConvertTruncating converts v to To using Go's native conversion
// behaviour: integer-to-integer conversions wrap, float-to-float
// conversions round (overflowing to infinity). Go leaves out-of-range
// float-to-integer conversions undefined, so those clamp to the
// destination bounds and NaN becomes zero.
func ConvertTruncating[To Number, From Number](v From) To {
	if isFloat[From]() && !isFloat[To]() {
		lo, hi, ok := bounds[To]()
		if ok {
			if isNaN(v) {
				var zero To
				return zero
			}
			if float64(v) < float64(lo) {
				return lo
			}
			if float64(v) > float64(hi) {
				return hi
			}
		}
	}
	return To(v)
}
