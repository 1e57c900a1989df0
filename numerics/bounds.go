package numerics

import "math"

// MinValue returns the smallest representable value of T. For unsupported
// (user-defined) numeric types it returns the zero value; the conversion
// functions surface ErrUnsupported in that case instead.
func MinValue[T Number]() T {
	lo, _, _ := bounds[T]()
	return lo
}

// MaxValue returns the largest representable value of T. See MinValue for
// the behaviour on unsupported types.
func MaxValue[T Number]() T {
	_, hi, _ := bounds[T]()
	return hi
}

// bounds reports the representable range of T. ok is false when T is not
// one of the predeclared numeric types.
func bounds[T Number]() (lo, hi T, ok bool) {
	switch p := any(&lo).(type) {
	case *int:
		*p = math.MinInt
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *uint, *uint8, *uint16, *uint32, *uint64, *uintptr:
		// zero value already correct
	case *float32:
		*p = -math.MaxFloat32
	case *float64:
		*p = -math.MaxFloat64
	default:
		return lo, hi, false
	}
	switch p := any(&hi).(type) {
	case *int:
		*p = math.MaxInt
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint:
		*p = math.MaxUint
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *uintptr:
		*p = ^uintptr(0)
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	default:
		return lo, hi, false
	}
	return lo, hi, true
}
