// Package numerics defines the numeric constraints shared by the geometry
// packages and the three standard narrowing-conversion policies between
// numeric representations: checked (fail), saturating (clamp) and
// truncating (wrap).
package numerics

import (
	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is any built-in floating-point type.
type Float interface {
	constraints.Float
}

// Abs returns the absolute value of x.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of x and y.
func Min[T Number](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func Max[T Number](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Clamp limits x to the range [lo, hi].
func Clamp[T Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// isNaN reports whether x is an IEEE NaN. Always false for integer types.
func isNaN[T Number](x T) bool {
	return x != x
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Number]() bool {
	var v T
	switch any(v).(type) {
	case float32, float64:
		return true
	}
	return false
}
