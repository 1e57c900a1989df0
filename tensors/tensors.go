// Package tensors provides bulk element-wise operations over uniform
// numeric slices. Operands and destination must have equal length;
// mismatches panic, following the gonum/floats convention. []float64
// operands dispatch to gonum's tuned kernels; every other element type
// runs the generic unrolled loops.
package tensors

import (
	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/geom/numerics"
)

func checkLen(a, b int) {
	if a != b {
		panic("tensors: slice lengths do not match")
	}
}

// Add stores x[i] + y[i] into dst.
func Add[T numerics.Number](dst, x, y []T) {
	checkLen(len(x), len(y))
	checkLen(len(x), len(dst))
	if xf, ok := any(x).([]float64); ok {
		floats.AddTo(any(dst).([]float64), xf, any(y).([]float64))
		return
	}
	for i := range x {
		dst[i] = x[i] + y[i]
	}
}

// Subtract stores x[i] − y[i] into dst.
func Subtract[T numerics.Number](dst, x, y []T) {
	checkLen(len(x), len(y))
	checkLen(len(x), len(dst))
	if xf, ok := any(x).([]float64); ok {
		floats.SubTo(any(dst).([]float64), xf, any(y).([]float64))
		return
	}
	for i := range x {
		dst[i] = x[i] - y[i]
	}
}

// Multiply stores x[i] · y[i] into dst.
func Multiply[T numerics.Number](dst, x, y []T) {
	checkLen(len(x), len(y))
	checkLen(len(x), len(dst))
	if xf, ok := any(x).([]float64); ok {
		floats.MulTo(any(dst).([]float64), xf, any(y).([]float64))
		return
	}
	for i := range x {
		dst[i] = x[i] * y[i]
	}
}

// Divide stores x[i] / y[i] into dst.
func Divide[T numerics.Number](dst, x, y []T) {
	checkLen(len(x), len(y))
	checkLen(len(x), len(dst))
	if xf, ok := any(x).([]float64); ok {
		floats.DivTo(any(dst).([]float64), xf, any(y).([]float64))
		return
	}
	for i := range x {
		dst[i] = x[i] / y[i]
	}
}

// Negate stores −x[i] into dst.
func Negate[T numerics.Number](dst, x []T) {
	checkLen(len(x), len(dst))
	for i := range x {
		dst[i] = -x[i]
	}
}

// Scale stores c · x[i] into dst.
func Scale[T numerics.Number](dst []T, c T, x []T) {
	checkLen(len(x), len(dst))
	if xf, ok := any(x).([]float64); ok {
		floats.ScaleTo(any(dst).([]float64), float64(c), xf)
		return
	}
	for i := range x {
		dst[i] = c * x[i]
	}
}

// Sum returns the total of all elements of x.
func Sum[T numerics.Number](x []T) T {
	if xf, ok := any(x).([]float64); ok {
		return T(floats.Sum(xf))
	}
	// 4-way accumulation keeps the dependency chain short on the hot
	// integer and float32 paths.
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= len(x); i += 4 {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	for ; i < len(x); i++ {
		s0 += x[i]
	}
	return s0 + s1 + s2 + s3
}

// Dot returns the inner product of x and y.
func Dot[T numerics.Number](x, y []T) T {
	checkLen(len(x), len(y))
	if xf, ok := any(x).([]float64); ok {
		return T(floats.Dot(xf, any(y).([]float64)))
	}
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= len(x); i += 4 {
		s0 += x[i] * y[i]
		s1 += x[i+1] * y[i+1]
		s2 += x[i+2] * y[i+2]
		s3 += x[i+3] * y[i+3]
	}
	for ; i < len(x); i++ {
		s0 += x[i] * y[i]
	}
	return s0 + s1 + s2 + s3
}
