package cartesian3

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/banshee-data/geom"
	"github.com/banshee-data/geom/numerics"
)

func TestVectorAlgebra(t *testing.T) {
	a := Vector[float64]{X: 1, Y: 2, Z: 3}
	b := Vector[float64]{X: -4, Y: 5, Z: -6}

	if got := a.Add(b); got != (Vector[float64]{X: -3, Y: 7, Z: -3}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vector[float64]{X: 5, Y: -3, Z: 9}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Neg(); got != (Vector[float64]{X: -1, Y: -2, Z: -3}) {
		t.Errorf("Neg = %v", got)
	}
	if got := a.Scale(2); got != (Vector[float64]{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Div(2); got != (Vector[float64]{X: 0.5, Y: 1, Z: 1.5}) {
		t.Errorf("Div = %v", got)
	}
}

func TestDotCross(t *testing.T) {
	x := UnitX[float64]()
	y := UnitY[float64]()
	z := UnitZ[float64]()

	if got := x.Dot(y); got != 0 {
		t.Errorf("x·y = %v, want 0", got)
	}
	if got := x.Cross(y); got != z {
		t.Errorf("x×y = %v, want z", got)
	}
	if got := y.Cross(z); got != x {
		t.Errorf("y×z = %v, want x", got)
	}
	if got := z.Cross(x); got != y {
		t.Errorf("z×x = %v, want y", got)
	}
	// Anti-commutativity.
	if got := y.Cross(x); got != z.Neg() {
		t.Errorf("y×x = %v, want -z", got)
	}
	// A vector crossed with itself vanishes.
	v := Vector[float64]{X: 2, Y: -3, Z: 5}
	if got := v.Cross(v); got != ZeroVector[float64]() {
		t.Errorf("v×v = %v, want 0", got)
	}
}

func TestMagnitudeNormalize(t *testing.T) {
	v := Vector[float64]{X: 2, Y: 3, Z: 6}
	if got := Magnitude(v); got != 7 {
		t.Errorf("Magnitude = %v, want 7", got)
	}
	n := Normalize(v)
	if !scalar.EqualWithinAbs(Magnitude(n), 1, 1e-12) {
		t.Errorf("|Normalize(v)| = %v, want 1", Magnitude(n))
	}
	if got := Normalize(ZeroVector[float64]()); got != ZeroVector[float64]() {
		t.Errorf("Normalize(0) = %v, want zero vector", got)
	}
}

func TestCompareIsDirectionBlind(t *testing.T) {
	a := Vector[float64]{X: 1, Y: 2, Z: 2} // |a| = 3
	b := Vector[float64]{X: 3, Y: 0, Z: 0} // |b| = 3
	c := Vector[float64]{X: 0, Y: 0, Z: 4}

	if got := a.Compare(b); got != 0 {
		t.Errorf("equal magnitudes: Compare = %d, want 0", got)
	}
	if a == b {
		t.Error("distinct vectors must not be ==")
	}
	if got := a.Compare(c); got != -1 {
		t.Errorf("Compare = %d, want -1", got)
	}
	if got := c.Compare(a); got != 1 {
		t.Errorf("Compare = %d, want 1", got)
	}
}

// The 3D angle is unsigned: both orders give the same non-negative
// result below a straight angle.
func TestAngleBetweenUnsigned(t *testing.T) {
	x := UnitX[float64]()
	y := UnitY[float64]()

	ab := AngleBetween(x, y).Magnitude()
	ba := AngleBetween(y, x).Magnitude()
	if !scalar.EqualWithinAbs(ab, math.Pi/2, 1e-12) {
		t.Errorf("x,y angle = %v, want π/2", ab)
	}
	if ab != ba {
		t.Errorf("angle not symmetric: %v vs %v", ab, ba)
	}

	opp := AngleBetween(x, x.Neg()).Magnitude()
	if !scalar.EqualWithinAbs(opp, math.Pi, 1e-7) {
		t.Errorf("opposite angle = %v, want π", opp)
	}
	if opp < 0 {
		t.Errorf("3D angle must be non-negative, got %v", opp)
	}
}

// Rounding in the magnitude product can push the cosine ratio past ±1;
// identical and opposite vectors must still give 0 and π, never NaN.
func TestAngleBetweenParallelVectors(t *testing.T) {
	v := Vector[float64]{X: 1, Y: 1, Z: 1}

	if got := AngleBetween(v, v).Magnitude(); !scalar.EqualWithinAbs(got, 0, 1e-12) {
		t.Errorf("angle of v with itself = %v, want 0", got)
	}
	if got := AngleBetween(v, v.Neg()).Magnitude(); !scalar.EqualWithinAbs(got, math.Pi, 1e-12) {
		t.Errorf("angle of v with -v = %v, want π", got)
	}
	if got := AngleBetween(v, v.Scale(2)).Magnitude(); math.IsNaN(got) {
		t.Error("angle of parallel vectors is NaN")
	}
}

func TestVectorComponent(t *testing.T) {
	v := Vector[int32]{X: 1, Y: 2, Z: 3}
	for i, want := range []int32{1, 2, 3} {
		got, err := v.Component(i)
		if err != nil {
			t.Fatalf("Component(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("Component(%d) = %v, want %v", i, got, want)
		}
	}
	if _, err := v.Component(3); !errors.Is(err, geom.ErrIndexOutOfRange) {
		t.Errorf("Component(3) err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestVectorConversionTriad(t *testing.T) {
	v := Vector[float64]{X: 1e9, Y: 2, Z: 3}

	if _, err := CheckedVector[int16](v); !errors.Is(err, numerics.ErrOverflow) {
		t.Errorf("checked err = %v, want ErrOverflow", err)
	}
	if got := SaturatingVector[int16](v); got != (Vector[int16]{X: math.MaxInt16, Y: 2, Z: 3}) {
		t.Errorf("saturated = %v", got)
	}
}
