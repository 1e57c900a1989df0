package spherical

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/banshee-data/geom"
	"github.com/banshee-data/geom/angle"
	"github.com/banshee-data/geom/cartesian3"
	"github.com/banshee-data/geom/numerics"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestToCartesian(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		azimuth float64 // radians
		polar   float64 // radians
		want    cartesian3.Point[float64]
	}{
		{"north pole", 1, 0, 0, cartesian3.Point[float64]{Z: 1}},
		{"equator east", 1, 0, math.Pi / 2, cartesian3.Point[float64]{X: 1}},
		{"equator north", 1, math.Pi / 2, math.Pi / 2, cartesian3.Point[float64]{Y: 1}},
		{"south pole", 3, 1.234, math.Pi, cartesian3.Point[float64]{Z: -3}},
		{"mid latitude", 2, math.Pi / 4, math.Pi / 4,
			cartesian3.Point[float64]{X: 1, Y: 1, Z: math.Sqrt2}},
	}
	for _, tt := range tests {
		p := New[angle.Radians](tt.radius, angle.New[angle.Radians](tt.azimuth), angle.New[angle.Radians](tt.polar))
		got := ToCartesian(p)
		if diff := cmp.Diff(tt.want, got, approx); diff != "" {
			t.Errorf("%s: ToCartesian mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestToCartesianAs(t *testing.T) {
	p := New[angle.Radians](float64(1), angle.New[angle.Radians](0.0), angle.New[angle.Radians](math.Pi/2))

	got, err := ToCartesianAs[float32](p)
	if err != nil {
		t.Fatalf("ToCartesianAs: %v", err)
	}
	if !scalar.EqualWithinAbs(float64(got.X), 1, 1e-6) {
		t.Errorf("ToCartesianAs = %v", got)
	}

	big := New[angle.Radians](1e300, angle.New[angle.Radians](0.0), angle.New[angle.Radians](0.0))
	if _, err := ToCartesianAs[float32](big); !errors.Is(err, numerics.ErrOverflow) {
		t.Errorf("out-of-range radius err = %v, want ErrOverflow", err)
	}
}

func TestFromCartesianRoundTrip(t *testing.T) {
	points := []cartesian3.Point[float64]{
		{X: 1},
		{Y: 2},
		{Z: -1},
		{X: 1, Y: 1, Z: 1},
		{X: -3, Y: 4, Z: -5},
	}
	for _, c := range points {
		p := FromCartesian(c)
		back := ToCartesian(p)
		if diff := cmp.Diff(c, back, approx); diff != "" {
			t.Errorf("round trip %v mismatch (-want +got):\n%s", c, diff)
		}
		if p.Polar.Magnitude() < 0 || p.Polar.Magnitude() > math.Pi {
			t.Errorf("polar angle %v outside [0, π]", p.Polar.Magnitude())
		}
	}

	if got := FromCartesian(cartesian3.Point[float64]{}); got != Zero[angle.Radians, float64, float64]() {
		t.Errorf("origin = %+v, want zero point", got)
	}
}

func TestReduceAzimuth(t *testing.T) {
	p := New[angle.Degrees](1.0, angle.New[angle.Degrees](-30.0), angle.New[angle.Degrees](45.0))
	got := Reduce(p)
	if !scalar.EqualWithinAbs(got.Azimuth.Magnitude(), 330, 1e-12) {
		t.Errorf("reduced azimuth = %v, want 330", got.Azimuth.Magnitude())
	}
	if got.Polar.Magnitude() != 45 {
		t.Errorf("in-range polar changed: %v", got.Polar.Magnitude())
	}
	if Reduce(got) != got {
		t.Error("Reduce not idempotent")
	}
}

func TestReduceFoldsPolar(t *testing.T) {
	// 200° folds to 160°; the polar angle never exceeds a half turn.
	p := New[angle.Degrees](1.0, angle.New[angle.Degrees](30.0), angle.New[angle.Degrees](200.0))
	got := Reduce(p)
	if !scalar.EqualWithinAbs(got.Polar.Magnitude(), 160, 1e-12) {
		t.Errorf("folded polar = %v, want 160", got.Polar.Magnitude())
	}
	if got.Azimuth.Magnitude() != 30 {
		t.Errorf("azimuth = %v, want 30 (fold leaves azimuth untouched)", got.Azimuth.Magnitude())
	}
}

// Folding the polar angle without rotating the azimuth mirrors the
// point through the Z axis instead of preserving its location. This
// test pins the behaviour: the reduced point maps to (−x, −y, z) of
// the original. A geometrically faithful reduction would add a half
// turn to the azimuth when folding.
func TestReduceFoldMirrorsLocation(t *testing.T) {
	orig := New[angle.Radians](1.0, angle.New[angle.Radians](0.5), angle.New[angle.Radians](3.5))
	reduced := Reduce(orig)

	co := ToCartesian(orig)
	cr := ToCartesian(reduced)

	mirrored := cartesian3.Point[float64]{X: -co.X, Y: -co.Y, Z: co.Z}
	if diff := cmp.Diff(mirrored, cr, approx); diff != "" {
		t.Errorf("reduced point cartesian mismatch (-want +got):\n%s", diff)
	}
}

func TestUnitConversions(t *testing.T) {
	p := New[angle.Degrees](2.0, angle.New[angle.Degrees](90.0), angle.New[angle.Degrees](180.0))

	r := ToRadians(p)
	if !scalar.EqualWithinAbs(r.Azimuth.Magnitude(), math.Pi/2, 1e-12) {
		t.Errorf("ToRadians azimuth = %v", r.Azimuth.Magnitude())
	}
	if !scalar.EqualWithinAbs(r.Polar.Magnitude(), math.Pi, 1e-12) {
		t.Errorf("ToRadians polar = %v", r.Polar.Magnitude())
	}
	if got := ToGradians(p).Polar.Magnitude(); !scalar.EqualWithinAbs(got, 200, 1e-12) {
		t.Errorf("ToGradians polar = %v", got)
	}
	if got := ToRevolutions(p).Azimuth.Magnitude(); !scalar.EqualWithinAbs(got, 0.25, 1e-12) {
		t.Errorf("ToRevolutions azimuth = %v", got)
	}
	if r.Radius != 2 {
		t.Errorf("unit conversion touched the radius: %v", r.Radius)
	}
}

func TestConversionTriad(t *testing.T) {
	p := New[angle.Degrees](1.0, angle.New[angle.Degrees](1e300), angle.New[angle.Degrees](90.0))

	if _, err := CheckedPoint[float32, float32](p); !errors.Is(err, numerics.ErrOverflow) {
		t.Errorf("checked err = %v, want ErrOverflow", err)
	}

	sat := SaturatingPoint[float32, float32](p)
	if sat.Azimuth.Magnitude() != numerics.MaxValue[float32]() {
		t.Errorf("saturated azimuth = %v", sat.Azimuth.Magnitude())
	}
	if sat.Polar.Magnitude() != 90 {
		t.Errorf("saturated polar = %v", sat.Polar.Magnitude())
	}
}

func TestComponentAndSystem(t *testing.T) {
	p := New[angle.Degrees](3.0, angle.New[angle.Degrees](45.0), angle.New[angle.Degrees](60.0))

	for i, want := range []float64{3, 45, 60} {
		got, err := p.Component(i)
		if err != nil {
			t.Fatalf("Component(%d): %v", i, err)
		}
		if got != want {
			t.Errorf("Component(%d) = %v, want %v", i, got, want)
		}
	}
	if _, err := p.Component(3); !errors.Is(err, geom.ErrIndexOutOfRange) {
		t.Errorf("Component(3) err = %v", err)
	}

	sys := p.CoordinateSystem()
	if sys.Name() != "Spherical.Point" {
		t.Errorf("system name = %q", sys.Name())
	}
	coords := sys.Coordinates()
	if len(coords) != 3 || coords[2].Name != "Polar" {
		t.Errorf("coordinates = %v", coords)
	}
}
