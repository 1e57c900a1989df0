package angle

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-12

func TestUnitConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"90 deg to rad", ToRadians(New[Degrees](90.0)).Magnitude(), 1.5707963267948966},
		{"pi rad to deg", ToDegrees(New[Radians](3.141592653589793)).Magnitude(), 180},
		{"180 deg to grad", ToGradians(New[Degrees](180.0)).Magnitude(), 200},
		{"100 grad to deg", ToDegrees(New[Gradians](100.0)).Magnitude(), 90},
		{"0.5 rev to deg", ToDegrees(New[Revolutions](0.5)).Magnitude(), 180},
		{"360 deg to rev", ToRevolutions(New[Degrees](360.0)).Magnitude(), 1},
		{"negative deg to grad", ToGradians(New[Degrees](-90.0)).Magnitude(), -100},
	}
	for _, tt := range tests {
		if !scalar.EqualWithinAbs(tt.got, tt.want, tol) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestSameUnitConversionIsIdentity(t *testing.T) {
	a := New[Degrees](123.456)
	if got := ToDegrees(a); got != a {
		t.Errorf("ToDegrees of degrees = %v, want %v", got, a)
	}
	r := New[Radians](0.75)
	if got := ToRadians(r); got != r {
		t.Errorf("ToRadians of radians = %v, want %v", got, r)
	}
}

// Converting through an intermediate unit must agree with converting
// directly, within floating tolerance.
func TestConversionComposability(t *testing.T) {
	inputs := []float64{0, 30, 90, 123.456, -30, 720.5, -1024}

	for _, m := range inputs {
		a := New[Degrees](m)

		direct := ToGradians(a)
		viaRadians := ToGradians(ToRadians(a))
		viaRevolutions := ToGradians(ToRevolutions(a))
		if !scalar.EqualWithinAbs(direct.Magnitude(), viaRadians.Magnitude(), 1e-9) {
			t.Errorf("deg→rad→grad(%v) = %v, direct %v", m, viaRadians.Magnitude(), direct.Magnitude())
		}
		if !scalar.EqualWithinAbs(direct.Magnitude(), viaRevolutions.Magnitude(), 1e-9) {
			t.Errorf("deg→rev→grad(%v) = %v, direct %v", m, viaRevolutions.Magnitude(), direct.Magnitude())
		}

		// Full cycle back to the source unit.
		cycle := ToDegrees(ToRevolutions(ToGradians(ToRadians(a))))
		if !scalar.EqualWithinAbs(cycle.Magnitude(), m, 1e-9) {
			t.Errorf("deg cycle(%v) = %v", m, cycle.Magnitude())
		}
	}
}

func TestConversionFloat32(t *testing.T) {
	got := ToRadians(New[Degrees](float32(180)))
	if !scalar.EqualWithinAbs(float64(got.Magnitude()), 3.1415927, 1e-6) {
		t.Errorf("180 deg to rad (float32) = %v", got.Magnitude())
	}
}
