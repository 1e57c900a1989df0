package geom

import "testing"

func TestSystem(t *testing.T) {
	sys := NewSystem("Test.Shape",
		Coordinate{Name: "A", Type: "float64"},
		Coordinate{Name: "B", Type: "int32"},
	)

	if sys.Name() != "Test.Shape" {
		t.Errorf("Name = %q", sys.Name())
	}

	coords := sys.Coordinates()
	if len(coords) != 2 {
		t.Fatalf("len(Coordinates) = %d", len(coords))
	}
	if coords[0].Name != "A" || coords[1].Name != "B" {
		t.Errorf("coordinate order = %v", coords)
	}

	// Mutating the returned slice must not change the descriptor.
	coords[0].Name = "mutated"
	if sys.Coordinates()[0].Name != "A" {
		t.Error("Coordinates returned a mutable view of the descriptor")
	}
}

func TestTypeName(t *testing.T) {
	if got := TypeName[float64](); got != "float64" {
		t.Errorf("TypeName[float64] = %q", got)
	}
	if got := TypeName[uint8](); got != "uint8" {
		t.Errorf("TypeName[uint8] = %q", got)
	}
}
