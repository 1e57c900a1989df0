// Package angle implements angle values whose unit of measurement is part
// of the type. The magnitude itself is unit-agnostic; all semantic meaning
// comes from the unit tag, and arithmetic between two angles of different
// units is a compile error rather than a runtime check.
package angle

import "math"

// Unit is the set of built-in angle units. The unexported methods keep the
// set closed: exactly one full turn is 360 degrees, 2π radians, 400
// gradians or 1 revolution.
type Unit interface {
	Degrees | Radians | Gradians | Revolutions

	fullTurn() float64
	unitName() string
}

// Degrees tags an angle measured in degrees (360 per turn).
type Degrees struct{}

func (Degrees) fullTurn() float64 { return 360 }
func (Degrees) unitName() string  { return "deg" }

// Radians tags an angle measured in radians (2π per turn).
type Radians struct{}

func (Radians) fullTurn() float64 { return 2 * math.Pi }
func (Radians) unitName() string  { return "rad" }

// Gradians tags an angle measured in gradians (400 per turn).
type Gradians struct{}

func (Gradians) fullTurn() float64 { return 400 }
func (Gradians) unitName() string  { return "grad" }

// Revolutions tags an angle measured in whole turns.
type Revolutions struct{}

func (Revolutions) fullTurn() float64 { return 1 }
func (Revolutions) unitName() string  { return "rev" }

// fullTurnOf returns the magnitude of one full turn in unit U.
func fullTurnOf[U Unit]() float64 {
	var u U
	return u.fullTurn()
}
