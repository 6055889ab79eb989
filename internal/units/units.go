// Package units converts between the canonical stored unit (kilograms) and
// the user's display unit. All weights in the data model are kilograms;
// conversion happens only at the display boundary.
package units

import (
	"fmt"
	"math"
)

// Unit is a display unit for weights.
type Unit string

const (
	Kg Unit = "kg"
	Lb Unit = "lb"
)

// DefaultUnit is what a fresh install displays in.
const DefaultUnit = Kg

const kgToLbFactor = 2.20462262185

// IsValid reports whether u is a known display unit.
func (u Unit) IsValid() bool {
	return u == Kg || u == Lb
}

func KgToLb(kg float64) float64 {
	return kg * kgToLbFactor
}

func LbToKg(lb float64) float64 {
	return lb / kgToLbFactor
}

// RoundForUnit snaps a display value to the nearest common gym plate
// increment: 2.5 for kg, 5 for lb.
func RoundForUnit(value float64, unit Unit) float64 {
	inc := 2.5
	if unit == Lb {
		inc = 5
	}
	return math.Round(value/inc) * inc
}

// DisplayFromKg converts a stored kg value into the number shown in an
// input field: 0.1 kg precision, whole pounds.
func DisplayFromKg(kg float64, unit Unit) float64 {
	if unit == Lb {
		return math.Round(KgToLb(kg))
	}
	return math.Round(kg*10) / 10
}

// KgFromDisplay converts a value the user typed back into kilograms.
func KgFromDisplay(displayValue float64, unit Unit) float64 {
	if unit == Lb {
		return LbToKg(displayValue)
	}
	return displayValue
}

// FormatWeight renders a stored kg value with its unit suffix, e.g.
// "102.5 kg" or "225 lb". A zero weight always renders as "0 <unit>".
func FormatWeight(kg float64, unit Unit) string {
	if kg == 0 {
		return fmt.Sprintf("0 %s", unit)
	}
	val := DisplayFromKg(kg, unit)
	if val == math.Trunc(val) {
		return fmt.Sprintf("%d %s", int(val), unit)
	}
	return fmt.Sprintf("%g %s", val, unit)
}
