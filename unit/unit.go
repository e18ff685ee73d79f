// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements nominal and scaled size values.

A Value is a value with a Unit attached.

Nominal, or nt, is the unit for sizes as designed for the reference
device. Font sizes, paddings and corner radii are declared in nominal
units.

Scaled, or sc, is the unit for sizes adjusted to the running device.
Only use scaled values for derived sizes handed to the host
framework.

To convert between the two, a Scaler supplies the factor of the
running device; scale.Bound is the usual Scaler.

*/
package unit

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/fixed"
)

// Value is a value with a unit.
type Value struct {
	V float64
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Scaler supplies the scale factor of the running device.
type Scaler interface {
	Factor() float64
}

// Number is the set of numeric types accepted by Of.
type Number interface {
	constraints.Integer | constraints.Float
}

const (
	// UnitNominal represents sizes on the reference device.
	UnitNominal Unit = iota
	// UnitScaled represents sizes adjusted to the running device.
	UnitScaled
)

// Nominal returns the Value for v nominal units.
func Nominal(v float64) Value {
	return Value{V: v, U: UnitNominal}
}

// Scaled returns the Value for v already scaled units.
func Scaled(v float64) Value {
	return Value{V: v, U: UnitScaled}
}

// Resolve returns the scaled size of v. Nominal values are multiplied
// by the factor of s.
func (v Value) Resolve(s Scaler) float64 {
	if v.U == UnitScaled {
		return v.V
	}
	return v.V * s.Factor()
}

// In returns v converted to a scaled Value.
func (v Value) In(s Scaler) Value {
	return Scaled(v.Resolve(s))
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitNominal:
		return "nt"
	case UnitScaled:
		return "sc"
	default:
		panic("unknown unit")
	}
}

// Of returns the scaled size of the nominal number v.
func Of[T Number](s Scaler, v T) float64 {
	return Nominal(float64(v)).Resolve(s)
}

// Fixed returns the scaled size of the nominal v as a 26.6 fixed
// point number, the form font rasterizers take text sizes in.
func Fixed(s Scaler, v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(Of(s, v) * 64))
}

// Add a list of Values.
func Add(s Scaler, values ...Value) Value {
	var sum Value
	for _, v := range values {
		sum, v = compatible(s, sum, v)
		sum.V += v.V
	}
	return sum
}

// Max returns the maximum of a list of Values, or the zero Value for
// an empty list.
func Max(s Scaler, values ...Value) Value {
	if len(values) == 0 {
		return Value{}
	}
	max := values[0]
	for _, v := range values[1:] {
		max, v = compatible(s, max, v)
		if v.V > max.V {
			max.V = v.V
		}
	}
	return max
}

func compatible(s Scaler, v1, v2 Value) (Value, Value) {
	if v1.U == v2.U {
		return v1, v2
	}
	if v1.V == 0 {
		v1.U = v2.U
		return v1, v2
	}
	if v2.V == 0 {
		v2.U = v1.U
		return v1, v2
	}
	return v1.In(s), v2.In(s)
}
