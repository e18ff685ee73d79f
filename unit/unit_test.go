// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/indextrown/ScaleKit/device"
	"github.com/indextrown/ScaleKit/scale"
	"github.com/indextrown/ScaleKit/unit"
)

type factor float64

func (f factor) Factor() float64 { return float64(f) }

func TestValue_Resolve(t *testing.T) {
	s := factor(2)

	if got, exp := unit.Nominal(5).Resolve(s), 10.0; got != exp {
		t.Errorf("nominal resolve mismatch %v != %v", got, exp)
	}
	if got, exp := unit.Scaled(5).Resolve(s), 5.0; got != exp {
		t.Errorf("scaled resolve mismatch %v != %v", got, exp)
	}
	if got, exp := unit.Nominal(5).In(s), unit.Scaled(10); got != exp {
		t.Errorf("In mismatch %v != %v", got, exp)
	}
}

func TestAdd(t *testing.T) {
	s := factor(0.5)
	tests := []struct {
		values []unit.Value
		exp    unit.Value
	}{
		{nil, unit.Nominal(0)},
		{[]unit.Value{unit.Nominal(4), unit.Nominal(6)}, unit.Nominal(10)},
		{[]unit.Value{unit.Scaled(4), unit.Scaled(6)}, unit.Scaled(10)},
		{[]unit.Value{unit.Nominal(4), unit.Scaled(6)}, unit.Scaled(8)},
		{[]unit.Value{unit.Nominal(0), unit.Scaled(6)}, unit.Scaled(6)},
	}
	for _, test := range tests {
		if got := unit.Add(s, test.values...); got != test.exp {
			t.Errorf("Add(%v) = %v, expected %v", test.values, got, test.exp)
		}
	}
}

func TestMax(t *testing.T) {
	s := factor(0.5)
	if got, exp := unit.Max(s, unit.Nominal(10), unit.Scaled(6)), unit.Scaled(6); got != exp {
		t.Errorf("Max mismatch %v != %v", got, exp)
	}
	if got, exp := unit.Max(s, unit.Nominal(10), unit.Nominal(3)), unit.Nominal(10); got != exp {
		t.Errorf("Max mismatch %v != %v", got, exp)
	}
	if got, exp := unit.Max(factor(1), unit.Nominal(-5), unit.Nominal(-3)), unit.Nominal(-3); got != exp {
		t.Errorf("Max of negative values %v != %v", got, exp)
	}
	if got, exp := unit.Max(s, unit.Scaled(-5), unit.Nominal(-20)), unit.Scaled(-5); got != exp {
		t.Errorf("Max of mixed negative values %v != %v", got, exp)
	}
	if got, exp := unit.Max(s), (unit.Value{}); got != exp {
		t.Errorf("Max of no values %v != %v", got, exp)
	}
}

func TestOf(t *testing.T) {
	s := factor(1.5)
	if got, exp := unit.Of(s, 18), 27.0; got != exp {
		t.Errorf("Of(int) mismatch %v != %v", got, exp)
	}
	if got, exp := unit.Of(s, float32(2)), 3.0; got != exp {
		t.Errorf("Of(float32) mismatch %v != %v", got, exp)
	}
	if got, exp := unit.Of(s, uint8(4)), 6.0; got != exp {
		t.Errorf("Of(uint8) mismatch %v != %v", got, exp)
	}
}

func TestFixed(t *testing.T) {
	if got, exp := unit.Fixed(factor(1), 12), fixed.I(12); got != exp {
		t.Errorf("Fixed mismatch %v != %v", got, exp)
	}
	if got, exp := unit.Fixed(factor(0.5), 3), fixed.Int26_6(96); got != exp {
		t.Errorf("Fixed mismatch %v != %v", got, exp)
	}
}

func TestString(t *testing.T) {
	if got, exp := unit.Nominal(18).String(), "18nt"; got != exp {
		t.Errorf("String mismatch %q != %q", got, exp)
	}
	if got, exp := unit.Scaled(16.5).String(), "16.5sc"; got != exp {
		t.Errorf("String mismatch %q != %q", got, exp)
	}
}

func TestEngineScaler(t *testing.T) {
	e := scale.New()
	b := e.For(device.Compact)
	if got, exp := unit.Of(b, 18), 18.0; got != exp {
		t.Errorf("unscaled engine changed size %v != %v", got, exp)
	}
	e.SetViewport(860, 1864)
	if got, exp := unit.Nominal(9).Resolve(b), 18.0; got != exp {
		t.Errorf("doubled viewport resolve %v != %v", got, exp)
	}
}
