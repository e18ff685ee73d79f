// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"math"
	"testing"
)

func TestRectangleSize(t *testing.T) {
	r := Rect(10, 20, 440, 952)
	if got, exp := r.Size(), Pt(430, 932); got != exp {
		t.Errorf("Size mismatch %v != %v", got, exp)
	}
	if r.Empty() {
		t.Errorf("%v reported empty", r)
	}
	if !Size(0, 932).Empty() {
		t.Errorf("zero width rectangle not empty")
	}
}

func TestDiagonal(t *testing.T) {
	tests := []struct {
		r   Rectangle
		exp float64
	}{
		{Size(3, 4), 5},
		{Size(0, 0), 0},
		{Size(430, 932), math.Sqrt(430*430 + 932*932)},
		{Rect(5, 5, 8, 9), 5},
	}
	for _, test := range tests {
		if got := test.r.Diagonal(); math.Abs(got-test.exp) > 1e-9 {
			t.Errorf("Diagonal(%v) = %v, expected %v", test.r, got, test.exp)
		}
	}
}

func TestDiagonalSymmetric(t *testing.T) {
	for _, sz := range []Point{{390, 844}, {414, 896}, {834, 1194}, {1, 1e6}} {
		if got, exp := Size(sz.Y, sz.X).Diagonal(), Size(sz.X, sz.Y).Diagonal(); got != exp {
			t.Errorf("swapped diagonal of %v: %v != %v", sz, got, exp)
		}
	}
}

func TestDiagonalNonFinite(t *testing.T) {
	if got := Size(1e200, 1e200).Diagonal(); !math.IsInf(got, 1) {
		t.Errorf("overflowing diagonal = %v, expected +Inf", got)
	}
	if got := Size(math.Inf(1), math.NaN()).Diagonal(); !math.IsNaN(got) {
		t.Errorf("Inf/NaN diagonal = %v, expected NaN", got)
	}
	if got := Size(math.Inf(-1), 10).Diagonal(); !math.IsInf(got, 1) {
		t.Errorf("-Inf diagonal = %v, expected +Inf", got)
	}
}

func TestPointMul(t *testing.T) {
	if got, exp := Pt(1600, 900).Mul(0.5), Pt(800, 450); got != exp {
		t.Errorf("Mul mismatch %v != %v", got, exp)
	}
}

func TestCanon(t *testing.T) {
	r := Rect(10, 10, 0, 0)
	if !r.Empty() {
		t.Errorf("inverted rectangle not empty")
	}
	if got, exp := r.Canon(), Rect(0, 0, 10, 10); got != exp {
		t.Errorf("Canon mismatch %v != %v", got, exp)
	}
}
