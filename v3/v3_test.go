/*
 * v3_test.go, part of goXtal.
 *
 * Copyright 2026 The goXtal developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 || A.At(1, 2) != 6 {
		Te.Error("Matrix not built correctly")
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("Expected an error for a length not divisible by 3")
	}
}

func TestViewsAndSelection(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	v := A.VecView(1)
	v.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("VecView is not a view")
	}
	sel := Zeros(2)
	sel.SomeVecs(A, []int{0, 2})
	if sel.At(1, 2) != 9 {
		Te.Error("SomeVecs picked the wrong rows")
	}
	sel.Scale(2, sel)
	A.SetVecs(sel, []int{0, 2})
	if A.At(2, 2) != 18 {
		Te.Error("SetVecs did not write back")
	}
}

func TestVectorOps(Te *testing.T) {
	a, _ := NewMatrix([]float64{1, 0, 0})
	b, _ := NewMatrix([]float64{0, 1, 0})
	c := Zeros(1)
	c.Cross(a, b)
	if c.At(0, 2) != 1 {
		Te.Error("Cross product wrong")
	}
	if a.Dot(b) != 0 {
		Te.Error("Dot product wrong")
	}
	d := Zeros(1)
	d.Sub(a, b)
	if math.Abs(d.Norm()-math.Sqrt2) > 1e-12 {
		Te.Errorf("Norm came out as %f", d.Norm())
	}
	e := Zeros(2)
	rows, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	e.AddVec(rows, a)
	if e.At(1, 0) != 3 || e.At(1, 1) != 2 {
		Te.Error("AddVec broadcast wrong")
	}
}
