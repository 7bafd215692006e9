/*
 * unitcell_test.go, part of goXtal.
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

package xtal

import (
	"fmt"
	"math"
	"testing"
)

func TestCellValidation(Te *testing.T) {
	if _, err := NewUnitCell(0, 10, 10, 90, 90, 90); err == nil {
		Te.Error("Expected an error for a zero cell length")
	}
	if _, err := NewUnitCell(10, 10, 10, 90, 180, 90); err == nil {
		Te.Error("Expected an error for a 180 degree angle")
	}
	if _, err := NewUnitCell(10, 10, 10, 1e-9, 90, 90); err == nil {
		Te.Error("Expected an error for a degenerate cell")
	}
}

//TestFracOrthRoundTrip checks the mutual-inverse invariant on a
//triclinic cell, where the orthogonalization matrix has all its
//off-diagonal terms.
func TestFracOrthRoundTrip(Te *testing.T) {
	cell, err := NewUnitCell(25.3, 31.7, 18.2, 83.2, 95.5, 102.1)
	if err != nil {
		Te.Fatal(err)
	}
	for _, p := range []Position{{0, 0, 0}, {1.5, -2.7, 3.1}, {24, 30, 17}, {-5, 40, 0.001}} {
		f := cell.Fractionalize(p)
		q := cell.Orthogonalize(f)
		if math.Abs(p.X-q.X) > 1e-9 || math.Abs(p.Y-q.Y) > 1e-9 || math.Abs(p.Z-q.Z) > 1e-9 {
			Te.Errorf("Round trip moved %v to %v", p, q)
		}
	}
	fmt.Println("triclinic round trip passed, volume", cell.Volume())
}

func TestWrap(Te *testing.T) {
	f := Fractional{1.25, -0.25, 3.0}.Wrap()
	if math.Abs(f.X-0.25) > 1e-12 || math.Abs(f.Y-0.75) > 1e-12 || math.Abs(f.Z) > 1e-12 {
		Te.Errorf("Wrap gave %v", f)
	}
}

//TestPeriodicDistance: the minimum-image distance between points near
//opposite faces is short, while the naive one is long.
func TestPeriodicDistance(Te *testing.T) {
	cell, err := NewUnitCell(10, 10, 10, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}
	p1 := Position{0.5, 5, 5}
	p2 := Position{9.7, 5, 5}
	if d := cell.DistanceSq(p1, p2); math.Abs(d-0.64) > 1e-9 {
		Te.Errorf("Periodic squared distance %f, expected 0.64", d)
	}
	box, err := NewBox(10, 10, 10)
	if err != nil {
		Te.Fatal(err)
	}
	if box.IsCrystal() {
		Te.Error("NewBox returned a crystal cell")
	}
	if d := box.DistanceSq(p1, p2); math.Abs(d-9.2*9.2) > 1e-9 {
		Te.Errorf("Box squared distance %f, expected %f", d, 9.2*9.2)
	}
}

func TestFTransform(Te *testing.T) {
	tr := Translation(0.5, 0, -0.25)
	f := tr.Apply(Fractional{0.1, 0.2, 0.3})
	if math.Abs(f.X-0.6) > 1e-12 || math.Abs(f.Y-0.2) > 1e-12 || math.Abs(f.Z-0.05) > 1e-12 {
		Te.Errorf("Translation gave %v", f)
	}
	//a 2-fold rotation around z with a half-cell shift, a common
	//P2(1) style operator
	op, err := NewFTransform([]float64{-1, 0, 0, 0, -1, 0, 0, 0, 1}, [3]float64{0, 0, 0.5})
	if err != nil {
		Te.Fatal(err)
	}
	g := op.Apply(Fractional{0.1, 0.2, 0.3}).Wrap()
	if math.Abs(g.X-0.9) > 1e-12 || math.Abs(g.Y-0.8) > 1e-12 || math.Abs(g.Z-0.8) > 1e-12 {
		Te.Errorf("Twofold screw gave %v", g)
	}
	if _, err := NewFTransform([]float64{1, 2, 3}, [3]float64{}); err == nil {
		Te.Error("Expected an error for a malformed rotation")
	}
}

func TestPerpendicularWidths(Te *testing.T) {
	cell, err := NewUnitCell(10, 12, 14, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}
	du, dv, dw := cell.PerpendicularWidths()
	if math.Abs(du-10) > 1e-9 || math.Abs(dv-12) > 1e-9 || math.Abs(dw-14) > 1e-9 {
		Te.Errorf("Orthogonal widths came out as %f %f %f", du, dv, dw)
	}
	//for a skewed cell the widths must be smaller than the edges
	skew, err := NewUnitCell(10, 10, 10, 90, 90, 60)
	if err != nil {
		Te.Fatal(err)
	}
	du, dv, _ = skew.PerpendicularWidths()
	if du >= 10 || dv >= 10 {
		Te.Errorf("Skewed widths not smaller than edges: %f %f", du, dv)
	}
}
