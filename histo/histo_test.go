/*
 * histo_test.go, part of goXtal.
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

package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	xtal "github.com/goxtal/goxtal"
	"github.com/goxtal/goxtal/subcell"
)

func TestBinning(Te *testing.T) {
	D, err := NewData(Uniform(0, 4, 4), []float64{0.5, 1.5, 1.5, 3.9, -1, 7})
	if err != nil {
		Te.Fatal(err)
	}
	if D.Total() != 4 {
		Te.Errorf("Out-of-range points counted: total %d", D.Total())
	}
	want := []float64{1, 2, 0, 1}
	for i, v := range D.View() {
		if v != want[i] {
			Te.Errorf("Bin %d has %v, expected %v", i, v, want[i])
		}
	}
	if math.Abs(D.Mean()-(0.5+1.5+1.5+3.9)/4) > 1e-12 {
		Te.Errorf("Mean came out as %f", D.Mean())
	}
	D.Normalize()
	if s := D.View()[0] + D.View()[1] + D.View()[3]; math.Abs(s-1) > 1e-12 {
		Te.Errorf("Normalized bins sum to %f", s)
	}
	D.UnNormalize()
	if D.View()[1] != 2 {
		Te.Error("UnNormalize did not restore counts")
	}
	if _, err := NewData([]float64{1, 1}, nil); err == nil {
		Te.Error("Expected an error for non-increasing dividers")
	}
}

func TestHistoJSON(Te *testing.T) {
	D, _ := NewData(Uniform(0, 2, 2), []float64{0.5, 1.5})
	j, err := json.Marshal(D)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("JSON:", string(j))
	D2 := new(Data)
	if err := json.Unmarshal(j, D2); err != nil {
		Te.Fatal(err)
	}
	if D2.Total() != 2 || D2.View()[1] != 1 {
		Te.Error("JSON round trip lost data")
	}
}

func TestFromContacts(Te *testing.T) {
	mol := xtal.NewModel()
	ch := mol.AddChain("A")
	for i, x := range []float64{0, 1.5, 4.5} {
		res := &xtal.Residue{Name: "HOH", ID: i + 1}
		res.AddAtom(&xtal.Atom{Name: "O", Symbol: "O", Pos: xtal.Position{X: x}})
		ch.AddResidue(res)
	}
	cs, err := subcell.New(mol, nil, 5.0)
	if err != nil {
		Te.Fatal(err)
	}
	cs.Populate(true)
	D, err := FromContacts(cs, subcell.NewContactConfig(5.0), Uniform(0, 5, 5))
	if err != nil {
		Te.Fatal(err)
	}
	//pairs at 1.5, 3.0 and 4.5 A
	if D.Total() != 3 {
		Te.Fatalf("Expected 3 binned contacts, got %d", D.Total())
	}
	want := []float64{0, 1, 0, 1, 1}
	for i, v := range D.View() {
		if v != want[i] {
			Te.Errorf("Bin %d has %v, expected %v", i, v, want[i])
		}
	}
}
