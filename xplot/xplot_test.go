/*
 * xplot_test.go, part of goXtal.
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

package xplot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	xtal "github.com/goxtal/goxtal"
	"github.com/goxtal/goxtal/histo"
	"github.com/goxtal/goxtal/subcell"
)

func testIndex(Te *testing.T) *subcell.SubCells {
	mol := xtal.NewModel()
	ch := mol.AddChain("A")
	for i, x := range []float64{0, 1.5, 3.0, 4.5} {
		res := &xtal.Residue{Name: "HOH", ID: i + 1}
		res.AddAtom(&xtal.Atom{Name: "O", Symbol: "O", Pos: xtal.Position{X: x}})
		ch.AddResidue(res)
	}
	cs, err := subcell.New(mol, nil, 5.0)
	if err != nil {
		Te.Fatal(err)
	}
	cs.Populate(true)
	return cs
}

func TestContactMap(Te *testing.T) {
	cs := testIndex(Te)
	name := filepath.Join(Te.TempDir(), "contactmap")
	if err := ContactMap(cs, subcell.NewContactConfig(5.0), "test map", name); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(name + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("Contact map PNG is empty")
	}
	fmt.Println("contact map written:", info.Size(), "bytes")
}

func TestDistanceHistogram(Te *testing.T) {
	cs := testIndex(Te)
	D, err := histo.FromContacts(cs, subcell.NewContactConfig(5.0), histo.Uniform(0, 5, 10))
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "distances")
	if err := DistanceHistogram(D, "contact distances", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Fatal(err)
	}
}
