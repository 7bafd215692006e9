/*
 * report_test.go, part of goXtal.
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

package report

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	xtal "github.com/goxtal/goxtal"
	"github.com/goxtal/goxtal/subcell"
)

func TestRoundTrip(Te *testing.T) {
	in := []Contact{
		{A: "A/HOH1/O", B: "A/HOH2/O", Image: 0, Dist: 2.8},
		{A: "A/HOH1/O", B: "B/GLY5/CA", Image: 3, Dist: 3.4142},
	}
	for _, suffix := range []string{".dat", ".dat.gz", ".dat.z", ".dat.zst"} {
		name := filepath.Join(Te.TempDir(), "contacts"+suffix)
		W, err := NewWriter(name)
		if err != nil {
			Te.Fatal(err)
		}
		for _, c := range in {
			if err := W.WNext(c); err != nil {
				Te.Fatal(err)
			}
		}
		if W.Len() != len(in) {
			Te.Errorf("%s: writer counted %d records", suffix, W.Len())
		}
		if err := W.Close(); err != nil {
			Te.Fatal(err)
		}
		if err := W.WNext(in[0]); err == nil {
			Te.Error("Write after Close did not fail")
		}
		out, err := Read(name)
		if err != nil {
			Te.Fatal(err)
		}
		if len(out) != len(in) {
			Te.Fatalf("%s: read back %d records, wrote %d", suffix, len(out), len(in))
		}
		for i := range in {
			if out[i].A != in[i].A || out[i].B != in[i].B || out[i].Image != in[i].Image ||
				math.Abs(out[i].Dist-in[i].Dist) > 1e-4 {
				Te.Errorf("%s: record %d came back as %v", suffix, i, out[i])
			}
		}
		fmt.Println(suffix, "round trip passed")
	}
}

func TestFromIndex(Te *testing.T) {
	mol := xtal.NewModel()
	ch := mol.AddChain("A")
	for i, x := range []float64{0, 1.5, 3.0} {
		res := &xtal.Residue{Name: "HOH", ID: i + 1}
		res.AddAtom(&xtal.Atom{Name: "O", Symbol: "O", Pos: xtal.Position{X: x}})
		ch.AddResidue(res)
	}
	cs, err := subcell.New(mol, nil, 4.0)
	if err != nil {
		Te.Fatal(err)
	}
	cs.Populate(true)
	name := filepath.Join(Te.TempDir(), "contacts.zst")
	n, err := FromIndex(cs, subcell.NewContactConfig(4.0), name)
	if err != nil {
		Te.Fatal(err)
	}
	//pairs at 1.5, 1.5 and 3.0 A
	if n != 3 {
		Te.Errorf("Expected 3 contacts written, got %d", n)
	}
	out, err := Read(name)
	if err != nil {
		Te.Fatal(err)
	}
	if len(out) != 3 {
		Te.Fatalf("Read back %d contacts", len(out))
	}
	j, err := MarshalContacts(out)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("JSON:", string(j))
}
