/*
 * clash.go, part of goXtal.
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

//Package clash finds steric clashes: pairs of non-bonded atoms whose
//van der Waals spheres overlap by more than a tolerance. It is a thin
//client of the subcell index, so symmetry mates and periodic images are
//checked too.
package clash

import (
	"fmt"
	"log"
	"math"
	"sort"

	xtal "github.com/goxtal/goxtal"
	"github.com/goxtal/goxtal/subcell"
)

//Options controls the clash search.
type Options struct {
	//the sum of vdW radii is scaled by this before comparing with the
	//distance, so values under 1 make the test more permissive
	VdwScale float64
	//smallest overlap (in A) worth reporting
	MinOverlap float64
	//whether hydrogens take part in the search
	IncludeHydrogens bool
	//contacts between atoms of the same residue are skipped unless
	//this is set; bonded atoms always "clash" by the vdW criterion
	CountIntraResidue bool
}

//DefaultOptions returns the usual settings: heavy atoms only, full vdW
//radii, overlaps over 0.4 A reported.
func DefaultOptions() *Options {
	return &Options{VdwScale: 1.0, MinOverlap: 0.4}
}

//Clash is one reported overlap. Dist is the actual distance between the
//two occurrences and Overlap how far inside each other their scaled vdW
//spheres sit.
type Clash struct {
	A, B    xtal.CRA
	Image   int
	Dist    float64
	Overlap float64
}

func (c Clash) String() string {
	return fmt.Sprintf("%v--%v image %d dist %.2f overlap %.2f", c.A, c.B, c.Image, c.Dist, c.Overlap)
}

//maxSearchRadius is twice the largest tabulated vdW radius scaled, i.e.
//the longest distance at which any pair could still overlap.
func maxSearchRadius(opts *Options) float64 {
	const largestVdw = 2.75 //K, the largest radius in the tables
	return 2 * largestVdw * opts.VdwScale
}

//Find returns the clashes in mol, worst first. A nil cell (or a
//non-crystal one) restricts the search to the model itself; a crystal
//cell with images also reports clashes against symmetry mates. Atoms of
//unknown elements are skipped with a logged warning.
func Find(mol *xtal.Model, cell *xtal.UnitCell, opts *Options) ([]Clash, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	radius := maxSearchRadius(opts)
	cs, err := subcell.New(mol, cell, radius)
	if err != nil {
		return nil, errDecorate(err, "clash.Find")
	}
	if err := cs.Populate(opts.IncludeHydrogens); err != nil {
		return nil, errDecorate(err, "clash.Find")
	}
	conf := subcell.NewContactConfig(radius)
	conf.SkipIntraResidueLinks = !opts.CountIntraResidue
	var found []Clash
	err = cs.ForEachContact(conf, func(a, b xtal.CRA, image int, dsq float32) bool {
		ra := xtal.VdwRad(a.Atom.Symbol)
		rb := xtal.VdwRad(b.Atom.Symbol)
		if ra == 0 || rb == 0 {
			log.Printf("clash: no vdW radius for %s or %s, pair %v--%v skipped", a.Atom.Symbol, b.Atom.Symbol, a, b)
			return true
		}
		dist := math.Sqrt(float64(dsq))
		overlap := (ra+rb)*opts.VdwScale - dist
		if overlap > opts.MinOverlap {
			found = append(found, Clash{A: a, B: b, Image: image, Dist: dist, Overlap: overlap})
		}
		return true
	})
	if err != nil {
		return nil, errDecorate(err, "clash.Find")
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Overlap > found[j].Overlap })
	return found, nil
}

//Worst returns the largest clash in mol, or ok==false if there is none.
func Worst(mol *xtal.Model, cell *xtal.UnitCell, opts *Options) (Clash, bool, error) {
	all, err := Find(mol, cell, opts)
	if err != nil || len(all) == 0 {
		return Clash{}, false, err
	}
	return all[0], true, nil
}

func errDecorate(err error, caller string) error {
	err2, ok := err.(interface {
		Error() string
		Decorate(string) []string
	})
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2.(error)
}
