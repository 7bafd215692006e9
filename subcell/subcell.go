/*
 * subcell.go, part of goXtal.
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

package subcell

import (
	"math"

	xtal "github.com/goxtal/goxtal"
)

//Mark is an immutable snapshot of one atom occurrence: either the atom's
//own position (ImageIdx 0) or the position generated by symmetry image
//ImageIdx-1. Marks don't reference live atoms; they carry positional
//indices into the model's hierarchy, re-resolved on demand with ToCRA.
//This keeps the grid valid even if the model's slices get reallocated by
//appends, at the cost of requiring the ordering to stay stable.
type Mark struct {
	X, Y, Z    float32
	Altloc     byte
	Symbol     string
	ImageIdx   int
	ChainIdx   int
	ResidueIdx int
	AtomIdx    int
}

//Pos returns the (possibly symmetry-generated) position of the mark.
func (M *Mark) Pos() xtal.Position {
	return xtal.Position{X: float64(M.X), Y: float64(M.Y), Z: float64(M.Z)}
}

//DistSq returns the squared Euclidean distance from the mark to p.
func (M *Mark) DistSq(p xtal.Position) float32 {
	dx := float32(p.X) - M.X
	dy := float32(p.Y) - M.Y
	dz := float32(p.Z) - M.Z
	return dx*dx + dy*dy + dz*dz
}

//ToCRA re-resolves the mark against mdl, which must be the model the
//index was populated from, with its ordering unchanged since then.
//Panics if the indices are out of range for mdl.
func (M *Mark) ToCRA(mdl *xtal.Model) xtal.CRA {
	ch := mdl.Chain(M.ChainIdx)
	res := ch.Residue(M.ResidueIdx)
	return xtal.CRA{Chain: ch, Residue: res, Atom: res.Atom(M.AtomIdx)}
}

//grid is one periodic unit divided into nu x nv x nw cells, stored
//row-major (u fastest). The unit cell here is the grid's own: for
//non-crystal models it is the synthetic box, not the cell the caller
//gave.
type grid struct {
	nu, nv, nw int
	cells      [][]Mark
	cell       *xtal.UnitCell
}

func (g *grid) setSize(nu, nv, nw int) {
	g.nu, g.nv, g.nw = nu, nv, nw
	g.cells = make([][]Mark, nu*nv*nw)
}

//indexQ assumes u,v,w already lie in [0,n) on each axis.
func (g *grid) indexQ(u, v, w int) int {
	return u + g.nu*(v+g.nv*w)
}

//indexN wraps each coordinate into range first. Used on insertion,
//where numeric deviations can put a wrapped fractional right on 1.0.
func (g *grid) indexN(u, v, w int) int {
	u = (u%g.nu + g.nu) % g.nu
	v = (v%g.nv + g.nv) % g.nv
	w = (w%g.nw + g.nw) % g.nw
	return g.indexQ(u, v, w)
}

func (g *grid) insert(fr xtal.Fractional, m Mark) {
	idx := g.indexN(int(fr.X*float64(g.nu)), int(fr.Y*float64(g.nv)), int(fr.Z*float64(g.nw)))
	g.cells[idx] = append(g.cells[idx], m)
}

//SubCells is the spatial index: a bucket grid over one periodic unit,
//tied to the model it was populated from and to the maximum radius it
//was built for. Queries with a larger radius than the build radius are
//undefined (they will silently miss atoms).
type SubCells struct {
	grid            grid
	radiusSpecified float64
	model           *xtal.Model
}

//New builds an index over mdl for searches up to maxRadius, ready to be
//populated. For a crystal cell the grid covers the given unit cell; for
//a nil or non-crystal cell it covers a synthetic orthogonal box around
//the model, padded by 4*maxRadius per side so that wrap-around can never
//bring two real atoms artificially close.
func New(mdl *xtal.Model, cell *xtal.UnitCell, maxRadius float64) (*SubCells, error) {
	S := new(SubCells)
	if err := S.Initialize(mdl, cell, maxRadius); err != nil {
		return nil, err
	}
	return S, nil
}

//Initialize sets up the grid. See New.
func (S *SubCells) Initialize(mdl *xtal.Model, cell *xtal.UnitCell, maxRadius float64) error {
	if mdl == nil {
		return Error{message: "nil model given", critical: true}
	}
	if maxRadius <= 0 {
		return Error{message: "non-positive search radius given", critical: true}
	}
	S.model = mdl
	S.radiusSpecified = maxRadius
	if cell.IsCrystal() {
		S.grid.cell = cell
	} else {
		margin := 4 * maxRadius
		var sx, sy, sz float64 = margin, margin, margin
		if coords := mdl.Coords(); coords != nil {
			lo, hi := xtal.BoundingBox(coords)
			sx += hi.X - lo.X
			sy += hi.Y - lo.Y
			sz += hi.Z - lo.Z
		}
		box, err := xtal.NewBox(sx, sy, sz)
		if err != nil {
			return errDecorate(err, "Initialize")
		}
		S.grid.cell = box
	}
	du, dv, dw := S.grid.cell.PerpendicularWidths()
	//the small tolerance keeps exact divisions (width 10, radius 1)
	//from losing a subdivision to floating-point noise
	const tol = 1e-9
	nu := int(du/maxRadius + tol)
	nv := int(dv/maxRadius + tol)
	nw := int(dw/maxRadius + tol)
	//a 3x3x3 block around any point must cover the whole search sphere,
	//so fewer than 3 cells per axis is never allowed
	S.grid.setSize(max(nu, 3), max(nv, 3), max(nw, 3))
	return nil
}

//Populate fills the grid: every atom of the model is inserted at its own
//position, plus once per symmetry image of the grid's unit cell, each
//wrapped into [0,1). With includeH false, hydrogens are left out, which
//saves memory and time when they are irrelevant to the search. Populate
//must be called after Initialize and before any query; calling it twice
//duplicates every mark.
func (S *SubCells) Populate(includeH bool) error {
	if S.model == nil || S.grid.cells == nil {
		return Error{message: "index not initialized", critical: true}
	}
	for nCh, ch := range S.model.Chains {
		for nRes, res := range ch.Residues {
			for nAtom, at := range res.Atoms {
				if includeH || !at.IsHydrogen() {
					S.addAtom(at, nCh, nRes, nAtom)
				}
			}
		}
	}
	return nil
}

func (S *SubCells) addAtom(at *xtal.Atom, nCh, nRes, nAtom int) {
	gcell := S.grid.cell
	frac0 := gcell.Fractionalize(at.Pos)
	frac := frac0.Wrap()
	pos := gcell.Orthogonalize(frac)
	S.grid.insert(frac, Mark{X: float32(pos.X), Y: float32(pos.Y), Z: float32(pos.Z),
		Altloc: at.Altloc, Symbol: at.Symbol, ImageIdx: 0,
		ChainIdx: nCh, ResidueIdx: nRes, AtomIdx: nAtom})
	for nIm, op := range gcell.Images {
		frac = op.Apply(frac0).Wrap()
		pos = gcell.Orthogonalize(frac)
		S.grid.insert(frac, Mark{X: float32(pos.X), Y: float32(pos.Y), Z: float32(pos.Z),
			Altloc: at.Altloc, Symbol: at.Symbol, ImageIdx: nIm + 1,
			ChainIdx: nCh, ResidueIdx: nRes, AtomIdx: nAtom})
	}
}

//sameConformer is the alternate-location compatibility rule: two
//occurrences can interact if either has no altloc set, or both have the
//same one.
func sameConformer(alt1, alt2 byte) bool {
	return alt1 == 0 || alt2 == 0 || alt1 == alt2
}

//ForEach visits every mark within radius of pos (strictly closer than
//radius) that is altloc-compatible with alt, calling f with the mark
//and its squared distance to pos. The visiting order is unspecified.
//Returning false from f stops the scan. A radius <= 0 visits nothing;
//a radius larger than the one the index was built with is undefined.
//
//The scan covers the 3x3x3 block of grid cells around pos's home cell,
//wrapping around the periodic boundaries on each axis independently.
//When a cell wraps, the comparison point itself is shifted by a full
//period, so periodic images are compared at their true geometric
//location rather than through their wrapped coordinates.
func (S *SubCells) ForEach(pos xtal.Position, alt byte, radius float64, f func(*Mark, float32) bool) {
	if radius <= 0 {
		return
	}
	g := &S.grid
	radSq := float32(radius * radius)
	fr := g.cell.Fractionalize(pos).Wrap()
	u0 := int(fr.X * float64(g.nu))
	v0 := int(fr.Y * float64(g.nv))
	w0 := int(fr.Z * float64(g.nw))
	for w := w0 - 1; w < w0+2; w++ {
		dw := 0
		if w >= g.nw {
			dw = -1
		} else if w < 0 {
			dw = 1
		}
		for v := v0 - 1; v < v0+2; v++ {
			dv := 0
			if v >= g.nv {
				dv = -1
			} else if v < 0 {
				dv = 1
			}
			for u := u0 - 1; u < u0+2; u++ {
				du := 0
				if u >= g.nu {
					du = -1
				} else if u < 0 {
					du = 1
				}
				idx := g.indexQ(u+du*g.nu, v+dv*g.nv, w+dw*g.nw)
				p := g.cell.Orthogonalize(xtal.Fractional{
					X: fr.X + float64(du), Y: fr.Y + float64(dv), Z: fr.Z + float64(dw)})
				bucket := g.cells[idx]
				for i := range bucket {
					m := &bucket[i]
					dsq := m.DistSq(p)
					if dsq < radSq && sameConformer(alt, m.Altloc) {
						if !f(m, dsq) {
							return
						}
					}
				}
			}
		}
	}
}

//FindAtoms collects every mark within radius of pos compatible with
//alt. See ForEach for the semantics of the filters.
func (S *SubCells) FindAtoms(pos xtal.Position, alt byte, radius float64) []*Mark {
	var out []*Mark
	S.ForEach(pos, alt, radius, func(m *Mark, _ float32) bool {
		out = append(out, m)
		return true
	})
	return out
}

//FindNeighbors collects the marks whose distance to at lies in
//(minDist, maxDist), using at's own altloc as the filter.
func (S *SubCells) FindNeighbors(at *xtal.Atom, minDist, maxDist float64) []*Mark {
	var out []*Mark
	minSq := float32(minDist * minDist)
	S.ForEach(at.Pos, at.Altloc, maxDist, func(m *Mark, dsq float32) bool {
		if dsq > minSq {
			out = append(out, m)
		}
		return true
	})
	return out
}

//FindNearestAtom returns the single closest mark to pos within the
//radius the index was built for, or nil if there is none.
func (S *SubCells) FindNearestAtom(pos xtal.Position) *Mark {
	var nearest *Mark
	nearestSq := float32(S.radiusSpecified * S.radiusSpecified)
	S.ForEach(pos, 0, S.radiusSpecified, func(m *Mark, dsq float32) bool {
		if dsq < nearestSq {
			nearest = m
			nearestSq = dsq
		}
		return true
	})
	return nearest
}

//ContactConfig configures ForEachContact.
type ContactConfig struct {
	//cutoff distance for reporting a contact
	SearchRadius float64
	//suppress contacts between two atoms of the same residue at the
	//same image; genuine intra-residue bonds are not "contacts"
	SkipIntraResidueLinks bool
	//squared distance below which an atom-to-own-image contact is
	//treated as special-position noise rather than a real self contact
	SpecialPosCutoffSq float32
}

//NewContactConfig returns the configuration with the usual defaults:
//intra-residue links skipped and a special-position cutoff of 0.8 A.
func NewContactConfig(searchRadius float64) ContactConfig {
	return ContactConfig{
		SearchRadius:          searchRadius,
		SkipIntraResidueLinks: true,
		SpecialPosCutoffSq:    0.8 * 0.8,
	}
}

//ForEachContact enumerates the unique inter-atom contacts within
//conf.SearchRadius, calling f with the two atom references, the image
//index that produced the second one, and the squared distance.
//Returning false from f stops the enumeration.
//
//Contacts are unordered pairs, reported exactly once: a candidate whose
//(chain, residue, atom) triple sorts lexicographically before the query
//atom's is discarded as the mirror of an already-reported pair. The
//image index is deliberately left out of that comparison, so a contact
//between an atom and a symmetry copy of itself survives dedup; it is
//only dropped when the copy is closer than conf.SpecialPosCutoffSq,
//which marks an atom sitting on (or near) a special position.
//
//For a structure with no symmetry images this yields the standard set
//of unique non-bonded pairs within the radius.
func (S *SubCells) ForEachContact(conf ContactConfig, f func(a, b xtal.CRA, imageIdx int, distSq float32) bool) error {
	if S.model == nil || S.grid.cells == nil {
		return Error{message: "index not initialized", critical: true}
	}
	stopped := false
	for nCh, ch := range S.model.Chains {
		for nRes, res := range ch.Residues {
			for nAtom, at := range res.Atoms {
				a := xtal.CRA{Chain: ch, Residue: res, Atom: at}
				S.ForEach(at.Pos, at.Altloc, conf.SearchRadius, func(m *Mark, dsq float32) bool {
					if conf.SkipIntraResidueLinks && m.ImageIdx == 0 &&
						m.ChainIdx == nCh && m.ResidueIdx == nRes {
						return true
					}
					//avoid reporting connections twice (A-B and B-A)
					if m.ChainIdx < nCh || (m.ChainIdx == nCh &&
						(m.ResidueIdx < nRes || (m.ResidueIdx == nRes &&
							m.AtomIdx < nAtom))) {
						return true
					}
					//an atom can be linked to its own image, but if the
					//image is this close the atom is likely on a
					//special position
					if m.ChainIdx == nCh && m.ResidueIdx == nRes &&
						m.AtomIdx == nAtom && dsq < conf.SpecialPosCutoffSq {
						return true
					}
					if !f(a, m.ToCRA(S.model), m.ImageIdx, dsq) {
						stopped = true
						return false
					}
					return true
				})
				if stopped {
					return nil
				}
			}
		}
	}
	return nil
}

//Model returns the model the index was built over.
func (S *SubCells) Model() *xtal.Model { return S.model }

//Radius returns the maximum search radius the index was built for.
func (S *SubCells) Radius() float64 { return S.radiusSpecified }

//Cell returns the unit cell the grid actually covers: the caller's cell
//for crystals, the synthetic box otherwise.
func (S *SubCells) Cell() *xtal.UnitCell { return S.grid.cell }

//Dims returns the grid subdivision counts (nu, nv, nw).
func (S *SubCells) Dims() (int, int, int) {
	return S.grid.nu, S.grid.nv, S.grid.nw
}

//DistSq returns the squared distance between two positions under the
//grid's cell metric (periodic for crystals).
func (S *SubCells) DistSq(p1, p2 xtal.Position) float64 {
	return S.grid.cell.DistanceSq(p1, p2)
}

//Dist is the square root of DistSq.
func (S *SubCells) Dist(p1, p2 xtal.Position) float64 {
	return math.Sqrt(S.DistSq(p1, p2))
}

//Error is the error type for the subcell package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string { return err.message }

//Decorate adds dec to the decoration slice of strings of the error, and
//returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

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
