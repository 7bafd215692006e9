/*
 * xtal.go, part of goXtal.
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

	v3 "github.com/goxtal/goxtal/v3"
)

//Position is a point in orthogonal (cartesian) space, in Angstroms.
type Position struct {
	X, Y, Z float64
}

//DistSq returns the squared Euclidean distance between P and q.
//Note that this is the naive distance, with no periodicity involved.
//For periodic distances use UnitCell.DistanceSq.
func (P Position) DistSq(q Position) float64 {
	dx := P.X - q.X
	dy := P.Y - q.Y
	dz := P.Z - q.Z
	return dx*dx + dy*dy + dz*dz
}

//Atom contains the data for one atom, including its position. Unlike
//residue and chain names, the element Symbol follows the usual
//capitalization ("Ca", not "CA") so it can be used to look up element
//data.
type Atom struct {
	Name      string
	Symbol    string
	Altloc    byte //0 means no alternate location
	Pos       Position
	Occupancy float64
	Bfactor   float64
	Het       bool //was this a HETATM-type record in the source of the model?
}

//IsHydrogen returns whether the atom is a hydrogen or deuterium.
func (A *Atom) IsHydrogen() bool {
	return A.Symbol == "H" || A.Symbol == "D"
}

//Residue is a group of atoms with a name (e.g. "GLY") and a sequence
//identifier. The Atoms slice order is significant: the spatial index
//stores positional indices into it.
type Residue struct {
	Name   string
	ID     int
	Insert byte
	Atoms  []*Atom
}

//Atom returns the i-th atom of the residue. Panics if out of range.
func (R *Residue) Atom(i int) *Atom {
	if i < 0 || i >= len(R.Atoms) {
		panic(fmt.Sprintf("goXtal: Requested atom %d out of bounds in residue %s%d", i, R.Name, R.ID))
	}
	return R.Atoms[i]
}

//AddAtom appends an atom at the end of the residue.
func (R *Residue) AddAtom(at *Atom) {
	R.Atoms = append(R.Atoms, at)
}

//Chain is a named sequence of residues.
type Chain struct {
	Name     string
	Residues []*Residue
}

//Residue returns the i-th residue of the chain. Panics if out of range.
func (C *Chain) Residue(i int) *Residue {
	if i < 0 || i >= len(C.Residues) {
		panic(fmt.Sprintf("goXtal: Requested residue %d out of bounds in chain %s", i, C.Name))
	}
	return C.Residues[i]
}

//AddResidue appends a residue at the end of the chain.
func (C *Chain) AddResidue(res *Residue) {
	C.Residues = append(C.Residues, res)
}

//Model is the root of the structure hierarchy: a set of chains, each a
//set of residues, each a set of atoms. The slice ordering at every level
//is part of the model's contract: the spatial index (package subcell)
//records positional indices at population time and re-resolves them
//later, so reordering or deleting anything after an index was populated
//invalidates that index. Appending is fine.
type Model struct {
	Chains []*Chain
}

//NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

//Chain returns the i-th chain of the model. Panics if out of range.
func (M *Model) Chain(i int) *Chain {
	if i < 0 || i >= len(M.Chains) {
		panic(fmt.Sprintf("goXtal: Requested chain %d out of bounds", i))
	}
	return M.Chains[i]
}

//AddChain appends a chain to the model and returns it, so residues can
//be added to the returned value.
func (M *Model) AddChain(name string) *Chain {
	ch := &Chain{Name: name}
	M.Chains = append(M.Chains, ch)
	return ch
}

//Len returns the total number of atoms in the model.
func (M *Model) Len() int {
	n := 0
	for _, ch := range M.Chains {
		for _, res := range ch.Residues {
			n += len(res.Atoms)
		}
	}
	return n
}

//Coords collects the positions of every atom in the model, in traversal
//order (chain, then residue, then atom), into a new v3.Matrix with one
//row per atom. Returns nil for an empty model.
func (M *Model) Coords() *v3.Matrix {
	n := M.Len()
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, 3*n)
	for _, ch := range M.Chains {
		for _, res := range ch.Residues {
			for _, at := range res.Atoms {
				data = append(data, at.Pos.X, at.Pos.Y, at.Pos.Z)
			}
		}
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		panic(err.Error()) //this can only happen on a goXtal bug
	}
	return coords
}

//SetCoords writes the rows of coords back into the atoms of the model,
//in traversal order. It returns an error if the number of rows doesn't
//match the number of atoms.
func (M *Model) SetCoords(coords *v3.Matrix) error {
	if coords.NVecs() != M.Len() {
		return Error{message: fmt.Sprintf("%d coordinates given for a model of %d atoms", coords.NVecs(), M.Len()), critical: true}
	}
	i := 0
	for _, ch := range M.Chains {
		for _, res := range ch.Residues {
			for _, at := range res.Atoms {
				at.Pos = Position{coords.At(i, 0), coords.At(i, 1), coords.At(i, 2)}
				i++
			}
		}
	}
	return nil
}

//CRA references one atom within a model by pointing at its chain,
//residue and atom. The pointers alias the model, they do not copy it.
type CRA struct {
	Chain   *Chain
	Residue *Residue
	Atom    *Atom
}

//String returns a short human-readable identifier like "A/GLY12/CA".
func (c CRA) String() string {
	if c.Atom == nil {
		return "<nil CRA>"
	}
	return fmt.Sprintf("%s/%s%d/%s", c.Chain.Name, c.Residue.Name, c.Residue.ID, c.Atom.Name)
}
