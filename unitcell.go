/*
 * unitcell.go, part of goXtal.
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

	"gonum.org/v1/gonum/mat"
)

//Fractional is a point expressed in multiples of the unit cell basis
//vectors. Inside one periodic cell each component lies in [0,1).
type Fractional struct {
	X, Y, Z float64
}

//Wrap returns the fractional point with every component brought back
//into [0,1).
func (F Fractional) Wrap() Fractional {
	return Fractional{F.X - math.Floor(F.X), F.Y - math.Floor(F.Y), F.Z - math.Floor(F.Z)}
}

//wrapToHalf brings every component into [-0.5,0.5), which turns a
//fractional difference into its minimum-image equivalent.
func (F Fractional) wrapToHalf() Fractional {
	w := func(x float64) float64 {
		x -= math.Floor(x)
		if x >= 0.5 {
			x--
		}
		return x
	}
	return Fractional{w(F.X), w(F.Y), w(F.Z)}
}

//FTransform is a symmetry operation acting on fractional coordinates: a
//3x3 rotation part followed by a translation.
type FTransform struct {
	Rot   *mat.Dense //3x3
	Trans [3]float64
}

//Translation returns the FTransform that only translates, by (x,y,z)
//fractional units.
func Translation(x, y, z float64) FTransform {
	ident := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	return FTransform{Rot: ident, Trans: [3]float64{x, y, z}}
}

//NewFTransform builds an FTransform from a row-major 9-element rotation
//and a translation.
func NewFTransform(rot []float64, trans [3]float64) (FTransform, error) {
	if len(rot) != 9 {
		return FTransform{}, Error{message: fmt.Sprintf("rotation needs 9 elements, got %d", len(rot)), critical: true}
	}
	r := mat.NewDense(3, 3, rot)
	return FTransform{Rot: r, Trans: trans}, nil
}

//Apply transforms the fractional point f.
func (T FTransform) Apply(f Fractional) Fractional {
	return Fractional{
		T.Rot.At(0, 0)*f.X + T.Rot.At(0, 1)*f.Y + T.Rot.At(0, 2)*f.Z + T.Trans[0],
		T.Rot.At(1, 0)*f.X + T.Rot.At(1, 1)*f.Y + T.Rot.At(1, 2)*f.Z + T.Trans[1],
		T.Rot.At(2, 0)*f.X + T.Rot.At(2, 1)*f.Y + T.Rot.At(2, 2)*f.Z + T.Trans[2],
	}
}

//UnitCell is a periodic parallelepiped described by its edge lengths (in
//Angstroms) and angles (in degrees), plus the list of symmetry images
//applicable to fractional coordinates. A cell built with NewBox has the
//same machinery but IsCrystal() reports false, which tells consumers
//(like the subcell index) that the periodicity is synthetic.
type UnitCell struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
	Images             []FTransform
	orth, frac         *mat.Dense //fractional->orthogonal and its inverse
	volume             float64
	crystal            bool
}

//NewUnitCell builds a crystallographic unit cell. It returns an error on
//non-positive lengths, angles outside (0,180) or a degenerate (zero
//volume) combination.
func NewUnitCell(a, b, c, alpha, beta, gamma float64) (*UnitCell, error) {
	cell, err := newCell(a, b, c, alpha, beta, gamma)
	if err != nil {
		return nil, errDecorate(err, "NewUnitCell")
	}
	cell.crystal = true
	return cell, nil
}

//NewBox builds an orthogonal (90/90/90) non-crystal cell of the given
//size. It is what the spatial index synthesizes for non-periodic models.
func NewBox(x, y, z float64) (*UnitCell, error) {
	cell, err := newCell(x, y, z, 90, 90, 90)
	if err != nil {
		return nil, errDecorate(err, "NewBox")
	}
	cell.crystal = false
	return cell, nil
}

func newCell(a, b, c, alpha, beta, gamma float64) (*UnitCell, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, Error{message: fmt.Sprintf("non-positive cell length: %4.2f %4.2f %4.2f", a, b, c), critical: true}
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return nil, Error{message: fmt.Sprintf("cell angle out of range: %4.2f", ang), critical: true}
		}
	}
	deg2rad := math.Pi / 180.0
	cosa := math.Cos(alpha * deg2rad)
	cosb := math.Cos(beta * deg2rad)
	cosg := math.Cos(gamma * deg2rad)
	sing := math.Sin(gamma * deg2rad)
	arg := 1 - cosa*cosa - cosb*cosb - cosg*cosg + 2*cosa*cosb*cosg
	if arg <= 0 {
		return nil, Error{message: "degenerate (zero-volume) unit cell", critical: true}
	}
	vol := a * b * c * math.Sqrt(arg)
	orth := mat.NewDense(3, 3, []float64{
		a, b * cosg, c * cosb,
		0, b * sing, c * (cosa - cosb*cosg) / sing,
		0, 0, vol / (a * b * sing),
	})
	frac := mat.NewDense(3, 3, nil)
	if err := frac.Inverse(orth); err != nil {
		return nil, Error{message: "singular orthogonalization matrix: " + err.Error(), critical: true}
	}
	return &UnitCell{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma,
		orth: orth, frac: frac, volume: vol}, nil
}

//IsCrystal reports whether the cell describes genuine crystallographic
//periodicity, as opposed to a synthetic box around a non-periodic model.
func (U *UnitCell) IsCrystal() bool { return U != nil && U.crystal }

//Volume returns the cell volume in cubic Angstroms.
func (U *UnitCell) Volume() float64 { return U.volume }

//Fractionalize converts an orthogonal position to fractional
//coordinates. It does not wrap the result.
func (U *UnitCell) Fractionalize(p Position) Fractional {
	return Fractional{
		U.frac.At(0, 0)*p.X + U.frac.At(0, 1)*p.Y + U.frac.At(0, 2)*p.Z,
		U.frac.At(1, 0)*p.X + U.frac.At(1, 1)*p.Y + U.frac.At(1, 2)*p.Z,
		U.frac.At(2, 0)*p.X + U.frac.At(2, 1)*p.Y + U.frac.At(2, 2)*p.Z,
	}
}

//Orthogonalize converts fractional coordinates to an orthogonal
//position.
func (U *UnitCell) Orthogonalize(f Fractional) Position {
	return Position{
		U.orth.At(0, 0)*f.X + U.orth.At(0, 1)*f.Y + U.orth.At(0, 2)*f.Z,
		U.orth.At(1, 0)*f.X + U.orth.At(1, 1)*f.Y + U.orth.At(1, 2)*f.Z,
		U.orth.At(2, 0)*f.X + U.orth.At(2, 1)*f.Y + U.orth.At(2, 2)*f.Z,
	}
}

//DistanceSq returns the squared distance between p1 and p2. For a
//crystal cell this is the periodic (minimum-image) distance; for a
//non-crystal box it is the plain Euclidean one.
func (U *UnitCell) DistanceSq(p1, p2 Position) float64 {
	if !U.IsCrystal() {
		return p1.DistSq(p2)
	}
	f1 := U.Fractionalize(p1)
	f2 := U.Fractionalize(p2)
	delta := Fractional{f1.X - f2.X, f1.Y - f2.Y, f1.Z - f2.Z}.wrapToHalf()
	d := U.Orthogonalize(delta)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

//AddImage appends a symmetry image operator to the cell. The identity
//must not be added: image 0 (the unmodified position) is implicit.
func (U *UnitCell) AddImage(op FTransform) {
	U.Images = append(U.Images, op)
}

//PerpendicularWidths returns the perpendicular distances between the
//pairs of opposite cell faces, one per axis. For skewed cells these are
//smaller than the edge lengths, and they are the right quantity to
//subdivide when a grid cell must be at least as wide as a search radius.
func (U *UnitCell) PerpendicularWidths() (float64, float64, float64) {
	deg2rad := math.Pi / 180.0
	sina := math.Sin(U.Alpha * deg2rad)
	sinb := math.Sin(U.Beta * deg2rad)
	sing := math.Sin(U.Gamma * deg2rad)
	return U.volume / (U.B * U.C * sina),
		U.volume / (U.A * U.C * sinb),
		U.volume / (U.A * U.B * sing)
}

//errDecorate asserts that err implements the Decorate method and
//decorates it with the caller's name before returning it.
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
