/*
 * geometric.go, part of goXtal.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	v3 "github.com/goxtal/goxtal/v3"
)

//BoundingBox returns the axis-aligned bounding box of a set of
//coordinates, as its minimum and maximum corners. It panics on a nil or
//empty matrix, as the box of nothing is not a meaningful question.
func BoundingBox(coords *v3.Matrix) (Position, Position) {
	if coords == nil || coords.NVecs() == 0 {
		panic(ErrNilCoords)
	}
	n := coords.NVecs()
	var lo, hi [3]float64
	col := make([]float64, n)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, coords.Dense)
		lo[j] = floats.Min(col)
		hi[j] = floats.Max(col)
	}
	return Position{lo[0], lo[1], lo[2]}, Position{hi[0], hi[1], hi[2]}
}

//CenterOfGeometry returns the unweighted centroid of a set of
//coordinates. It panics on a nil or empty matrix.
func CenterOfGeometry(coords *v3.Matrix) Position {
	if coords == nil || coords.NVecs() == 0 {
		panic(ErrNilCoords)
	}
	n := coords.NVecs()
	var c [3]float64
	col := make([]float64, n)
	for j := 0; j < 3; j++ {
		mat.Col(col, j, coords.Dense)
		c[j] = floats.Sum(col) / float64(n)
	}
	return Position{c[0], c[1], c[2]}
}
