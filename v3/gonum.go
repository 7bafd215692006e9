/*
 * gonum.go, part of goXtal.
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

//Package v3 implements sets of row vectors in 3D space on top of
//gonum/mat. Within the package a "vector" is a row vector, i.e. the
//cartesian coordinates of one point, and a Matrix is a stack of them,
//one per point.
package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, backed by a gonum Dense matrix
//with 3 columns.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum matrix backing A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a 3-column gonum matrix into a v3.Matrix. It panics
//if A doesn't have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data,
//which is read in row-major order.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-initialized Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the i-th vector of the matrix. Changes in
//the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and c
//columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//Copy returns a new Matrix with a copy of the data in F.
func (F *Matrix) Copy() *Matrix {
	ret := Zeros(F.NVecs())
	ret.Dense.Copy(F.Dense)
	return ret
}

//SomeVecs puts in the receiver the vectors of A with the indexes given
//in clist, in that order. The receiver must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) || A.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for k, j := range clist {
		for i := 0; i < 3; i++ {
			F.Dense.Set(k, i, A.Dense.At(j, i))
		}
	}
}

//SetVecs copies the vectors of A into the vectors of the receiver with
//the indexes given in clist, in order.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for k, j := range clist {
		for i := 0; i < 3; i++ {
			F.Dense.Set(j, i, A.Dense.At(k, i))
		}
	}
}

//Add puts in the receiver the element-wise sum of A and B. All three
//must have the same dimensions.
func (F *Matrix) Add(A, B *Matrix) {
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts in the receiver the element-wise difference A-B. All three
//must have the same dimensions.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

//AddVec adds the single row of vec to every row of A, putting the
//result in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	if vec.NVecs() != 1 {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Dense.Set(i, j, A.Dense.At(i, j)+vec.Dense.At(0, j))
		}
	}
}

//SubVec subtracts the single row of vec from every row of A, putting
//the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	if vec.NVecs() != 1 {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Dense.Set(i, j, A.Dense.At(i, j)-vec.Dense.At(0, j))
		}
	}
}

//Scale puts in the receiver the matrix A scaled by v.
func (F *Matrix) Scale(v float64, A *Matrix) {
	F.Dense.Scale(v, A.Dense)
}

//Norm returns the Frobenius norm of the matrix, which for a single
//vector is its Euclidean length.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

//Dot returns the dot product of the receiver and B, both of which must
//be single vectors.
func (F *Matrix) Dot(B *Matrix) float64 {
	if F.NVecs() != 1 || B.NVecs() != 1 {
		panic(ErrNotEnoughElements)
	}
	return F.At(0, 0)*B.At(0, 0) + F.At(0, 1)*B.At(0, 1) + F.At(0, 2)*B.At(0, 2)
}

//Cross puts in the receiver the cross product of the single vectors a
//and b.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	F.Set(0, 0, a.At(0, 1)*b.At(0, 2)-a.At(0, 2)*b.At(0, 1))
	F.Set(0, 1, a.At(0, 2)*b.At(0, 0)-a.At(0, 0)*b.At(0, 2))
	F.Set(0, 2, a.At(0, 0)*b.At(0, 1)-a.At(0, 1)*b.At(0, 0))
}

//Errors

//Error is the error type for the v3 package, carrying a decoration
//trail of caller names.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

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

//PanicMsg is a message used for panics, even though it does satisfy the
//error interface. For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("goXtal/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct    = PanicMsg("goXtal/v3: Invalid matrix for cross product")
	ErrNotEnoughElements = PanicMsg("goXtal/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("goXtal/v3: Dimension mismatch")
)
