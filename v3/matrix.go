/*
 * matrix.go, part of gocrystal.
 *
 * Copyright 2026 The gocrystal authors
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

//matrix.go contains the Matrix type and most of what is needed to deal with
//the gonum/mat types. All the *Vec functions work on row vectors.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. It embeds gonum's Dense, so
//it implements mat.Matrix and can be given to any gonum function.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The data slice is used as backing storage, it is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Len is the same as NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

//VecView returns a view of the ith vector of the matrix. Changes in the view
//are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from the vector i, spanning r vectors.
//Changes in the view are reflected in F and vice-versa.
//Very little memory is allocated, only a couple of ints and pointers.
func (F *Matrix) View(i, r int) *Matrix {
	if i < 0 || r <= 0 || i+r > F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

//Copy returns a new Matrix with the same contents as F.
func (F *Matrix) Copy() *Matrix {
	ret := Zeros(F.NVecs())
	ret.Dense.Copy(F.Dense)
	return ret
}

//SetMatrix puts the matrix A in the received starting from the ith vector
//of the receiver.
func (F *Matrix) SetMatrix(i int, A *Matrix) {
	ar := A.NVecs()
	if i < 0 || ar+i > F.NVecs() {
		panic(ErrShape)
	}
	F.View(i, ar).Dense.Copy(A.Dense)
}

//Stack returns a new matrix with the vectors of A followed by those of B.
func Stack(A, B *Matrix) *Matrix {
	ar := A.NVecs()
	ret := Zeros(ar + B.NVecs())
	ret.SetMatrix(0, A)
	ret.SetMatrix(ar, B)
	return ret
}

//Error is the error type for the functions in v3 that return errors.
//It implements the gocrystal Error interface.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("gocrystal/v3: A v3.Matrix should have 3 columns")
	ErrNoCrossProduct  = PanicMsg("gocrystal/v3: Invalid matrix for cross product")
	ErrShape           = PanicMsg("gocrystal/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("gocrystal/v3: index out of range")
	ErrZeroModulus     = PanicMsg("gocrystal/v3: modulus must be non-zero")
)
