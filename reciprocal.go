/*
 * reciprocal.go, part of gocrystal.
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

package crystal

import (
	"math"

	v3 "github.com/rmera/gocrystal/v3"
)

const appzero float64 = 0.000000000001 //relative volumes equal or less than this (in absolute value) are considered zero.

//Reciprocal returns the reciprocal vectors of the lattice vectors in lv, and the volume
//of the cell they span. Row i of lv is the lattice vector a_(i+1), and row i of the returned
//matrix is b_(i+1) = (a_j x a_k)/V for cyclic (i,j,k), with V = a1 . (a2 x a3).
//It returns a *DegenerateLatticeError if the vectors are linearly dependent, or
//so close to it that V is negligible compared to |a1||a2||a3|.
func Reciprocal(lv *v3.Matrix) (*v3.Matrix, float64, error) {
	if lv == nil || lv.NVecs() != 3 {
		err := &CError{msg: ErrNotThreeVectors}
		err.Decorate("Reciprocal")
		return nil, 0, err
	}
	a1 := lv.VecView(0)
	a2 := lv.VecView(1)
	a3 := lv.VecView(2)
	rv := v3.Zeros(3)
	b1 := rv.VecView(0)
	b2 := rv.VecView(1)
	b3 := rv.VecView(2)
	b1.Cross(a2, a3)
	b2.Cross(a3, a1)
	b3.Cross(a1, a2)
	volume := a1.Dot(b1)
	//relative to a box with the same edges, so any units work.
	edges := a1.Norm(2) * a2.Norm(2) * a3.Norm(2)
	if math.Abs(volume) <= appzero*edges || math.IsNaN(volume) {
		return nil, volume, newDegenerateLatticeError(volume, "Reciprocal")
	}
	rv.Dense.Scale(1/volume, rv.Dense)
	return rv, volume, nil
}

//CellVectors returns the lattice vectors of the periodic box spanning dims unit
//cells of a cubic lattice with lattice constant a:
//(a*nx,0,0), (0,a*ny,0), (0,0,a*nz).
func CellVectors(dims [3]int, a float64) *v3.Matrix {
	lv := v3.Zeros(3)
	for i, n := range dims {
		lv.Set(i, i, a*float64(n))
	}
	return lv
}

//PrimitiveVectors returns the vectors of the primitive cell of the given cubic
//lattice with lattice constant a. For the simple cubic lattice the primitive and
//the unit cell are the same.
func PrimitiveVectors(kind Kind, a float64) (*v3.Matrix, error) {
	var data []float64
	switch kind {
	case SimpleCubic:
		data = []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
		a *= 2 //so the scaling below gives a
	case BodyCentredCubic:
		data = []float64{-1, 1, 1, 1, -1, 1, 1, 1, -1}
	case FaceCentredCubic:
		data = []float64{0, 1, 1, 1, 0, 1, 1, 1, 0}
	default:
		err := &CError{msg: ErrUnknownKind}
		err.Decorate("PrimitiveVectors")
		return nil, err
	}
	pv, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "PrimitiveVectors")
	}
	pv.Dense.Scale(a/2, pv.Dense)
	return pv, nil
}
