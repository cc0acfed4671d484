/*
 * lattice.go, part of gocrystal.
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

//Extend returns the atoms in basis plus all the atoms with the same fractional
//coordinates in the other unit cells of a cubic lattice of dims unit cells with
//lattice constant a. The axes are extended in order, x, then y, then z, each one
//replicating the atoms accumulated so far, so the result has
//basis.NVecs()*dims[0]*dims[1]*dims[2] atoms. Atom i+1 of a copy is atom i of the
//previous copy, translated by one unit cell. The basis is not modified.
func Extend(basis *v3.Matrix, dims [3]int, a float64) (*v3.Matrix, error) {
	if err := checkDims(dims, "Extend"); err != nil {
		return nil, err
	}
	if basis == nil || basis.NVecs() == 0 {
		err := &CError{msg: ErrEmptyBasis}
		err.Decorate("Extend")
		return nil, err
	}
	atoms := basis.Copy()
	unit := v3.Zeros(1)
	for axis, length := range dims {
		if length == 1 {
			continue
		}
		count := atoms.NVecs()
		ext := v3.Zeros(count * length)
		ext.SetMatrix(0, atoms)
		zero(unit)
		unit.Set(0, axis, a)
		for i := 1; i < length; i++ {
			//each copy reads the atoms added in the previous iteration
			prev := ext.View((i-1)*count, count)
			next := ext.View(i*count, count)
			next.AddVec(prev, unit)
		}
		atoms = ext
	}
	return atoms, nil
}

//CellIndex returns the unit cell, in the lattice given by dims, where the atom
//with index i in a sublattice built by Extend from a one-atom basis lies.
func CellIndex(i int, dims [3]int) [3]int {
	nx, ny := dims[0], dims[1]
	return [3]int{i % nx, (i / nx) % ny, i / (nx * ny)}
}

func zero(d *v3.Matrix) {
	d.Set(0, 0, 0)
	d.Set(0, 1, 0)
	d.Set(0, 2, 0)
}

//validConstant is false for zero, negative, infinite and NaN lattice constants.
func validConstant(a float64) bool {
	return a > 0 && !math.IsInf(a, 1)
}
