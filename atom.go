/*
 * atom.go, part of gocrystal.
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

import "fmt"

//Atom contains the information of an atom in a crystal, except for the
//coordinates, which are kept in a v3.Matrix.
type Atom struct {
	Symbol     string
	Index      int    //the position of the atom in the coordinates matrix
	Sublattice int    //index of the basis atom this atom is a copy of
	Cell       [3]int //the unit cell where the atom is
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

func (A *Atom) String() string {
	return fmt.Sprintf("%s %d (sublattice %d, cell %v)", A.Symbol, A.Index, A.Sublattice, A.Cell)
}

//Topology contains the atoms of a crystal.
type Topology struct {
	Atoms []*Atom
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//crystalTopology builds the topology for nsub sublattices of symbol atoms,
//each spanning the unit cells given by dims, in the order produced by Extend.
func crystalTopology(symbol string, nsub int, dims [3]int) *Topology {
	ncells := dims[0] * dims[1] * dims[2]
	T := &Topology{Atoms: make([]*Atom, 0, nsub*ncells)}
	for s := 0; s < nsub; s++ {
		for i := 0; i < ncells; i++ {
			T.Atoms = append(T.Atoms, &Atom{
				Symbol:     symbol,
				Index:      s*ncells + i,
				Sublattice: s,
				Cell:       CellIndex(i, dims),
			})
		}
	}
	return T
}
