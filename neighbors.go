/*
 * neighbors.go, part of gocrystal.
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
	"fmt"

	v3 "github.com/rmera/gocrystal/v3"
)

//Neighbor is a pair of atoms closer than a cutoff, given by their indexes in
//the coordinates matrix, and the minimum image distance between them.
type Neighbor struct {
	At1  int
	At2  int
	Dist float64
}

func (N Neighbor) String() string {
	return fmt.Sprintf("(%d, %d, %.4f)", N.At1, N.At2, N.Dist)
}

//NeighborList contains each pair of neighbor atoms twice, once in each order.
//The second half of the list is the first half with the indexes swapped.
type NeighborList []Neighbor

//FindNeighbors compares all pairs of atoms in atoms and returns the pairs closer than, or
//exactly at, cutoff, using the minimum image convention for the cell given by the
//lattice vectors lv and the reciprocal vectors rv. Pairs are first collected in
//the order i<j, and then all of them are appended again with the indexes swapped.
//This is O(N^2), it is only meant for small lattices.
func FindNeighbors(atoms, lv, rv *v3.Matrix, cutoff float64) NeighborList {
	im := newImager(lv, rv)
	tot := atoms.NVecs()
	nearest := make(NeighborList, 0, 2*tot)
	var a1, a2 *v3.Matrix
	for i := 0; i < tot-1; i++ {
		a1 = atoms.VecView(i)
		for j := i + 1; j < tot; j++ {
			a2 = atoms.VecView(j)
			d := im.distance(a1, a2)
			if d <= cutoff {
				nearest = append(nearest, Neighbor{At1: i, At2: j, Dist: d})
			}
		}
	}
	half := len(nearest)
	for _, v := range nearest[:half] {
		nearest = append(nearest, Neighbor{At1: v.At2, At2: v.At1, Dist: v.Dist})
	}
	return nearest
}

//Unique returns the first half of the list, where each pair appears only once,
//with At1<At2. It shares memory with N.
func (N NeighborList) Unique() NeighborList {
	return N[:len(N)/2]
}

//Of returns the neighbors of the atom with index i, i.e. the elements
//of the list with At1 == i.
func (N NeighborList) Of(i int) []Neighbor {
	ret := make([]Neighbor, 0, 12)
	for _, v := range N {
		if v.At1 == i {
			ret = append(ret, v)
		}
	}
	return ret
}

//Coordination returns a slice with the number of neighbors of each of the
//natoms atoms.
func (N NeighborList) Coordination(natoms int) []int {
	ret := make([]int, natoms)
	for _, v := range N {
		if v.At1 < natoms {
			ret[v.At1]++
		}
	}
	return ret
}

//Distances returns the distance of each unique pair in the list.
func (N NeighborList) Distances() []float64 {
	u := N.Unique()
	ret := make([]float64, len(u))
	for i, v := range u {
		ret[i] = v.Dist
	}
	return ret
}

//Symmetric returns true if each pair in the list appears exactly
//once in each order, and there are no atoms paired with themselves.
func (N NeighborList) Symmetric() bool {
	seen := make(map[[2]int]float64, len(N))
	for _, v := range N {
		if v.At1 == v.At2 {
			return false
		}
		k := [2]int{v.At1, v.At2}
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = v.Dist
	}
	for k, d := range seen {
		if d2, ok := seen[[2]int{k[1], k[0]}]; !ok || d2 != d {
			return false
		}
	}
	return true
}
