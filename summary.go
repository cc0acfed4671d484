/*
 * summary.go, part of gocrystal.
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
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary contains some general properties of a crystal.
type Summary struct {
	Element         string
	Structure       string
	Dims            [3]int
	LatticeConstant float64
	Atoms           int
	Pairs           int //unique neighbor pairs
	Cutoff          float64
	Volume          float64
	NumberDensity   float64 //atoms per A^3
	Density         float64 //g/cm^3, NaN if the mass of the element is not known
	MinDist         float64
	MaxDist         float64
	MeanDist        float64
	StdDist         float64
	Coordination    map[int]int //number of atoms with each coordination number
}

//Summarize returns a Summary for the crystal C. Distance statistics are NaN if
//the crystal has no neighbor pairs.
func Summarize(C *Crystal) *Summary {
	S := &Summary{
		Element:         C.Element(),
		Structure:       C.Structure(),
		Dims:            C.Dims(),
		LatticeConstant: C.LatticeConstant(),
		Atoms:           C.Len(),
		Pairs:           len(C.nearest) / 2,
		Cutoff:          C.Cutoff(),
		Volume:          C.Volume(),
		Coordination:    make(map[int]int),
	}
	S.NumberDensity = float64(S.Atoms) / math.Abs(S.Volume)
	S.Density = math.NaN()
	if m, err := Mass(S.Element); err == nil {
		S.Density = S.NumberDensity * m * amuPerA3ToGPerCm3
	}
	d := C.nearest.Distances()
	if len(d) > 0 {
		S.MinDist = floats.Min(d)
		S.MaxDist = floats.Max(d)
		S.MeanDist, S.StdDist = stat.MeanStdDev(d, nil)
		if len(d) == 1 {
			S.StdDist = 0
		}
	} else {
		S.MinDist, S.MaxDist, S.MeanDist, S.StdDist = math.NaN(), math.NaN(), math.NaN(), math.NaN()
	}
	for _, v := range C.nearest.Coordination(S.Atoms) {
		S.Coordination[v]++
	}
	return S
}

//String returns a human-readable report.
func (S *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s, %dx%dx%d unit cells, a = %.4f A\n", S.Element, S.Structure, S.Dims[0], S.Dims[1], S.Dims[2], S.LatticeConstant)
	fmt.Fprintf(&b, "  atoms: %d  cell volume: %.4f A^3  number density: %.5f A^-3\n", S.Atoms, S.Volume, S.NumberDensity)
	if !math.IsNaN(S.Density) {
		fmt.Fprintf(&b, "  density: %.4f g/cm^3\n", S.Density)
	}
	fmt.Fprintf(&b, "  cutoff: %.4f A  neighbor pairs: %d (%d list entries)\n", S.Cutoff, S.Pairs, 2*S.Pairs)
	if S.Pairs > 0 {
		fmt.Fprintf(&b, "  distances: min %.4f max %.4f mean %.4f std %.4f\n", S.MinDist, S.MaxDist, S.MeanDist, S.StdDist)
	}
	keys := make([]int, 0, len(S.Coordination))
	for k := range S.Coordination {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	cn := make([]string, 0, len(keys))
	for _, k := range keys {
		cn = append(cn, fmt.Sprintf("%d atoms with %d neighbors", S.Coordination[k], k))
	}
	fmt.Fprintf(&b, "  coordination: %s", strings.Join(cn, ", "))
	return b.String()
}
