/*
 * structure.go, part of gocrystal.
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
	"log"
	"math"
	"strings"

	v3 "github.com/rmera/gocrystal/v3"
)

//Kind is the type of cubic crystal structure.
type Kind int

const (
	SimpleCubic Kind = iota
	BodyCentredCubic
	FaceCentredCubic
)

//Kinds returns all the supported structures.
func Kinds() []Kind {
	return []Kind{SimpleCubic, BodyCentredCubic, FaceCentredCubic}
}

//String returns the name of the structure, e.g. "Simple Cubic".
func (K Kind) String() string {
	if c, ok := configs[K]; ok {
		return c.name
	}
	return "Unknown"
}

//ParseKind returns the Kind for the given name. Both the abbreviations
//(sc, bcc, fcc) and the full names are accepted, regardless of case.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, c := range configs {
		if n == c.short || n == strings.ToLower(c.name) {
			return k, nil
		}
	}
	err := &CError{msg: ErrUnknownKind + ": " + name}
	err.Decorate("ParseKind")
	return 0, err
}

//structureConfig is what distinguishes one cubic structure from another:
//the atoms in the unit cell and how far nearest neighbors are
type structureConfig struct {
	name      string
	short     string
	basis     []float64               //fractional coordinates, 3 per atom
	nearest   func(a float64) float64 //the nearest neighbor distance for a lattice constant a
	tolerance float64                 //added to the nearest neighbor distance to absorb floating point errors
}

var configs = map[Kind]structureConfig{
	SimpleCubic: {
		name:      "Simple Cubic",
		short:     "sc",
		basis:     []float64{0, 0, 0},
		nearest:   func(a float64) float64 { return a },
		tolerance: 0.001,
	},
	BodyCentredCubic: {
		name:      "Body Centred Cubic",
		short:     "bcc",
		basis:     []float64{0, 0, 0, 0.5, 0.5, 0.5},
		nearest:   func(a float64) float64 { return a * math.Sqrt(3) / 2 },
		tolerance: 0.01,
	},
	FaceCentredCubic: {
		name:      "Face Centred Cubic",
		short:     "fcc",
		basis:     []float64{0, 0, 0, 0, 0.5, 0.5, 0.5, 0, 0.5, 0.5, 0.5, 0},
		nearest:   func(a float64) float64 { return a / math.Sqrt(2) },
		tolerance: 0.001,
	},
}

//basisCoords returns the cartesian coordinates of the basis for a lattice constant a.
func (c structureConfig) basisCoords(a float64) *v3.Matrix {
	data := make([]float64, len(c.basis))
	for i, v := range c.basis {
		data[i] = v * a
	}
	b, _ := v3.NewMatrix(data) //the basis slices are never empty or of the wrong length.
	return b
}

//cutoff returns the neighbor cutoff for a lattice constant a. A negative tol
//means the structure's own tolerance is used.
func (c structureConfig) cutoff(a, tol float64) float64 {
	if tol < 0 {
		tol = c.tolerance
	}
	return c.nearest(a) + tol
}

//Crystal is a finite periodic piece of a cubic crystal, with the positions of all its atoms
//and its list of nearest neighbors. Everything is obtained when the Crystal is built, and
//it is not modified afterwards. All the methods returning matrices or slices return copies.
type Crystal struct {
	element    string
	kind       Kind
	dims       [3]int
	a          float64
	cutoff     float64
	volume     float64
	lattice    *v3.Matrix
	reciprocal *v3.Matrix
	atoms      *v3.Matrix
	top        *Topology
	nearest    NeighborList
}

//New builds a crystal of element atoms with the structure kind, spanning dims unit cells
//with lattice constant a. The copies of each atom in the basis are placed in their own
//block, in basis order, and the nearest neighbors are found with periodic boundary conditions
//over the whole crystal. Only the first element of opts, if given, is used.
func New(element string, kind Kind, dims [3]int, a float64, opts ...*Options) (*Crystal, error) {
	O := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	conf, ok := configs[kind]
	if !ok {
		err := &CError{msg: ErrUnknownKind}
		err.Decorate("New")
		return nil, err
	}
	if err := checkDims(dims, "New"); err != nil {
		return nil, err
	}
	if !validConstant(a) {
		return nil, newInvalidConstantError(a, dims, "New")
	}
	C := &Crystal{element: element, kind: kind, dims: dims, a: a}
	C.lattice = CellVectors(dims, a)
	var err error
	C.reciprocal, C.volume, err = Reciprocal(C.lattice)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	basis := conf.basisCoords(a)
	nsub := basis.NVecs()
	ncells := dims[0] * dims[1] * dims[2]
	C.atoms = v3.Zeros(nsub * ncells)
	for i := 0; i < nsub; i++ {
		sub, err := Extend(basis.VecView(i), dims, a)
		if err != nil {
			return nil, errDecorate(err, "New")
		}
		C.atoms.SetMatrix(i*ncells, sub)
	}
	C.top = crystalTopology(element, nsub, dims)
	C.cutoff = conf.cutoff(a, O.Tolerance())
	C.nearest = FindNeighbors(C.atoms, C.lattice, C.reciprocal, C.cutoff)
	if O.Verbose() {
		log.Printf("%s %s %v a=%.3f: %d atoms, cutoff %.4f, %d neighbor pairs", element, conf.name, dims, a, C.atoms.NVecs(), C.cutoff, len(C.nearest)/2)
	}
	return C, nil
}

//NewSC builds a simple cubic crystal. See New.
func NewSC(element string, dims [3]int, a float64) (*Crystal, error) {
	return New(element, SimpleCubic, dims, a)
}

//NewBCC builds a body centred cubic crystal. See New.
func NewBCC(element string, dims [3]int, a float64) (*Crystal, error) {
	return New(element, BodyCentredCubic, dims, a)
}

//NewFCC builds a face centred cubic crystal. See New.
func NewFCC(element string, dims [3]int, a float64) (*Crystal, error) {
	return New(element, FaceCentredCubic, dims, a)
}

//Element returns the chemical symbol of the atoms in the crystal.
func (C *Crystal) Element() string { return C.element }

//Kind returns the structure of the crystal.
func (C *Crystal) Kind() Kind { return C.kind }

//Structure returns the name of the structure of the crystal, e.g. "Face Centred Cubic".
func (C *Crystal) Structure() string { return C.kind.String() }

//Dims returns the number of unit cells along each axis.
func (C *Crystal) Dims() [3]int { return C.dims }

//LatticeConstant returns the lattice constant of the crystal.
func (C *Crystal) LatticeConstant() float64 { return C.a }

//Cutoff returns the distance cutoff used to find nearest neighbors.
func (C *Crystal) Cutoff() float64 { return C.cutoff }

//Volume returns the volume of the periodic cell of the whole crystal.
func (C *Crystal) Volume() float64 { return C.volume }

//BasisSize returns the number of atoms per unit cell.
func (C *Crystal) BasisSize() int { return len(configs[C.kind].basis) / 3 }

//LatticeVectors returns the lattice vectors of the periodic cell, one per row.
func (C *Crystal) LatticeVectors() *v3.Matrix { return C.lattice.Copy() }

//ReciprocalVectors returns the reciprocal vectors of the periodic cell, one per row.
func (C *Crystal) ReciprocalVectors() *v3.Matrix { return C.reciprocal.Copy() }

//Coords returns the cartesian coordinates of all the atoms in the crystal.
func (C *Crystal) Coords() *v3.Matrix { return C.atoms.Copy() }

//Coord returns the cartesian coordinates of the atom with index i.
func (C *Crystal) Coord(i int) *v3.Matrix { return C.atoms.VecView(i).Copy() }

//Len returns the number of atoms in the crystal.
func (C *Crystal) Len() int { return C.atoms.NVecs() }

//Atom returns a copy of the atom with index i. Panics if out of range.
func (C *Crystal) Atom(i int) *Atom { return C.top.Atom(i).Copy() }

//NearestN returns the list of nearest neighbors of the crystal.
func (C *Crystal) NearestN() NeighborList {
	ret := make(NeighborList, len(C.nearest))
	copy(ret, C.nearest)
	return ret
}

//MinimumImage returns the minimum image displacement from the atom i to the atom j
//in the periodic cell of the crystal.
func (C *Crystal) MinimumImage(i, j int) *v3.Matrix {
	_, off := MinimumImage(C.atoms.VecView(i), C.atoms.VecView(j), C.lattice, C.reciprocal)
	return off
}
