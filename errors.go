/*
 * errors.go, part of gocrystal.
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
	"strings"
)

//CError is the general error type of the package. It implements Error.
type CError struct {
	msg  string
	deco []string
}

//Error returns a string with the error message, plus the chain of
//callers that decorated it, if any.
func (err CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, " <- "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty dec just returns the current slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//DegenerateLatticeError is returned when the lattice vectors are linearly
//dependent, i.e. they span a cell of zero volume and no reciprocal vectors exist.
type DegenerateLatticeError struct {
	CError
	Volume float64
}

func newDegenerateLatticeError(volume float64, caller string) *DegenerateLatticeError {
	err := &DegenerateLatticeError{Volume: volume}
	err.msg = fmt.Sprintf("Degenerate lattice: cell volume is %g", volume)
	err.Decorate(caller)
	return err
}

//InvalidDimensionError is returned when a lattice dimension is not a positive integer,
//or when the lattice constant is not a positive number, in which case Axis is -1.
type InvalidDimensionError struct {
	CError
	Dims [3]int
	Axis int
}

func newInvalidDimensionError(dims [3]int, axis int, caller string) *InvalidDimensionError {
	err := &InvalidDimensionError{Dims: dims, Axis: axis}
	err.msg = fmt.Sprintf("Invalid lattice dimensions %v: %d unit cells along axis %d", dims, dims[axis], axis)
	err.Decorate(caller)
	return err
}

func newInvalidConstantError(a float64, dims [3]int, caller string) *InvalidDimensionError {
	err := &InvalidDimensionError{Dims: dims, Axis: -1}
	err.msg = fmt.Sprintf("Invalid lattice constant %g, it must be a positive number", a)
	err.Decorate(caller)
	return err
}

//errDecorate is a helper function that decorates the error with the name of the
//caller before returning it, if the error implements Error. Other errors are
//returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//checkDims returns an error if any of the dimensions is not positive.
func checkDims(dims [3]int, caller string) error {
	for axis, n := range dims {
		if n <= 0 {
			return newInvalidDimensionError(dims, axis, caller)
		}
	}
	return nil
}

const (
	ErrNotThreeVectors = "Lattice vectors: exactly 3 vectors are needed"
	ErrEmptyBasis      = "Empty basis: at least one atom is needed"
	ErrUnknownKind     = "Unknown crystal structure"
	ErrUnknownElement  = "No data for element"
)
