/*
 * options.go, part of gocrystal.
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

//Options contains various options for building crystals.
type Options struct {
	tolerance float64 //added to the nearest-neighbor distance to get the cutoff. Negative means the default for each structure.
	verbose   bool
}

//DefaultOptions returns the options that reproduce the standard cutoffs,
//without logging.
func DefaultOptions() *Options {
	r := new(Options)
	r.tolerance = -1
	return r
}

//Returns the tolerance added to the nearest-neighbor distance to obtain
//the cutoff, and sets it to a new value, if given. A negative value means
//that the default for each structure is used.
func (O *Options) Tolerance(t ...float64) float64 {
	if len(t) > 0 {
		O.tolerance = t[0]
	}
	return O.tolerance
}

//Returns whether the construction of crystals is logged,
//and sets it to a new value, if given.
func (O *Options) Verbose(v ...bool) bool {
	if len(v) > 0 {
		O.verbose = v[0]
	}
	return O.verbose
}
