/*
 * doc.go, part of gocrystal.
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

/*Package crystal builds the atomic coordinates of cubic crystals and finds their
nearest neighbors under periodic boundary conditions.



	**gocrystal Capabilities**


    Builds simple cubic, body centred cubic and face centred cubic lattices
	spanning any number of unit cells along each axis.

    Obtains reciprocal vectors and cell volumes for any set of lattice vectors,
	and the primitive cell vectors of the three cubic lattices.

    Applies the minimum image convention to displacements between atoms in a
	periodic cell.

    Finds all pairs of nearest neighbors in a crystal, with periodic boundary
	conditions. The search compares all pairs of atoms, so it is meant for
	small crystals (tens to a few hundred atoms).

    Builds a gonum graph of the bonded network of a crystal, and summarizes
	its distances, coordination numbers and densities.

Coordinates are kept in v3.Matrix objects (package github.com/rmera/gocrystal/v3),
with one atom per row. The index of an atom is its row in the coordinates matrix.


A simple example:

	fcc, err := crystal.New("Cu", crystal.FaceCentredCubic, [3]int{2, 2, 2}, 3.61)
	if err != nil {
		log.Fatal(err)
	}
	coords := fcc.Coords()
	for _, n := range fcc.NearestN().Unique() {
		fmt.Println(n.At1, n.At2, n.Dist, coords.VecView(n.At1))
	}

*/
package crystal
