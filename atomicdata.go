/*
 * atomicdata.go, part of gocrystal.
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

//A map for assigning mass to elements.
//Note that mostly elements that crystallize in cubic structures are present,
//plus a few common ones.
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"Li": 6.94,
	"Be": 9.012,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"K":  39.1,
	"Ca": 40.08,
	"V":  50.94,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Ge": 72.63,
	"Rb": 85.47,
	"Sr": 87.62,
	"Nb": 92.91,
	"Mo": 95.95,
	"Pd": 106.42,
	"Ag": 107.87,
	"Cs": 132.91,
	"Ba": 137.33,
	"Ta": 180.95,
	"W":  183.84,
	"Ir": 192.22,
	"Pt": 195.08,
	"Au": 196.97,
	"Pb": 207.2,
	"Po": 209.0,
}

//amu*1e24, to get g/cm^3 from amu/A^3
const amuPerA3ToGPerCm3 = 1.66053906660

//Mass returns the atomic mass, in amu, of the element with the given symbol.
func Mass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		err := &CError{msg: ErrUnknownElement + ": " + symbol}
		err.Decorate("Mass")
		return 0, err
	}
	return m, nil
}
