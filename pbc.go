/*
 * pbc.go, part of gocrystal.
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
	v3 "github.com/rmera/gocrystal/v3"
)

//MinimumImage applies periodic boundary conditions to the displacement from p1 to p2,
//in the cell given by the lattice vectors lv, with reciprocal vectors rv.
//It returns the fractional coordinates of the displacement, wrapped into [-0.5,0.5],
//and the corresponding cartesian displacement, which is the shortest vector from p1 to
//any periodic image of p2 for cells that are not too far from cubic.
//Only the first vector of p1 and p2 is used.
func MinimumImage(p1, p2, lv, rv *v3.Matrix) ([3]float64, *v3.Matrix) {
	im := newImager(lv, rv)
	frac := im.image(p1, p2)
	return frac, im.off.Copy()
}

//Wrap takes a fractional coordinate in [-1,1) and returns the equivalent
//coordinate in [-0.5,0.5].
func Wrap(n float64) float64 {
	if n > 0.5 {
		n -= 1
	} else if n < -0.5 {
		n += 1
	}
	return n
}

//imager keeps the cell and the temporary vectors needed to obtain
//minimum images, so they are not allocated for each pair of atoms.
type imager struct {
	lv, rv *v3.Matrix
	b      [3]*v3.Matrix
	t      *v3.Matrix
	off    *v3.Matrix
}

func newImager(lv, rv *v3.Matrix) *imager {
	im := &imager{lv: lv, rv: rv, t: v3.Zeros(1), off: v3.Zeros(1)}
	for i := range im.b {
		im.b[i] = rv.VecView(i)
	}
	return im
}

//image puts the minimum image displacement from p1 to p2 in im.off and returns
//its fractional coordinates.
func (im *imager) image(p1, p2 *v3.Matrix) [3]float64 {
	var frac [3]float64
	im.t.SubVec(p2.VecView(0), p1.VecView(0))
	for i, b := range im.b {
		frac[i] = Wrap(v3.Mod(b.Dot(im.t), 1))
	}
	for j := 0; j < 3; j++ {
		var c float64
		for i, n := range frac {
			c += n * im.lv.At(i, j)
		}
		im.off.Set(0, j, c)
	}
	return frac
}

//distance returns the minimum image distance between p1 and p2.
func (im *imager) distance(p1, p2 *v3.Matrix) float64 {
	im.image(p1, p2)
	return im.off.Norm(2)
}
