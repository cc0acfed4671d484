/*
 * structure_test.go, part of gocrystal.
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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSCSingleCell(t *testing.T) {
	sc, err := NewSC("Si", [3]int{1, 1, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, "Simple Cubic", sc.Structure())
	assert.Equal(t, 1, sc.Len())
	assert.InDelta(t, 3.001, sc.Cutoff(), 1e-12)
	//only pairs of different atoms are compared, so the atom's own images are not neighbors.
	assert.Empty(t, sc.NearestN())
}

func TestSCCount(t *testing.T) {
	sc, err := NewSC("Si", [3]int{2, 2, 2}, 3)
	require.NoError(t, err)
	require.Equal(t, 8, sc.Len())
	nl := sc.NearestN()
	assert.Len(t, nl, 24)
	assert.True(t, nl.Symmetric())
	for i, c := range nl.Coordination(sc.Len()) {
		assert.Equal(t, 3, c, "atom %d", i)
	}
	for _, n := range nl {
		assert.InDelta(t, 3.0, n.Dist, 1e-9)
	}
}

func TestBCCSingleCell(t *testing.T) {
	bcc, err := NewBCC("Fe", [3]int{1, 1, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, "Body Centred Cubic", bcc.Structure())
	require.Equal(t, 2, bcc.Len())
	assert.InDelta(t, 3*math.Sqrt(3)/2+0.01, bcc.Cutoff(), 1e-12)
	nl := bcc.NearestN()
	//the minimum image picks a single one of the 8 equivalent images of the body centre.
	require.Len(t, nl, 2)
	assert.Equal(t, Neighbor{At1: 0, At2: 1, Dist: nl[0].Dist}, nl[0])
	assert.Equal(t, Neighbor{At1: 1, At2: 0, Dist: nl[0].Dist}, nl[1])
	assert.InDelta(t, 3*math.Sqrt(3)/2, nl[0].Dist, 1e-9)
	c := bcc.Coord(1)
	for j := 0; j < 3; j++ {
		assert.Equal(t, 1.5, c.At(0, j))
	}
}

func TestCoordination(t *testing.T) {
	cases := []struct {
		kind    Kind
		dims    [3]int
		atoms   int
		entries int
		cn      int
		dist    float64
	}{
		{SimpleCubic, [3]int{3, 3, 3}, 27, 162, 6, 3},
		{BodyCentredCubic, [3]int{2, 2, 2}, 16, 128, 8, 3 * math.Sqrt(3) / 2},
		{FaceCentredCubic, [3]int{2, 2, 2}, 32, 384, 12, 3 / math.Sqrt(2)},
		{FaceCentredCubic, [3]int{3, 2, 2}, 48, 576, 12, 3 / math.Sqrt(2)},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			cr, err := New("Cu", c.kind, c.dims, 3)
			require.NoError(t, err)
			require.Equal(t, c.atoms, cr.Len())
			require.Equal(t, cr.BasisSize()*c.dims[0]*c.dims[1]*c.dims[2], cr.Len())
			nl := cr.NearestN()
			assert.Len(t, nl, c.entries)
			assert.True(t, nl.Symmetric())
			for _, cn := range nl.Coordination(cr.Len()) {
				assert.Equal(t, c.cn, cn)
			}
			for _, n := range nl {
				assert.InDelta(t, c.dist, n.Dist, 1e-9)
			}
		})
	}
}

func TestAtomOrder(t *testing.T) {
	dims := [3]int{2, 3, 1}
	fcc, err := NewFCC("Al", dims, 4.05)
	require.NoError(t, err)
	coords := fcc.Coords()
	basis := configs[FaceCentredCubic].basisCoords(4.05)
	for i := 0; i < fcc.Len(); i++ {
		at := fcc.Atom(i)
		assert.Equal(t, "Al", at.Symbol)
		assert.Equal(t, i, at.Index)
		assert.Equal(t, i/6, at.Sublattice)
		for j := 0; j < 3; j++ {
			want := basis.At(at.Sublattice, j) + 4.05*float64(at.Cell[j])
			assert.InDelta(t, want, coords.At(i, j), 1e-12, "atom %d coordinate %d", i, j)
		}
	}
}

func TestReadOnly(t *testing.T) {
	sc, err := NewSC("Po", [3]int{2, 2, 2}, 3.35)
	require.NoError(t, err)
	c := sc.Coords()
	c.Set(1, 0, 100)
	assert.NotEqual(t, 100.0, sc.Coord(1).At(0, 0))
	nl := sc.NearestN()
	nl[0].Dist = -1
	assert.NotEqual(t, -1.0, sc.NearestN()[0].Dist)
	lv := sc.LatticeVectors()
	lv.Set(0, 0, 0)
	assert.Equal(t, 6.7, sc.LatticeVectors().At(0, 0))
	assert.InDelta(t, 6.7*6.7*6.7, sc.Volume(), 1e-9)
	rv := sc.ReciprocalVectors()
	assert.InDelta(t, 1/6.7, rv.At(2, 2), 1e-12)
	off := sc.MinimumImage(0, 1)
	assert.InDelta(t, 3.35, off.Norm(2), 1e-9)
}

func TestNewErrors(t *testing.T) {
	_, err := NewSC("Si", [3]int{2, -1, 2}, 3)
	var dimerr *InvalidDimensionError
	require.True(t, errors.As(err, &dimerr))
	assert.Equal(t, 1, dimerr.Axis)
	assert.Equal(t, [3]int{2, -1, 2}, dimerr.Dims)

	for _, a := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		_, err = NewFCC("Si", [3]int{1, 1, 1}, a)
		require.True(t, errors.As(err, &dimerr), "lattice constant %f", a)
		assert.Equal(t, -1, dimerr.Axis)
	}

	_, err = New("Si", Kind(7), [3]int{1, 1, 1}, 3)
	assert.Error(t, err)
}

func TestTolerance(t *testing.T) {
	O := DefaultOptions()
	assert.Equal(t, -1.0, O.Tolerance())
	O.Tolerance(1.5)
	O.Verbose(true)
	sc, err := New("Si", SimpleCubic, [3]int{2, 2, 2}, 3, O)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, sc.Cutoff(), 1e-12)
	//the face diagonals are now neighbors too.
	assert.Len(t, sc.NearestN(), 48)
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{"sc": SimpleCubic, "BCC": BodyCentredCubic, " fcc ": FaceCentredCubic, "Face Centred Cubic": FaceCentredCubic} {
		k, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, k)
	}
	_, err := ParseKind("hcp")
	assert.Error(t, err)
	assert.Equal(t, "Unknown", Kind(9).String())
}
