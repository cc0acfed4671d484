/*
 * v3_test.go, part of gocrystal.
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

package v3

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 || A.Len() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	e, ok := err.(*Error)
	if !ok {
		Te.Fatalf("a slice of length 4 should give a *Error, got %v", err)
	}
	e.Decorate("Caller")
	if deco := e.Decorate(""); len(deco) != 2 || deco[1] != "Caller" {
		Te.Errorf("decorations are lost: %v", deco)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("changes in a view are not reflected in the parent matrix: %v", A)
	}
	fmt.Println("View\n", A, "\n", View)
}

func TestVecOps(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	row, _ := NewMatrix([]float64{10, 20, 30})
	B := Zeros(2)
	B.AddVec(A, row)
	if B.At(1, 2) != 36 || B.At(0, 0) != 11 {
		Te.Errorf("AddVec failed: %v", B)
	}
	B.SubVec(B, row)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if B.At(i, j) != A.At(i, j) {
				Te.Fatalf("SubVec did not undo AddVec: %v %v", A, B)
			}
		}
	}
	//subtracting a vector that is a view of the same matrix.
	A.SubVec(A, A.VecView(0))
	if A.At(0, 1) != 0 || A.At(1, 0) != 3 {
		Te.Errorf("SubVec with a view of the receiver failed: %v", A)
	}
}

func TestCrossDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 0) != 0 || z.At(0, 1) != 0 || z.At(0, 2) != 1 {
		Te.Errorf("x cross y should be z, got %v", z)
	}
	if d := z.Dot(x); d != 0 {
		Te.Errorf("z dot x should be 0, got %f", d)
	}
	u, _ := NewMatrix([]float64{1, 2, 3})
	w, _ := NewMatrix([]float64{4, 5, 6})
	if d := u.Dot(w); d != 32 {
		Te.Errorf("expected 32, got %f", d)
	}
	u.Cross(u, w) //the receiver can be one of the arguments
	if u.At(0, 0) != -3 || u.At(0, 1) != 6 || u.At(0, 2) != -3 {
		Te.Errorf("in-place cross product failed: %v", u)
	}
	if n := z.Norm(2); !scalar.EqualWithinAbs(n, 1, 1e-12) {
		Te.Errorf("norm of z should be 1, got %f", n)
	}
}

func TestMod(Te *testing.T) {
	cases := [][2]float64{{0.25, 0.25}, {-0.25, 0.75}, {1.5, 0.5}, {-1, 0}, {0, 0}, {2.75, 0.75}}
	for _, c := range cases {
		if got := Mod(c[0], 1); !scalar.EqualWithinAbs(got, c[1], 1e-12) {
			Te.Errorf("Mod(%f,1)=%f, expected %f", c[0], got, c[1])
		}
	}
	A, _ := NewMatrix([]float64{-0.5, 3.25, -7.75})
	A.Mod(A, 1)
	for j, v := range []float64{0.5, 0.25, 0.25} {
		if !scalar.EqualWithinAbs(A.At(0, j), v, 1e-12) {
			Te.Errorf("element %d: expected %f, got %f", j, v, A.At(0, j))
		}
		if A.At(0, j) < 0 {
			Te.Errorf("element %d is negative: %f", j, A.At(0, j))
		}
	}
}

func TestSomeVecsStack(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	if err = B.SomeVecsSafe(A, cind); err != nil {
		Te.Fatal(err)
	}
	if B.At(2, 2) != 18 || B.At(0, 0) != 4 {
		Te.Errorf("SomeVecs returned the wrong vectors: %v", B)
	}
	if err = B.SomeVecsSafe(A, []int{1, 2}); err == nil {
		Te.Error("SomeVecsSafe should have failed on a mismatched receiver")
	}
	S := Stack(B, A)
	if S.NVecs() != 9 || S.At(3, 0) != 1 || S.At(8, 2) != 18 {
		Te.Errorf("Stack failed: %v", S)
	}
	C := A.Copy()
	C.Set(0, 0, math.Pi)
	if A.At(0, 0) == math.Pi {
		Te.Error("Copy shares memory with the original")
	}
}

func TestPanics(Te *testing.T) {
	defer func() {
		r := recover()
		if r != ErrShape {
			Te.Errorf("expected %v, got %v", ErrShape, r)
		}
	}()
	A := Zeros(2)
	row := Zeros(2)
	A.AddVec(A, row)
}

func TestKronekerDelta(Te *testing.T) {
	if KronekerDelta(1, 1+1e-14, -1) != 1 {
		Te.Error("values within appzero should be equal")
	}
	if KronekerDelta(1, 1.1, 0.01) != 0 {
		Te.Error("values further than epsilon should not be equal")
	}
}
