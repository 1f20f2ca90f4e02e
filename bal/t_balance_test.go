// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bal

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// fourTanksSeed returns the seed matrix of the 4-tank example. Known flows
// occupy the strict upper triangle plus the (3,0) return flow; the diagonal
// and the sub-diagonal are to be computed.
func fourTanksSeed() [][]float64 {
	return [][]float64{
		{0, 2, 10, 6},
		{0, 0, 4, 0},
		{0, 0, 0, 2},
		{10, 0, 0, 0},
	}
}

func Test_complete01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("complete01. 4-tank example")

	seed := fourTanksSeed()
	Q, err := Complete(seed)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	la.PrintMat("Q", Q, "%8g", false)

	chk.Matrix(tst, "Q", 1e-17, Q, [][]float64{
		{-18, 2, 10, 6},
		{8, -12, 4, 0},
		{0, 10, -12, 2},
		{10, 0, -2, -8},
	})

	// seed must not be touched
	chk.Matrix(tst, "seed", 1e-17, seed, fourTanksSeed())

	// conservation of volume
	io.Pforan("row sums = %v\n", RowSums(Q))
	io.Pforan("col sums = %v\n", ColSums(Q))
	chk.Vector(tst, "row sums", 1e-17, RowSums(Q), []float64{0, 0, 0, 0})
	chk.Vector(tst, "col sums", 1e-17, ColSums(Q), []float64{0, 0, 0, 0})
	if !Balanced(Q, 1e-14) {
		tst.Errorf("completed matrix is not balanced")
	}
}

func Test_complete02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("complete02. scaling by positive factor")

	// the row/column sums are linear; scaling all seed flows by k must scale
	// every computed entry by k as well
	k := 2.5
	seed := fourTanksSeed()
	scaled := la.MatAlloc(4, 4)
	la.MatCopy(scaled, k, seed)

	Q, err := Complete(seed)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	Qk, err := Complete(scaled)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	kQ := la.MatAlloc(4, 4)
	la.MatCopy(kQ, k, Q)
	chk.Matrix(tst, "k*Q", 1e-14, Qk, kQ)
}

func Test_complete03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("complete03. invalid input")

	_, err := Complete([][]float64{})
	if err == nil {
		tst.Errorf("error due to empty matrix not raised")
		return
	}
	io.Pfgrey("OK. err = %v\n", err)

	_, err = Complete([][]float64{{0, 1}, {2}})
	if err == nil {
		tst.Errorf("error due to non-square matrix not raised")
		return
	}
	io.Pfgrey("OK. err = %v\n", err)
}

func Test_complete04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("complete04. stale unknowns and in-place variant")

	// Complete never reads the diagonal/sub-diagonal slots, so feeding an
	// already completed matrix back in must reproduce it
	Q, err := Complete(fourTanksSeed())
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	Qagain, err := Complete(Q)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Matrix(tst, "Complete(Q)", 1e-17, Qagain, Q)

	// CompleteInPlace instead assumes zeroed unknowns; re-running it on a
	// completed matrix must break the balance (expected limitation)
	A := fourTanksSeed()
	err = CompleteInPlace(A)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Matrix(tst, "A (first run)", 1e-17, A, Q)
	err = CompleteInPlace(A)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	la.PrintMat("A (second run)", A, "%8g", false)
	if Balanced(A, 1e-14) {
		tst.Errorf("re-running CompleteInPlace unexpectedly preserved the balance")
	}
}

func Test_complete05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("complete05. other sizes stay balanced")

	// a few hand-picked seeds of different sizes; upper triangle plus a
	// return flow in the lower-left corner, as in the tank-cascade layout
	seeds := [][][]float64{
		{
			{0, 3},
			{3, 0},
		},
		{
			{0, 1, 5},
			{0, 0, 2},
			{4, 0, 0},
		},
		{
			{0, 2, 10, 6, 1},
			{0, 0, 4, 0, 0},
			{0, 0, 0, 2, 3},
			{0, 0, 0, 0, 7},
			{10, 0, 0, 0, 0},
		},
	}
	for k, seed := range seeds {
		Q, err := Complete(seed)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		n := len(Q)
		io.Pf("n = %d\n", n)
		chk.Vector(tst, io.Sf("row sums (seed %d)", k), 1e-14, RowSums(Q), make([]float64, n))
		chk.Vector(tst, io.Sf("col sums (seed %d)", k), 1e-14, ColSums(Q), make([]float64, n))
	}
}
