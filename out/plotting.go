// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"

	"github.com/hernypeterson/nutrient-model/bal"
)

// colors for up to 8 tanks; histories cycle through these
var concColors = []string{"b", "g", "r", "c", "m", "y", "k", "orange"}

// Plot plots the concentration history of every tank into one figure
func (o *Results) Plot(dirout, fnkey string) {
	plt.Reset(false, nil)
	for i, name := range o.Names {
		clr := concColors[i%len(concColors)]
		plt.Plot(o.T, o.Conc(i), &plt.A{C: clr, Ls: "-", L: name})
	}
	plt.Gll("$t$", "$c$", nil)
	plt.Save(dirout, fnkey)
}

// ReportMatrix prints the completed flow matrix together with its balance
// sums and sign diagnostics
func ReportMatrix(Q [][]float64, tol float64) {
	la.PrintMat("Q", Q, "%10g", false)
	io.Pf("row sums = %v\n", bal.RowSums(Q))
	io.Pf("col sums = %v\n", bal.ColSums(Q))
	if bal.Balanced(Q, tol) {
		io.Pfgreen("balance:  OK (rows and columns sum to zero)\n")
	} else {
		io.PfRed("balance:  FAILED (rows or columns do not sum to zero)\n")
	}
	dok := bal.DiagNonpos(Q)
	sok := bal.SubdiagNonneg(Q)
	io.Pf("diagonal     ≤ 0: %v\n", dok)
	io.Pf("sub-diagonal ≥ 0: %v\n", sok)
	if bal.Physical(Q) {
		io.Pfgreen("signs:    OK (flows are physically admissible)\n")
	} else {
		io.Pfyel("signs:    WARNING: configuration is balance-consistent but physically invalid\n")
	}
}
