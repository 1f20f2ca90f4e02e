// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bal

import "github.com/cpmech/gosl/utl"

// DiagNonpos checks the sign of each diagonal entry of Q. Flag i is true if
// Q[i][i] ≤ 0; i.e. tank i has a non-negative total outflow. A false flag
// signals an unphysical seed configuration, not an error.
func DiagNonpos(Q [][]float64) (ok []bool) {
	n := len(Q)
	ok = make([]bool, n)
	for i := 0; i < n; i++ {
		ok[i] = Q[i][i] <= 0
	}
	return
}

// SubdiagNonneg checks the sign of each sub-diagonal entry of Q. Flag i is
// true if Q[i+1][i] ≥ 0; i.e. the computed flow rate from tank i into tank
// i+1 is physically admissible. A false flag signals an unphysical seed
// configuration, not an error.
func SubdiagNonneg(Q [][]float64) (ok []bool) {
	n := len(Q)
	ok = make([]bool, n-1)
	for i := 0; i < n-1; i++ {
		ok[i] = Q[i+1][i] >= 0
	}
	return
}

// Physical tells whether all sign checks pass; i.e. whether the completed
// matrix describes a physically realisable set of flows. Note that a matrix
// may be balance-consistent and still fail this check.
func Physical(Q [][]float64) bool {
	return utl.AllTrue(DiagNonpos(Q)) && utl.AllTrue(SubdiagNonneg(Q))
}
