// Copyright 2017 Herny Peterson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bal implements the completion of flow-balance matrices for networks
// of tanks connected by volumetric flows. Entry Q[i][j] (i≠j) is the flow rate
// from tank j into tank i; diagonal entry Q[i][i] is the negative total
// outflow of tank i. Conservation of volume requires every row and every
// column of Q to sum to zero.
package bal

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Complete returns a new flow matrix with the main diagonal and the
// sub-diagonal filled such that every row and every column sums to zero.
// The seed matrix provides all other entries and is never modified.
//
// For each tank i (but the last), the diagonal entry balances row i and the
// sub-diagonal entry below it then balances column i:
//
//	Q[i][i]   = -Σ_{j≠i}   Q[i][j]    (row i)
//	Q[i+1][i] = -Σ_{k≠i+1} Q[k][i]    (column i)
//
// and the last diagonal entry balances the last row. Each unknown is computed
// from known entries only; values held by the seed in the diagonal and
// sub-diagonal slots are ignored, never read.
func Complete(seed [][]float64) (Q [][]float64, err error) {

	// check dimensions and allocate
	n, err := checkSquare(seed)
	if err != nil {
		return
	}
	Q = la.MatAlloc(n, n)
	la.MatCopy(Q, 1, seed)

	// diagonal balances row i; sub-diagonal balances column i
	for i := 0; i < n-1; i++ {
		Q[i][i] = -rowSumSkip(Q, i, i)
		Q[i+1][i] = -colSumSkip(Q, i, i+1)
	}

	// last diagonal entry balances last row
	Q[n-1][n-1] = -rowSumSkip(Q, n-1, n-1)
	return
}

// CompleteInPlace fills the diagonal and sub-diagonal of Q in place. It is
// the interactive variant of Complete and requires the diagonal and the
// sub-diagonal of Q to be zero on entry: each unknown is computed from a
// plain row or column sum that reads the to-be-filled slot while it still
// holds zero. Running it on an already completed matrix therefore produces
// meaningless results.
func CompleteInPlace(Q [][]float64) (err error) {
	n, err := checkSquare(Q)
	if err != nil {
		return
	}
	for i := 0; i < n-1; i++ {
		Q[i][i] = -rowSum(Q, i)
		Q[i+1][i] = -colSum(Q, i)
	}
	Q[n-1][n-1] = -rowSum(Q, n-1)
	return
}

// RowSums returns the sum of each row of Q
func RowSums(Q [][]float64) (sums []float64) {
	sums = make([]float64, len(Q))
	for i := range Q {
		sums[i] = rowSum(Q, i)
	}
	return
}

// ColSums returns the sum of each column of Q
func ColSums(Q [][]float64) (sums []float64) {
	n := len(Q)
	sums = make([]float64, n)
	for j := 0; j < n; j++ {
		sums[j] = colSum(Q, j)
	}
	return
}

// Balanced tells whether every row and every column of Q sums to zero
// within tol
func Balanced(Q [][]float64, tol float64) bool {
	for i := range Q {
		if rowSum(Q, i) < -tol || rowSum(Q, i) > tol {
			return false
		}
		if colSum(Q, i) < -tol || colSum(Q, i) > tol {
			return false
		}
	}
	return true
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// checkSquare returns the size of Q or an error if Q is empty or non-square
func checkSquare(Q [][]float64) (n int, err error) {
	n = len(Q)
	if n < 1 {
		err = chk.Err("flow matrix must have at least one tank")
		return
	}
	for i := 0; i < n; i++ {
		if len(Q[i]) != n {
			err = chk.Err("flow matrix must be square: row %d has %d entries; want %d", i, len(Q[i]), n)
			return
		}
	}
	return
}

// rowSum returns the sum of row i of Q
func rowSum(Q [][]float64, i int) (sum float64) {
	for j := 0; j < len(Q); j++ {
		sum += Q[i][j]
	}
	return
}

// colSum returns the sum of column j of Q
func colSum(Q [][]float64, j int) (sum float64) {
	for i := 0; i < len(Q); i++ {
		sum += Q[i][j]
	}
	return
}

// rowSumSkip returns the sum of row i of Q, skipping column jskip
func rowSumSkip(Q [][]float64, i, jskip int) (sum float64) {
	for j := 0; j < len(Q); j++ {
		if j != jskip {
			sum += Q[i][j]
		}
	}
	return
}

// colSumSkip returns the sum of column j of Q, skipping row iskip
func colSumSkip(Q [][]float64, j, iskip int) (sum float64) {
	for i := 0; i < len(Q); i++ {
		if i != iskip {
			sum += Q[i][j]
		}
	}
	return
}
