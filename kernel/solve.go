// SPDX-License-Identifier: MIT
// Package: lvgeo/kernel
//
// solve.go — exact square linear solve by LU factorisation with row pivoting.
//
// Blueprint:
//
//	Stage 1 (Validate): A is n×n and b has n entries.
//	Stage 2 (Factor):   in-place Doolittle elimination on a copy of A; pick the
//	                    first row with a non-zero pivot (exact arithmetic needs
//	                    no magnitude pivoting, only a non-zero one).
//	Stage 3 (Forward):  L·y = P·b.
//	Stage 4 (Backward): U·x = y.
//
// Complexity: O(n³) rational operations, O(n²) memory. n is 2 or 3 here.

package kernel

import "math/big"

// solve returns x with a·x = b. ok is false when a is singular or the shapes
// disagree; callers translate that into a degenerate construction.
func solve(a [][]*big.Rat, b []*big.Rat) (x []*big.Rat, ok bool) {
	// Stage 1: Validate shape
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, false
	}
	for _, row := range a {
		if len(row) != n {
			return nil, false
		}
	}

	// Stage 2: Factor a working copy; lu holds U on and above the diagonal and
	// the L multipliers below it.
	lu := make([][]*big.Rat, n)
	for i := range a {
		lu[i] = copyTuple(a[i])
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var (
		i, j, k int
		factor  = new(big.Rat)
		tmp     = new(big.Rat)
	)
	for k = 0; k < n; k++ {
		// find a non-zero pivot at or below row k
		p := -1
		for i = k; i < n; i++ {
			if lu[i][k].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			return nil, false // singular
		}
		if p != k {
			lu[p], lu[k] = lu[k], lu[p]
			perm[p], perm[k] = perm[k], perm[p]
		}
		for i = k + 1; i < n; i++ {
			factor.Quo(lu[i][k], lu[k][k])
			lu[i][k] = copyRat(factor) // multiplier kept for the forward pass
			for j = k + 1; j < n; j++ {
				lu[i][j].Sub(lu[i][j], tmp.Mul(factor, lu[k][j]))
			}
		}
	}

	// Stage 3: Forward substitution L·y = P·b (unit diagonal)
	y := make([]*big.Rat, n)
	for i = 0; i < n; i++ {
		sum := copyRat(b[perm[i]])
		for k = 0; k < i; k++ {
			sum.Sub(sum, tmp.Mul(lu[i][k], y[k]))
		}
		y[i] = sum
	}

	// Stage 4: Backward substitution U·x = y
	x = make([]*big.Rat, n)
	for i = n - 1; i >= 0; i-- {
		sum := copyRat(y[i])
		for k = i + 1; k < n; k++ {
			sum.Sub(sum, tmp.Mul(lu[i][k], x[k]))
		}
		x[i] = sum.Quo(sum, lu[i][i])
	}

	return x, true
}
