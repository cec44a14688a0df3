// SPDX-License-Identifier: MIT
// Package: lvgeo/kernel
//
// arith.go — small exact helpers over coordinate tuples ([]*big.Rat).
// Every helper allocates its result; inputs are never written.

package kernel

import "math/big"

// Int returns n as a *big.Rat.
func Int(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

// Frac returns a/b as a *big.Rat. b must be non-zero.
func Frac(a, b int64) *big.Rat { return big.NewRat(a, b) }

func copyRat(r *big.Rat) *big.Rat { return new(big.Rat).Set(r) }

func copyTuple(t []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(t))
	for i, r := range t {
		out[i] = copyRat(r)
	}
	return out
}

func sub(a, b []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(a))
	for i := range a {
		out[i] = new(big.Rat).Sub(a[i], b[i])
	}
	return out
}

func add(a, b []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(a))
	for i := range a {
		out[i] = new(big.Rat).Add(a[i], b[i])
	}
	return out
}

func scale(a []*big.Rat, k *big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(a))
	for i := range a {
		out[i] = new(big.Rat).Mul(a[i], k)
	}
	return out
}

func dot(a, b []*big.Rat) *big.Rat {
	sum := new(big.Rat)
	term := new(big.Rat)
	for i := range a {
		sum.Add(sum, term.Mul(a[i], b[i]))
	}
	return sum
}

func norm2(a []*big.Rat) *big.Rat { return dot(a, a) }

// cross is defined for 3-tuples only.
func cross(a, b []*big.Rat) []*big.Rat {
	m := func(x, y, z, w *big.Rat) *big.Rat {
		l := new(big.Rat).Mul(x, y)
		return l.Sub(l, new(big.Rat).Mul(z, w))
	}
	return []*big.Rat{
		m(a[1], b[2], a[2], b[1]),
		m(a[2], b[0], a[0], b[2]),
		m(a[0], b[1], a[1], b[0]),
	}
}

func isZeroTuple(a []*big.Rat) bool {
	for _, r := range a {
		if r.Sign() != 0 {
			return false
		}
	}
	return true
}

func equalTuple(a, b []*big.Rat) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

func midpoint(a, b []*big.Rat) []*big.Rat {
	return scale(add(a, b), big.NewRat(1, 2))
}
