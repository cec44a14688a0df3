// SPDX-License-Identifier: MIT
// Package: lvgeo/construct
//
// recycle.go — DimensionValidator/Recycler.
//
// Sequence (fixed): dimension -> emptiness -> length -> broadcast.
// Unclassified arguments expose no dimension and count as length 1.

package construct

import (
	"sort"

	"github.com/katalvlaran/lvgeo/geom"
)

// recycled is the length-homogeneous argument list of one call.
type recycled struct {
	args  []argument
	n     int      // common length; 0 when empty
	dim   geom.Dim // common dimension; geom.DimNone if no argument exposes one
	empty bool     // build nothing, return an empty vector
}

// validateAndRecycle enforces a single dimension and the 1-or-max length
// rule, then broadcasts length-1 arguments to the maximum length.
//
// Errors: ErrDimensionMismatch, ErrLengthMismatch (wrapped with method).
// Complexity: O(len(args) + n·len(args)).
func validateAndRecycle(method string, args []argument) (recycled, error) {
	// Stage 1: distinct dimensions
	seen := make(map[geom.Dim]struct{}, 2)
	for _, a := range args {
		if a.kind != geom.KindInvalid && a.vec.Dim() != geom.DimNone {
			seen[a.vec.Dim()] = struct{}{}
		}
	}
	out := recycled{args: args}
	if len(seen) > 1 {
		found := make([]int, 0, len(seen))
		for d := range seen {
			found = append(found, int(d))
		}
		sort.Ints(found)
		return recycled{}, constructErrorf(method, geom.ErrDimensionMismatch, "arguments mix dimensions %v", found)
	}
	for d := range seen {
		out.dim = d
	}

	// Stage 2: emptiness
	if len(args) == 0 {
		out.empty = true
		return out, nil
	}
	maxLen := 0
	for _, a := range args {
		l := argLen(a)
		if l == 0 {
			out.empty = true
			return out, nil
		}
		if l > maxLen {
			maxLen = l
		}
	}

	// Stage 3: lengths are 1 or the maximum
	for _, a := range args {
		if l := argLen(a); l != 1 && l != maxLen {
			return recycled{}, constructErrorf(method, geom.ErrLengthMismatch,
				"%s has length %d, want 1 or %d", a.label(), l, maxLen)
		}
	}

	// Stage 4: broadcast
	out.n = maxLen
	out.args = make([]argument, len(args))
	for i, a := range args {
		if a.kind != geom.KindInvalid {
			v, err := a.vec.Recycle(maxLen)
			if err != nil {
				return recycled{}, constructErrorf(method, err, "%s", a.label())
			}
			a.vec = v
		}
		out.args[i] = a
	}
	return out, nil
}

func argLen(a argument) int {
	if a.kind == geom.KindInvalid {
		return 1
	}
	return a.vec.Len()
}
