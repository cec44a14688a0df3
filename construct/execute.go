// SPDX-License-Identifier: MIT
// Package: lvgeo/construct
//
// execute.go — element-wise kernel evaluation.
//
// Elements are independent: element i only reads slot i of every operand. With
// WithWorkers(n > 1) they run on a bounded errgroup; results keep their index
// and the reported error is always the one with the lowest index, so output
// does not depend on scheduling.

package construct

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvgeo/geom"
)

// execute applies op over n aligned elements of operands and wraps the
// results as a vector of kind/dim. A missing operand slot yields a missing
// result slot without calling the kernel.
func execute(cfg config, method string, op geom.Op, kind geom.Kind, dim geom.Dim, n int, operands []geom.Vector) (geom.Vector, error) {
	out := make([]geom.Primitive, n)

	one := func(i int) error {
		elems := make([]geom.Primitive, len(operands))
		for j, v := range operands {
			e, err := v.At(i)
			if err != nil {
				return err
			}
			if e == nil {
				return nil // missing in, missing out
			}
			elems[j] = e
		}
		p, err := cfg.kernel.Construct(op, dim, elems...)
		if err != nil {
			return err
		}
		if p == nil || p.Kind() != kind {
			return fmt.Errorf("kernel returned %v for %s: %w", p, op, geom.ErrKindMismatch)
		}
		out[i] = p
		return nil
	}

	if cfg.workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := one(i); err != nil {
				return geom.Vector{}, constructErrorf(method, err, "%s: element %d", op, i)
			}
		}
	} else {
		errs := make([]error, n)
		var g errgroup.Group
		g.SetLimit(cfg.workers)
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				errs[i] = one(i)
				return nil
			})
		}
		_ = g.Wait() // per-element errors are collected in errs
		for i, err := range errs {
			if err != nil {
				return geom.Vector{}, constructErrorf(method, err, "%s: element %d", op, i)
			}
		}
	}

	vec, err := geom.NewVector(kind, dim, out...)
	if err != nil {
		return geom.Vector{}, constructErrorf(method, err, "%s", op)
	}
	return vec, nil
}
