// SPDX-License-Identifier: MIT
// Package: lvgeo/construct
//
// api.go — public construction entry points.

package construct

import (
	"log/slog"

	"github.com/katalvlaran/lvgeo/geom"
)

// Build constructs a vector of the given kind from args. args may mix typed
// geom values, kernel primitives, raw Go numbers, Named slots and Options;
// opts are applied after inline Options.
//
// Pipeline: classify -> validateAndRecycle -> dispatch -> execute.
//
// A call without arguments, or with any zero-length argument, returns an
// empty vector: of the default dimension (WithDefaultDim; circles 2D,
// spheres 3D) when no argument carries a dimension, else of the arguments'
// dimension.
//
// Errors (wrapped, branch with errors.Is):
//   - geom.ErrDimensionMismatch, geom.ErrLengthMismatch from validation.
//   - geom.ErrUnsupportedCombination when no signature matches.
//   - geom.ErrDegenerateConstruction and friends from the kernel.
//
// Complexity: O(len(args)·n) plus n kernel calls, n the common length.
func Build(kind geom.Kind, args []any, opts ...Option) (geom.Vector, error) {
	values, inline := splitOptions(args)
	cfg := newConfig(append(inline, opts...)...)

	if _, ok := dispatchTables[kind]; !ok {
		return geom.Vector{}, constructErrorf(MethodBuild, geom.ErrUnsupportedCombination, "no constructors for %s", kind)
	}

	classified, err := classify(cfg.kernel, values)
	if err != nil {
		return geom.Vector{}, constructErrorf(MethodBuild, err, "classify")
	}

	rec, err := validateAndRecycle(MethodBuild, classified)
	if err != nil {
		return geom.Vector{}, err
	}
	if rec.empty {
		dim := rec.dim
		if dim == geom.DimNone {
			dim = cfg.dimFor(kind)
		}
		cfg.logger.Debug("empty construction", slog.String("kind", kind.String()), slog.String("dim", dim.String()))
		v, err := geom.Empty(kind, dim)
		if err != nil {
			return geom.Vector{}, constructErrorf(MethodBuild, err, "empty %s", kind)
		}
		return v, nil
	}

	set := bucket(rec.args)
	sig, err := dispatch(MethodBuild, kind, set, rec.dim)
	if err != nil {
		return geom.Vector{}, err
	}
	cfg.logger.Debug("dispatch",
		slog.String("kind", kind.String()),
		slog.String("signature", sig.name),
		slog.String("op", sig.op.String()),
		slog.String("dim", rec.dim.String()),
		slog.Int("len", rec.n),
	)

	return execute(cfg, MethodBuild, sig.op, kind, rec.dim, rec.n, sig.operandVectors(set))
}

// Circle is Build(geom.KindCircle, args).
func Circle(args ...any) (geom.Vector, error) {
	return Build(geom.KindCircle, args)
}

// Sphere is Build(geom.KindSphere, args).
func Sphere(args ...any) (geom.Vector, error) {
	return Build(geom.KindSphere, args)
}
