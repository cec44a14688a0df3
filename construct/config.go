// SPDX-License-Identifier: MIT
// Package: lvgeo/construct
//
// config.go — resolved configuration and defaults.
//
// Defaults:
//   - kernel     = kernel.Rational{}
//   - defaultDim = unset; resolved per target kind (circles 2D, spheres 3D)
//   - workers    = 1
//   - logger     = discarding slog.Logger

package construct

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvgeo/geom"
	"github.com/katalvlaran/lvgeo/kernel"
)

const defaultWorkers = 1

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// config is passed by value; nothing downstream mutates it.
type config struct {
	kernel     kernel.Kernel
	defaultDim geom.Dim // geom.DimNone until WithDefaultDim
	workers    int
	logger     *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		kernel:  kernel.Rational{},
		workers: defaultWorkers,
		logger:  discardLogger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// dimFor resolves the empty-call dimension for a target kind.
func (c config) dimFor(kind geom.Kind) geom.Dim {
	if c.defaultDim != geom.DimNone {
		return c.defaultDim
	}
	if kind == geom.KindSphere || kind == geom.KindPlane {
		return geom.Dim3
	}
	return geom.Dim2
}
