// SPDX-License-Identifier: MIT
// Package: lvgeo/construct
//
// options.go — functional options.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless input; the
//     construction functions themselves never panic.
//   - Options resolve into an immutable config (see config.go); later options
//     override earlier ones.

package construct

import (
	"log/slog"

	"github.com/katalvlaran/lvgeo/geom"
	"github.com/katalvlaran/lvgeo/kernel"
)

// Option customizes a single construction call.
type Option func(*config)

// WithDefaultDim sets the dimension of the empty vector returned for a call
// without arguments. Panics unless d is geom.Dim2 or geom.Dim3.
func WithDefaultDim(d geom.Dim) Option {
	if d != geom.Dim2 && d != geom.Dim3 {
		panic("construct: WithDefaultDim(" + d.String() + ")")
	}
	return func(c *config) {
		c.defaultDim = d
	}
}

// WithKernel replaces the exact-arithmetic backend. Panics on nil.
func WithKernel(k kernel.Kernel) Option {
	if k == nil {
		panic("construct: WithKernel(nil)")
	}
	return func(c *config) {
		c.kernel = k
	}
}

// WithWorkers bounds how many elements are constructed concurrently.
// 1 (the default) constructs sequentially. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("construct: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger routes debug records about dispatch decisions to l.
// Panics on nil; the default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("construct: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
