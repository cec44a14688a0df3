// SPDX-License-Identifier: MIT
// Package: lvgeo/geom
//
// errors.go — sentinel error set shared by geom, kernel and construct.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context is attached at the call site with fmt.Errorf("<Method>: ...: %w", ErrX).
//   - Nothing in the library panics on caller input. Option constructors in
//     package construct are the single exception (programmer errors).
//
// Priority when several checks fail for one call (enforced by construct):
// dimension -> length -> combination -> degenerate construction.

package geom

import "errors"

var (
	// ErrDimensionMismatch indicates inconsistent dimensionality among the
	// arguments of one call, or a signature applied in a dimension it does not
	// support (e.g. a diametral circle from two 3D points).
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")

	// ErrLengthMismatch indicates argument lengths that are neither 1 nor the
	// common maximum, or a broadcast request on a vector longer than 1.
	ErrLengthMismatch = errors.New("geom: length mismatch")

	// ErrUnsupportedCombination indicates that no dispatch signature matches
	// the classified argument kinds.
	ErrUnsupportedCombination = errors.New("geom: no known construction for this combination of argument kinds")

	// ErrDegenerateConstruction is reported by kernels for geometrically
	// degenerate input (collinear points, disjoint spheres, ...).
	ErrDegenerateConstruction = errors.New("geom: degenerate construction")

	// ErrConversionUnsupported indicates a kind conversion with no defined mapping.
	ErrConversionUnsupported = errors.New("geom: conversion unsupported")

	// ErrOutOfRange indicates an element index outside [0, Len).
	ErrOutOfRange = errors.New("geom: index out of range")

	// ErrKindMismatch indicates a primitive of the wrong kind for a vector or
	// kernel operation, or an attempt to combine vectors of different kinds.
	ErrKindMismatch = errors.New("geom: kind mismatch")

	// ErrUnknownKind indicates a kind name that ParseKind does not recognise.
	ErrUnknownKind = errors.New("geom: unknown kind")
)
