// Package lvgeo builds exact geometric primitives (circles, spheres, planes,
// points and vectors) from heterogeneous argument lists.
//
// What is lvgeo?
//
//	A small, dependency-light library that brings together:
//		• Element-wise vectors of primitives with a missing marker
//		• Argument classification by kind, dimension and length checks
//		• Recycling of length-1 arguments to the common length
//		• Ordered dispatch tables mapping argument kinds to constructions
//		• Exact rational arithmetic behind a replaceable kernel
//
// Under the hood, everything is organized under three subpackages:
//
//	geom/      — Kind and Dim tags, the Primitive interface, Vector, sentinel errors
//	kernel/    — the Kernel interface and the exact big.Rat backend (Rational)
//	construct/ — Build, Circle, Sphere, As* conversions and functional options
//
// The geoc command (cmd/geoc) exposes the same constructions on the command
// line, from flags or YAML batch files.
//
// Quick example:
//
//	c, err := construct.Circle(kernel.P2(0, 0), kernel.P2(2, 2))
//	// c == circle[2D]{Circle(center=(1, 1), r2=2)}
//
// Numbers are squared extents: Circle(center, 4) has radius 2.
//
//	go get github.com/katalvlaran/lvgeo/construct
package lvgeo
