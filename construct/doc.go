// Package construct builds geom.Vectors of circles and spheres from loosely
// typed argument lists, in the style of mathematical notation:
//
//	construct.Circle(center, 4)             // center + squared radius (2D)
//	construct.Circle(p, q)                  // diametral circle (2D)
//	construct.Circle(p, q, r)               // circumcircle (2D or 3D)
//	construct.Circle(center, 9, plane)      // center + squared radius + plane (3D)
//	construct.Circle(center, 9, normal)     // center + squared radius + normal (3D)
//	construct.Circle(s1, s2)                // intersection of two spheres (3D)
//	construct.Circle(s, plane)              // intersection of sphere and plane (3D)
//
// Every call runs the same pipeline:
//
//	classify  -> raw Go numbers are promoted to exact numbers; values are
//	             bucketed by geometric kind; anything else is unclassified.
//	recycle   -> all arguments must share one dimension and have length 1 or
//	             the common maximum; length-1 arguments are broadcast.
//	dispatch  -> the multiset of argument kinds is matched against an ordered
//	             signature table for the requested kind.
//	execute   -> the kernel runs the signature's operation element by element;
//	             a missing input element yields a missing output element.
//
// Numbers in radius positions are SQUARED radii. Square a linear radius before
// passing it; this keeps every construction rational.
//
// Errors are the geom sentinels (ErrDimensionMismatch, ErrLengthMismatch,
// ErrUnsupportedCombination, ErrDegenerateConstruction,
// ErrConversionUnsupported) wrapped with call context; branch with errors.Is.
// A failing call never returns a partial vector.
//
// Options are ordinary arguments too: construct.Circle(p, 4, WithWorkers(4))
// and Build(kind, args, opts...) are equivalent ways to pass them.
package construct
