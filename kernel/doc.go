// Package kernel is the exact-arithmetic geometry backend behind lvgeo.
//
// The Kernel interface is the only surface the construct package sees: one
// Promote for raw numbers and one Construct that runs a geom.Op on primitive
// handles. Rational implements it with math/big.Rat, so every result is exact:
// radii travel as squared radii and no operation ever takes a square root.
//
// Concrete primitives (Number, Point, Vec, Plane, Sphere, Circle) are
// immutable values. Constructors copy their inputs and accessors return
// copies, so a primitive can be shared between goroutines without locks.
//
// Degenerate input (collinear points, concentric spheres, a center that is not
// on its plane, ...) is reported as geom.ErrDegenerateConstruction.
package kernel
