// Package geom defines the data model shared by the lvgeo packages: the closed
// set of geometric kinds, dimension tags, the opaque Primitive handle, the
// immutable Vector container and the sentinel error taxonomy.
//
// A Vector holds primitives of exactly one Kind and one Dim. Slots may carry
// the missing marker (a nil Primitive); operations propagate it instead of
// failing. Vectors are values: every operation returns a new Vector and never
// mutates its receiver, so they can be shared across goroutines freely.
//
// The package knows nothing about arithmetic. Concrete primitives come from a
// kernel (see package kernel); geom only inspects their Kind and Dim.
//
//	v, _ := geom.NewVector(geom.KindPoint, geom.Dim2, p, q)
//	v.Len()      // 2
//	v.At(5)      // ErrOutOfRange
//	v.Recycle(4) // ErrLengthMismatch (only length-1 vectors broadcast)
package geom
