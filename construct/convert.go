// SPDX-License-Identifier: MIT
// Package: lvgeo/construct
//
// convert.go — kind conversions and circle accessors.
//
// Defined mappings (everything else is geom.ErrConversionUnsupported):
//
//	any kind  -> same kind   identity, the input is returned unchanged
//	raw Go numerics -> number
//	point     -> vector      position vector, 2D and 3D
//	vector    -> point       2D and 3D
//	circle    -> plane       supporting plane, 3D only
//	circle    -> sphere      diametral sphere, 3D only

package construct

import (
	"github.com/katalvlaran/lvgeo/geom"
)

type conversion struct {
	op   geom.Op
	dims []geom.Dim
}

var conversions = map[[2]geom.Kind]conversion{
	{geom.KindPoint, geom.KindVector}:  {op: geom.OpPointToVector, dims: []geom.Dim{geom.Dim2, geom.Dim3}},
	{geom.KindVector, geom.KindPoint}:  {op: geom.OpVectorToPoint, dims: []geom.Dim{geom.Dim2, geom.Dim3}},
	{geom.KindCircle, geom.KindPlane}:  {op: geom.OpCircleSupportingPlane, dims: []geom.Dim{geom.Dim3}},
	{geom.KindCircle, geom.KindSphere}: {op: geom.OpCircleDiametralSphere, dims: []geom.Dim{geom.Dim3}},
}

// As converts value to a vector of kind. value may be a geom.Vector, a
// primitive or a raw Go number.
//
// Errors: geom.ErrConversionUnsupported for unknown values, undefined
// mappings and mappings not defined in the value's dimension; kernel errors
// are passed through wrapped.
func As(kind geom.Kind, value any, opts ...Option) (geom.Vector, error) {
	return as(MethodAs, kind, value, opts)
}

func as(method string, kind geom.Kind, value any, opts []Option) (geom.Vector, error) {
	cfg := newConfig(opts...)
	if named, ok := value.(Arg); ok {
		value = named.Value
	}

	src, ok, err := toVector(cfg.kernel, value)
	if err != nil {
		return geom.Vector{}, constructErrorf(method, err, "classify")
	}
	if !ok {
		return geom.Vector{}, constructErrorf(method, geom.ErrConversionUnsupported, "%T to %s", value, kind)
	}
	if src.Kind() == kind {
		return src, nil
	}

	conv, ok := conversions[[2]geom.Kind{src.Kind(), kind}]
	if !ok {
		return geom.Vector{}, constructErrorf(method, geom.ErrConversionUnsupported, "%s to %s", src.Kind(), kind)
	}
	if !dimIn(src.Dim(), conv.dims) {
		return geom.Vector{}, constructErrorf(method, geom.ErrConversionUnsupported, "%s %s to %s", src.Dim(), src.Kind(), kind)
	}
	if src.Len() == 0 {
		return geom.Empty(kind, src.Dim())
	}

	return execute(cfg, method, conv.op, kind, src.Dim(), src.Len(), []geom.Vector{src})
}

func dimIn(d geom.Dim, ds []geom.Dim) bool {
	for _, x := range ds {
		if x == d {
			return true
		}
	}
	return false
}

// AsPoint converts value to points.
func AsPoint(value any, opts ...Option) (geom.Vector, error) {
	return as(MethodAs, geom.KindPoint, value, opts)
}

// AsNumber converts value (typically raw Go numbers) to exact numbers.
func AsNumber(value any, opts ...Option) (geom.Vector, error) {
	return as(MethodAs, geom.KindNumber, value, opts)
}

// AsVector converts value to direction vectors.
func AsVector(value any, opts ...Option) (geom.Vector, error) {
	return as(MethodAs, geom.KindVector, value, opts)
}

// AsPlane converts value to planes.
func AsPlane(value any, opts ...Option) (geom.Vector, error) {
	return as(MethodAs, geom.KindPlane, value, opts)
}

// AsSphere converts value to spheres.
func AsSphere(value any, opts ...Option) (geom.Vector, error) {
	return as(MethodAs, geom.KindSphere, value, opts)
}

// AsCircle converts value to circles. Circles are returned unchanged.
func AsCircle(value any, opts ...Option) (geom.Vector, error) {
	return as(MethodAs, geom.KindCircle, value, opts)
}

// SupportingPlane returns the plane each 3D circle lies in.
// Non-circle input is geom.ErrKindMismatch.
func SupportingPlane(circles geom.Vector, opts ...Option) (geom.Vector, error) {
	if circles.Kind() != geom.KindCircle {
		return geom.Vector{}, constructErrorf(MethodSupportingPlane, geom.ErrKindMismatch, "got %s", circles.Kind())
	}
	return as(MethodSupportingPlane, geom.KindPlane, circles, opts)
}

// DiametralSphere returns, for each 3D circle, the sphere that has it as a
// great circle. Non-circle input is geom.ErrKindMismatch.
func DiametralSphere(circles geom.Vector, opts ...Option) (geom.Vector, error) {
	if circles.Kind() != geom.KindCircle {
		return geom.Vector{}, constructErrorf(MethodDiametralSphere, geom.ErrKindMismatch, "got %s", circles.Kind())
	}
	return as(MethodDiametralSphere, geom.KindSphere, circles, opts)
}
