// SPDX-License-Identifier: MIT
// Package: lvgeo/kernel
//
// kernel.go — the Kernel contract and its exact rational implementation.
//
// Contract:
//   - Construct is pure: same op, dim and arguments give an Equal result.
//   - Argument handles must match the op signature in kind and dimension;
//     otherwise geom.ErrKindMismatch / geom.ErrDimensionMismatch.
//   - Geometric degeneracy is geom.ErrDegenerateConstruction.
//   - Missing slots never reach a kernel; the caller filters them.

package kernel

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvgeo/geom"
)

// Kernel is the exact-arithmetic capability consumed by package construct.
type Kernel interface {
	// Promote turns an exact rational into a number primitive. It never fails.
	Promote(r *big.Rat) geom.Primitive
	// Construct runs op in dimension dim over args and returns a new primitive.
	Construct(op geom.Op, dim geom.Dim, args ...geom.Primitive) (geom.Primitive, error)
}

// Rational is the big.Rat kernel. The zero value is ready to use and is safe
// for concurrent use.
type Rational struct{}

var _ Kernel = Rational{}

// Promote wraps r as a Number.
func (Rational) Promote(r *big.Rat) geom.Primitive { return NewNumber(r) }

// signature describes the handles an op accepts.
type signature struct {
	kinds []geom.Kind
	dims  []geom.Dim
}

var signatures = map[geom.Op]signature{
	geom.OpCircleThreePoints:     {kinds: kinds(geom.KindPoint, geom.KindPoint, geom.KindPoint), dims: dims(geom.Dim2, geom.Dim3)},
	geom.OpCircleDiametral:       {kinds: kinds(geom.KindPoint, geom.KindPoint), dims: dims(geom.Dim2)},
	geom.OpCircleCenterPlane:     {kinds: kinds(geom.KindPoint, geom.KindNumber, geom.KindPlane), dims: dims(geom.Dim3)},
	geom.OpCircleCenterNormal:    {kinds: kinds(geom.KindPoint, geom.KindNumber, geom.KindVector), dims: dims(geom.Dim3)},
	geom.OpCircleCenterRadius:    {kinds: kinds(geom.KindPoint, geom.KindNumber), dims: dims(geom.Dim2)},
	geom.OpCircleSphereSphere:    {kinds: kinds(geom.KindSphere, geom.KindSphere), dims: dims(geom.Dim3)},
	geom.OpCircleSpherePlane:     {kinds: kinds(geom.KindSphere, geom.KindPlane), dims: dims(geom.Dim3)},
	geom.OpSphereFourPoints:      {kinds: kinds(geom.KindPoint, geom.KindPoint, geom.KindPoint, geom.KindPoint), dims: dims(geom.Dim3)},
	geom.OpSphereThreePoints:     {kinds: kinds(geom.KindPoint, geom.KindPoint, geom.KindPoint), dims: dims(geom.Dim3)},
	geom.OpSphereDiametral:       {kinds: kinds(geom.KindPoint, geom.KindPoint), dims: dims(geom.Dim3)},
	geom.OpSphereCenterRadius:    {kinds: kinds(geom.KindPoint, geom.KindNumber), dims: dims(geom.Dim3)},
	geom.OpSphereGreatCircle:     {kinds: kinds(geom.KindCircle), dims: dims(geom.Dim3)},
	geom.OpCircleSupportingPlane: {kinds: kinds(geom.KindCircle), dims: dims(geom.Dim3)},
	geom.OpCircleDiametralSphere: {kinds: kinds(geom.KindCircle), dims: dims(geom.Dim3)},
	geom.OpPointToVector:         {kinds: kinds(geom.KindPoint), dims: dims(geom.Dim2, geom.Dim3)},
	geom.OpVectorToPoint:         {kinds: kinds(geom.KindVector), dims: dims(geom.Dim2, geom.Dim3)},
}

func kinds(k ...geom.Kind) []geom.Kind { return k }
func dims(d ...geom.Dim) []geom.Dim    { return d }

// Supports reports whether op is defined in dimension dim.
func Supports(op geom.Op, dim geom.Dim) bool {
	sig, ok := signatures[op]
	if !ok {
		return false
	}
	for _, d := range sig.dims {
		if d == dim {
			return true
		}
	}
	return false
}

// Construct validates the handles against op's signature and evaluates it.
func (r Rational) Construct(op geom.Op, dim geom.Dim, args ...geom.Primitive) (geom.Primitive, error) {
	if err := checkArgs(op, dim, args); err != nil {
		return nil, err
	}

	switch op {
	case geom.OpCircleThreePoints:
		return circleThreePoints(args[0].(Point), args[1].(Point), args[2].(Point))
	case geom.OpCircleDiametral:
		return circleDiametral(args[0].(Point), args[1].(Point))
	case geom.OpCircleCenterPlane:
		return circleCenterPlane(args[0].(Point), args[1].(Number), args[2].(Plane))
	case geom.OpCircleCenterNormal:
		return NewCircle3(args[0].(Point), args[1].(Number).v, args[2].(Vec))
	case geom.OpCircleCenterRadius:
		return NewCircle2(args[0].(Point), args[1].(Number).v)
	case geom.OpCircleSphereSphere:
		return circleSphereSphere(args[0].(Sphere), args[1].(Sphere))
	case geom.OpCircleSpherePlane:
		return circleSpherePlane(args[0].(Sphere), args[1].(Plane))
	case geom.OpSphereFourPoints:
		return sphereFourPoints(args[0].(Point), args[1].(Point), args[2].(Point), args[3].(Point))
	case geom.OpSphereThreePoints:
		return sphereThreePoints(args[0].(Point), args[1].(Point), args[2].(Point))
	case geom.OpSphereDiametral:
		return sphereDiametral(args[0].(Point), args[1].(Point))
	case geom.OpSphereCenterRadius:
		return NewSphere(args[0].(Point), args[1].(Number).v)
	case geom.OpSphereGreatCircle, geom.OpCircleDiametralSphere:
		c := args[0].(Circle)
		return NewSphere(c.center, c.sq)
	case geom.OpCircleSupportingPlane:
		return supportingPlane(args[0].(Circle))
	case geom.OpPointToVector:
		return Vec{xyz: copyTuple(args[0].(Point).xyz)}, nil
	case geom.OpVectorToPoint:
		return Point{xyz: copyTuple(args[0].(Vec).xyz)}, nil
	default:
		// unreachable: checkArgs rejects ops without a signature
		return nil, fmt.Errorf("Construct: %s: %w", op, geom.ErrUnsupportedCombination)
	}
}

// checkArgs enforces arity, concrete handle types and dimensions for op.
func checkArgs(op geom.Op, dim geom.Dim, args []geom.Primitive) error {
	sig, ok := signatures[op]
	if !ok {
		return fmt.Errorf("Construct: %s: %w", op, geom.ErrUnsupportedCombination)
	}
	if !Supports(op, dim) {
		return fmt.Errorf("Construct: %s in %s: %w", op, dim, geom.ErrDimensionMismatch)
	}
	if len(args) != len(sig.kinds) {
		return fmt.Errorf("Construct: %s takes %d arguments, got %d: %w", op, len(sig.kinds), len(args), geom.ErrKindMismatch)
	}
	for i, a := range args {
		if a == nil {
			return fmt.Errorf("Construct: %s: argument %d is missing: %w", op, i, geom.ErrKindMismatch)
		}
		if a.Kind() != sig.kinds[i] || !ownHandle(a) {
			return fmt.Errorf("Construct: %s: argument %d is %s (%T), want %s: %w", op, i, a.Kind(), a, sig.kinds[i], geom.ErrKindMismatch)
		}
		if !a.(handle).valid() {
			return fmt.Errorf("Construct: %s: argument %d is an unbuilt %T: %w", op, i, a, geom.ErrKindMismatch)
		}
		if a.Kind() != geom.KindNumber && a.Dim() != dim {
			return fmt.Errorf("Construct: %s: argument %d is %s, want %s: %w", op, i, a.Dim(), dim, geom.ErrDimensionMismatch)
		}
	}
	return nil
}

// handle is implemented by every concrete primitive of this package.
type handle interface {
	geom.Primitive
	// valid is false for zero values and other handles that did not come
	// from a constructor.
	valid() bool
}

// ownHandle reports whether p is one of this package's concrete types, so the
// type assertions in Construct cannot panic on foreign primitives.
func ownHandle(p geom.Primitive) bool {
	switch p.(type) {
	case Number, Point, Vec, Plane, Sphere, Circle:
		return true
	default:
		return false
	}
}
