// SPDX-License-Identifier: MIT
// Package: lvgeo/geom
//
// predicates.go — kind classification predicates.

package geom

// KindOf reports the geometric kind carried by value: a Vector, a *Vector or
// a Primitive. Anything else (raw numbers included) reports KindInvalid.
func KindOf(value any) Kind {
	switch v := value.(type) {
	case Vector:
		return v.kind
	case *Vector:
		if v == nil {
			return KindInvalid
		}
		return v.kind
	case Primitive:
		return v.Kind()
	default:
		return KindInvalid
	}
}

// Is reports whether value is a typed geometric value of the given kind.
// Raw Go numbers are not numbers in this sense until promoted.
func Is(kind Kind, value any) bool {
	return kind.Valid() && KindOf(value) == kind
}

// IsPoint reports whether value is a point vector or point primitive.
func IsPoint(value any) bool { return Is(KindPoint, value) }

// IsNumber reports whether value is an exact-number vector or primitive.
func IsNumber(value any) bool { return Is(KindNumber, value) }

// IsVector reports whether value holds direction vectors (KindVector).
func IsVector(value any) bool { return Is(KindVector, value) }

// IsPlane reports whether value is a plane vector or primitive.
func IsPlane(value any) bool { return Is(KindPlane, value) }

// IsSphere reports whether value is a sphere vector or primitive.
func IsSphere(value any) bool { return Is(KindSphere, value) }

// IsCircle reports whether value is a circle vector or primitive.
func IsCircle(value any) bool { return Is(KindCircle, value) }
