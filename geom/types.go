// SPDX-License-Identifier: MIT
// Package: lvgeo/geom
//
// types.go — geometric kind and dimension tags, and the Primitive contract.

package geom

import "fmt"

// Kind tags the geometric type of a Primitive. The set is closed; switches
// over Kind are expected to be exhaustive.
type Kind uint8

const (
	// KindInvalid is the zero Kind and never tags a real primitive.
	KindInvalid Kind = iota
	// KindPoint is a location in 2D or 3D space.
	KindPoint
	// KindNumber is an exact scalar. Numbers carry no dimension.
	KindNumber
	// KindVector is a direction/displacement in 2D or 3D space.
	KindVector
	// KindPlane is an oriented plane a·x + b·y + c·z + d = 0 (3D only).
	KindPlane
	// KindSphere is a center with a squared radius (3D only).
	KindSphere
	// KindCircle is a center with a squared radius; in 3D it also carries a
	// supporting plane normal.
	KindCircle
)

// Kinds lists every valid Kind in bucket order. The classifier and the
// dispatch tables iterate in this order.
var Kinds = [...]Kind{KindPoint, KindNumber, KindVector, KindPlane, KindSphere, KindCircle}

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindPoint:   "point",
	KindNumber:  "number",
	KindVector:  "vector",
	KindPlane:   "plane",
	KindSphere:  "sphere",
	KindCircle:  "circle",
}

// String returns the lower-case kind name ("point", "circle", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the Kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindCircle
}

// ParseKind maps a kind name back to its Kind.
// Returns ErrUnknownKind for anything else.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("ParseKind: %q: %w", name, ErrUnknownKind)
}

// Dim tags the ambient dimensionality of a Primitive.
type Dim uint8

const (
	// DimNone is reported by dimensionless primitives (numbers).
	DimNone Dim = 0
	// Dim2 is the plane.
	Dim2 Dim = 2
	// Dim3 is space.
	Dim3 Dim = 3
)

// String renders "2D", "3D" or "none".
func (d Dim) String() string {
	switch d {
	case Dim2:
		return "2D"
	case Dim3:
		return "3D"
	case DimNone:
		return "none"
	default:
		return fmt.Sprintf("dim(%d)", uint8(d))
	}
}

// ParseDim converts an integer 2 or 3 into a Dim.
// Returns ErrDimensionMismatch for every other value.
func ParseDim(n int) (Dim, error) {
	switch n {
	case 2:
		return Dim2, nil
	case 3:
		return Dim3, nil
	default:
		return DimNone, fmt.Errorf("ParseDim: %d is not 2 or 3: %w", n, ErrDimensionMismatch)
	}
}

// Primitive is an opaque, immutable, exact geometric object. Kind and Dim
// never change over its lifetime. Implementations live in a kernel; the core
// packages never look past this interface.
type Primitive interface {
	// Kind returns the geometric kind of the primitive.
	Kind() Kind
	// Dim returns Dim2 or Dim3, or DimNone for numbers.
	Dim() Dim
	// Equal reports exact equality with another primitive of any kind.
	Equal(other Primitive) bool
	// String renders the primitive exactly (rational coordinates).
	String() string
}
