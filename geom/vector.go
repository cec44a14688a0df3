// SPDX-License-Identifier: MIT
// Package: lvgeo/geom
//
// vector.go — the immutable, homogeneous Vector container.
//
// Contract:
//   - One Kind and one Dim per Vector, fixed at construction.
//   - A nil slot is the missing marker; it is valid in every position.
//   - Methods never mutate the receiver; derived vectors own fresh slices.

package geom

import (
	"fmt"
	"strings"
)

// Vector is an ordered sequence of primitives of one kind and one dimension.
// The zero Vector is an empty vector of KindInvalid and is what failing
// operations return.
type Vector struct {
	kind  Kind
	dim   Dim
	elems []Primitive
}

// NewVector builds a Vector from elems, checking that every non-missing
// element has the requested kind and dimension.
//
// Errors:
//   - ErrUnknownKind if kind is not valid.
//   - ErrDimensionMismatch if dim does not suit kind, or an element disagrees.
//   - ErrKindMismatch if an element has a different kind.
//
// Complexity: O(len(elems)).
func NewVector(kind Kind, dim Dim, elems ...Primitive) (Vector, error) {
	if err := checkKindDim("NewVector", kind, dim); err != nil {
		return Vector{}, err
	}
	for i, e := range elems {
		if e == nil {
			continue
		}
		if e.Kind() != kind {
			return Vector{}, fmt.Errorf("NewVector: element %d is %s, want %s: %w", i, e.Kind(), kind, ErrKindMismatch)
		}
		if e.Dim() != dim {
			return Vector{}, fmt.Errorf("NewVector: element %d is %s, want %s: %w", i, e.Dim(), dim, ErrDimensionMismatch)
		}
	}
	out := make([]Primitive, len(elems))
	copy(out, elems)

	return Vector{kind: kind, dim: dim, elems: out}, nil
}

// Of wraps a single primitive into a length-1 Vector of its own kind and dim.
// A nil primitive has no kind and cannot be wrapped.
func Of(p Primitive) (Vector, error) {
	if p == nil {
		return Vector{}, fmt.Errorf("Of: nil primitive: %w", ErrKindMismatch)
	}
	return NewVector(p.Kind(), p.Dim(), p)
}

// Empty returns a zero-length vector of the given kind and dimension.
func Empty(kind Kind, dim Dim) (Vector, error) {
	if err := checkKindDim("Empty", kind, dim); err != nil {
		return Vector{}, err
	}
	return Vector{kind: kind, dim: dim, elems: []Primitive{}}, nil
}

// checkKindDim rejects kind/dim pairs that can never hold a primitive.
func checkKindDim(method string, kind Kind, dim Dim) error {
	if !kind.Valid() {
		return fmt.Errorf("%s: %s: %w", method, kind, ErrUnknownKind)
	}
	switch kind {
	case KindNumber:
		if dim != DimNone {
			return fmt.Errorf("%s: numbers have no dimension, got %s: %w", method, dim, ErrDimensionMismatch)
		}
	case KindPlane, KindSphere:
		if dim != Dim3 {
			return fmt.Errorf("%s: %s requires 3D, got %s: %w", method, kind, dim, ErrDimensionMismatch)
		}
	default:
		if dim != Dim2 && dim != Dim3 {
			return fmt.Errorf("%s: %s requires 2D or 3D, got %s: %w", method, kind, dim, ErrDimensionMismatch)
		}
	}
	return nil
}

// Kind returns the element kind.
func (v Vector) Kind() Kind { return v.kind }

// Dim returns the element dimension (DimNone for numbers).
func (v Vector) Dim() Dim { return v.dim }

// Len returns the number of slots, missing ones included.
func (v Vector) Len() int { return len(v.elems) }

// At returns the element at index i; a missing slot yields (nil, nil).
// Returns ErrOutOfRange if i is outside [0, Len).
func (v Vector) At(i int) (Primitive, error) {
	if i < 0 || i >= len(v.elems) {
		return nil, fmt.Errorf("At: index %d, len %d: %w", i, len(v.elems), ErrOutOfRange)
	}
	return v.elems[i], nil
}

// IsMissing reports whether slot i holds the missing marker. Out-of-range
// indices report false.
func (v Vector) IsMissing(i int) bool {
	return i >= 0 && i < len(v.elems) && v.elems[i] == nil
}

// Elements returns a copy of the slots.
func (v Vector) Elements() []Primitive {
	out := make([]Primitive, len(v.elems))
	copy(out, v.elems)
	return out
}

// Recycle broadcasts a length-1 vector to length n. A vector already of
// length n is returned as is. Any other length is ErrLengthMismatch.
// Complexity: O(n).
func (v Vector) Recycle(n int) (Vector, error) {
	switch {
	case len(v.elems) == n:
		return v, nil
	case len(v.elems) == 1 && n >= 0:
		out := make([]Primitive, n)
		for i := range out {
			out[i] = v.elems[0]
		}
		return Vector{kind: v.kind, dim: v.dim, elems: out}, nil
	default:
		return Vector{}, fmt.Errorf("Recycle: cannot broadcast length %d to %d: %w", len(v.elems), n, ErrLengthMismatch)
	}
}

// Concat appends other after v. Both vectors must share kind and dimension;
// vectors of different kinds or dimensions are never combined.
func (v Vector) Concat(other Vector) (Vector, error) {
	if v.kind != other.kind {
		return Vector{}, fmt.Errorf("Concat: %s with %s: %w", v.kind, other.kind, ErrKindMismatch)
	}
	if v.dim != other.dim {
		return Vector{}, fmt.Errorf("Concat: %s with %s: %w", v.dim, other.dim, ErrDimensionMismatch)
	}
	out := make([]Primitive, 0, len(v.elems)+len(other.elems))
	out = append(out, v.elems...)
	out = append(out, other.elems...)

	return Vector{kind: v.kind, dim: v.dim, elems: out}, nil
}

// Equal reports whether both vectors have the same kind, dimension, length
// and exactly equal elements. Missing equals missing.
func (v Vector) Equal(other Vector) bool {
	if v.kind != other.kind || v.dim != other.dim || len(v.elems) != len(other.elems) {
		return false
	}
	for i := range v.elems {
		a, b := v.elems[i], other.elems[i]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && !a.Equal(b) {
			return false
		}
	}
	return true
}

// MissingLabel is how String renders a missing slot.
const MissingLabel = "<missing>"

// String renders "circle[2D]{Circle(...), <missing>}".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString(v.kind.String())
	sb.WriteByte('[')
	sb.WriteString(v.dim.String())
	sb.WriteString("]{")
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		if e == nil {
			sb.WriteString(MissingLabel)
			continue
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
