// SPDX-License-Identifier: MIT
// Package: lvgeo/construct
//
// dispatch.go — ConstructorDispatchTable.
//
// Each target kind owns an ordered list of signatures. A signature matches
// when the multiset of classified argument kinds equals its operand kinds
// exactly, with no unclassified arguments. Exact matching makes signatures
// mutually exclusive; the order is kept as the documented precedence anyway.

package construct

import (
	"github.com/katalvlaran/lvgeo/geom"
)

// signature binds an argument-kind multiset to one kernel operation.
type signature struct {
	name     string
	operands []geom.Kind // kernel operand order
	dims     []geom.Dim  // dimensions the construction is defined in
	op       geom.Op
	hint     string // added to dimension errors
}

// Short aliases keep the tables readable.
const (
	kPt  = geom.KindPoint
	kNum = geom.KindNumber
	kVec = geom.KindVector
	kPl  = geom.KindPlane
	kSph = geom.KindSphere
	kCir = geom.KindCircle
)

// circleSignatures in precedence order.
var circleSignatures = []signature{
	{name: "three points", operands: []geom.Kind{kPt, kPt, kPt}, dims: []geom.Dim{geom.Dim2, geom.Dim3}, op: geom.OpCircleThreePoints},
	{name: "two points", operands: []geom.Kind{kPt, kPt}, dims: []geom.Dim{geom.Dim2}, op: geom.OpCircleDiametral,
		hint: "two 3D points do not fix the supporting plane"},
	{name: "center, squared radius and plane", operands: []geom.Kind{kPt, kNum, kPl}, dims: []geom.Dim{geom.Dim3}, op: geom.OpCircleCenterPlane},
	{name: "center, squared radius and normal", operands: []geom.Kind{kPt, kNum, kVec}, dims: []geom.Dim{geom.Dim3}, op: geom.OpCircleCenterNormal,
		hint: "a supporting normal only applies to 3D circles"},
	{name: "center and squared radius", operands: []geom.Kind{kPt, kNum}, dims: []geom.Dim{geom.Dim2}, op: geom.OpCircleCenterRadius,
		hint: "a 3D circle also needs a supporting plane or normal vector"},
	{name: "two spheres", operands: []geom.Kind{kSph, kSph}, dims: []geom.Dim{geom.Dim3}, op: geom.OpCircleSphereSphere},
	{name: "sphere and plane", operands: []geom.Kind{kSph, kPl}, dims: []geom.Dim{geom.Dim3}, op: geom.OpCircleSpherePlane},
}

// sphereSignatures in precedence order.
var sphereSignatures = []signature{
	{name: "four points", operands: []geom.Kind{kPt, kPt, kPt, kPt}, dims: []geom.Dim{geom.Dim3}, op: geom.OpSphereFourPoints},
	{name: "three points", operands: []geom.Kind{kPt, kPt, kPt}, dims: []geom.Dim{geom.Dim3}, op: geom.OpSphereThreePoints},
	{name: "two points", operands: []geom.Kind{kPt, kPt}, dims: []geom.Dim{geom.Dim3}, op: geom.OpSphereDiametral},
	{name: "center and squared radius", operands: []geom.Kind{kPt, kNum}, dims: []geom.Dim{geom.Dim3}, op: geom.OpSphereCenterRadius},
	{name: "great circle", operands: []geom.Kind{kCir}, dims: []geom.Dim{geom.Dim3}, op: geom.OpSphereGreatCircle},
}

// dispatchTables maps each buildable kind to its signatures.
var dispatchTables = map[geom.Kind][]signature{
	geom.KindCircle: circleSignatures,
	geom.KindSphere: sphereSignatures,
}

func (s signature) matches(set argumentSet) bool {
	if len(set.unclassified) > 0 {
		return false
	}
	want := make(map[geom.Kind]int, len(s.operands))
	for _, k := range s.operands {
		want[k]++
	}
	for _, k := range geom.Kinds {
		if set.count(k) != want[k] {
			return false
		}
	}
	return true
}

func (s signature) supports(dim geom.Dim) bool {
	for _, d := range s.dims {
		if d == dim {
			return true
		}
	}
	return false
}

// operandVectors lays the bucketed arguments out in kernel operand order,
// preserving call order within each kind.
func (s signature) operandVectors(set argumentSet) []geom.Vector {
	next := make(map[geom.Kind]int, len(s.operands))
	out := make([]geom.Vector, len(s.operands))
	for i, k := range s.operands {
		out[i] = set.buckets[k][next[k]].vec
		next[k]++
	}
	return out
}

// dispatch selects the first matching signature and checks its dimension.
//
// Errors:
//   - ErrUnsupportedCombination when nothing matches.
//   - ErrDimensionMismatch when the match is not defined in dim.
func dispatch(method string, kind geom.Kind, set argumentSet, dim geom.Dim) (signature, error) {
	table, ok := dispatchTables[kind]
	if !ok {
		return signature{}, constructErrorf(method, geom.ErrUnsupportedCombination, "no constructors for %s", kind)
	}
	for _, sig := range table {
		if !sig.matches(set) {
			continue
		}
		if !sig.supports(dim) {
			if sig.hint != "" {
				return signature{}, constructErrorf(method, geom.ErrDimensionMismatch,
					"%s from %s is not defined in %s (%s)", kind, sig.name, dim, sig.hint)
			}
			return signature{}, constructErrorf(method, geom.ErrDimensionMismatch,
				"%s from %s is not defined in %s", kind, sig.name, dim)
		}
		return sig, nil
	}
	return signature{}, constructErrorf(method, geom.ErrUnsupportedCombination, "%s from %s", kind, set.describe())
}

// SignatureInfo describes one entry of a dispatch table.
type SignatureInfo struct {
	Name     string
	Operands []geom.Kind
	Dims     []geom.Dim
	Op       geom.Op
}

// Signatures returns the constructors of kind in precedence order, or nil
// when kind cannot be built.
func Signatures(kind geom.Kind) []SignatureInfo {
	table := dispatchTables[kind]
	if len(table) == 0 {
		return nil
	}
	out := make([]SignatureInfo, len(table))
	for i, sig := range table {
		out[i] = SignatureInfo{
			Name:     sig.name,
			Operands: append([]geom.Kind(nil), sig.operands...),
			Dims:     append([]geom.Dim(nil), sig.dims...),
			Op:       sig.op,
		}
	}
	return out
}
