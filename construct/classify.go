// SPDX-License-Identifier: MIT
// Package: lvgeo/construct
//
// classify.go — InputClassifier: raw arguments -> typed arguments -> buckets.
//
// Raw Go numbers are promoted to exact numbers through the kernel's Promote.
// Promotion is total: NaN and ±Inf become the missing marker, never an error.

package construct

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/lvgeo/geom"
	"github.com/katalvlaran/lvgeo/kernel"
)

// Arg is a named argument slot. Names do not influence dispatch; they label
// the argument in errors and logs.
type Arg struct {
	Name  string
	Value any
}

// Named wraps value in a named slot.
func Named(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// argument is one classified input. kind is geom.KindInvalid for unclassified
// values, which keep the raw value for error messages.
type argument struct {
	pos  int
	name string
	kind geom.Kind
	vec  geom.Vector
	raw  any
}

func (a argument) label() string {
	if a.name != "" {
		return fmt.Sprintf("argument %d (%s)", a.pos, a.name)
	}
	return fmt.Sprintf("argument %d", a.pos)
}

// splitOptions separates Option values from construction arguments so options
// can be passed inline, like a named default_dim.
func splitOptions(args []any) (values []any, opts []Option) {
	values = make([]any, 0, len(args))
	for _, a := range args {
		if o, ok := a.(Option); ok {
			opts = append(opts, o)
			continue
		}
		values = append(values, a)
	}
	return values, opts
}

// classify turns every raw value into an argument. It fails only when a
// kernel's Promote breaks its contract.
func classify(k kernel.Kernel, values []any) ([]argument, error) {
	out := make([]argument, 0, len(values))
	for i, v := range values {
		a := argument{pos: i}
		if named, ok := v.(Arg); ok {
			a.name, v = named.Name, named.Value
		}
		vec, ok, err := toVector(k, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.label(), err)
		}
		if ok {
			a.kind, a.vec = vec.Kind(), vec
		} else {
			a.raw = v
		}
		out = append(out, a)
	}
	return out, nil
}

// toVector reports the typed vector behind v, promoting raw numerics.
// ok is false for values that are neither geometric nor numeric.
func toVector(k kernel.Kernel, v any) (geom.Vector, bool, error) {
	switch x := v.(type) {
	case geom.Vector:
		return x, x.Kind().Valid(), nil
	case *geom.Vector:
		if x == nil {
			return geom.Vector{}, false, nil
		}
		return *x, x.Kind().Valid(), nil
	case geom.Primitive:
		vec, err := geom.Of(x)
		return vec, err == nil, nil
	}

	rats, ok := numericRats(v)
	if !ok {
		return geom.Vector{}, false, nil
	}
	elems := make([]geom.Primitive, len(rats))
	for i, r := range rats {
		if r != nil {
			elems[i] = k.Promote(r)
		}
	}
	vec, err := geom.NewVector(geom.KindNumber, geom.DimNone, elems...)
	if err != nil {
		return geom.Vector{}, false, fmt.Errorf("promote: %w", err)
	}
	return vec, true, nil
}

// numericRats converts supported Go numerics into exact rationals: every
// built-in integer and float type, slices of them, *big.Int, *big.Rat and
// []*big.Rat. A nil entry in the result is a missing value.
func numericRats(v any) ([]*big.Rat, bool) {
	switch x := v.(type) {
	case int:
		return signedRats(x), true
	case int8:
		return signedRats(x), true
	case int16:
		return signedRats(x), true
	case int32:
		return signedRats(x), true
	case int64:
		return signedRats(x), true
	case uint:
		return unsignedRats(x), true
	case uint8:
		return unsignedRats(x), true
	case uint16:
		return unsignedRats(x), true
	case uint32:
		return unsignedRats(x), true
	case uint64:
		return unsignedRats(x), true
	case uintptr:
		return unsignedRats(x), true
	case float32:
		return floatRats(x), true
	case float64:
		return floatRats(x), true
	case []int:
		return signedRats(x...), true
	case []int8:
		return signedRats(x...), true
	case []int16:
		return signedRats(x...), true
	case []int32:
		return signedRats(x...), true
	case []int64:
		return signedRats(x...), true
	case []uint:
		return unsignedRats(x...), true
	case []uint8:
		return unsignedRats(x...), true
	case []uint16:
		return unsignedRats(x...), true
	case []uint32:
		return unsignedRats(x...), true
	case []uint64:
		return unsignedRats(x...), true
	case []uintptr:
		return unsignedRats(x...), true
	case []float32:
		return floatRats(x...), true
	case []float64:
		return floatRats(x...), true
	case *big.Int:
		if x == nil {
			return []*big.Rat{nil}, true
		}
		return []*big.Rat{new(big.Rat).SetInt(x)}, true
	case *big.Rat:
		if x == nil {
			return []*big.Rat{nil}, true
		}
		return []*big.Rat{new(big.Rat).Set(x)}, true
	case []*big.Rat:
		out := make([]*big.Rat, len(x))
		for i, r := range x {
			if r != nil {
				out[i] = new(big.Rat).Set(r)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func signedRats[T int | int8 | int16 | int32 | int64](xs ...T) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, n := range xs {
		out[i] = new(big.Rat).SetInt64(int64(n))
	}
	return out
}

func unsignedRats[T uint | uint8 | uint16 | uint32 | uint64 | uintptr](xs ...T) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, n := range xs {
		out[i] = new(big.Rat).SetUint64(uint64(n))
	}
	return out
}

// floatRats promotes floats exactly; float32 widens to float64 without loss.
func floatRats[T float32 | float64](xs ...T) []*big.Rat {
	out := make([]*big.Rat, len(xs))
	for i, f := range xs {
		out[i] = floatRat(float64(f))
	}
	return out
}

// floatRat is the exact binary value of f, or nil (missing) for NaN and ±Inf.
func floatRat(f float64) *big.Rat {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return new(big.Rat).SetFloat64(f)
}

// argumentSet is the per-call bucketing of classified arguments by kind.
type argumentSet struct {
	buckets      map[geom.Kind][]argument
	unclassified []argument
}

func bucket(args []argument) argumentSet {
	set := argumentSet{buckets: make(map[geom.Kind][]argument, len(geom.Kinds))}
	for _, a := range args {
		if a.kind == geom.KindInvalid {
			set.unclassified = append(set.unclassified, a)
			continue
		}
		set.buckets[a.kind] = append(set.buckets[a.kind], a)
	}
	return set
}

func (s argumentSet) count(k geom.Kind) int { return len(s.buckets[k]) }

// describe renders the bucket counts, e.g. "2 point, 1 number".
func (s argumentSet) describe() string {
	out := ""
	for _, k := range geom.Kinds {
		if n := s.count(k); n > 0 {
			if out != "" {
				out += ", "
			}
			out += fmt.Sprintf("%d %s", n, k)
		}
	}
	for _, a := range s.unclassified {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s of type %T", a.label(), a.raw)
	}
	if out == "" {
		return "no arguments"
	}
	return out
}
