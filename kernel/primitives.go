// SPDX-License-Identifier: MIT
// Package: lvgeo/kernel
//
// primitives.go — the exact primitive types handed out by Rational.
//
// Every type implements geom.Primitive with value receivers. Fields are
// unexported and never written after construction.

package kernel

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvgeo/geom"
)

// ErrNilCoordinate indicates a nil *big.Rat handed to a primitive constructor.
var ErrNilCoordinate = errors.New("kernel: nil coordinate")

// Compile-time interface checks.
var (
	_ geom.Primitive = Number{}
	_ geom.Primitive = Point{}
	_ geom.Primitive = Vec{}
	_ geom.Primitive = Plane{}
	_ geom.Primitive = Sphere{}
	_ geom.Primitive = Circle{}
)

func checkRats(method string, rs ...*big.Rat) error {
	for i, r := range rs {
		if r == nil {
			return fmt.Errorf("%s: component %d: %w", method, i, ErrNilCoordinate)
		}
	}
	return nil
}

// validTuple reports whether t has one of the given lengths and no nil entry.
func validTuple(t []*big.Rat, lens ...int) bool {
	ok := false
	for _, n := range lens {
		ok = ok || len(t) == n
	}
	if !ok {
		return false
	}
	for _, r := range t {
		if r == nil {
			return false
		}
	}
	return true
}

func validSquared(sq *big.Rat) bool { return sq != nil && sq.Sign() >= 0 }

func formatTuple(t []*big.Rat) string {
	parts := make([]string, len(t))
	for i, r := range t {
		parts[i] = r.RatString()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ---------------------------------------------------------------------------
// Number

// Number is an exact rational scalar.
type Number struct{ v *big.Rat }

// NewNumber copies r into a Number. A nil r is zero.
func NewNumber(r *big.Rat) Number {
	if r == nil {
		return Number{v: new(big.Rat)}
	}
	return Number{v: copyRat(r)}
}

// N is shorthand for NewNumber(Int(n)).
func N(n int64) Number { return Number{v: Int(n)} }

func (Number) Kind() geom.Kind { return geom.KindNumber }
func (Number) Dim() geom.Dim   { return geom.DimNone }

// Rat returns a copy of the value.
func (n Number) Rat() *big.Rat { return copyRat(n.v) }

func (n Number) Equal(other geom.Primitive) bool {
	o, ok := other.(Number)
	return ok && n.v.Cmp(o.v) == 0
}

func (n Number) valid() bool { return n.v != nil }

func (n Number) String() string { return n.v.RatString() }

// ---------------------------------------------------------------------------
// Point

// Point is a location with 2 or 3 exact coordinates.
type Point struct{ xyz []*big.Rat }

// NewPoint builds a 2D or 3D point from copies of coords.
func NewPoint(coords ...*big.Rat) (Point, error) {
	if len(coords) != 2 && len(coords) != 3 {
		return Point{}, fmt.Errorf("NewPoint: %d coordinates: %w", len(coords), geom.ErrDimensionMismatch)
	}
	if err := checkRats("NewPoint", coords...); err != nil {
		return Point{}, err
	}
	return Point{xyz: copyTuple(coords)}, nil
}

// P2 returns the integer point (x, y).
func P2(x, y int64) Point { return Point{xyz: []*big.Rat{Int(x), Int(y)}} }

// P3 returns the integer point (x, y, z).
func P3(x, y, z int64) Point { return Point{xyz: []*big.Rat{Int(x), Int(y), Int(z)}} }

func (Point) Kind() geom.Kind      { return geom.KindPoint }
func (p Point) Dim() geom.Dim      { return geom.Dim(len(p.xyz)) }
func (p Point) Coords() []*big.Rat { return copyTuple(p.xyz) }

func (p Point) Equal(other geom.Primitive) bool {
	o, ok := other.(Point)
	return ok && equalTuple(p.xyz, o.xyz)
}

func (p Point) valid() bool { return validTuple(p.xyz, 2, 3) }

func (p Point) String() string { return "Point" + formatTuple(p.xyz) }

// ---------------------------------------------------------------------------
// Vec

// Vec is a direction with 2 or 3 exact components (geom.KindVector).
type Vec struct{ xyz []*big.Rat }

// NewVec builds a 2D or 3D vector from copies of comps.
func NewVec(comps ...*big.Rat) (Vec, error) {
	if len(comps) != 2 && len(comps) != 3 {
		return Vec{}, fmt.Errorf("NewVec: %d components: %w", len(comps), geom.ErrDimensionMismatch)
	}
	if err := checkRats("NewVec", comps...); err != nil {
		return Vec{}, err
	}
	return Vec{xyz: copyTuple(comps)}, nil
}

// V2 returns the integer vector (x, y).
func V2(x, y int64) Vec { return Vec{xyz: []*big.Rat{Int(x), Int(y)}} }

// V3 returns the integer vector (x, y, z).
func V3(x, y, z int64) Vec { return Vec{xyz: []*big.Rat{Int(x), Int(y), Int(z)}} }

func (Vec) Kind() geom.Kind          { return geom.KindVector }
func (v Vec) Dim() geom.Dim          { return geom.Dim(len(v.xyz)) }
func (v Vec) Components() []*big.Rat { return copyTuple(v.xyz) }

func (v Vec) Equal(other geom.Primitive) bool {
	o, ok := other.(Vec)
	return ok && equalTuple(v.xyz, o.xyz)
}

func (v Vec) valid() bool { return validTuple(v.xyz, 2, 3) }

func (v Vec) String() string { return "Vector" + formatTuple(v.xyz) }

// ---------------------------------------------------------------------------
// Plane

// Plane is the set a·x + b·y + c·z + d = 0 with (a, b, c) ≠ 0.
type Plane struct{ abcd []*big.Rat }

// NewPlane builds a plane from its four coefficients.
// Returns geom.ErrDegenerateConstruction when a = b = c = 0.
func NewPlane(a, b, c, d *big.Rat) (Plane, error) {
	if err := checkRats("NewPlane", a, b, c, d); err != nil {
		return Plane{}, err
	}
	if a.Sign() == 0 && b.Sign() == 0 && c.Sign() == 0 {
		return Plane{}, fmt.Errorf("NewPlane: zero normal: %w", geom.ErrDegenerateConstruction)
	}
	return Plane{abcd: copyTuple([]*big.Rat{a, b, c, d})}, nil
}

func (Plane) Kind() geom.Kind { return geom.KindPlane }
func (Plane) Dim() geom.Dim   { return geom.Dim3 }

// Coefficients returns copies of a, b, c, d.
func (p Plane) Coefficients() []*big.Rat { return copyTuple(p.abcd) }

// Normal returns (a, b, c).
func (p Plane) Normal() Vec { return Vec{xyz: copyTuple(p.abcd[:3])} }

// Contains reports whether pt satisfies the plane equation exactly.
func (p Plane) Contains(pt Point) bool {
	if pt.Dim() != geom.Dim3 {
		return false
	}
	v := dot(p.abcd[:3], pt.xyz)
	return v.Add(v, p.abcd[3]).Sign() == 0
}

// Equal compares coefficient tuples exactly; proportional but different
// coefficient sets are different planes in this representation.
func (p Plane) Equal(other geom.Primitive) bool {
	o, ok := other.(Plane)
	return ok && equalTuple(p.abcd, o.abcd)
}

func (p Plane) valid() bool { return validTuple(p.abcd, 4) && !isZeroTuple(p.abcd[:3]) }

func (p Plane) String() string { return "Plane" + formatTuple(p.abcd) }

// ---------------------------------------------------------------------------
// Sphere

// Sphere is a 3D center with a non-negative squared radius.
type Sphere struct {
	center Point
	sq     *big.Rat
}

// NewSphere builds a sphere. center must be 3D and sqRadius ≥ 0.
func NewSphere(center Point, sqRadius *big.Rat) (Sphere, error) {
	if center.Dim() != geom.Dim3 {
		return Sphere{}, fmt.Errorf("NewSphere: center is %s: %w", center.Dim(), geom.ErrDimensionMismatch)
	}
	if err := checkRats("NewSphere", sqRadius); err != nil {
		return Sphere{}, err
	}
	if sqRadius.Sign() < 0 {
		return Sphere{}, fmt.Errorf("NewSphere: negative squared radius %s: %w", sqRadius.RatString(), geom.ErrDegenerateConstruction)
	}
	return Sphere{center: Point{xyz: copyTuple(center.xyz)}, sq: copyRat(sqRadius)}, nil
}

func (Sphere) Kind() geom.Kind { return geom.KindSphere }
func (Sphere) Dim() geom.Dim   { return geom.Dim3 }

// Center returns the sphere center.
func (s Sphere) Center() Point { return s.center }

// SquaredRadius returns a copy of r².
func (s Sphere) SquaredRadius() *big.Rat { return copyRat(s.sq) }

func (s Sphere) Equal(other geom.Primitive) bool {
	o, ok := other.(Sphere)
	return ok && s.sq.Cmp(o.sq) == 0 && equalTuple(s.center.xyz, o.center.xyz)
}

func (s Sphere) valid() bool {
	return validTuple(s.center.xyz, 3) && validSquared(s.sq)
}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere(center=%s, r2=%s)", formatTuple(s.center.xyz), s.sq.RatString())
}

// ---------------------------------------------------------------------------
// Circle

// Circle is a center with a non-negative squared radius. 3D circles also
// carry the normal of their supporting plane; 2D circles have none.
type Circle struct {
	center Point
	sq     *big.Rat
	normal []*big.Rat // nil in 2D
}

// NewCircle2 builds a 2D circle.
func NewCircle2(center Point, sqRadius *big.Rat) (Circle, error) {
	if center.Dim() != geom.Dim2 {
		return Circle{}, fmt.Errorf("NewCircle2: center is %s: %w", center.Dim(), geom.ErrDimensionMismatch)
	}
	if err := checkSquared("NewCircle2", sqRadius); err != nil {
		return Circle{}, err
	}
	return Circle{center: Point{xyz: copyTuple(center.xyz)}, sq: copyRat(sqRadius)}, nil
}

// NewCircle3 builds a 3D circle lying in the plane through center with the
// given normal. The normal must be non-zero.
func NewCircle3(center Point, sqRadius *big.Rat, normal Vec) (Circle, error) {
	if center.Dim() != geom.Dim3 || normal.Dim() != geom.Dim3 {
		return Circle{}, fmt.Errorf("NewCircle3: center %s, normal %s: %w", center.Dim(), normal.Dim(), geom.ErrDimensionMismatch)
	}
	if err := checkSquared("NewCircle3", sqRadius); err != nil {
		return Circle{}, err
	}
	if isZeroTuple(normal.xyz) {
		return Circle{}, fmt.Errorf("NewCircle3: zero normal: %w", geom.ErrDegenerateConstruction)
	}
	return Circle{center: Point{xyz: copyTuple(center.xyz)}, sq: copyRat(sqRadius), normal: copyTuple(normal.xyz)}, nil
}

func checkSquared(method string, sq *big.Rat) error {
	if err := checkRats(method, sq); err != nil {
		return err
	}
	if sq.Sign() < 0 {
		return fmt.Errorf("%s: negative squared radius %s: %w", method, sq.RatString(), geom.ErrDegenerateConstruction)
	}
	return nil
}

func (Circle) Kind() geom.Kind { return geom.KindCircle }
func (c Circle) Dim() geom.Dim { return c.center.Dim() }

// Center returns the circle center.
func (c Circle) Center() Point { return c.center }

// SquaredRadius returns a copy of r².
func (c Circle) SquaredRadius() *big.Rat { return copyRat(c.sq) }

// Normal returns the supporting-plane normal; ok is false for 2D circles.
func (c Circle) Normal() (Vec, bool) {
	if c.normal == nil {
		return Vec{}, false
	}
	return Vec{xyz: copyTuple(c.normal)}, true
}

// Equal treats 3D circles with parallel normals (either orientation) as the
// same circle.
func (c Circle) Equal(other geom.Primitive) bool {
	o, ok := other.(Circle)
	if !ok || c.sq.Cmp(o.sq) != 0 || !equalTuple(c.center.xyz, o.center.xyz) {
		return false
	}
	if (c.normal == nil) != (o.normal == nil) {
		return false
	}
	return c.normal == nil || isZeroTuple(cross(c.normal, o.normal))
}

func (c Circle) valid() bool {
	if !c.center.valid() || !validSquared(c.sq) {
		return false
	}
	if c.center.Dim() == geom.Dim2 {
		return c.normal == nil
	}
	return validTuple(c.normal, 3) && !isZeroTuple(c.normal)
}

func (c Circle) String() string {
	if c.normal == nil {
		return fmt.Sprintf("Circle(center=%s, r2=%s)", formatTuple(c.center.xyz), c.sq.RatString())
	}
	return fmt.Sprintf("Circle(center=%s, r2=%s, normal=%s)",
		formatTuple(c.center.xyz), c.sq.RatString(), formatTuple(c.normal))
}
