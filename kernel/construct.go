// SPDX-License-Identifier: MIT
// Package: lvgeo/kernel
//
// construct.go — the exact formulas behind each geom.Op.
// Radii are handled squared throughout; nothing here takes a square root.

package kernel

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvgeo/geom"
)

var (
	quarter = big.NewRat(1, 4)
	two     = big.NewRat(2, 1)
)

// circumcenter returns the center of the unique circle through a, b, c in
// their common plane. 2D solves 2(b−a)·u = |b|²−|a|², 2(c−a)·u = |c|²−|a|²;
// 3D adds n·u = n·a with n = (b−a)×(c−a). ok is false for collinear input.
func circumcenter(a, b, c []*big.Rat) (center []*big.Rat, normal []*big.Rat, ok bool) {
	ab, ac := sub(b, a), sub(c, a)
	na := norm2(a)
	rhsB := new(big.Rat).Sub(norm2(b), na)
	rhsC := new(big.Rat).Sub(norm2(c), na)

	rows := [][]*big.Rat{scale(ab, two), scale(ac, two)}
	rhs := []*big.Rat{rhsB, rhsC}
	if len(a) == 3 {
		normal = cross(ab, ac)
		if isZeroTuple(normal) {
			return nil, nil, false
		}
		rows = append(rows, normal)
		rhs = append(rhs, dot(normal, a))
	}
	center, ok = solve(rows, rhs)
	return center, normal, ok
}

func circleThreePoints(a, b, c Point) (geom.Primitive, error) {
	center, normal, ok := circumcenter(a.xyz, b.xyz, c.xyz)
	if !ok {
		return nil, fmt.Errorf("circle through %s, %s, %s: points are collinear: %w", a, b, c, geom.ErrDegenerateConstruction)
	}
	sq := norm2(sub(a.xyz, center))
	if normal == nil {
		return Circle{center: Point{xyz: center}, sq: sq}, nil
	}
	return Circle{center: Point{xyz: center}, sq: sq, normal: normal}, nil
}

func circleDiametral(a, b Point) (geom.Primitive, error) {
	sq := norm2(sub(a.xyz, b.xyz))
	return Circle{center: Point{xyz: midpoint(a.xyz, b.xyz)}, sq: sq.Mul(sq, quarter)}, nil
}

func circleCenterPlane(center Point, sq Number, plane Plane) (geom.Primitive, error) {
	if !plane.Contains(center) {
		return nil, fmt.Errorf("circle: center %s is not on %s: %w", center, plane, geom.ErrDegenerateConstruction)
	}
	return NewCircle3(center, sq.v, plane.Normal())
}

// circleSphereSphere intersects two spheres. With d = c₂−c₁ and D = |d|², the
// radical plane meets the center line at c₁ + t·d, t = (D + r₁² − r₂²)/(2D),
// and the circle has r² = r₁² − t²·D. Concentric spheres and r² ≤ 0 (disjoint
// or tangent) are degenerate.
func circleSphereSphere(s1, s2 Sphere) (geom.Primitive, error) {
	d := sub(s2.center.xyz, s1.center.xyz)
	D := norm2(d)
	if D.Sign() == 0 {
		return nil, fmt.Errorf("circle from %s and %s: concentric spheres: %w", s1, s2, geom.ErrDegenerateConstruction)
	}
	t := new(big.Rat).Add(D, s1.sq)
	t.Sub(t, s2.sq)
	t.Quo(t, new(big.Rat).Mul(two, D))

	sq := new(big.Rat).Mul(t, t)
	sq.Mul(sq, D)
	sq.Sub(s1.sq, sq)
	if sq.Sign() <= 0 {
		return nil, fmt.Errorf("circle from %s and %s: spheres do not meet in a circle: %w", s1, s2, geom.ErrDegenerateConstruction)
	}
	return Circle{center: Point{xyz: add(s1.center.xyz, scale(d, t))}, sq: sq, normal: d}, nil
}

// circleSpherePlane cuts a sphere with a plane n·x + d = 0. The signed offset
// of the center is s = (n·c + d)/|n|²; the circle center is c − s·n and
// r² = r_s² − (n·c + d)²/|n|².
func circleSpherePlane(s Sphere, p Plane) (geom.Primitive, error) {
	n := p.abcd[:3]
	nn := norm2(n)
	e := dot(n, s.center.xyz)
	e.Add(e, p.abcd[3])
	off := new(big.Rat).Quo(e, nn)

	sq := new(big.Rat).Mul(e, off)
	sq.Sub(s.sq, sq)
	if sq.Sign() <= 0 {
		return nil, fmt.Errorf("circle from %s and %s: plane misses or touches the sphere: %w", s, p, geom.ErrDegenerateConstruction)
	}
	return Circle{center: Point{xyz: sub(s.center.xyz, scale(n, off))}, sq: sq, normal: copyTuple(n)}, nil
}

// sphereFourPoints solves 2(pᵢ−a)·u = |pᵢ|²−|a|² for i = b, c, d.
func sphereFourPoints(a, b, c, d Point) (geom.Primitive, error) {
	na := norm2(a.xyz)
	rows := make([][]*big.Rat, 0, 3)
	rhs := make([]*big.Rat, 0, 3)
	for _, p := range []Point{b, c, d} {
		rows = append(rows, scale(sub(p.xyz, a.xyz), two))
		rhs = append(rhs, new(big.Rat).Sub(norm2(p.xyz), na))
	}
	center, ok := solve(rows, rhs)
	if !ok {
		return nil, fmt.Errorf("sphere through %s, %s, %s, %s: points are coplanar: %w", a, b, c, d, geom.ErrDegenerateConstruction)
	}
	return Sphere{center: Point{xyz: center}, sq: norm2(sub(a.xyz, center))}, nil
}

// sphereThreePoints is the smallest sphere through three points: its center
// is their circumcenter.
func sphereThreePoints(a, b, c Point) (geom.Primitive, error) {
	center, _, ok := circumcenter(a.xyz, b.xyz, c.xyz)
	if !ok {
		return nil, fmt.Errorf("sphere through %s, %s, %s: points are collinear: %w", a, b, c, geom.ErrDegenerateConstruction)
	}
	return Sphere{center: Point{xyz: center}, sq: norm2(sub(a.xyz, center))}, nil
}

func sphereDiametral(a, b Point) (geom.Primitive, error) {
	sq := norm2(sub(a.xyz, b.xyz))
	return Sphere{center: Point{xyz: midpoint(a.xyz, b.xyz)}, sq: sq.Mul(sq, quarter)}, nil
}

// supportingPlane returns n·x − n·c = 0 for a 3D circle.
func supportingPlane(c Circle) (geom.Primitive, error) {
	d := dot(c.normal, c.center.xyz)
	return Plane{abcd: []*big.Rat{copyRat(c.normal[0]), copyRat(c.normal[1]), copyRat(c.normal[2]), d.Neg(d)}}, nil
}
