// SPDX-License-Identifier: MIT
package construct_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/big"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeo/construct"
	"github.com/katalvlaran/lvgeo/geom"
	"github.com/katalvlaran/lvgeo/kernel"
)

func points(t *testing.T, dim geom.Dim, ps ...geom.Primitive) geom.Vector {
	t.Helper()
	v, err := geom.NewVector(geom.KindPoint, dim, ps...)
	require.NoError(t, err)
	return v
}

func at(t *testing.T, v geom.Vector, i int) geom.Primitive {
	t.Helper()
	p, err := v.At(i)
	require.NoError(t, err)
	return p
}

func sphere(t *testing.T, c kernel.Point, sq int64) kernel.Sphere {
	t.Helper()
	s, err := kernel.NewSphere(c, kernel.Int(sq))
	require.NoError(t, err)
	return s
}

func plane(t *testing.T, a, b, c, d int64) kernel.Plane {
	t.Helper()
	p, err := kernel.NewPlane(kernel.Int(a), kernel.Int(b), kernel.Int(c), kernel.Int(d))
	require.NoError(t, err)
	return p
}

// TestCircle_CenterAndSquaredRadius: circle(point(0,0), 4) has linear radius 2.
func TestCircle_CenterAndSquaredRadius(t *testing.T) {
	t.Parallel()

	got, err := construct.Circle(kernel.P2(0, 0), 4)
	require.NoError(t, err)
	require.Equal(t, 1, got.Len())
	require.Equal(t, geom.KindCircle, got.Kind())
	require.Equal(t, geom.Dim2, got.Dim())

	c := at(t, got, 0).(kernel.Circle)
	assert.Equal(t, "Point(0, 0)", c.Center().String())
	assert.Equal(t, "4", c.SquaredRadius().RatString())
}

// TestCircle_TwoPointsIsDiametral checks center = midpoint and r² = |PQ|²/4.
func TestCircle_TwoPointsIsDiametral(t *testing.T) {
	t.Parallel()

	pairs := [][2]kernel.Point{
		{kernel.P2(0, 0), kernel.P2(2, 0)},
		{kernel.P2(-3, 1), kernel.P2(5, 7)},
		{kernel.P2(1, 1), kernel.P2(1, 1)},
		{kernel.P2(0, 0), kernel.P2(1, 0)},
	}
	for _, pq := range pairs {
		got, err := construct.Circle(pq[0], pq[1])
		require.NoError(t, err)
		c := at(t, got, 0).(kernel.Circle)

		p, q := pq[0].Coords(), pq[1].Coords()
		d2 := new(big.Rat)
		for i := range p {
			mid := new(big.Rat).Add(p[i], q[i])
			mid.Quo(mid, big.NewRat(2, 1))
			require.Zero(t, mid.Cmp(c.Center().Coords()[i]))
			diff := new(big.Rat).Sub(p[i], q[i])
			d2.Add(d2, diff.Mul(diff, diff))
		}
		d2.Quo(d2, big.NewRat(4, 1))
		assert.Zero(t, d2.Cmp(c.SquaredRadius()), "pair %v", pq)
	}
}

// TestCircle_ThreePoints checks the circumcircle and the collinear failure.
func TestCircle_ThreePoints(t *testing.T) {
	t.Parallel()

	got, err := construct.Circle(kernel.P2(0, 0), kernel.P2(4, 0), kernel.P2(0, 4))
	require.NoError(t, err)
	assert.Equal(t, "Circle(center=(2, 2), r2=8)", at(t, got, 0).String())

	triples := []struct {
		name string
		dim  geom.Dim
		pts  [3]kernel.Point
	}{
		{"2D right angle", geom.Dim2, [3]kernel.Point{kernel.P2(0, 0), kernel.P2(4, 0), kernel.P2(0, 4)}},
		{"2D scattered", geom.Dim2, [3]kernel.Point{kernel.P2(-2, 5), kernel.P2(7, 1), kernel.P2(3, -6)}},
		{"2D obtuse", geom.Dim2, [3]kernel.Point{kernel.P2(0, 0), kernel.P2(10, 0), kernel.P2(1, 1)}},
		{"3D axis plane", geom.Dim3, [3]kernel.Point{kernel.P3(2, 0, 0), kernel.P3(0, 2, 0), kernel.P3(-2, 0, 0)}},
		{"3D tilted", geom.Dim3, [3]kernel.Point{kernel.P3(1, 0, 0), kernel.P3(0, 1, 0), kernel.P3(0, 0, 1)}},
		{"3D scattered", geom.Dim3, [3]kernel.Point{kernel.P3(3, -1, 2), kernel.P3(-4, 5, 0), kernel.P3(1, 7, -3)}},
	}
	for _, tc := range triples {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := construct.Circle(tc.pts[0], tc.pts[1], tc.pts[2])
			require.NoError(t, err)
			c := at(t, v, 0).(kernel.Circle)
			assert.Equal(t, tc.dim, c.Dim())
			center := c.Center().Coords()
			for _, p := range tc.pts {
				d2 := new(big.Rat)
				for i, x := range p.Coords() {
					d := new(big.Rat).Sub(x, center[i])
					d2.Add(d2, d.Mul(d, d))
				}
				assert.Zerof(t, d2.Cmp(c.SquaredRadius()), "%s is not on %s", p, c)
			}
		})
	}

	_, err = construct.Circle(kernel.P2(0, 0), kernel.P2(1, 1), kernel.P2(5, 5))
	require.Error(t, err)
	require.True(t, errors.Is(err, geom.ErrDegenerateConstruction), "got %v", err)
}

// TestCircle_Recycling broadcasts a scalar squared radius over five centers.
func TestCircle_Recycling(t *testing.T) {
	t.Parallel()

	centers := points(t, geom.Dim2,
		kernel.P2(0, 0), kernel.P2(1, 0), kernel.P2(2, 0), kernel.P2(3, 0), kernel.P2(4, 0))

	got, err := construct.Circle(centers, 9)
	require.NoError(t, err)
	require.Equal(t, 5, got.Len())

	seen := map[string]bool{}
	for i := 0; i < got.Len(); i++ {
		c := at(t, got, i).(kernel.Circle)
		assert.Equal(t, "9", c.SquaredRadius().RatString())
		seen[c.Center().String()] = true
	}
	assert.Len(t, seen, 5)
}

// TestBuild_ValidationErrors covers the dimension and length laws and
// signature dimension rules.
func TestBuild_ValidationErrors(t *testing.T) {
	t.Parallel()

	three := points(t, geom.Dim2, kernel.P2(0, 0), kernel.P2(1, 0), kernel.P2(2, 0))
	five := points(t, geom.Dim2, kernel.P2(0, 1), kernel.P2(1, 1), kernel.P2(2, 1), kernel.P2(3, 1), kernel.P2(4, 1))

	tests := []struct {
		name string
		kind geom.Kind
		args []any
		want error
	}{
		{"2D with 3D point", geom.KindCircle, []any{kernel.P2(0, 0), kernel.P3(1, 1, 1)}, geom.ErrDimensionMismatch},
		{"2D with 3D in three points", geom.KindCircle, []any{kernel.P2(0, 0), kernel.P2(1, 0), kernel.P3(0, 1, 0)}, geom.ErrDimensionMismatch},
		{"length 3 vs 5", geom.KindCircle, []any{three, five}, geom.ErrLengthMismatch},
		{"numbers 2 vs 3", geom.KindCircle, []any{kernel.P2(0, 0), []int{1, 2}, three}, geom.ErrLengthMismatch},
		{"two 3D points", geom.KindCircle, []any{kernel.P3(0, 0, 0), kernel.P3(1, 0, 0)}, geom.ErrDimensionMismatch},
		{"3D center and radius", geom.KindCircle, []any{kernel.P3(0, 0, 0), 4}, geom.ErrDimensionMismatch},
		{"2D center, radius, normal", geom.KindCircle, []any{kernel.P2(0, 0), 4, kernel.V2(0, 1)}, geom.ErrDimensionMismatch},
		{"sphere from 2D points", geom.KindSphere, []any{kernel.P2(0, 0), kernel.P2(1, 0)}, geom.ErrDimensionMismatch},
		{"single number", geom.KindCircle, []any{4}, geom.ErrUnsupportedCombination},
		{"three points and a number", geom.KindCircle, []any{kernel.P2(0, 0), kernel.P2(1, 0), kernel.P2(0, 1), 2}, geom.ErrUnsupportedCombination},
		{"four 2D points", geom.KindCircle, []any{kernel.P2(0, 0), kernel.P2(1, 0), kernel.P2(0, 1), kernel.P2(1, 1)}, geom.ErrUnsupportedCombination},
		{"unclassified value", geom.KindCircle, []any{kernel.P2(0, 0), "4"}, geom.ErrUnsupportedCombination},
		{"points are not buildable", geom.KindPoint, []any{kernel.V2(0, 0)}, geom.ErrUnsupportedCombination},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := construct.Build(tc.kind, tc.args)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
			require.Zero(t, v.Len(), "no partial results")
		})
	}
}

// TestBuild_Empty covers the empty-input law and zero-length arguments.
func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	v, err := construct.Circle()
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, geom.KindCircle, v.Kind())
	assert.Equal(t, geom.Dim2, v.Dim())

	v, err = construct.Circle(construct.WithDefaultDim(geom.Dim3))
	require.NoError(t, err)
	assert.Equal(t, geom.Dim3, v.Dim())

	v, err = construct.Sphere()
	require.NoError(t, err)
	assert.Equal(t, geom.Dim3, v.Dim())

	_, err = construct.Sphere(construct.WithDefaultDim(geom.Dim2))
	require.ErrorIs(t, err, geom.ErrDimensionMismatch)

	empty3, err := geom.Empty(geom.KindPoint, geom.Dim3)
	require.NoError(t, err)
	v, err = construct.Circle(empty3, 4, "unclassified")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, geom.Dim3, v.Dim(), "empty result takes the arguments' dimension")

	v, err = construct.Circle(kernel.P2(0, 0), []float64{})
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
}

// TestBuild_MissingPropagation checks that missing slots and NaN promotion
// yield missing outputs without consulting the kernel.
func TestBuild_MissingPropagation(t *testing.T) {
	t.Parallel()

	k := &countingKernel{}
	centers := points(t, geom.Dim2, kernel.P2(0, 0), nil, kernel.P2(2, 2))

	got, err := construct.Circle(centers, []float64{1, 4, math.NaN()}, construct.WithKernel(k))
	require.NoError(t, err)
	require.Equal(t, 3, got.Len())
	assert.False(t, got.IsMissing(0))
	assert.True(t, got.IsMissing(1))
	assert.True(t, got.IsMissing(2))
	assert.EqualValues(t, 1, k.calls.Load())
}

// TestBuild_ExactFloatPromotion checks that float64 input is promoted to its
// exact binary value.
func TestBuild_ExactFloatPromotion(t *testing.T) {
	t.Parallel()

	got, err := construct.Circle(kernel.P2(0, 0), 0.25)
	require.NoError(t, err)
	assert.Equal(t, "Circle(center=(0, 0), r2=1/4)", at(t, got, 0).String())

	got, err = construct.Circle(kernel.P2(0, 0), big.NewRat(1, 3))
	require.NoError(t, err)
	assert.Equal(t, "Circle(center=(0, 0), r2=1/3)", at(t, got, 0).String())
}

// TestCircle_3DSignatures covers every 3D circle signature.
func TestCircle_3DSignatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"three points", []any{kernel.P3(2, 0, 0), kernel.P3(0, 2, 0), kernel.P3(-2, 0, 0)},
			"Circle(center=(0, 0, 0), r2=4, normal=(0, 0, 8))"},
		{"center radius plane", []any{kernel.P3(0, 0, 1), 4, plane(t, 0, 0, 1, -1)},
			"Circle(center=(0, 0, 1), r2=4, normal=(0, 0, 1))"},
		{"plane first", []any{plane(t, 0, 0, 1, -1), 4, kernel.P3(0, 0, 1)},
			"Circle(center=(0, 0, 1), r2=4, normal=(0, 0, 1))"},
		{"center radius normal", []any{kernel.P3(1, 1, 1), 2, kernel.V3(0, 1, 0)},
			"Circle(center=(1, 1, 1), r2=2, normal=(0, 1, 0))"},
		{"two spheres", []any{sphere(t, kernel.P3(0, 0, 0), 25), sphere(t, kernel.P3(0, 0, 6), 25)},
			"Circle(center=(0, 0, 3), r2=16, normal=(0, 0, 6))"},
		{"sphere and plane", []any{plane(t, 0, 0, 1, -3), sphere(t, kernel.P3(0, 0, 0), 25)},
			"Circle(center=(0, 0, 3), r2=16, normal=(0, 0, 1))"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := construct.Circle(tc.args...)
			require.NoError(t, err)
			require.Equal(t, geom.Dim3, got.Dim())
			assert.Equal(t, tc.want, at(t, got, 0).String())
		})
	}
}

// TestSphere_Signatures covers the sphere table.
func TestSphere_Signatures(t *testing.T) {
	t.Parallel()

	unit, err := kernel.NewCircle3(kernel.P3(0, 0, 0), kernel.Int(1), kernel.V3(0, 0, 1))
	require.NoError(t, err)

	tests := []struct {
		name string
		args []any
		want string
	}{
		{"four points", []any{kernel.P3(1, 0, 0), kernel.P3(-1, 0, 0), kernel.P3(0, 1, 0), kernel.P3(0, 0, 1)},
			"Sphere(center=(0, 0, 0), r2=1)"},
		{"three points", []any{kernel.P3(2, 0, 0), kernel.P3(0, 2, 0), kernel.P3(-2, 0, 0)},
			"Sphere(center=(0, 0, 0), r2=4)"},
		{"two points", []any{kernel.P3(0, 0, 0), kernel.P3(0, 0, 4)}, "Sphere(center=(0, 0, 2), r2=4)"},
		{"center radius", []any{kernel.P3(1, 2, 3), 9}, "Sphere(center=(1, 2, 3), r2=9)"},
		{"great circle", []any{unit}, "Sphere(center=(0, 0, 0), r2=1)"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := construct.Sphere(tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, at(t, got, 0).String())
		})
	}
}

// TestBuild_Workers checks that parallel construction preserves order and
// reports the lowest failing index.
func TestBuild_Workers(t *testing.T) {
	t.Parallel()

	n := 32
	centers := make([]geom.Primitive, n)
	radii := make([]int64, n)
	for i := range centers {
		centers[i] = kernel.P2(int64(i), int64(-i))
		radii[i] = int64(i * i)
	}
	cv := points(t, geom.Dim2, centers...)

	seq, err := construct.Circle(cv, radii)
	require.NoError(t, err)
	par, err := construct.Circle(cv, radii, construct.WithWorkers(8))
	require.NoError(t, err)
	assert.True(t, seq.Equal(par))

	radii[5], radii[20] = -1, -2
	for _, w := range []int{1, 8} {
		_, err = construct.Circle(cv, radii, construct.WithWorkers(w))
		require.ErrorIs(t, err, geom.ErrDegenerateConstruction)
		assert.Contains(t, err.Error(), "element 5")
	}
}

// TestBuild_NamedArgumentsAndLogging checks named labels in errors and the
// debug record for the chosen signature.
func TestBuild_NamedArgumentsAndLogging(t *testing.T) {
	t.Parallel()

	three := points(t, geom.Dim2, kernel.P2(0, 0), kernel.P2(1, 0), kernel.P2(2, 0))
	_, err := construct.Circle(construct.Named("center", three), construct.Named("r2", []int{1, 2}))
	require.ErrorIs(t, err, geom.ErrLengthMismatch)
	assert.Contains(t, err.Error(), "argument 1 (r2)")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err = construct.Build(geom.KindCircle, []any{construct.Named("center", kernel.P2(0, 0)), 1}, construct.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.Contains(out, `signature="center and squared radius"`), out)
	assert.Contains(t, out, "op=circle/center-radius")
}

// countingKernel counts Construct calls and delegates to Rational.
type countingKernel struct {
	kernel.Rational
	calls atomic.Int64
}

func (k *countingKernel) Construct(op geom.Op, dim geom.Dim, args ...geom.Primitive) (geom.Primitive, error) {
	k.calls.Add(1)
	return k.Rational.Construct(op, dim, args...)
}
