// SPDX-License-Identifier: MIT
package geom_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeo/geom"
	"github.com/katalvlaran/lvgeo/kernel"
)

// TestNewVector covers element validation and the missing marker.
func TestNewVector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  geom.Kind
		dim   geom.Dim
		elems []geom.Primitive
		want  error
	}{
		{"points 2D", geom.KindPoint, geom.Dim2, []geom.Primitive{kernel.P2(0, 0), kernel.P2(1, 1)}, nil},
		{"with missing", geom.KindPoint, geom.Dim2, []geom.Primitive{kernel.P2(0, 0), nil}, nil},
		{"numbers", geom.KindNumber, geom.DimNone, []geom.Primitive{kernel.N(1)}, nil},
		{"numbers with dim", geom.KindNumber, geom.Dim2, nil, geom.ErrDimensionMismatch},
		{"plane in 2D", geom.KindPlane, geom.Dim2, nil, geom.ErrDimensionMismatch},
		{"invalid kind", geom.KindInvalid, geom.Dim2, nil, geom.ErrUnknownKind},
		{"wrong element kind", geom.KindPoint, geom.Dim2, []geom.Primitive{kernel.V2(0, 0)}, geom.ErrKindMismatch},
		{"wrong element dim", geom.KindPoint, geom.Dim2, []geom.Primitive{kernel.P3(0, 0, 0)}, geom.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v, err := geom.NewVector(tc.kind, tc.dim, tc.elems...)
			if tc.want != nil {
				require.Truef(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
				require.Zero(t, v.Len())
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.elems), v.Len())
			require.Equal(t, tc.kind, v.Kind())
			require.Equal(t, tc.dim, v.Dim())
		})
	}
}

// TestVector_AtAndMissing covers indexing and the missing marker.
func TestVector_AtAndMissing(t *testing.T) {
	t.Parallel()

	v, err := geom.NewVector(geom.KindPoint, geom.Dim2, kernel.P2(1, 2), nil)
	require.NoError(t, err)

	p, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Point(1, 2)", p.String())

	p, err = v.At(1)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.True(t, v.IsMissing(1))
	assert.False(t, v.IsMissing(0))
	assert.False(t, v.IsMissing(7))

	_, err = v.At(2)
	require.ErrorIs(t, err, geom.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, geom.ErrOutOfRange)

	assert.Equal(t, "point[2D]{Point(1, 2), <missing>}", v.String())
}

// TestVector_Immutable checks that neither the source slice nor Elements'
// result can alter a vector.
func TestVector_Immutable(t *testing.T) {
	t.Parallel()

	src := []geom.Primitive{kernel.P2(1, 1), kernel.P2(2, 2)}
	v, err := geom.NewVector(geom.KindPoint, geom.Dim2, src...)
	require.NoError(t, err)

	src[0] = kernel.P2(9, 9)
	out := v.Elements()
	out[1] = nil

	p, _ := v.At(0)
	assert.Equal(t, "Point(1, 1)", p.String())
	assert.False(t, v.IsMissing(1))
}

// TestVector_Recycle covers broadcast and the length rule.
func TestVector_Recycle(t *testing.T) {
	t.Parallel()

	one, err := geom.Of(kernel.N(4))
	require.NoError(t, err)

	five, err := one.Recycle(5)
	require.NoError(t, err)
	require.Equal(t, 5, five.Len())
	for i := 0; i < 5; i++ {
		e, _ := five.At(i)
		assert.Equal(t, "4", e.String())
	}

	same, err := five.Recycle(5)
	require.NoError(t, err)
	assert.True(t, same.Equal(five))

	_, err = five.Recycle(3)
	require.ErrorIs(t, err, geom.ErrLengthMismatch)
}

// TestVector_Concat refuses to mix kinds or dimensions.
func TestVector_Concat(t *testing.T) {
	t.Parallel()

	a, _ := geom.NewVector(geom.KindPoint, geom.Dim2, kernel.P2(0, 0))
	b, _ := geom.NewVector(geom.KindPoint, geom.Dim2, kernel.P2(1, 1), nil)
	c, _ := geom.NewVector(geom.KindPoint, geom.Dim3, kernel.P3(1, 1, 1))
	d, _ := geom.NewVector(geom.KindVector, geom.Dim2, kernel.V2(1, 1))

	ab, err := a.Concat(b)
	require.NoError(t, err)
	assert.Equal(t, 3, ab.Len())
	assert.True(t, ab.IsMissing(2))

	_, err = a.Concat(c)
	require.ErrorIs(t, err, geom.ErrDimensionMismatch)
	_, err = a.Concat(d)
	require.ErrorIs(t, err, geom.ErrKindMismatch)
}

// TestEmpty covers the zero-length vector used for empty constructor calls.
func TestEmpty(t *testing.T) {
	t.Parallel()

	v, err := geom.Empty(geom.KindCircle, geom.Dim2)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, geom.KindCircle, v.Kind())
	assert.Equal(t, geom.Dim2, v.Dim())
	assert.Equal(t, "circle[2D]{}", v.String())

	_, err = geom.Empty(geom.KindSphere, geom.Dim2)
	require.ErrorIs(t, err, geom.ErrDimensionMismatch)
}

// TestParse covers the kind and dimension parsers.
func TestParse(t *testing.T) {
	t.Parallel()

	for _, k := range geom.Kinds {
		got, err := geom.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := geom.ParseKind("ellipse")
	require.ErrorIs(t, err, geom.ErrUnknownKind)

	d, err := geom.ParseDim(3)
	require.NoError(t, err)
	assert.Equal(t, geom.Dim3, d)
	_, err = geom.ParseDim(4)
	require.ErrorIs(t, err, geom.ErrDimensionMismatch)
}
