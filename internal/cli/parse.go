package cli

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/lvgeo/geom"
	"github.com/katalvlaran/lvgeo/kernel"
)

// MissingToken marks a missing element in textual arguments.
const MissingToken = "NA"

// ErrInvalidInput is returned for arguments that cannot be parsed.
var ErrInvalidInput = errors.New("cli: invalid input")

// ParseArgument parses one textual argument of the given kind. Elements are
// separated by ';', coordinates by ','. Scalars are exact rationals such as
// "3", "-1/3" or "0.25".
//
//	point   "0,0;1,1;NA"
//	number  "4;1/4"
//	vector  "0,0,1"
//	plane   "a,b,c,d"
//	sphere  "x,y,z,r2"
//	circle  "x,y,r2" or "x,y,z,r2,nx,ny,nz"
func ParseArgument(kind geom.Kind, text string) (geom.Vector, error) {
	parts := strings.Split(text, ";")
	elems := make([]geom.Primitive, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == MissingToken {
			continue
		}
		p, err := parseElement(kind, part)
		if err != nil {
			return geom.Vector{}, fmt.Errorf("%s %q element %d: %w", kind, text, i, err)
		}
		elems[i] = p
	}
	return vectorOf(kind, elems)
}

// ParseElements builds a vector from already separated element texts, with
// nil entries as missing elements. Batch files use it.
func ParseElements(kind geom.Kind, texts []*string) (geom.Vector, error) {
	elems := make([]geom.Primitive, len(texts))
	for i, text := range texts {
		if text == nil || strings.TrimSpace(*text) == MissingToken {
			continue
		}
		p, err := parseElement(kind, strings.TrimSpace(*text))
		if err != nil {
			return geom.Vector{}, fmt.Errorf("%s element %d: %w", kind, i, err)
		}
		elems[i] = p
	}
	return vectorOf(kind, elems)
}

// vectorOf infers the dimension from the first present element.
func vectorOf(kind geom.Kind, elems []geom.Primitive) (geom.Vector, error) {
	dim := geom.DimNone
	for _, e := range elems {
		if e != nil {
			dim = e.Dim()
			break
		}
	}
	if dim == geom.DimNone && kind != geom.KindNumber {
		if len(elems) == 0 {
			return geom.Vector{}, fmt.Errorf("%s: no elements: %w", kind, ErrInvalidInput)
		}
		return geom.Vector{}, fmt.Errorf("%s: every element is missing, dimension unknown: %w", kind, ErrInvalidInput)
	}
	return geom.NewVector(kind, dim, elems...)
}

func parseElement(kind geom.Kind, text string) (geom.Primitive, error) {
	rats, err := parseTuple(text)
	if err != nil {
		return nil, err
	}
	switch kind {
	case geom.KindNumber:
		if len(rats) != 1 {
			return nil, fmt.Errorf("want 1 value, got %d: %w", len(rats), ErrInvalidInput)
		}
		return kernel.NewNumber(rats[0]), nil
	case geom.KindPoint:
		return kernel.NewPoint(rats...)
	case geom.KindVector:
		return kernel.NewVec(rats...)
	case geom.KindPlane:
		if len(rats) != 4 {
			return nil, fmt.Errorf("want 4 coefficients, got %d: %w", len(rats), ErrInvalidInput)
		}
		return kernel.NewPlane(rats[0], rats[1], rats[2], rats[3])
	case geom.KindSphere:
		if len(rats) != 4 {
			return nil, fmt.Errorf("want x,y,z,r2, got %d values: %w", len(rats), ErrInvalidInput)
		}
		center, err := kernel.NewPoint(rats[:3]...)
		if err != nil {
			return nil, err
		}
		return kernel.NewSphere(center, rats[3])
	case geom.KindCircle:
		switch len(rats) {
		case 3:
			center, err := kernel.NewPoint(rats[:2]...)
			if err != nil {
				return nil, err
			}
			return kernel.NewCircle2(center, rats[2])
		case 7:
			center, err := kernel.NewPoint(rats[:3]...)
			if err != nil {
				return nil, err
			}
			normal, err := kernel.NewVec(rats[4:]...)
			if err != nil {
				return nil, err
			}
			return kernel.NewCircle3(center, rats[3], normal)
		default:
			return nil, fmt.Errorf("want x,y,r2 or x,y,z,r2,nx,ny,nz, got %d values: %w", len(rats), ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%s values cannot be written inline: %w", kind, ErrInvalidInput)
	}
}

func parseTuple(text string) ([]*big.Rat, error) {
	fields := strings.Split(text, ",")
	out := make([]*big.Rat, len(fields))
	for i, f := range fields {
		r, ok := new(big.Rat).SetString(strings.TrimSpace(f))
		if !ok {
			return nil, fmt.Errorf("scalar %q: %w", strings.TrimSpace(f), ErrInvalidInput)
		}
		out[i] = r
	}
	return out, nil
}
