/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fp

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-crypto-ec/ec"
	"github.com/hyperledger/fabric-crypto-ec/internal/montgomery"
)

// Curve is a short-Weierstrass curve y^2 = x^3 + ax + b over a prime field,
// carrying the coordinate system every point it manufactures will use.
type Curve struct {
	p        *big.Int
	a, b     *Element
	order    *big.Int
	cofactor *big.Int
	cs       ec.CoordinateSystem
	mult     ec.Multiplier

	infinity *Point
}

// NewCurve builds a Curve over the field of integers modulo p, with
// parameters a, b, base-point order n and cofactor h, using the given
// coordinate system. mult may be nil; Curve.Multiplier then returns nil,
// which is valid since scalar-multiplication strategy is out of scope for
// this module (spec.md sec.1).
func NewCurve(p, a, b, n, h *big.Int, cs ec.CoordinateSystem, mult ec.Multiplier) (*Curve, error) {
	switch cs {
	case ec.Affine, ec.Homogeneous, ec.Jacobian, ec.JacobianChudnovsky, ec.JacobianModified:
	default:
		return nil, errors.Wrapf(ec.ErrUnsupportedCoordinateSystem, "fp: coordinate system %s", cs)
	}
	c := &Curve{
		p:        new(big.Int).Set(p),
		a:        NewElement(p, a),
		b:        NewElement(p, b),
		order:    new(big.Int).Set(n),
		cofactor: new(big.Int).Set(h),
		cs:       cs,
	}
	c.mult = mult
	c.infinity = &Point{curve: c}
	return c, nil
}

func (c *Curve) A() ec.FieldElement           { return c.a }
func (c *Curve) B() ec.FieldElement           { return c.b }
func (c *Curve) FieldSize() int               { return c.p.BitLen() }
func (c *Curve) CoordinateSystem() ec.CoordinateSystem { return c.cs }
func (c *Curve) Cofactor() *big.Int           { return new(big.Int).Set(c.cofactor) }
func (c *Curve) Order() *big.Int              { return new(big.Int).Set(c.order) }
func (c *Curve) Infinity() ec.Point           { return c.infinity }
func (c *Curve) Multiplier() ec.Multiplier    { return c.mult }

func (c *Curve) one() *Element { return NewElement(c.p, big.NewInt(1)) }

func (c *Curve) FromBigInt(k *big.Int) ec.FieldElement {
	return NewElement(c.p, k)
}

func (c *Curve) CreatePoint(x, y *big.Int) (ec.Point, error) {
	ex := NewElement(c.p, x)
	ey := NewElement(c.p, y)
	p := &Point{curve: c, x: ex, y: ey}
	one := c.one()
	switch c.cs {
	case ec.Homogeneous, ec.Jacobian:
		p.zs = []*Element{one}
	case ec.JacobianChudnovsky:
		p.zs = []*Element{one, one, one}
	case ec.JacobianModified:
		p.zs = []*Element{one, c.a}
	}
	if err := ec.CheckCurveEquation(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Curve) CreateRawPoint(x, y ec.FieldElement, zs []ec.FieldElement, withCompression bool) ec.Point {
	p := &Point{curve: c, withCompression: withCompression}
	if x != nil {
		p.x = x.(*Element)
		p.y = y.(*Element)
	}
	if len(zs) > 0 {
		p.zs = make([]*Element, len(zs))
		for i, z := range zs {
			p.zs[i] = z.(*Element)
		}
	}
	return p
}

func (c *Curve) ImportPoint(p ec.Point) (ec.Point, error) {
	src, ok := p.(*Point)
	if !ok {
		return nil, errors.Wrap(ec.ErrCurveMismatch, "fp: foreign point is not an fp.Point")
	}
	if src.curve.p.Cmp(c.p) != 0 || !src.curve.a.Equals(c.a) || !src.curve.b.Equals(c.b) {
		return nil, errors.Wrap(ec.ErrCurveMismatch, "fp: curve parameters differ")
	}
	if src.curve.cs == c.cs {
		if src.curve == c {
			return src, nil
		}
		return c.CreateRawPoint(src.x, src.y, toFieldSlice(src.zs), src.withCompression), nil
	}
	if src.IsInfinity() {
		return c.infinity, nil
	}
	np := src.Normalize().(*Point)
	q, err := c.CreatePoint(np.x.ToBigInt(), np.y.ToBigInt())
	if err != nil {
		return nil, err
	}
	q.(*Point).withCompression = src.withCompression
	return q, nil
}

func toFieldSlice(zs []*Element) []ec.FieldElement {
	if zs == nil {
		return nil
	}
	out := make([]ec.FieldElement, len(zs))
	for i, z := range zs {
		out[i] = z
	}
	return out
}

// NormalizeAll applies Montgomery's simultaneous-inversion trick across all
// non-infinity, not-yet-normalized points in the slice sharing this curve:
// one inversion plus 3(n-1) multiplications instead of n inversions.
func (c *Curve) NormalizeAll(points []ec.Point) {
	montgomery.NormalizeAll(points)
}

// checkCurveEquation validates y^2 = x^3 + ax + b for (x, y) on curve c.
func checkCurveEquation(cv ec.Curve, x, y ec.FieldElement) (bool, error) {
	c, ok := cv.(*Curve)
	if !ok {
		return false, nil
	}
	ex, ok1 := x.(*Element)
	ey, ok2 := y.(*Element)
	if !ok1 || !ok2 {
		return true, errors.Wrap(ec.ErrInvariantViolation, "fp: coordinates not fp elements")
	}
	lhs := ey.Square()
	rhs := ex.Square().(*Element).Multiply(ex).(*Element).Add(c.a.Multiply(ex)).(*Element).Add(c.b)
	if !lhs.Equals(rhs) {
		logger.Debugw("curve equation failed", "x", ex.ToBigInt(), "y", ey.ToBigInt())
		return true, errors.Wrap(ec.ErrInvariantViolation, "fp: y^2 != x^3+ax+b")
	}
	return true, nil
}

func init() {
	ec.RegisterCurveEquationChecker(checkCurveEquation)
}
