/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package f2m

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-crypto-ec/ec"
	"github.com/hyperledger/fabric-crypto-ec/internal/montgomery"
)

// Curve is a short-Weierstrass curve y^2 + xy = x^3 + ax^2 + b over the
// binary field GF(2^m) defined by the irreducible reduction polynomial mod.
type Curve struct {
	m        int
	mod      *big.Int
	a, b     *Element
	order    *big.Int
	cofactor *big.Int
	cs       ec.CoordinateSystem
	mult     ec.Multiplier

	infinity *Point
}

// NewCurve builds a Curve over GF(2^m) reduced by mod, with parameters a, b,
// base-point order n and cofactor h, using the given coordinate system. mult
// may be nil; Curve.Multiplier then returns nil, since scalar-multiplication
// strategy is out of scope for this module.
func NewCurve(m int, mod, a, b, n, h *big.Int, cs ec.CoordinateSystem, mult ec.Multiplier) (*Curve, error) {
	switch cs {
	case ec.Affine, ec.Homogeneous, ec.LambdaAffine, ec.LambdaProjective:
	default:
		return nil, errors.Wrapf(ec.ErrUnsupportedCoordinateSystem, "f2m: coordinate system %s", cs)
	}
	c := &Curve{
		m:        m,
		mod:      new(big.Int).Set(mod),
		a:        NewElement(m, mod, a),
		b:        NewElement(m, mod, b),
		order:    new(big.Int).Set(n),
		cofactor: new(big.Int).Set(h),
		cs:       cs,
	}
	c.mult = mult
	c.infinity = &Point{curve: c}
	return c, nil
}

func (c *Curve) A() ec.FieldElement                    { return c.a }
func (c *Curve) B() ec.FieldElement                    { return c.b }
func (c *Curve) FieldSize() int                        { return c.m }
func (c *Curve) CoordinateSystem() ec.CoordinateSystem { return c.cs }
func (c *Curve) Cofactor() *big.Int                    { return new(big.Int).Set(c.cofactor) }
func (c *Curve) Order() *big.Int                       { return new(big.Int).Set(c.order) }
func (c *Curve) Infinity() ec.Point                    { return c.infinity }
func (c *Curve) Multiplier() ec.Multiplier             { return c.mult }

func (c *Curve) one() *Element { return NewElement(c.m, c.mod, big.NewInt(1)) }

func (c *Curve) FromBigInt(k *big.Int) ec.FieldElement {
	return NewElement(c.m, c.mod, k)
}

// CreatePoint constructs a normalized point from ordinary affine (x, y)
// coordinates, converting into whichever representation this curve's
// coordinate system needs, and validates the plain curve equation.
func (c *Curve) CreatePoint(x, y *big.Int) (ec.Point, error) {
	ex := NewElement(c.m, c.mod, x)
	ey := NewElement(c.m, c.mod, y)
	if _, err := checkCurveEquation(c, ex, ey); err != nil {
		return nil, err
	}
	p := &Point{curve: c, x: ex}
	switch c.cs {
	case ec.LambdaAffine, ec.LambdaProjective:
		p.y = toLambda(ex, ey)
	default:
		p.y = ey
	}
	if c.cs == ec.Homogeneous || c.cs == ec.LambdaProjective {
		p.zs = []*Element{c.one()}
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
		return nil, errors.Wrap(ec.ErrCurveMismatch, "f2m: foreign point is not an f2m.Point")
	}
	if src.curve.m != c.m || src.curve.mod.Cmp(c.mod) != 0 || !src.curve.a.Equals(c.a) || !src.curve.b.Equals(c.b) {
		return nil, errors.Wrap(ec.ErrCurveMismatch, "f2m: curve parameters differ")
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
	x, y, err := src.affineXY()
	if err != nil {
		return nil, err
	}
	return c.CreatePoint(x.ToBigInt(), y.ToBigInt())
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
// non-infinity, not-yet-normalized points in the slice sharing this curve.
func (c *Curve) NormalizeAll(points []ec.Point) {
	montgomery.NormalizeAll(points)
}

// checkCurveEquation validates y^2 + xy = x^3 + ax^2 + b for (x, y) on curve
// c, given in ordinary affine terms regardless of the curve's coordinate
// system.
func checkCurveEquation(cv ec.Curve, x, y ec.FieldElement) (bool, error) {
	c, ok := cv.(*Curve)
	if !ok {
		return false, nil
	}
	ex, ok1 := x.(*Element)
	ey, ok2 := y.(*Element)
	if !ok1 || !ok2 {
		return true, errors.Wrap(ec.ErrInvariantViolation, "f2m: coordinates not f2m elements")
	}
	lhs := ey.Square().(*Element).Add(ex.Multiply(ey)).(*Element)
	rhs := ex.Square().(*Element).Multiply(ex).(*Element).
		Add(c.a.Multiply(ex.Square())).(*Element).
		Add(c.b).(*Element)
	if !lhs.Equals(rhs) {
		logger.Debugw("curve equation failed", "x", ex.ToBigInt(), "y", ey.ToBigInt())
		return true, errors.Wrap(ec.ErrInvariantViolation, "f2m: y^2+xy != x^3+ax^2+b")
	}
	return true, nil
}

func init() {
	ec.RegisterCurveEquationChecker(checkCurveEquation)
}
