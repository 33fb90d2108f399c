/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fp

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-crypto-ec/ec"
	"github.com/hyperledger/fabric-crypto-ec/ec/field"
)

// Point is a point on a short-Weierstrass curve over Fp, represented in
// whichever coordinate system its curve was constructed with. x == nil
// denotes the point at infinity.
type Point struct {
	curve           *Curve
	x, y            *Element
	zs              []*Element
	withCompression bool
	preComp         ec.PreCompInfo
}

func (p *Point) Curve() ec.Curve                       { return p.curve }
func (p *Point) CoordinateSystem() ec.CoordinateSystem { return p.curve.cs }
func (p *Point) WithCompression() bool                 { return p.withCompression }
func (p *Point) PreComp() ec.PreCompInfo               { return p.preComp }

func (p *Point) WithPreComp(info ec.PreCompInfo) ec.Point {
	np := *p
	np.preComp = info
	return &np
}

func (p *Point) IsInfinity() bool {
	if p.x == nil {
		return true
	}
	if len(p.zs) > 0 && p.zs[0].IsZero() {
		return true
	}
	return false
}

func (p *Point) IsNormalized() bool {
	if p.IsInfinity() || p.curve.cs == ec.Affine {
		return true
	}
	return len(p.zs) > 0 && p.zs[0].BitLength() == 1
}

func (p *Point) RawXCoord() ec.FieldElement {
	if p.x == nil {
		return nil
	}
	return p.x
}

func (p *Point) RawYCoord() ec.FieldElement {
	if p.y == nil {
		return nil
	}
	return p.y
}

func (p *Point) RawZCoords() []ec.FieldElement {
	return toFieldSlice(p.zs)
}

func (p *Point) AffineXCoord() (ec.FieldElement, error) {
	if !p.IsNormalized() {
		return nil, errors.Wrap(ec.ErrNotNormalized, "fp: AffineXCoord")
	}
	if p.IsInfinity() {
		return nil, errors.Wrap(ec.ErrInvalidArgument, "fp: point at infinity has no affine coordinates")
	}
	return p.x, nil
}

func (p *Point) AffineYCoord() (ec.FieldElement, error) {
	if !p.IsNormalized() {
		return nil, errors.Wrap(ec.ErrNotNormalized, "fp: AffineYCoord")
	}
	if p.IsInfinity() {
		return nil, errors.Wrap(ec.ErrInvalidArgument, "fp: point at infinity has no affine coordinates")
	}
	return p.y, nil
}

// Normalize converts a projective point to its affine equivalent, the only
// place an inversion happens outside the TwicePlus/ThreeTimes
// inversion-trading shortcuts.
func (p *Point) Normalize() ec.Point {
	if p.IsNormalized() {
		return p
	}
	zInv := p.zs[0].Invert().(*Element)
	return p.NormalizeWithZInv(zInv)
}

// NormalizeWithZInv accepts a precomputed Z inverse, letting
// internal/montgomery batch-normalize many points with a single
// inversion shared across all of them.
func (p *Point) NormalizeWithZInv(zInvI ec.FieldElement) ec.Point {
	zInv := zInvI.(*Element)
	switch p.curve.cs {
	case ec.Homogeneous:
		x3 := p.x.Multiply(zInv).(*Element)
		y3 := p.y.Multiply(zInv).(*Element)
		return &Point{curve: p.curve, x: x3, y: y3, zs: []*Element{p.curve.one()}, withCompression: p.withCompression}
	case ec.Jacobian, ec.JacobianChudnovsky, ec.JacobianModified:
		zInv2 := zInv.Square().(*Element)
		zInv3 := zInv2.Multiply(zInv).(*Element)
		x3 := p.x.Multiply(zInv2).(*Element)
		y3 := p.y.Multiply(zInv3).(*Element)
		one := p.curve.one()
		var zs []*Element
		switch p.curve.cs {
		case ec.Jacobian:
			zs = []*Element{one}
		case ec.JacobianChudnovsky:
			zs = []*Element{one, one, one}
		case ec.JacobianModified:
			zs = []*Element{one, p.curve.a}
		}
		return &Point{curve: p.curve, x: x3, y: y3, zs: zs, withCompression: p.withCompression}
	default:
		return p
	}
}

func (p *Point) Negate() ec.Point {
	if p.IsInfinity() {
		return p
	}
	ny := p.y.Negate().(*Element)
	return &Point{curve: p.curve, x: p.x, y: ny, zs: p.zs, withCompression: p.withCompression}
}

func (p *Point) checkCurve(b *Point) error {
	if p.curve.p.Cmp(b.curve.p) != 0 {
		return errors.Wrap(ec.ErrCurveMismatch, "fp: mismatched field modulus")
	}
	return nil
}

func (p *Point) Add(other ec.Point) (ec.Point, error) {
	b, ok := other.(*Point)
	if !ok {
		return nil, errors.Wrap(ec.ErrCurveMismatch, "fp: foreign point is not an fp.Point")
	}
	if err := p.checkCurve(b); err != nil {
		return nil, err
	}
	if p.IsInfinity() {
		return b, nil
	}
	if b.IsInfinity() {
		return p, nil
	}
	if p == b {
		return p.Twice(), nil
	}

	switch p.curve.cs {
	case ec.Affine:
		return p.addAffine(b)
	case ec.Homogeneous:
		return p.addHomogeneous(b)
	case ec.Jacobian, ec.JacobianChudnovsky, ec.JacobianModified:
		return p.addJacobian(b)
	default:
		return nil, errors.Wrapf(ec.ErrUnsupportedCoordinateSystem, "fp: add on %s", p.curve.cs)
	}
}

func (p *Point) Subtract(other ec.Point) (ec.Point, error) {
	if other.IsInfinity() {
		return p, nil
	}
	return p.Add(other.Negate())
}

func (p *Point) addAffine(b *Point) (ec.Point, error) {
	dx := b.x.Subtract(p.x).(*Element)
	dy := b.y.Subtract(p.y).(*Element)
	if dx.IsZero() {
		if dy.IsZero() {
			return p.Twice(), nil
		}
		return p.curve.infinity, nil
	}
	gamma := dy.Divide(dx).(*Element)
	x3 := gamma.Square().(*Element).Subtract(p.x).(*Element).Subtract(b.x).(*Element)
	y3 := gamma.Multiply(p.x.Subtract(x3)).(*Element).Subtract(p.y).(*Element)
	return &Point{curve: p.curve, x: x3, y: y3, withCompression: p.withCompression}, nil
}

// addHomogeneous adds two points in homogeneous (X:Y:Z) coordinates using
// the standard projective addition formula (EFD shortw-projective
// add-1998-cmo-2): u = Y2Z1-Y1Z2, v = X2Z1-X1Z2, and A = u^2*Z1Z2 -
// v^3 - 2*v^2*X1Z2, elided to plain multiplication when a Z equals one.
func (p *Point) addHomogeneous(b *Point) (ec.Point, error) {
	x1, y1, z1 := p.x, p.y, p.zs[0]
	x2, y2, z2 := b.x, b.y, b.zs[0]

	var y1z2, x1z2, z1z2, y2z1, x2z1 *Element
	if z2.isOne() {
		y1z2, x1z2 = y1, x1
	} else {
		y1z2 = y1.Multiply(z2).(*Element)
		x1z2 = x1.Multiply(z2).(*Element)
	}
	if z1.isOne() {
		y2z1, x2z1 = y2, x2
	} else {
		y2z1 = y2.Multiply(z1).(*Element)
		x2z1 = x2.Multiply(z1).(*Element)
	}
	if z1.isOne() && z2.isOne() {
		z1z2 = p.curve.one()
	} else {
		z1z2 = z1.Multiply(z2).(*Element)
	}

	u := y2z1.Subtract(y1z2).(*Element)
	v := x2z1.Subtract(x1z2).(*Element)

	if v.IsZero() {
		if u.IsZero() {
			return p.Twice(), nil
		}
		return p.curve.infinity, nil
	}

	vv := v.Square().(*Element)
	vvv := v.Multiply(vv).(*Element)
	r := vv.Multiply(x1z2).(*Element)
	a := u.Square().(*Element).Multiply(z1z2).(*Element).Subtract(vvv).(*Element).Subtract(two(p.curve).Multiply(r)).(*Element)

	x3 := v.Multiply(a).(*Element)
	y3 := u.Multiply(r.Subtract(a).(*Element)).(*Element).Subtract(vvv.Multiply(y1z2).(*Element)).(*Element)
	z3 := vvv.Multiply(z1z2).(*Element)

	return &Point{curve: p.curve, x: x3, y: y3, zs: []*Element{z3}, withCompression: p.withCompression}, nil
}

func (p *Point) addJacobian(b *Point) (ec.Point, error) {
	x1, y1, z1 := p.x, p.y, p.zs[0]
	x2, y2, z2 := b.x, b.y, b.zs[0]

	z1IsOne := z1.isOne()
	z2IsOne := z2.isOne()

	var z1z1, z2z2 *Element
	var u1, u2, s1, s2 *Element

	if z1IsOne {
		u2 = x2
		s2 = y2
	} else {
		z1z1 = z1.Square().(*Element)
		u2 = x2.Multiply(z1z1).(*Element)
		s2 = y2.Multiply(z1).(*Element).Multiply(z1z1).(*Element)
	}
	if z2IsOne {
		u1 = x1
		s1 = y1
	} else {
		z2z2 = z2.Square().(*Element)
		u1 = x1.Multiply(z2z2).(*Element)
		s1 = y1.Multiply(z2).(*Element).Multiply(z2z2).(*Element)
	}

	h := u2.Subtract(u1).(*Element)
	rRaw := s2.Subtract(s1).(*Element)

	if h.IsZero() {
		if rRaw.IsZero() {
			return p.Twice(), nil
		}
		return p.curve.infinity, nil
	}
	r := two(p.curve).Multiply(rRaw).(*Element)

	hh := h.Square().(*Element)
	i := hh.Multiply(four(p.curve)).(*Element)
	j := h.Multiply(i).(*Element)
	v := u1.Multiply(i).(*Element)

	x3 := r.Square().(*Element).Subtract(j).(*Element).Subtract(v).(*Element).Subtract(v).(*Element)
	y3 := r.Multiply(v.Subtract(x3).(*Element)).(*Element).Subtract(s1.Multiply(j).(*Element).Multiply(two(p.curve)).(*Element)).(*Element)

	var z3 *Element
	switch {
	case z1IsOne && z2IsOne:
		z3 = h.Multiply(two(p.curve)).(*Element)
	case z1IsOne:
		z3 = z2.Multiply(h).(*Element).Multiply(two(p.curve)).(*Element)
	case z2IsOne:
		z3 = z1.Multiply(h).(*Element).Multiply(two(p.curve)).(*Element)
	default:
		z1pz2 := z1.Add(z2).(*Element)
		z3 = z1pz2.Square().(*Element).Subtract(z1z1).(*Element).Subtract(z2z2).(*Element).Multiply(h).(*Element)
	}

	res := &Point{curve: p.curve, x: x3, y: y3, zs: []*Element{z3}, withCompression: p.withCompression}
	if p.curve.cs == ec.JacobianModified {
		w3 := res.calculateW(z3)
		res.zs = append(res.zs, w3)
	} else if p.curve.cs == ec.JacobianChudnovsky {
		res.zs = append(res.zs, z3.Square().(*Element), z3.Square().(*Element).Multiply(z3).(*Element))
	}
	return res, nil
}

// calculateW derives the modified-Jacobian W = a*Z^4 auxiliary for a
// freshly computed Z, choosing between a and -a to keep the field product
// smaller, as spec.md 4.2 describes.
func (p *Point) calculateW(z3 *Element) *Element {
	z4 := z3.Square().(*Element).Square().(*Element)
	if p.curve.a.IsZero() {
		return z4.Multiply(p.curve.a).(*Element)
	}
	na := p.curve.a.Negate().(*Element)
	if absLessOrEqual(p.curve.a, na) {
		return z4.Multiply(p.curve.a).(*Element)
	}
	return z4.Multiply(na).(*Element).Negate().(*Element)
}

// isMinus3 reports whether a == -3, the special curve family that lets
// doubling use the (X+Z^2)(X-Z^2) shortcut.
func (c *Curve) isMinus3() bool {
	na := c.a.Negate().(*Element)
	return na.v.Cmp(big.NewInt(3)) == 0
}

func (p *Point) Twice() ec.Point {
	if p.IsInfinity() {
		return p
	}
	switch p.curve.cs {
	case ec.Affine:
		if p.y.IsZero() {
			return p.curve.infinity
		}
		three := three(p.curve)
		two := two(p.curve)
		gamma := three.Multiply(p.x.Square()).(*Element).Add(p.curve.a).(*Element).Divide(two.Multiply(p.y)).(*Element)
		x3 := gamma.Square().(*Element).Subtract(p.x).(*Element).Subtract(p.x).(*Element)
		y3 := gamma.Multiply(p.x.Subtract(x3)).(*Element).Subtract(p.y).(*Element)
		return &Point{curve: p.curve, x: x3, y: y3, withCompression: p.withCompression}
	case ec.Homogeneous:
		return p.twiceHomogeneous()
	case ec.Jacobian, ec.JacobianChudnovsky:
		return p.twiceJacobian()
	case ec.JacobianModified:
		return p.twiceJacobianModified(true)
	default:
		panic(ec.ErrUnsupportedCoordinateSystem)
	}
}

func (p *Point) twiceHomogeneous() ec.Point {
	x1, y1, z1 := p.x, p.y, p.zs[0]
	if y1.IsZero() {
		return p.curve.infinity
	}
	two := two(p.curve)
	three := three(p.curve)

	w := three.Multiply(x1.Square()).(*Element).Add(p.curve.a.Multiply(z1.Square()).(*Element)).(*Element)
	s := two.Multiply(y1).(*Element).Multiply(z1).(*Element)
	ss := s.Square().(*Element)
	sss := ss.Multiply(s).(*Element)
	r := y1.Multiply(s).(*Element)
	rr := r.Square().(*Element)

	xx := x1.Square().(*Element)
	b := x1.Add(r).(*Element).Square().(*Element).Subtract(xx).(*Element).Subtract(rr).(*Element)
	h := w.Square().(*Element).Subtract(two.Multiply(b)).(*Element)

	x3 := h.Multiply(s).(*Element)
	y3 := w.Multiply(b.Subtract(h).(*Element)).(*Element).Subtract(two.Multiply(rr).(*Element)).(*Element)
	z3 := sss

	return &Point{curve: p.curve, x: x3, y: y3, zs: []*Element{z3}, withCompression: p.withCompression}
}

func (p *Point) twiceJacobian() ec.Point {
	x1, y1, z1 := p.x, p.y, p.zs[0]
	if y1.IsZero() {
		return p.curve.infinity
	}
	two := two(p.curve)
	three := three(p.curve)
	four := four(p.curve)
	eight := eight(p.curve)

	var m *Element
	if p.curve.isMinus3() {
		if z1.isOne() {
			t1 := x1.Add(p.curve.one()).(*Element)
			t2 := x1.Subtract(p.curve.one()).(*Element)
			m = three.Multiply(t1.Multiply(t2)).(*Element)
		} else {
			z1z1 := z1.Square().(*Element)
			t1 := x1.Add(z1z1).(*Element)
			t2 := x1.Subtract(z1z1).(*Element)
			m = three.Multiply(t1.Multiply(t2)).(*Element)
		}
	} else {
		x1sq3 := three.Multiply(x1.Square()).(*Element)
		if z1.isOne() {
			m = x1sq3.Add(p.curve.a).(*Element)
		} else {
			z1sq := z1.Square().(*Element)
			z1_4 := z1sq.Square().(*Element)
			na := p.curve.a.Negate().(*Element)
			if absLessOrEqual(p.curve.a, na) {
				m = x1sq3.Add(p.curve.a.Multiply(z1_4)).(*Element)
			} else {
				m = x1sq3.Subtract(na.Multiply(z1_4)).(*Element)
			}
		}
	}

	s := four.Multiply(x1).(*Element).Multiply(y1.Square()).(*Element)
	x3 := m.Square().(*Element).Subtract(two.Multiply(s)).(*Element)
	y1sq := y1.Square().(*Element)
	y3 := m.Multiply(s.Subtract(x3).(*Element)).(*Element).Subtract(eight.Multiply(y1sq.Square()).(*Element)).(*Element)
	var z3 *Element
	if z1.isOne() {
		z3 = two.Multiply(y1).(*Element)
	} else {
		z3 = two.Multiply(y1).(*Element).Multiply(z1).(*Element)
	}

	res := &Point{curve: p.curve, x: x3, y: y3, zs: []*Element{z3}, withCompression: p.withCompression}
	if p.curve.cs == ec.JacobianChudnovsky {
		res.zs = append(res.zs, z3.Square().(*Element), z3.Square().(*Element).Multiply(z3).(*Element))
	}
	return res
}

// twiceJacobianModified doubles a modified-Jacobian point, threading the
// cached W = a*Z^4 auxiliary through so the cubing of Z is avoided.
// calculateW is skipped when calculateW is false, for callers (TwicePlus)
// that know the result feeds straight into an Add.
func (p *Point) twiceJacobianModified(calculateW bool) *Point {
	x1, y1, z1 := p.x, p.y, p.zs[0]
	w1 := p.w()
	if y1.IsZero() {
		return p.curve.infinity
	}
	two := two(p.curve)
	three := three(p.curve)
	four := four(p.curve)
	eight := eight(p.curve)

	m := three.Multiply(x1.Square()).(*Element).Add(w1).(*Element)
	s := four.Multiply(x1).(*Element).Multiply(y1.Square()).(*Element)

	x3 := m.Square().(*Element).Subtract(two.Multiply(s)).(*Element)
	y1sq := y1.Square().(*Element)
	y3 := m.Multiply(s.Subtract(x3).(*Element)).(*Element).Subtract(eight.Multiply(y1sq.Square()).(*Element)).(*Element)
	z3 := two.Multiply(y1).(*Element).Multiply(z1).(*Element)

	res := &Point{curve: p.curve, x: x3, y: y3, zs: []*Element{z3}, withCompression: p.withCompression}
	if calculateW {
		res.zs = append(res.zs, res.calculateW(z3))
	}
	return res
}

// w returns the modified-Jacobian W auxiliary, computing it on demand if
// this point's zs slice was constructed without one.
func (p *Point) w() *Element {
	if len(p.zs) > 1 {
		return p.zs[1]
	}
	return p.calculateW(p.zs[0])
}

// TwicePlus computes 2*this + b using the Ciet-Joye-Lauter-Montgomery
// identity in affine coordinates, trading two inversions for several
// multiplications; other coordinate systems fall back to Twice().Add(b) as
// spec.md 4.2 sanctions.
func (p *Point) TwicePlus(other ec.Point) (ec.Point, error) {
	b, ok := other.(*Point)
	if !ok {
		return nil, errors.Wrap(ec.ErrCurveMismatch, "fp: foreign point is not an fp.Point")
	}
	if p.IsInfinity() {
		return b, nil
	}
	if b.IsInfinity() {
		return p.Twice(), nil
	}
	if p == b {
		return p.ThreeTimes(), nil
	}

	if p.curve.cs == ec.Affine {
		x1, y1 := p.x, p.y
		x2, y2 := b.x, b.y

		dxdiff := x2.Subtract(x1).(*Element)
		dydiff := y2.Subtract(y1).(*Element)
		xx := dxdiff.Square().(*Element)
		yy := dydiff.Square().(*Element)

		two := two(p.curve)
		d := xx.Multiply(two.Multiply(x1).(*Element).Add(x2)).(*Element).Subtract(yy).(*Element)
		if d.IsZero() {
			return p.curve.infinity, nil
		}
		dd := d.Multiply(dxdiff).(*Element)
		i := dd.Invert().(*Element)
		l1 := d.Multiply(i).(*Element).Multiply(dydiff).(*Element)
		l2 := two.Multiply(y1).(*Element).Multiply(xx).(*Element).Multiply(dxdiff).(*Element).Multiply(i).(*Element).Subtract(l1).(*Element)

		x4 := l2.Subtract(l1).(*Element).Multiply(l1.Add(l2)).(*Element).Add(x2).(*Element)
		y4 := x1.Subtract(x4).(*Element).Multiply(l2).(*Element).Subtract(y1).(*Element)
		return &Point{curve: p.curve, x: x4, y: y4, withCompression: p.withCompression}, nil
	}

	if p.curve.cs == ec.JacobianModified {
		twice := p.twiceJacobianModified(false)
		return twice.Add(b)
	}

	tw := p.Twice()
	return tw.Add(b)
}

// ThreeTimes computes 3*this using a single-inversion affine identity;
// other coordinate systems fall back to Twice().Add(this).
func (p *Point) ThreeTimes() ec.Point {
	if p.IsInfinity() {
		return p
	}
	if p.curve.cs != ec.Affine {
		tw := p.Twice()
		res, err := tw.Add(p)
		if err != nil {
			panic(err)
		}
		return res
	}
	if p.y.IsZero() {
		return p.curve.infinity
	}
	two := two(p.curve)
	three := three(p.curve)

	y2 := two.Multiply(p.y).(*Element)
	xx := y2.Square().(*Element)
	z := three.Multiply(p.x.Square()).(*Element).Add(p.curve.a).(*Element)
	d := three.Multiply(p.x).(*Element).Multiply(xx).(*Element).Subtract(z.Square()).(*Element)
	if d.IsZero() {
		return p.curve.infinity
	}
	i := d.Multiply(y2).(*Element).Invert().(*Element)
	l1 := d.Multiply(i).(*Element).Multiply(z).(*Element)
	l2 := xx.Square().(*Element).Multiply(i).(*Element).Subtract(l1).(*Element)

	x3 := l2.Subtract(l1).(*Element).Multiply(l1.Add(l2)).(*Element).Add(p.x).(*Element)
	y3 := p.x.Subtract(x3).(*Element).Multiply(l2).(*Element).Subtract(p.y).(*Element)
	return &Point{curve: p.curve, x: x3, y: y3, withCompression: p.withCompression}
}

func (p *Point) TimesPow2(e int) (ec.Point, error) {
	if e < 0 {
		return nil, errors.Wrap(ec.ErrInvalidArgument, "fp: TimesPow2 with negative exponent")
	}
	r := ec.Point(p)
	for i := 0; i < e; i++ {
		r = r.Twice()
	}
	return r, nil
}

func (p *Point) Multiply(k *big.Int) ec.Point {
	if p.curve.mult != nil {
		return p.curve.mult.Multiply(p, k)
	}
	return genericMultiply(p, k)
}

// genericMultiply is a plain double-and-add fallback used when the curve
// was not given a Multiplier; scalar-multiplication strategy proper
// (windowing, wNAF, GLV) is out of scope for this module (spec.md sec.1).
func genericMultiply(p ec.Point, k *big.Int) ec.Point {
	if k.Sign() == 0 {
		return p.Curve().Infinity()
	}
	neg := k.Sign() < 0
	abs := new(big.Int).Abs(k)

	r := p.Curve().Infinity()
	addend := p
	for i := 0; i < abs.BitLen(); i++ {
		if abs.Bit(i) == 1 {
			var err error
			r, err = r.Add(addend)
			if err != nil {
				panic(err)
			}
		}
		addend = addend.Twice()
	}
	if neg {
		r = r.Negate()
	}
	return r
}

func (p *Point) Equals(other ec.Point) bool {
	b, ok := other.(*Point)
	if !ok {
		return false
	}
	if p.IsInfinity() || b.IsInfinity() {
		return p.IsInfinity() && b.IsInfinity()
	}
	if p.curve.p.Cmp(b.curve.p) != 0 || !p.curve.a.Equals(b.curve.a) || !p.curve.b.Equals(b.curve.b) {
		return false
	}
	np := p.Normalize().(*Point)
	nb := b.Normalize().(*Point)
	return np.x.Equals(nb.x) && np.y.Equals(nb.y)
}

func (p *Point) GetEncoded(compressed bool) ([]byte, error) {
	if p.IsInfinity() {
		return []byte{0x00}, nil
	}
	np := p.Normalize().(*Point)
	xb := np.x.Encode()
	if !compressed {
		return field.SEC1(xb, np.y.Encode(), false, false), nil
	}
	parity := !np.x.IsZero() && np.y.TestBitZero()
	return field.SEC1(xb, nil, true, parity), nil
}
