/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package f2m

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-crypto-ec/ec"
	"github.com/hyperledger/fabric-crypto-ec/ec/field"
)

// Point is a point on a short-Weierstrass curve over GF(2^m). The y field
// holds ordinary Y for Affine and Homogeneous points and lambda = Y/X + X
// for LambdaAffine and LambdaProjective points; x == nil denotes the point
// at infinity.
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
	if p.IsInfinity() {
		return true
	}
	switch p.curve.cs {
	case ec.Affine, ec.LambdaAffine:
		return true
	default:
		return len(p.zs) > 0 && p.zs[0].isOne()
	}
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

// affineXY returns the ordinary (x, y) affine pair, requiring the point to
// already be normalized (Z = 1 or no Z at all).
func (p *Point) affineXY() (*Element, *Element, error) {
	if !p.IsNormalized() {
		return nil, nil, errors.Wrap(ec.ErrNotNormalized, "f2m: affineXY")
	}
	if p.IsInfinity() {
		return nil, nil, errors.Wrap(ec.ErrInvalidArgument, "f2m: point at infinity has no affine coordinates")
	}
	switch p.curve.cs {
	case ec.LambdaAffine, ec.LambdaProjective:
		return p.x, fromLambda(p.x, p.y), nil
	default:
		return p.x, p.y, nil
	}
}

func (p *Point) AffineXCoord() (ec.FieldElement, error) {
	x, _, err := p.affineXY()
	if err != nil {
		return nil, err
	}
	return x, nil
}

func (p *Point) AffineYCoord() (ec.FieldElement, error) {
	_, y, err := p.affineXY()
	if err != nil {
		return nil, err
	}
	return y, nil
}

// Normalize converts a projective point to Z = 1 in the same coordinate
// system.
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
	case ec.LambdaProjective:
		x3 := p.x.Multiply(zInv).(*Element)
		l3 := p.y.Multiply(zInv).(*Element)
		return &Point{curve: p.curve, x: x3, y: l3, zs: []*Element{p.curve.one()}, withCompression: p.withCompression}
	default:
		return p
	}
}

// Negate preserves X. Y becomes Y+X in affine/homogeneous (since -P = (X,
// X+Y)); lambda becomes lambda+1 in lambda-affine, lambda+Z in
// lambda-projective.
func (p *Point) Negate() ec.Point {
	if p.IsInfinity() {
		return p
	}
	var ny *Element
	switch p.curve.cs {
	case ec.Affine, ec.Homogeneous:
		ny = p.y.Add(p.x).(*Element)
	case ec.LambdaAffine:
		ny = p.y.AddOne().(*Element)
	case ec.LambdaProjective:
		ny = p.y.Add(p.zs[0]).(*Element)
	default:
		panic(ec.ErrUnsupportedCoordinateSystem)
	}
	return &Point{curve: p.curve, x: p.x, y: ny, zs: p.zs, withCompression: p.withCompression}
}

// tau applies the Frobenius endomorphism (x, y) -> (x^2, y^2), squaring z
// too when present. Identity on infinity.
func (p *Point) tau() *Point {
	if p.IsInfinity() {
		return p
	}
	np := &Point{curve: p.curve, x: p.x.Square().(*Element), y: p.y.Square().(*Element), withCompression: p.withCompression}
	if len(p.zs) > 0 {
		np.zs = make([]*Element, len(p.zs))
		for i, z := range p.zs {
			np.zs[i] = z.Square().(*Element)
		}
	}
	return np
}

// Tau exposes the Frobenius endomorphism on the ec.Point interface.
func (p *Point) Tau() ec.Point { return p.tau() }

// checkPoints enforces the operand-compatibility rule: identical curve
// references, not merely equal parameters.
func (p *Point) checkPoints(b *Point) error {
	if p.curve != b.curve {
		return errors.Wrap(ec.ErrCurveMismatch, "f2m: operands are not on the same curve instance")
	}
	return nil
}

func (p *Point) Add(other ec.Point) (ec.Point, error) {
	b, ok := other.(*Point)
	if !ok {
		return nil, errors.Wrap(ec.ErrCurveMismatch, "f2m: foreign point is not an f2m.Point")
	}
	if err := p.checkPoints(b); err != nil {
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
	case ec.LambdaAffine:
		return p.addLambdaAffine(b)
	case ec.LambdaProjective:
		return p.addLambdaProjective(b)
	default:
		return nil, errors.Wrapf(ec.ErrUnsupportedCoordinateSystem, "f2m: add on %s", p.curve.cs)
	}
}

func (p *Point) Subtract(other ec.Point) (ec.Point, error) {
	if other.IsInfinity() {
		return p, nil
	}
	return p.Add(other.Negate())
}

// addAffine implements y^2+xy=x^3+ax^2+b addition: X1=X2, Y1=Y2 doubles;
// X1=X2, Y1!=Y2 gives infinity; otherwise L=(Y1+Y2)/(X1+X2),
// X3=L^2+L+X1+X2+a, Y3=L(X1+X3)+X3+Y1.
func (p *Point) addAffine(b *Point) (ec.Point, error) {
	if p.x.Equals(b.x) {
		if p.y.Equals(b.y) {
			return p.Twice(), nil
		}
		return p.curve.infinity, nil
	}
	l := p.y.Add(b.y).(*Element).Divide(p.x.Add(b.x)).(*Element)
	x3 := l.Square().(*Element).Add(l).(*Element).Add(p.x).(*Element).Add(b.x).(*Element).Add(p.curve.a).(*Element)
	y3 := l.Multiply(p.x.Add(x3)).(*Element).Add(x3).(*Element).Add(p.y).(*Element)
	return &Point{curve: p.curve, x: x3, y: y3, withCompression: p.withCompression}, nil
}

// addHomogeneous mirrors addAffine, homogenized through (X:Y:Z) with
// x=X/Z, y=Y/Z, subtraction replaced by field addition throughout since the
// field has characteristic 2.
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

	u := y2z1.Add(y1z2).(*Element)
	v := x2z1.Add(x1z2).(*Element)

	if v.IsZero() {
		if u.IsZero() {
			return p.Twice(), nil
		}
		return p.curve.infinity, nil
	}

	vv := v.Square().(*Element)
	vvv := v.Multiply(vv).(*Element)
	r := vv.Multiply(x1z2).(*Element)
	aCoef := u.Square().(*Element).Multiply(z1z2).(*Element).
		Add(u.Multiply(v).(*Element).Multiply(z1z2)).(*Element).
		Add(vvv).(*Element).
		Add(p.curve.a.Multiply(vv).(*Element).Multiply(z1z2)).(*Element)

	x3 := v.Multiply(aCoef).(*Element)
	y3 := u.Multiply(r.Add(aCoef)).(*Element).
		Add(v.Multiply(aCoef)).(*Element).
		Add(vvv.Multiply(y1z2)).(*Element)
	z3 := vvv.Multiply(z1z2).(*Element)

	return &Point{curve: p.curve, x: x3, y: y3, zs: []*Element{z3}, withCompression: p.withCompression}, nil
}

// addLambdaAffine recovers plain Y from the stored lambdas, runs addAffine's
// algebra, and re-derives lambda for the result. This spends the division
// lambda coordinates exist to avoid, but stays correct without a compiler in
// the loop to catch a hand-derived native-lambda addition identity.
func (p *Point) addLambdaAffine(b *Point) (ec.Point, error) {
	y1 := fromLambda(p.x, p.y)
	y2 := fromLambda(b.x, b.y)
	pa := &Point{curve: affineView(p.curve), x: p.x, y: y1}
	ba := &Point{curve: affineView(p.curve), x: b.x, y: y2}
	res, err := pa.addAffine(ba)
	if err != nil {
		return nil, err
	}
	if res.IsInfinity() {
		return p.curve.infinity, nil
	}
	r := res.(*Point)
	return &Point{curve: p.curve, x: r.x, y: toLambda(r.x, r.y), withCompression: p.withCompression}, nil
}

// addLambdaProjective handles the X1=0 / X2=0 special cases (spec calls for
// preserving the observable result of a "can probably be optimized"
// affine-style branch, not a specific formula) and the general case by
// normalizing and re-running the affine group law, which is guaranteed to
// produce the same point any native projective identity would.
func (p *Point) addLambdaProjective(b *Point) (ec.Point, error) {
	pn := p.Normalize().(*Point)
	bn := b.Normalize().(*Point)
	res, err := pn.addLambdaAffine(bn)
	if err != nil {
		return nil, err
	}
	if res.IsInfinity() {
		return p.curve.infinity, nil
	}
	r := res.(*Point)
	return &Point{curve: p.curve, x: r.x, y: r.y, zs: []*Element{p.curve.one()}, withCompression: p.withCompression}, nil
}

// affineView returns a curve identical to c but tagged Affine, used
// internally to reuse addAffine's algebra on plain (x, y) pairs recovered
// from another coordinate system without allocating a new curve identity
// check path.
func affineView(c *Curve) *Curve {
	view := *c
	view.cs = ec.Affine
	return &view
}

func (p *Point) Twice() ec.Point {
	if p.IsInfinity() {
		return p
	}
	if p.x.IsZero() {
		return p.curve.infinity
	}
	switch p.curve.cs {
	case ec.Affine:
		return p.twiceAffine()
	case ec.Homogeneous:
		return p.twiceHomogeneous()
	case ec.LambdaAffine:
		return p.twiceLambdaAffine()
	case ec.LambdaProjective:
		return p.twiceLambdaProjective()
	default:
		panic(ec.ErrUnsupportedCoordinateSystem)
	}
}

// twiceAffine: X1=0 already handled by Twice. L1=Y1/X1+X1, X3=L1^2+L1+a,
// Y3=X1^2+X3(L1+1).
func (p *Point) twiceAffine() ec.Point {
	l1 := p.y.Divide(p.x).(*Element).Add(p.x).(*Element)
	x3 := l1.Square().(*Element).Add(l1).(*Element).Add(p.curve.a).(*Element)
	y3 := p.x.Square().(*Element).Add(x3.Multiply(l1.AddOne())).(*Element)
	return &Point{curve: p.curve, x: x3, y: y3, withCompression: p.withCompression}
}

// twiceHomogeneous homogenizes twiceAffine's L1=Y1/X1+X1, X3=L1^2+L1+a,
// Y3=X1^2+X3(L1+1) through (X:Y:Z), x=X/Z, y=Y/Z. Writing w=X1*Z1 and
// N=Y1*Z1+X1^2 (so L1=N/w), M=N^2+N*w+a*w^2 plays the role of X3*w^2;
// X3=M*w, Z3=w^3, Y3=X1^4*w+M*(N+w).
func (p *Point) twiceHomogeneous() ec.Point {
	x1, y1, z1 := p.x, p.y, p.zs[0]
	var w, n *Element
	if z1.isOne() {
		w = x1
		n = y1.Add(x1.Square()).(*Element)
	} else {
		w = x1.Multiply(z1).(*Element)
		n = y1.Multiply(z1).(*Element).Add(x1.Square()).(*Element)
	}
	m := n.Square().(*Element).Add(n.Multiply(w)).(*Element).Add(p.curve.a.Multiply(w.Square())).(*Element)
	x3 := m.Multiply(w).(*Element)
	z3 := w.Square().(*Element).Multiply(w).(*Element)
	x1p4 := x1.Square().(*Element).Square().(*Element)
	y3 := x1p4.Multiply(w).(*Element).Add(m.Multiply(n.Add(w))).(*Element)
	return &Point{curve: p.curve, x: x3, y: y3, zs: []*Element{z3}, withCompression: p.withCompression}
}

// twiceLambdaAffine stores lambda directly, so no lambda1 recomputation is
// needed: X3=lambda1^2+lambda1+a, lambda3=X1^2/X3+lambda1+1+X3.
func (p *Point) twiceLambdaAffine() ec.Point {
	x1, l1 := p.x, p.y
	x3 := l1.Square().(*Element).Add(l1).(*Element).Add(p.curve.a).(*Element)
	l3 := x1.Square().(*Element).Divide(x3).(*Element).Add(l1).(*Element).AddOne().(*Element).Add(x3).(*Element)
	return &Point{curve: p.curve, x: x3, y: l3, withCompression: p.withCompression}
}

// twiceLambdaProjective: T=lambda1^2+lambda1*Z1+a*Z1^2, X3=T^2, Z3=T*Z1^2,
// lambda3=(X1*Z1)^2+Z1*T*(lambda1+Z1)+X3. Only one of the two equivalent
// lambda3 expressions the source names (selected by comparing the bit
// length of b against half the field size) is implemented; both compute the
// same value, this one is simply the one derived and checked here.
func (p *Point) twiceLambdaProjective() ec.Point {
	x1, l1, z1 := p.x, p.y, p.zs[0]
	t := l1.Square().(*Element).Add(l1.Multiply(z1)).(*Element).Add(p.curve.a.Multiply(z1.Square())).(*Element)
	x3 := t.Square().(*Element)
	z3 := t.Multiply(z1.Square()).(*Element)
	l3 := x1.Multiply(z1).(*Element).Square().(*Element).
		Add(z1.Multiply(t).(*Element).Multiply(l1.Add(z1))).(*Element).
		Add(x3).(*Element)
	return &Point{curve: p.curve, x: x3, y: l3, zs: []*Element{z3}, withCompression: p.withCompression}
}

// TwicePlus falls back to twice().add(b) for every coordinate system; the
// dedicated lambda-projective/lambda-affine mixed-addition shortcut the
// source describes is a pure performance path whose absence does not change
// any observable result.
func (p *Point) TwicePlus(other ec.Point) (ec.Point, error) {
	b, ok := other.(*Point)
	if !ok {
		return nil, errors.Wrap(ec.ErrCurveMismatch, "f2m: foreign point is not an f2m.Point")
	}
	if p.IsInfinity() {
		return b, nil
	}
	if b.IsInfinity() {
		return p.Twice(), nil
	}
	return p.Twice().Add(b)
}

// ThreeTimes falls back to twice().add(this); the source's optimized
// single-inversion identity is specific to Fp's affine representation.
func (p *Point) ThreeTimes() ec.Point {
	if p.IsInfinity() {
		return p
	}
	res, err := p.Twice().Add(p)
	if err != nil {
		panic(err)
	}
	return res
}

func (p *Point) TimesPow2(e int) (ec.Point, error) {
	if e < 0 {
		return nil, errors.Wrap(ec.ErrInvalidArgument, "f2m: TimesPow2 with negative exponent")
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
// was not given a Multiplier.
func genericMultiply(p ec.Point, k *big.Int) ec.Point {
	if k.Sign() == 0 {
		return p.Curve().Infinity()
	}
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
	if k.Sign() < 0 {
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
	if p.curve.m != b.curve.m || p.curve.mod.Cmp(b.curve.mod) != 0 || !p.curve.a.Equals(b.curve.a) || !p.curve.b.Equals(b.curve.b) {
		return false
	}
	x1, y1, err := p.affineXY()
	if err != nil {
		x1, y1 = p.Normalize().(*Point).mustAffineXY()
	}
	x2, y2, err := b.affineXY()
	if err != nil {
		x2, y2 = b.Normalize().(*Point).mustAffineXY()
	}
	return x1.Equals(x2) && y1.Equals(y2)
}

func (p *Point) mustAffineXY() (*Element, *Element) {
	x, y, err := p.affineXY()
	if err != nil {
		panic(err)
	}
	return x, y
}

func (p *Point) GetEncoded(compressed bool) ([]byte, error) {
	if p.IsInfinity() {
		return []byte{0x00}, nil
	}
	x, y, err := p.affineXY()
	if err != nil {
		np := p.Normalize().(*Point)
		x, y, err = np.affineXY()
		if err != nil {
			return nil, err
		}
	}
	xb := x.Encode()
	if !compressed {
		return field.SEC1(xb, y.Encode(), false, false), nil
	}
	parity := !x.IsZero() && y.Divide(x).(*Element).TestBitZero()
	return field.SEC1(xb, nil, true, parity), nil
}
