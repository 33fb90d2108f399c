/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package f2m implements the short-Weierstrass point-arithmetic core over
// binary fields F2^m, in four coordinate systems: Affine, Homogeneous,
// Lambda-Affine, and Lambda-Projective. The carry-less multiply / xor-add /
// polynomial-reduction carrier is grounded in the GF(2^n) big.Int
// arithmetic of the retrieved ellipticbinary reference
// (pasl-project-pasl__curve.go), generalized here from a fixed reduction
// polynomial to an arbitrary caller-supplied one and extended with
// inversion (needed for Divide/Invert, which that reference does not
// implement) via the standard binary-field extended Euclidean algorithm.
package f2m

import (
	"math/big"

	"github.com/hyperledger/fabric-crypto-ec/ec"
	"github.com/hyperledger/fabric-crypto-ec/ec/field"
)

// Element is an element of GF(2^m) represented as the big.Int whose bits
// are the polynomial's coefficients, reduced modulo an irreducible
// polynomial of degree m.
type Element struct {
	m   int
	mod *big.Int // irreducible reduction polynomial, degree m
	v   *big.Int
}

// NewElement builds an Element of GF(2^m) reduced modulo mod, an
// irreducible polynomial of degree m represented as a big.Int bitmask.
func NewElement(m int, mod, v *big.Int) *Element {
	return &Element{m: m, mod: mod, v: reduce(v, mod, m)}
}

func (e *Element) same(b *Element) {
	if e.m != b.m || e.mod.Cmp(b.mod) != 0 {
		panic("ec/f2m: field mismatch")
	}
}

func (e *Element) wrap(v *big.Int) *Element {
	return &Element{m: e.m, mod: e.mod, v: reduce(v, e.mod, e.m)}
}

// Add is XOR in a characteristic-2 field; Subtract is defined identically.
func (e *Element) Add(other ec.FieldElement) ec.FieldElement {
	b := other.(*Element)
	e.same(b)
	return e.wrap(new(big.Int).Xor(e.v, b.v))
}

// Subtract equals Add: characteristic 2 means a - b == a + b.
func (e *Element) Subtract(other ec.FieldElement) ec.FieldElement {
	return e.Add(other)
}

func (e *Element) Multiply(other ec.FieldElement) ec.FieldElement {
	b := other.(*Element)
	e.same(b)
	return e.wrap(clmul(e.v, b.v))
}

func (e *Element) Square() ec.FieldElement {
	return e.wrap(spread(e.v))
}

func (e *Element) Divide(other ec.FieldElement) ec.FieldElement {
	b := other.(*Element)
	e.same(b)
	return e.wrap(clmul(e.v, invert(b.v, e.mod)))
}

func (e *Element) Invert() ec.FieldElement {
	return e.wrap(invert(e.v, e.mod))
}

// Negate is the identity in characteristic 2: -a == a.
func (e *Element) Negate() ec.FieldElement {
	return e.wrap(new(big.Int).Set(e.v))
}

func (e *Element) AddOne() ec.FieldElement {
	return e.wrap(new(big.Int).Xor(e.v, big.NewInt(1)))
}

func (e *Element) IsZero() bool {
	return e.v.Sign() == 0
}

func (e *Element) TestBitZero() bool {
	return field.TestBitZero(e.v)
}

func (e *Element) BitLength() int {
	return field.BitLength(e.v)
}

func (e *Element) Equals(other ec.FieldElement) bool {
	b, ok := other.(*Element)
	if !ok {
		return false
	}
	return e.m == b.m && e.mod.Cmp(b.mod) == 0 && e.v.Cmp(b.v) == 0
}

func (e *Element) ToBigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

func (e *Element) Encode() []byte {
	return field.Encode(e.v, field.EncodedLength(e.m))
}

func (e *Element) isOne() bool {
	return e.v.Cmp(big.NewInt(1)) == 0
}

// clmul is carry-less (XOR) polynomial multiplication over GF(2).
func clmul(a, b *big.Int) *big.Int {
	res := new(big.Int)
	for i := 0; i < a.BitLen(); i++ {
		if a.Bit(i) == 1 {
			res.Xor(res, new(big.Int).Lsh(b, uint(i)))
		}
	}
	return res
}

// spread inserts a zero bit between every bit of a, the linear
// squaring-map shortcut for characteristic-2 fields: (sum a_i x^i)^2 =
// sum a_i x^2i.
func spread(a *big.Int) *big.Int {
	res := new(big.Int)
	for i := 0; i < a.BitLen(); i++ {
		if a.Bit(i) == 1 {
			res.SetBit(res, 2*i, 1)
		}
	}
	return res
}

// reduce computes v mod m by repeated XOR-shift polynomial division,
// where m is an irreducible polynomial of degree deg.
func reduce(v, m *big.Int, deg int) *big.Int {
	r := new(big.Int).Set(v)
	for r.BitLen()-1 >= deg {
		shift := (r.BitLen() - 1) - deg
		r.Xor(r, new(big.Int).Lsh(m, uint(shift)))
	}
	return r
}

// invert computes the multiplicative inverse of a modulo the irreducible
// polynomial m using the binary-field extended Euclidean algorithm (the
// standard technique for GF(2^m); see IEEE 1363 Sec. 5's inversion
// algorithm for the polynomial-basis case).
func invert(a, m *big.Int) *big.Int {
	if a.Sign() == 0 {
		panic("ec/f2m: division by zero")
	}
	u := new(big.Int).Set(a)
	v := new(big.Int).Set(m)
	g1 := big.NewInt(1)
	g2 := new(big.Int)

	for u.Cmp(big.NewInt(1)) != 0 {
		j := u.BitLen() - v.BitLen()
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		u = new(big.Int).Xor(u, new(big.Int).Lsh(v, uint(j)))
		g1 = new(big.Int).Xor(g1, new(big.Int).Lsh(g2, uint(j)))
	}
	return g1
}

// halfTrace solves z^2 + z = c for one root z, valid when the field degree
// m is odd (true of the standard SEC/NIST Koblitz curve fields such as
// sect233k1's m=233). Used by point decompression and, if ever needed, by
// square-root-style solves elsewhere in this package.
func halfTrace(c *Element) *Element {
	if c.m%2 == 0 {
		panic("ec/f2m: halfTrace requires odd field degree")
	}
	res := NewElement(c.m, c.mod, new(big.Int))
	t := c
	for i := 0; i <= (c.m-1)/2; i++ {
		res = res.Add(t).(*Element)
		if i != (c.m-1)/2 {
			t = t.Square().(*Element).Square().(*Element)
		}
	}
	return res
}
