/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fp implements the short-Weierstrass point-arithmetic core over
// prime fields Fp, in five coordinate systems: Affine, Homogeneous,
// Jacobian, Jacobian-Chudnovsky, and Jacobian-Modified. The formulas follow the Jacobian
// addition/doubling identities used throughout the retrieved
// crypto/elliptic-shaped references (github.com/hyperledger/fabric's own
// bccsp/sw stays on top of crypto/ecdsa and never open-codes these, so the
// projective arithmetic here is grounded instead in the standalone
// GoldSaintEagle-p256-30 and wuzuoliang p224 references, generalized to a
// pluggable a, b and to the modified-Jacobian and homogeneous families the
// standard library equivalents do not implement).
package fp

import (
	"math/big"

	"github.com/hyperledger/fabric-crypto-ec/ec"
	"github.com/hyperledger/fabric-crypto-ec/ec/field"
)

// Element is a prime-field element, an integer reduced modulo P.
type Element struct {
	p *big.Int
	v *big.Int
}

// NewElement builds an Element in the field with modulus p, reducing v into
// [0, p).
func NewElement(p, v *big.Int) *Element {
	r := new(big.Int).Mod(v, p)
	return &Element{p: p, v: r}
}

func (e *Element) same(b *Element) *big.Int {
	if e.p.Cmp(b.p) != 0 {
		panic("ec/fp: field mismatch")
	}
	return e.p
}

func (e *Element) wrap(v *big.Int) *Element {
	return &Element{p: e.p, v: v.Mod(v, e.p)}
}

func (e *Element) Add(other ec.FieldElement) ec.FieldElement {
	b := other.(*Element)
	e.same(b)
	return e.wrap(new(big.Int).Add(e.v, b.v))
}

func (e *Element) Subtract(other ec.FieldElement) ec.FieldElement {
	b := other.(*Element)
	e.same(b)
	return e.wrap(new(big.Int).Sub(e.v, b.v))
}

func (e *Element) Multiply(other ec.FieldElement) ec.FieldElement {
	b := other.(*Element)
	e.same(b)
	return e.wrap(new(big.Int).Mul(e.v, b.v))
}

func (e *Element) Square() ec.FieldElement {
	return e.wrap(new(big.Int).Mul(e.v, e.v))
}

func (e *Element) Divide(other ec.FieldElement) ec.FieldElement {
	b := other.(*Element)
	e.same(b)
	inv := new(big.Int).ModInverse(b.v, e.p)
	return e.wrap(new(big.Int).Mul(e.v, inv))
}

func (e *Element) Invert() ec.FieldElement {
	return e.wrap(new(big.Int).ModInverse(e.v, e.p))
}

func (e *Element) Negate() ec.FieldElement {
	return e.wrap(new(big.Int).Neg(e.v))
}

func (e *Element) AddOne() ec.FieldElement {
	return e.wrap(new(big.Int).Add(e.v, big.NewInt(1)))
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
	return e.p.Cmp(b.p) == 0 && e.v.Cmp(b.v) == 0
}

func (e *Element) ToBigInt() *big.Int {
	return new(big.Int).Set(e.v)
}

func (e *Element) Encode() []byte {
	return field.Encode(e.v, field.EncodedLength(e.p.BitLen()))
}

// isOne reports whether this element is exactly one, the condition that
// lets projective arithmetic elide multiplications by Z.
func (e *Element) isOne() bool {
	return e.v.Cmp(big.NewInt(1)) == 0
}
