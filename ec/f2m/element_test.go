/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package f2m

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementInverseRoundTrip(t *testing.T) {
	v := NewElement(toyM, toyMod, big.NewInt(1234))
	inv := v.Invert().(*Element)
	one := inv.Multiply(v)
	assert.Equal(t, big.NewInt(1), one.ToBigInt())
}

func TestElementDivideIsInverseMultiply(t *testing.T) {
	a := NewElement(toyM, toyMod, big.NewInt(41))
	b := NewElement(toyM, toyMod, big.NewInt(97))
	quotient := a.Divide(b)
	product := quotient.Multiply(b)
	assert.True(t, product.Equals(a))
}

func TestElementAddSubtractRoundTrip(t *testing.T) {
	a := NewElement(toyM, toyMod, big.NewInt(6000))
	b := NewElement(toyM, toyMod, big.NewInt(7000))
	sum := a.Add(b)
	back := sum.Subtract(b)
	assert.True(t, back.Equals(a))
}

func TestElementSubtractIsAdd(t *testing.T) {
	a := NewElement(toyM, toyMod, big.NewInt(6000))
	b := NewElement(toyM, toyMod, big.NewInt(7000))
	assert.True(t, a.Subtract(b).Equals(a.Add(b)))
}

func TestElementNegateIsIdentity(t *testing.T) {
	a := NewElement(toyM, toyMod, big.NewInt(55))
	assert.True(t, a.Negate().Equals(a))
}

func TestElementSquareMatchesSelfMultiply(t *testing.T) {
	a := NewElement(toyM, toyMod, big.NewInt(123))
	assert.True(t, a.Square().Equals(a.Multiply(a)))
}

func TestElementAddOneTogglesLowBit(t *testing.T) {
	a := NewElement(toyM, toyMod, big.NewInt(6)) // ...0110, low bit already 0
	b := a.AddOne().(*Element)
	assert.True(t, b.TestBitZero())
	assert.True(t, b.AddOne().(*Element).Equals(a))
}

func TestElementEncodeFixedWidth(t *testing.T) {
	a := NewElement(toyM, toyMod, big.NewInt(3))
	enc := a.Encode()
	assert.Len(t, enc, 3) // ceil(17 bits / 8)
	assert.Equal(t, byte(3), enc[len(enc)-1])
}

func TestElementReducesOverlongInput(t *testing.T) {
	raw := new(big.Int).Lsh(big.NewInt(1), 20) // well beyond deg 17
	a := NewElement(toyM, toyMod, raw)
	assert.True(t, a.BitLength() <= toyM)
}

// TestHalfTraceSolvesQuadratic checks halfTrace against the identity that
// c = t^2+t is solvable by construction, with t itself one of the two roots
// of z^2+z=c.
func TestHalfTraceSolvesQuadratic(t *testing.T) {
	tt := NewElement(toyM, toyMod, big.NewInt(12345))
	c := tt.Square().(*Element).Add(tt).(*Element)

	z := halfTrace(c)
	lhs := z.Square().(*Element).Add(z).(*Element)
	assert.True(t, lhs.Equals(c))
	assert.True(t, z.Equals(tt) || z.Equals(tt.AddOne().(*Element)))
}

func TestHalfTraceTrivialZero(t *testing.T) {
	zero := NewElement(toyM, toyMod, big.NewInt(0))
	z := halfTrace(zero)
	assert.True(t, z.IsZero())
}
