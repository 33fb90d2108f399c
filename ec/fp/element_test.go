/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementInverseRoundTrip(t *testing.T) {
	v := NewElement(toyP, big.NewInt(1234))
	inv := v.Invert().(*Element)
	one := inv.Multiply(v)
	assert.True(t, one.IsZero() == false)
	assert.Equal(t, big.NewInt(1), one.ToBigInt())
}

func TestElementDivideIsInverseMultiply(t *testing.T) {
	a := NewElement(toyP, big.NewInt(41))
	b := NewElement(toyP, big.NewInt(97))
	quotient := a.Divide(b)
	product := quotient.Multiply(b)
	assert.True(t, product.Equals(a))
}

func TestElementAddSubtractRoundTrip(t *testing.T) {
	a := NewElement(toyP, big.NewInt(6000))
	b := NewElement(toyP, big.NewInt(7000))
	sum := a.Add(b)
	back := sum.Subtract(b)
	assert.True(t, back.Equals(a))
}

func TestElementNegateTwiceIsIdentity(t *testing.T) {
	a := NewElement(toyP, big.NewInt(55))
	back := a.Negate().Negate()
	assert.True(t, back.Equals(a))
}

func TestElementSquareMatchesSelfMultiply(t *testing.T) {
	a := NewElement(toyP, big.NewInt(123))
	assert.True(t, a.Square().Equals(a.Multiply(a)))
}

func TestElementEncodeFixedWidth(t *testing.T) {
	a := NewElement(toyP, big.NewInt(3))
	enc := a.Encode()
	assert.Len(t, enc, 2) // ceil(14 bits / 8)
	assert.Equal(t, byte(3), enc[len(enc)-1])
}

func TestElementReducesNegativeInput(t *testing.T) {
	a := NewElement(toyP, big.NewInt(-1))
	want := new(big.Int).Sub(toyP, big.NewInt(1))
	assert.Equal(t, want, a.ToBigInt())
}
