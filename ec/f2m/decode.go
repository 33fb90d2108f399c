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

// DecodePoint inverts Point.GetEncoded. A lone 0x00 byte is infinity,
// 0x04||X||Y is uncompressed, and (0x02|0x03)||X is compressed: X=0
// recovers the unique order-2 point (0, sqrt(b)); otherwise lambda solves
// lambda^2+lambda = X^2+a+b/X^2 via halfTrace, with the root chosen to match
// the requested parity.
func (c *Curve) DecodePoint(data []byte) (ec.Point, error) {
	if len(data) == 1 && data[0] == 0x00 {
		return c.infinity, nil
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ec.ErrInvalidArgument, "f2m: empty encoding")
	}

	byteLen := field.EncodedLength(c.m)
	switch data[0] {
	case 0x04:
		if len(data) != 1+2*byteLen {
			return nil, errors.Wrap(ec.ErrInvalidArgument, "f2m: bad uncompressed length")
		}
		x := new(big.Int).SetBytes(data[1 : 1+byteLen])
		y := new(big.Int).SetBytes(data[1+byteLen:])
		return c.CreatePoint(x, y)
	case 0x02, 0x03:
		if len(data) != 1+byteLen {
			return nil, errors.Wrap(ec.ErrInvalidArgument, "f2m: bad compressed length")
		}
		x := new(big.Int).SetBytes(data[1:])
		ex := NewElement(c.m, c.mod, x)
		wantOdd := data[0] == 0x03

		if ex.IsZero() {
			y := sqrtF2m(c.b)
			return c.CreatePoint(x, y.ToBigInt())
		}

		xSq := ex.Square().(*Element)
		cf := xSq.Add(c.a).(*Element).Add(c.b.Divide(xSq)).(*Element)
		z0 := halfTrace(cf)
		t0 := z0.Add(ex).(*Element)
		var lambda *Element
		if t0.TestBitZero() == wantOdd {
			lambda = z0
		} else {
			lambda = z0.AddOne().(*Element)
		}
		y := fromLambda(ex, lambda)
		return c.CreatePoint(x, y.ToBigInt())
	default:
		return nil, errors.Wrapf(ec.ErrInvalidArgument, "f2m: bad leading byte 0x%02x", data[0])
	}
}

// sqrtF2m computes the unique square root in GF(2^m): squaring is a
// bijective linear map (the Frobenius endomorphism), so its inverse is
// raising to the power 2^(m-1), i.e. squaring m-1 times.
func sqrtF2m(v *Element) *Element {
	r := v
	for i := 0; i < v.m-1; i++ {
		r = r.Square().(*Element)
	}
	return r
}
