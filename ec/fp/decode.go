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

// DecodePoint inverts Point.GetEncoded: a lone 0x00 byte is infinity,
// 0x04||X||Y is uncompressed, and (0x02|0x03)||X is compressed, recovering
// Y as the square root of X^3+aX+b whose parity matches the leading byte.
func (c *Curve) DecodePoint(data []byte) (ec.Point, error) {
	if len(data) == 1 && data[0] == 0x00 {
		return c.infinity, nil
	}
	if len(data) == 0 {
		return nil, errors.Wrap(ec.ErrInvalidArgument, "fp: empty encoding")
	}

	byteLen := field.EncodedLength(c.p.BitLen())
	switch data[0] {
	case 0x04:
		if len(data) != 1+2*byteLen {
			return nil, errors.Wrap(ec.ErrInvalidArgument, "fp: bad uncompressed length")
		}
		x := new(big.Int).SetBytes(data[1 : 1+byteLen])
		y := new(big.Int).SetBytes(data[1+byteLen:])
		p, err := c.CreatePoint(x, y)
		if err != nil {
			return nil, err
		}
		return p, nil
	case 0x02, 0x03:
		if len(data) != 1+byteLen {
			return nil, errors.Wrap(ec.ErrInvalidArgument, "fp: bad compressed length")
		}
		x := new(big.Int).SetBytes(data[1:])
		ex := NewElement(c.p, x)
		rhs := ex.Square().(*Element).Multiply(ex).(*Element).Add(c.a.Multiply(ex)).(*Element).Add(c.b).(*Element)
		y := new(big.Int).ModSqrt(rhs.v, c.p)
		if y == nil {
			return nil, errors.Wrap(ec.ErrInvalidArgument, "fp: x is not on the curve")
		}
		wantOdd := data[0] == 0x03
		if (y.Bit(0) == 1) != wantOdd {
			y = new(big.Int).Sub(c.p, y)
		}
		p, err := c.CreatePoint(x, y)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, errors.Wrapf(ec.ErrInvalidArgument, "fp: bad leading byte 0x%02x", data[0])
	}
}
