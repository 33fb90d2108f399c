/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package field collects the big.Int-backed plumbing shared by ec/fp and
// ec/f2m field elements: fixed-width big-endian encoding, bit-length and
// low-bit inspection of the canonical representative. Neither subpackage
// needs a dependency beyond math/big for this — every field-element
// implementation retrieved for this module (prime or binary) carries its
// value in a big.Int, so there is no third-party arbitrary-precision
// library to reach for instead.
package field

import "math/big"

// EncodedLength returns the fixed byte width used to encode a canonical
// representative of a field of the given bit size: ceil(fieldBits/8).
func EncodedLength(fieldBits int) int {
	return (fieldBits + 7) / 8
}

// Encode renders v as fixed-width big-endian bytes, left-padded with
// zeroes to byteLen. v must already be reduced into [0, 2^(8*byteLen)).
func Encode(v *big.Int, byteLen int) []byte {
	out := make([]byte, byteLen)
	b := v.Bytes()
	if len(b) > byteLen {
		// Should never happen for a properly reduced element; keep the
		// low bytes rather than panicking on a diagnostic path.
		b = b[len(b)-byteLen:]
	}
	copy(out[byteLen-len(b):], b)
	return out
}

// TestBitZero reports the low bit of v.
func TestBitZero(v *big.Int) bool {
	return v.Bit(0) == 1
}

// BitLength returns the bit length of v's canonical (non-negative)
// representative.
func BitLength(v *big.Int) int {
	return v.BitLen()
}

// SEC1 assembles the SEC1 encoding of a non-infinity point from its
// coordinate byte strings: 0x04||x||y uncompressed, or (0x02|parity)||x
// compressed. Shared by ec/fp and ec/f2m, whose only difference is how the
// parity bit itself is computed.
func SEC1(x, y []byte, compressed, parity bool) []byte {
	if compressed {
		prefix := byte(0x02)
		if parity {
			prefix = 0x03
		}
		out := make([]byte, 1+len(x))
		out[0] = prefix
		copy(out[1:], x)
		return out
	}
	out := make([]byte, 1+len(x)+len(y))
	out[0] = 0x04
	copy(out[1:], x)
	copy(out[1+len(x):], y)
	return out
}
