/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fp

import "math/big"

func fromInt(c *Curve, n int64) *Element {
	return NewElement(c.p, big.NewInt(n))
}

func two(c *Curve) *Element   { return fromInt(c, 2) }
func three(c *Curve) *Element { return fromInt(c, 3) }
func four(c *Curve) *Element  { return fromInt(c, 4) }
func eight(c *Curve) *Element { return fromInt(c, 8) }

// absLessOrEqual reports whether a's canonical representative is no larger
// than na's, used to pick whichever of a or -a keeps a doubling's field
// product smaller (spec.md 4.2's sign fork).
func absLessOrEqual(a, na *Element) bool {
	return a.v.Cmp(na.v) <= 0
}
