/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package montgomery implements Montgomery's simultaneous-inversion trick,
// shared by ec/fp and ec/f2m so that neither family needs to reimplement
// the forward-product / single-invert / backward-distribute dance that
// Curve.NormalizeAll relies on to turn N inversions into one.
package montgomery

import "github.com/hyperledger/fabric-crypto-ec/ec"

// zNormalizable is implemented by a family's Point type to accept a
// precomputed Z inverse instead of deriving its own. It is unexported and
// satisfied structurally, so this package never imports ec/fp or ec/f2m.
type zNormalizable interface {
	ec.Point
	NormalizeWithZInv(zInv ec.FieldElement) ec.Point
}

type entry struct {
	idx int
	p   zNormalizable
	z   ec.FieldElement
}

// NormalizeAll replaces every non-infinity, non-normalized point in points
// that supports batch normalization with its normalized equivalent, using
// exactly one field inversion regardless of how many points are supplied.
// Points that are already infinity or normalized, or whose concrete type
// does not implement the batch path, are left untouched.
func NormalizeAll(points []ec.Point) {
	var work []entry
	for i, p := range points {
		if p == nil || p.IsInfinity() || p.IsNormalized() {
			continue
		}
		zn, ok := p.(zNormalizable)
		if !ok {
			continue
		}
		zs := p.RawZCoords()
		if len(zs) == 0 {
			continue
		}
		work = append(work, entry{idx: i, p: zn, z: zs[0]})
	}
	if len(work) == 0 {
		return
	}

	n := len(work)
	c := make([]ec.FieldElement, n)
	c[0] = work[0].z
	for i := 1; i < n; i++ {
		c[i] = c[i-1].Multiply(work[i].z)
	}

	u := c[n-1].Invert()
	for i := n - 1; i > 0; i-- {
		zInv := u.Multiply(c[i-1])
		u = u.Multiply(work[i].z)
		points[work[i].idx] = work[i].p.NormalizeWithZInv(zInv)
	}
	points[work[0].idx] = work[0].p.NormalizeWithZInv(u)
}
