/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fp

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-crypto-ec/ec"
)

// A small toy curve, y^2 = x^3 - 3x + b over a 14-bit prime, large enough to
// have a handful of low-order points but cheap to compute over by hand when
// diagnosing a failing case.
var (
	toyP = big.NewInt(9973)
	toyA = big.NewInt(-3)
	toyB = big.NewInt(9864) // chosen so (toyX, toyY) satisfies y^2 = x^3 - 3x + b
	toyN = big.NewInt(9539) // not the true order, only used where order is irrelevant
	toyH = big.NewInt(1)
	toyX = big.NewInt(5)
	toyY = big.NewInt(1)
)

func toyCurve(t *testing.T, cs ec.CoordinateSystem) *Curve {
	t.Helper()
	c, err := NewCurve(toyP, toyA, toyB, toyN, toyH, cs, nil)
	require.NoError(t, err)
	return c
}

func toyGenerator(t *testing.T, cs ec.CoordinateSystem) ec.Point {
	t.Helper()
	c := toyCurve(t, cs)
	p, err := c.CreatePoint(toyX, toyY)
	require.NoError(t, err)
	return p
}

var allFpCoordinateSystems = []ec.CoordinateSystem{
	ec.Affine, ec.Homogeneous, ec.Jacobian, ec.JacobianChudnovsky, ec.JacobianModified,
}

func TestGeneratorSatisfiesCurveEquation(t *testing.T) {
	for _, cs := range allFpCoordinateSystems {
		p := toyGenerator(t, cs)
		assert.NoError(t, ec.CheckCurveEquation(p), cs.String())
	}
}

func TestAddIdentity(t *testing.T) {
	for _, cs := range allFpCoordinateSystems {
		c := toyCurve(t, cs)
		p := toyGenerator(t, cs)
		sum, err := p.Add(c.Infinity())
		require.NoError(t, err)
		assert.True(t, sum.Equals(p), cs.String())

		sum, err = c.Infinity().Add(p)
		require.NoError(t, err)
		assert.True(t, sum.Equals(p), cs.String())
	}
}

func TestAddNegationIsInfinity(t *testing.T) {
	for _, cs := range allFpCoordinateSystems {
		p := toyGenerator(t, cs)
		sum, err := p.Add(p.Negate())
		require.NoError(t, err)
		assert.True(t, sum.IsInfinity(), cs.String())
	}
}

func TestDoublingMatchesAddToSelf(t *testing.T) {
	for _, cs := range allFpCoordinateSystems {
		p := toyGenerator(t, cs)
		// A distinct point instance with the same value, so Add takes the
		// general addition path instead of the p==b doubling shortcut.
		other := toyGenerator(t, cs)
		viaAdd, err := p.Add(other)
		require.NoError(t, err)
		viaTwice := p.Twice()
		assert.True(t, viaAdd.Equals(viaTwice), cs.String())
	}
}

func TestAssociativity(t *testing.T) {
	for _, cs := range allFpCoordinateSystems {
		c := toyCurve(t, cs)
		p := toyGenerator(t, cs)
		q := p.Twice()
		r := q.Twice()

		pq, err := p.Add(q)
		require.NoError(t, err)
		pqr, err := pq.Add(r)
		require.NoError(t, err)

		qr, err := q.Add(r)
		require.NoError(t, err)
		pqr2, err := p.Add(qr)
		require.NoError(t, err)

		assert.True(t, pqr.Equals(pqr2), cs.String())
		_ = c
	}
}

func TestTwicePlusMatchesTwiceThenAdd(t *testing.T) {
	for _, cs := range allFpCoordinateSystems {
		p := toyGenerator(t, cs)
		q := p.Twice().Twice()

		got, err := p.TwicePlus(q)
		require.NoError(t, err)

		want, err := p.Twice().Add(q)
		require.NoError(t, err)

		assert.True(t, got.Equals(want), cs.String())
	}
}

func TestThreeTimesMatchesTwicePlusSelf(t *testing.T) {
	for _, cs := range allFpCoordinateSystems {
		p := toyGenerator(t, cs)
		got := p.ThreeTimes()
		want, err := p.Twice().Add(p)
		require.NoError(t, err)
		assert.True(t, got.Equals(want), cs.String())
	}
}

func TestScalarMultiplyConsistentAcrossRepresentations(t *testing.T) {
	k := big.NewInt(37)
	affine := toyGenerator(t, ec.Affine).Multiply(k)
	for _, cs := range allFpCoordinateSystems {
		p := toyGenerator(t, cs)
		got := p.Multiply(k)
		assert.True(t, got.Equals(affine), cs.String())
	}
}

func TestMultiplyByZeroIsInfinity(t *testing.T) {
	p := toyGenerator(t, ec.Jacobian)
	assert.True(t, p.Multiply(big.NewInt(0)).IsInfinity())
}

func TestMultiplyByNegativeNegatesResult(t *testing.T) {
	p := toyGenerator(t, ec.Jacobian)
	pos := p.Multiply(big.NewInt(5))
	neg := p.Multiply(big.NewInt(-5))
	assert.True(t, pos.Negate().Equals(neg))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, cs := range allFpCoordinateSystems {
		p := toyGenerator(t, cs).Twice()
		n1 := p.Normalize()
		n2 := n1.Normalize()
		assert.True(t, n1.Equals(n2), cs.String())
		assert.True(t, n2.IsNormalized(), cs.String())
	}
}

func TestNormalizeAllMatchesIndividualNormalize(t *testing.T) {
	c := toyCurve(t, ec.Jacobian)
	base, err := c.CreatePoint(toyX, toyY)
	require.NoError(t, err)

	pts := make([]ec.Point, 5)
	pts[0] = base
	for i := 1; i < len(pts); i++ {
		pts[i] = pts[i-1].Twice()
	}

	want := make([]ec.Point, len(pts))
	for i, p := range pts {
		want[i] = p.Normalize()
	}

	c.NormalizeAll(pts)
	for i := range pts {
		assert.True(t, pts[i].IsNormalized())
		assert.True(t, pts[i].Equals(want[i]))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := toyCurve(t, ec.Affine)
	p := toyGenerator(t, ec.Affine).Twice()

	for _, compressed := range []bool{false, true} {
		enc, err := p.GetEncoded(compressed)
		require.NoError(t, err)
		dec, err := ec.DecodePoint(c, enc)
		require.NoError(t, err)
		assert.True(t, p.Equals(dec), "compressed=%v", compressed)
	}
}

func TestEncodeInfinityIsSingleZeroByte(t *testing.T) {
	c := toyCurve(t, ec.Affine)
	enc, err := c.Infinity().GetEncoded(false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, enc)
}

func TestAffineCoordFailsWhenNotNormalized(t *testing.T) {
	p := toyGenerator(t, ec.Jacobian).Twice()
	require.False(t, p.IsNormalized())
	_, err := p.AffineXCoord()
	assert.ErrorIs(t, err, ec.ErrNotNormalized)
}

func TestImportPointRejectsMismatchedCurve(t *testing.T) {
	c1 := toyCurve(t, ec.Jacobian)
	c2, err := NewCurve(toyP, big.NewInt(-3), big.NewInt(7), toyN, toyH, ec.Homogeneous, nil)
	require.NoError(t, err)

	p, err := c1.CreatePoint(toyX, toyY)
	require.NoError(t, err)

	_, err = c2.ImportPoint(p)
	assert.ErrorIs(t, err, ec.ErrCurveMismatch)
}

func TestImportPointReprojects(t *testing.T) {
	c1 := toyCurve(t, ec.Jacobian)
	c2 := toyCurve(t, ec.Homogeneous)

	p, err := c1.CreatePoint(toyX, toyY)
	require.NoError(t, err)
	p = p.Twice()

	imported, err := c2.ImportPoint(p)
	require.NoError(t, err)
	assert.Equal(t, ec.Homogeneous, imported.CoordinateSystem())
	assert.True(t, imported.Equals(p))
}

func TestCreatePointRejectsOffCurve(t *testing.T) {
	c := toyCurve(t, ec.Affine)
	_, err := c.CreatePoint(big.NewInt(1), big.NewInt(1))
	assert.ErrorIs(t, err, ec.ErrInvariantViolation)
}
