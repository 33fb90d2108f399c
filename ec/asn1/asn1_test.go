/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package asn1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOIDRoundTrip(t *testing.T) {
	for _, name := range []string{"P-256", "sect233k1", "BN254G1"} {
		oid, err := OIDForCurve(name)
		require.NoError(t, err, name)
		got, err := CurveForOID(oid)
		require.NoError(t, err, name)
		assert.Equal(t, name, got)
	}
}

func TestOIDForCurveRejectsUnknown(t *testing.T) {
	_, err := OIDForCurve("not-a-curve")
	assert.Error(t, err)
}

func TestMarshalUnmarshalPublicKeyRoundTrip(t *testing.T) {
	point := []byte{0x04, 0x01, 0x02, 0x03, 0x04}
	der, err := MarshalPublicKey("P-256", point)
	require.NoError(t, err)

	name, decoded, err := UnmarshalPublicKey(der)
	require.NoError(t, err)
	assert.Equal(t, "P-256", name)
	assert.Equal(t, point, decoded)
}

func TestUnmarshalPublicKeyRejectsGarbage(t *testing.T) {
	_, _, err := UnmarshalPublicKey([]byte{0x00, 0x01, 0x02})
	assert.Error(t, err)
}
