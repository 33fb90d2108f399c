/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package asn1 holds the SEC1/X9.62 object identifiers this module's named
// curves are known by, the same table bccsp/sw/keys.go carries for the
// curves crypto/elliptic exposes, extended here with the binary and
// pairing-friendly curves ec/curves registers.
package asn1

import (
	"encoding/asn1"

	"github.com/pkg/errors"
)

var (
	oidNamedCurveP256      = asn1.ObjectIdentifier{1, 2, 840, 10045, 3, 1, 7}
	oidNamedCurveSect233k1 = asn1.ObjectIdentifier{1, 3, 132, 0, 26}
	oidNamedCurveBN254     = asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 5726, 2, 1, 1} // ad hoc, no assigned SEC OID

	oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
)

var byName = map[string]asn1.ObjectIdentifier{
	"P-256":     oidNamedCurveP256,
	"sect233k1": oidNamedCurveSect233k1,
	"BN254G1":   oidNamedCurveBN254,
}

var byOID = func() map[string]string {
	m := make(map[string]string, len(byName))
	for name, oid := range byName {
		m[oid.String()] = name
	}
	return m
}()

// PublicKeyOID is the fixed id-ecPublicKey algorithm identifier every
// SubjectPublicKeyInfo produced by this module uses, matching
// bccsp/sw/keys.go's oidPublicKeyECDSA.
func PublicKeyOID() asn1.ObjectIdentifier {
	return append(asn1.ObjectIdentifier{}, oidPublicKeyECDSA...)
}

// OIDForCurve returns the object identifier registered for a named curve.
func OIDForCurve(name string) (asn1.ObjectIdentifier, error) {
	oid, ok := byName[name]
	if !ok {
		return nil, errors.Errorf("asn1: no OID registered for curve %q", name)
	}
	return append(asn1.ObjectIdentifier{}, oid...), nil
}

// CurveForOID reverses OIDForCurve.
func CurveForOID(oid asn1.ObjectIdentifier) (string, error) {
	name, ok := byOID[oid.String()]
	if !ok {
		return "", errors.Errorf("asn1: unrecognized curve OID %v", oid)
	}
	return name, nil
}

// SubjectPublicKeyInfo mirrors the ASN.1 structure bccsp/sw/keys.go marshals
// EC public keys into, generalized to hold the raw SEC1 point encoding this
// module's ec.Point.GetEncoded already produces instead of crypto/elliptic's
// output.
type SubjectPublicKeyInfo struct {
	Algorithm pkixAlgorithmIdentifier
	PublicKey asn1.BitString
}

type pkixAlgorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
}

// MarshalPublicKey wraps a SEC1-encoded point with the id-ecPublicKey /
// named-curve algorithm identifier pair, the same shape
// x509.MarshalPKIXPublicKey produces for *ecdsa.PublicKey.
func MarshalPublicKey(curveName string, encodedPoint []byte) ([]byte, error) {
	curveOID, err := OIDForCurve(curveName)
	if err != nil {
		return nil, err
	}
	info := SubjectPublicKeyInfo{
		Algorithm: pkixAlgorithmIdentifier{
			Algorithm:  PublicKeyOID(),
			Parameters: curveOID,
		},
		PublicKey: asn1.BitString{Bytes: encodedPoint, BitLength: len(encodedPoint) * 8},
	}
	return asn1.Marshal(info)
}

// UnmarshalPublicKey inverts MarshalPublicKey, returning the curve name and
// the raw SEC1 point encoding.
func UnmarshalPublicKey(der []byte) (curveName string, encodedPoint []byte, err error) {
	var info SubjectPublicKeyInfo
	if _, err := asn1.Unmarshal(der, &info); err != nil {
		return "", nil, errors.Wrap(err, "asn1: malformed SubjectPublicKeyInfo")
	}
	if !info.Algorithm.Algorithm.Equal(oidPublicKeyECDSA) {
		return "", nil, errors.Errorf("asn1: unsupported public key algorithm %v", info.Algorithm.Algorithm)
	}
	name, err := CurveForOID(info.Algorithm.Parameters)
	if err != nil {
		return "", nil, err
	}
	return name, info.PublicKey.RightAlign(), nil
}
