/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package curves is a small named-curve registry and factory, filling the
// role bccsp/factory plays for BCCSP providers: given a Config (typically
// populated from a viper.Viper the way FactoryOpts is), Named builds one of
// a handful of illustrative curves over ec/fp or ec/f2m with the requested
// coordinate system.
package curves

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hyperledger/fabric-crypto-ec/ec"
	"github.com/hyperledger/fabric-crypto-ec/ec/f2m"
	"github.com/hyperledger/fabric-crypto-ec/ec/fp"
	"github.com/hyperledger/fabric-crypto-ec/internal/flogging"
)

var logger = flogging.MustGetLogger("ec.curves")

// Config selects a named curve and the coordinate system it should be built
// with, mirroring the shape bccsp/factory.FactoryOpts gives provider
// selection: a name plus a per-family options block.
type Config struct {
	Name             string `mapstructure:"name" json:"name" yaml:"Name"`
	FpCoordinates    string `mapstructure:"fp_coordinates,omitempty" json:"fp_coordinates,omitempty" yaml:"FpCoordinates,omitempty"`
	F2mCoordinates   string `mapstructure:"f2m_coordinates,omitempty" json:"f2m_coordinates,omitempty" yaml:"F2mCoordinates,omitempty"`
}

// DefaultConfig mirrors bccsp/factory.GetDefaultOpts: a usable configuration
// out of the box, Jacobian for prime curves and Lambda-Projective for binary
// curves, both chosen for being the cheapest general-purpose representation
// in their family.
func DefaultConfig() *Config {
	return &Config{
		Name:           "P-256",
		FpCoordinates:  "JACOBIAN",
		F2mCoordinates: "LAMBDA_PROJECTIVE",
	}
}

// OptsFromViper populates a Config from a viper.Viper instance the way
// bccsp/factory reads FactoryOpts out of the "bccsp" key, defaulting any
// field the configuration source left unset.
func OptsFromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if v == nil {
		return cfg, nil
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "curves: failed to unmarshal configuration")
	}
	if cfg.Name == "" {
		cfg.Name = "P-256"
	}
	if cfg.FpCoordinates == "" {
		cfg.FpCoordinates = "JACOBIAN"
	}
	if cfg.F2mCoordinates == "" {
		cfg.F2mCoordinates = "LAMBDA_PROJECTIVE"
	}
	return cfg, nil
}

func parseFpCS(s string) (ec.CoordinateSystem, error) {
	switch strings.ToUpper(s) {
	case "AFFINE":
		return ec.Affine, nil
	case "HOMOGENEOUS":
		return ec.Homogeneous, nil
	case "JACOBIAN", "":
		return ec.Jacobian, nil
	case "JACOBIAN_CHUDNOVSKY":
		return ec.JacobianChudnovsky, nil
	case "JACOBIAN_MODIFIED":
		return ec.JacobianModified, nil
	default:
		return 0, errors.Errorf("curves: unknown Fp coordinate system %q", s)
	}
}

func parseF2mCS(s string) (ec.CoordinateSystem, error) {
	switch strings.ToUpper(s) {
	case "AFFINE":
		return ec.Affine, nil
	case "HOMOGENEOUS":
		return ec.Homogeneous, nil
	case "LAMBDA_AFFINE":
		return ec.LambdaAffine, nil
	case "LAMBDA_PROJECTIVE", "":
		return ec.LambdaProjective, nil
	default:
		return 0, errors.Errorf("curves: unknown F2m coordinate system %q", s)
	}
}

// hexInt parses a hex-literal curve parameter, panicking on malformed input
// since every caller here supplies a compile-time constant.
func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: malformed constant " + s)
	}
	return n
}

// Named builds one of this module's illustrative curves. Unlike
// crypto/elliptic's registry these are not audited standard curves fit for
// production signing; they exist to give cmd/ecdump and this package's
// tests real-shaped parameters to exercise every coordinate system against.
func Named(cfg *Config) (ec.Curve, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	switch cfg.Name {
	case "P-256":
		return newP256(cfg)
	case "BN254G1":
		return newBN254G1(cfg)
	case "sect233k1":
		return newSect233k1(cfg)
	default:
		return nil, errors.Errorf("curves: unknown curve %q", cfg.Name)
	}
}

// newP256 builds a curve with NIST P-256's actual field, a, b, order and
// cofactor, entirely as a source of a real-sized 256-bit Fp parameter set to
// exercise the Jacobian family against — this module does not implement or
// claim conformance with any FIPS-validated signing path.
func newP256(cfg *Config) (ec.Curve, error) {
	cs, err := parseFpCS(cfg.FpCoordinates)
	if err != nil {
		return nil, err
	}
	p := hexInt("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	a := hexInt("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc")
	b := hexInt("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b")
	n := hexInt("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")
	h := big.NewInt(1)
	logger.Debugw("building named curve", "name", cfg.Name, "coordinates", cs)
	return fp.NewCurve(p, a, b, n, h, cs, nil)
}

// newBN254G1 builds the base-field group of the BN254 pairing-friendly
// curve (y^2 = x^3 + 3 over F_p, a=0), exercising the same Jacobian Fp
// machinery against a curve shape the pack's gnark-crypto library also
// implements; see DESIGN.md for why this module does not call into
// gnark-crypto's own bn254 group directly.
func newBN254G1(cfg *Config) (ec.Curve, error) {
	cs, err := parseFpCS(cfg.FpCoordinates)
	if err != nil {
		return nil, err
	}
	p := hexInt("30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47")
	a := big.NewInt(0)
	b := big.NewInt(3)
	n := hexInt("30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001")
	h := big.NewInt(1)
	logger.Debugw("building named curve", "name", cfg.Name, "coordinates", cs)
	return fp.NewCurve(p, a, b, n, h, cs, nil)
}

// newSect233k1 builds SEC2's sect233k1 (a Koblitz curve, a=0, b=1) over
// GF(2^233), a field degree odd enough for f2m.halfTrace-based
// decompression and large enough to be a realistic F2m parameter set.
func newSect233k1(cfg *Config) (ec.Curve, error) {
	cs, err := parseF2mCS(cfg.F2mCoordinates)
	if err != nil {
		return nil, err
	}
	// x^233 + x^74 + 1
	mod := new(big.Int).SetBit(new(big.Int), 233, 1)
	mod.SetBit(mod, 74, 1)
	mod.SetBit(mod, 0, 1)
	a := big.NewInt(0)
	b := big.NewInt(1)
	n := hexInt("8000000000000000000000000000069d5bb915bcd46efb1ad5f173abdf")
	h := big.NewInt(4)
	logger.Debugw("building named curve", "name", cfg.Name, "coordinates", cs)
	return f2m.NewCurve(233, mod, a, b, n, h, cs, nil)
}

// generators holds each named curve's published base point, so callers
// (cmd/ecdump, this package's own tests) never have to search for one:
// ec.Curve itself carries no notion of "the" generator, since spec.md scopes
// named base points out of the arithmetic core.
var generators = map[string][2]string{
	"P-256":     {"6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296", "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"},
	"BN254G1":   {"1", "2"},
	"sect233k1": {"17232ba853a7e731af129f22ff4149563a419c26bf50a4c9d6eefad6126", "1db537dece819b7f70f555a67c427a8cd9bf18aeb9b56e0c11056fae6a3"},
}

// Generator returns the published base point for a named curve, in the
// affine coordinates CreatePoint expects.
func Generator(name string) (x, y *big.Int, err error) {
	g, ok := generators[name]
	if !ok {
		return nil, nil, errors.Errorf("curves: no generator recorded for curve %q", name)
	}
	return hexInt(g[0]), hexInt(g[1]), nil
}
