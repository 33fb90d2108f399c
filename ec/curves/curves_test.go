/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package curves

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-crypto-ec/ec"
)

func TestDefaultConfigBuildsP256(t *testing.T) {
	curve, err := Named(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, ec.Jacobian, curve.CoordinateSystem())
}

func TestOptsFromViperReadsYAML(t *testing.T) {
	yamlCfg := []byte(`
name: BN254G1
fp_coordinates: HOMOGENEOUS
`)
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewReader(yamlCfg)))

	cfg, err := OptsFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "BN254G1", cfg.Name)
	assert.Equal(t, "HOMOGENEOUS", cfg.FpCoordinates)

	curve, err := Named(cfg)
	require.NoError(t, err)
	assert.Equal(t, ec.Homogeneous, curve.CoordinateSystem())
}

func TestNamedRejectsUnknownCurve(t *testing.T) {
	_, err := Named(&Config{Name: "not-a-curve"})
	assert.Error(t, err)
}

func TestNamedRejectsUnknownCoordinateSystem(t *testing.T) {
	_, err := Named(&Config{Name: "P-256", FpCoordinates: "NONSENSE"})
	assert.Error(t, err)
}

func TestGeneratorLiesOnEachNamedCurve(t *testing.T) {
	for _, name := range []string{"P-256", "BN254G1", "sect233k1"} {
		curve, err := Named(&Config{Name: name})
		require.NoError(t, err, name)

		gx, gy, err := Generator(name)
		require.NoError(t, err, name)

		p, err := curve.CreatePoint(gx, gy)
		require.NoError(t, err, name)
		assert.NoError(t, ec.CheckCurveEquation(p), name)
	}
}

func TestSect233k1UsesLambdaProjectiveByDefault(t *testing.T) {
	curve, err := Named(&Config{Name: "sect233k1"})
	require.NoError(t, err)
	assert.Equal(t, ec.LambdaProjective, curve.CoordinateSystem())
	assert.Equal(t, 233, curve.FieldSize())
}
