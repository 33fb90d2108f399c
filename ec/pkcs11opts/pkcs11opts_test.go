/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package pkcs11opts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequiresLibrary(t *testing.T) {
	o := &Opts{Label: "token", CurveName: "P-256"}
	assert.Error(t, o.Validate())
}

func TestValidateRequiresLabel(t *testing.T) {
	o := &Opts{Library: "/usr/lib/softhsm/libsofthsm2.so", CurveName: "P-256"}
	assert.Error(t, o.Validate())
}

func TestValidateRequiresCurveName(t *testing.T) {
	o := &Opts{Library: "/usr/lib/softhsm/libsofthsm2.so", Label: "token"}
	assert.Error(t, o.Validate())
}

func TestValidateAcceptsCompleteOpts(t *testing.T) {
	o := &Opts{Library: "/usr/lib/softhsm/libsofthsm2.so", Label: "token", CurveName: "P-256"}
	assert.NoError(t, o.Validate())
}

func TestCtxRejectsIncompleteOpts(t *testing.T) {
	o := &Opts{}
	_, err := o.Ctx()
	assert.Error(t, err)
}
