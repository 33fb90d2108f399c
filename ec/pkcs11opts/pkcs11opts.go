/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package pkcs11opts is the options-only half of an HSM-backed curve
// selection surface, mirroring the shape of bccsp/pkcs11.PKCS11Opts. It
// validates the settings that would be handed to a
// github.com/miekg/pkcs11 session token/slot lookup, without performing
// that lookup: see DESIGN.md for why point arithmetic itself has no
// HSM-reachable code path in this module.
package pkcs11opts

import (
	"github.com/miekg/pkcs11"
	"github.com/pkg/errors"
)

// Opts mirrors bccsp/pkcs11.PKCS11Opts's session-selection fields.
type Opts struct {
	Library    string `mapstructure:"library" json:"library"`
	Label      string `mapstructure:"label" json:"label"`
	Pin        string `mapstructure:"pin" json:"pin"`
	SoftVerify bool   `mapstructure:"softwareverify,omitempty" json:"softwareverify,omitempty"`
	// CurveName selects which of ec/curves' named curves the HSM session
	// is expected to hold key material for.
	CurveName string `mapstructure:"curve" json:"curve"`
}

// Validate checks that Opts is complete enough to attempt opening a PKCS11
// session, the way bccsp/pkcs11.initialize does before calling
// p11.OpenSession, without actually loading the module or opening a slot.
func (o *Opts) Validate() error {
	if o.Library == "" {
		return errors.New("pkcs11opts: library path is required")
	}
	if o.Label == "" {
		return errors.New("pkcs11opts: token label is required")
	}
	if o.CurveName == "" {
		return errors.New("pkcs11opts: curve name is required")
	}
	return nil
}

// Ctx constructs (but does not initialize) a *pkcs11.Ctx for the configured
// library path, matching bccsp/pkcs11.impl's use of the miekg/pkcs11
// binding as the module-loading layer above a physical or emulated token.
func (o *Opts) Ctx() (*pkcs11.Ctx, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	ctx := pkcs11.New(o.Library)
	if ctx == nil {
		return nil, errors.Errorf("pkcs11opts: failed to load PKCS11 library %q", o.Library)
	}
	return ctx, nil
}
