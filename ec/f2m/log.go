/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package f2m

import "github.com/hyperledger/fabric-crypto-ec/internal/flogging"

var logger = flogging.MustGetLogger("ec.f2m")
