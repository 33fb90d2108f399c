/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fp

import "github.com/hyperledger/fabric-crypto-ec/internal/flogging"

var logger = flogging.MustGetLogger("ec.fp")
