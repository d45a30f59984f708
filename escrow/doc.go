// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - program derived signers
//
// An escrow address is computed from a set of seeds and the program
// identity:
//
//   address = SHA3-256(seed_1 ++ … ++ seed_n ++ bump ++ program ++ "ProgramDerivedAddress")
//
// and is only valid if it is not an ed25519 curve point, so no private
// key can exist for it.  The bump is the smallest byte value that
// yields such an address.  A Signer carries the seeds and bump so a
// collaborator can recompute the address and accept the program's
// authorisation without any stored secret.
package escrow
