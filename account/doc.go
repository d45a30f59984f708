// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - ledger identities
//
// an address is 32 bytes; its text form is base58 with a four byte
// SHA3-256 checksum so that mistyped identities are rejected before
// they reach the sale engine
package account
