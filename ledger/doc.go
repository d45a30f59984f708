// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - token accounts and the transfer primitive
//
// from storage/doc.go:
//
//   A ⧺ address          - one account
//                          data: kind ⧺ owner ⧺ token type ⧺ BE amount
//
// system accounts only record an owner, they never carry a balance;
// token accounts hold an amount of a single token type and can only be
// debited with a signer that resolves to the owner
package ledger
