// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sale - access controlled sale of numbered editions
//
// from storage/doc.go:
//
//   O ⧺ "administrator"  - the single authority record
//                          data: administrator
//   S ⧺ item             - item record
//                          data: BE price ⧺ BE next edition ⧺ item ⧺ count ⧺ count×token type
//
// every payment for an item is collected in escrow token accounts owned
// by an address derived from the program and the item; nothing holds a
// private key for that address so funds only leave escrow through Claim
package sale
