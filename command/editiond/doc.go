// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// editiond - operate an edition sale program against a local database
//
// each invocation runs one command as one transaction and prints the
// result as JSON
//
//   editiond --config-file=editiond.conf init-authority ADMIN
//   editiond --config-file=editiond.conf register ADMIN ITEM 100
//   editiond --config-file=editiond.conf buy BUYER ITEM BUYER-ACCOUNT ESCROW-ACCOUNT
package main
