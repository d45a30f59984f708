// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package edition - master items and their numbered prints
//
// from storage/doc.go:
//
//   M ⧺ item             - master record
//                          data: update authority ⧺ BE max supply ⧺ BE supply
//   E ⧺ item ⧺ BE number - printed edition
//                          data: owner
//
// a max supply of zero means unlimited
package edition
