// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction: a single LevelDB batch plus an
// overlay of pending values so reads inside the transaction see its
// own writes.  Only one transaction may be open at a time; Begin
// blocks until the previous one is committed or aborted.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. address  = 32 byte ledger identity
// 4. number   = big endian uint64 (8 bytes)
//
// Authority:
//
//   O ++ "authority"           - the administrator singleton
//                                data: administrator address
//
// Items:
//
//   S ++ item address          - sale state of an item
//                                data: price ++ next edition ++ item ++ count(1 byte) ++ count × token type
//
// Accounts:
//
//   A ++ account address       - host ledger account
//                                data: kind(1 byte) ++ owner ++ token type ++ amount
//
// Masters:
//
//   M ++ item address          - printable master record
//                                data: update authority ++ max supply ++ supply
//
// Editions:
//
//   E ++ item address ++ number - printed edition
//                                data: owner
//
package storage
