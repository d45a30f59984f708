// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - handle for a storage pool
type PoolHandle struct {
	prefix   byte
	limit    []byte
	database *leveldb.DB
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Prefix - the single byte that selects this pool
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// read a committed value for a given key
//
// returns nil if not found
func (p *PoolHandle) get(key []byte) []byte {
	if nil == p.database {
		return nil
	}
	value, err := p.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.get", err)
	return value
}

// check if a committed key exists
func (p *PoolHandle) has(key []byte) bool {
	if nil == p.database {
		return false
	}
	value, err := p.database.Has(p.prefixKey(key), nil)
	logger.PanicIfError("pool.has", err)
	return value
}
