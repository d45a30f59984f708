// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - all-or-nothing set of writes
type Transaction interface {
	Abort()
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
}

type dbTransaction struct {
	sync.Mutex
	owner *Database
	batch *leveldb.Batch
	cache Cache
	inUse bool
}

func newTransaction(owner *Database) Transaction {
	return &dbTransaction{
		owner: owner,
		batch: new(leveldb.Batch),
		cache: newCache(),
		inUse: true,
	}
}

// Put - store a key/value bytes pair
func (t *dbTransaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		logger.Panic("transaction.Put after transaction finished")
	}

	// the batch keeps its own copy, but the overlay must not alias caller data
	v := make([]byte, len(value))
	copy(v, value)

	k := handle.prefixKey(key)
	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

// Delete - remove a key
func (t *dbTransaction) Delete(handle *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		logger.Panic("transaction.Delete after transaction finished")
	}

	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), []byte{})
	t.batch.Delete(k)
}

// Get - read a value, pending writes take precedence
//
// returns nil if not found
func (t *dbTransaction) Get(handle *PoolHandle, key []byte) []byte {
	t.Lock()
	defer t.Unlock()

	value, deleted, found := t.cache.Get(string(handle.prefixKey(key)))
	if deleted {
		return nil
	}
	if found {
		return value
	}
	return handle.get(key)
}

// Has - check if a key exists
func (t *dbTransaction) Has(handle *PoolHandle, key []byte) bool {
	t.Lock()
	defer t.Unlock()

	_, deleted, found := t.cache.Get(string(handle.prefixKey(key)))
	if deleted {
		return false
	}
	if found {
		return true
	}
	return handle.has(key)
}

// InUse - false once committed or aborted
func (t *dbTransaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Commit - write the whole batch atomically
//
// the transaction is finished whatever the result
func (t *dbTransaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotInUse
	}
	defer t.finish()

	if 0 == t.batch.Len() {
		return nil
	}
	if t.owner.readOnly {
		return fault.ErrReadOnly
	}
	return t.owner.db.Write(t.batch, nil)
}

// Abort - discard all pending writes
//
// calling Abort on a finished transaction does nothing, so it is safe
// to defer it
func (t *dbTransaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return
	}
	t.finish()
}

// must hold the transaction lock
func (t *dbTransaction) finish() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
	t.owner.writer.Unlock()
}
