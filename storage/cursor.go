// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/editiond/fault"
)

// FetchCursor - iterate committed records of a pool in key order
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor over all keys that start with keyPrefix
func (p *PoolHandle) NewFetchCursor(keyPrefix []byte) *FetchCursor {
	r := util.BytesPrefix(p.prefixKey(keyPrefix))
	return &FetchCursor{
		pool:     p,
		maxRange: *r,
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements from the current position
//
// keys are returned without the pool prefix; the cursor advances past
// the last element returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if nil == cursor.pool.database {
		return nil, fault.ErrDatabaseIsNotSet
	}

	iter := cursor.pool.database.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	for len(results) < count && iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})

		// next search starts just after this key
		next := make([]byte, len(key)+1)
		copy(next, key)
		cursor.maxRange.Start = next
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return nil, err
	}
	return results, nil
}
