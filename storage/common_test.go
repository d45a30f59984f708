// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/bitmark-inc/editiond/storage"
)

// sample keys and data
var (
	testKey        = []byte("key-two")
	testData       = []byte("data-two")
	nonExistentKey = []byte("/nonexistent")
)

// configure for testing
func setup(t *testing.T) *storage.Database {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

// post test cleanup
func teardown(t *testing.T, db *storage.Database) {
	if err := db.Close(); nil != err {
		t.Errorf("storage close error: %s", err)
	}
}
