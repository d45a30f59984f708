// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/editiond/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Authority *PoolHandle `prefix:"O"`
	Items     *PoolHandle `prefix:"S"`
	Accounts  *PoolHandle `prefix:"A"`
	Masters   *PoolHandle `prefix:"M"`
	Editions  *PoolHandle `prefix:"E"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open LevelDB with its pools
type Database struct {
	writer   sync.Mutex
	db       *leveldb.DB
	readOnly bool

	Pool pools
}

// Open - open up the database file
func Open(fileName string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(fileName, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a database that lives only as long as the process
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Database, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			return nil, fmt.Errorf("database is not initialised")
		}
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return nil, err
		}
	}

	d := &Database{
		db:       db,
		readOnly: readOnly,
	}

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	seen := make(map[byte]string)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		if name, found := seen[prefix]; found {
			return nil, fmt.Errorf("pool: %s reuses prefix: %q of pool: %s", fieldInfo.Name, prefixTag, name)
		}
		seen[prefix] = fieldInfo.Name

		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:   prefix,
			limit:    limit,
			database: db,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return d, nil
}

// Close - close the database connection
//
// waits for any open transaction to finish
func (d *Database) Close() error {
	d.writer.Lock()
	defer d.writer.Unlock()

	if nil == d.db {
		return fault.ErrDatabaseIsNotSet
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// Begin - start a new transaction
//
// blocks while another transaction is open; the returned transaction
// must be finished with exactly one call to Commit or Abort
func (d *Database) Begin() (Transaction, error) {
	d.writer.Lock()
	if nil == d.db {
		d.writer.Unlock()
		return nil, fault.ErrDatabaseIsNotSet
	}
	return newTransaction(d), nil
}

// IsReadOnly - true if opened without write access
func (d *Database) IsReadOnly() bool {
	return d.readOnly
}

// return the version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
