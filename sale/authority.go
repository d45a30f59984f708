// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/editiond/storage"
)

var authorityKey = []byte("administrator")

// AuthorityRecord - the single administrator of the program
type AuthorityRecord struct {
	Administrator account.Address `json:"administrator"`
}

// InitialiseAuthority - make the caller the administrator
//
// succeeds only once
func (e *Engine) InitialiseAuthority(caller account.Address) (*AuthorityRecord, error) {
	if caller.IsZero() {
		return nil, fault.ErrZeroAddress
	}

	record := &AuthorityRecord{
		Administrator: caller,
	}
	err := e.update(func(trx storage.Transaction) error {
		if trx.Has(e.db.Pool.Authority, authorityKey) {
			return fault.ErrAuthorityExists
		}
		trx.Put(e.db.Pool.Authority, authorityKey, caller[:])
		return nil
	})
	if nil != err {
		return nil, err
	}

	e.log.Infof("authority initialised: %s", caller)
	return record, nil
}

// ReplaceAuthority - hand over administration
func (e *Engine) ReplaceAuthority(caller account.Address, newAdministrator account.Address) error {
	if newAdministrator.IsZero() {
		return fault.ErrZeroAddress
	}

	err := e.update(func(trx storage.Transaction) error {
		if err := e.authorise(trx, caller); nil != err {
			return err
		}
		trx.Put(e.db.Pool.Authority, authorityKey, newAdministrator[:])
		return nil
	})
	if nil != err {
		return err
	}

	e.log.Infof("authority replaced: %s -> %s", caller, newAdministrator)
	return nil
}

// Authority - the current administrator
func (e *Engine) Authority() (*AuthorityRecord, error) {
	var record *AuthorityRecord
	err := e.view(func(trx storage.Transaction) error {
		var err error
		record, err = e.authority(trx)
		return err
	})
	return record, err
}

func (e *Engine) authority(trx storage.Transaction) (*AuthorityRecord, error) {
	packed := trx.Get(e.db.Pool.Authority, authorityKey)
	if nil == packed {
		return nil, fault.ErrAuthorityNotFound
	}
	administrator, err := account.AddressFromBytes(packed)
	if nil != err {
		return nil, fault.ErrCorruptRecord
	}
	return &AuthorityRecord{
		Administrator: administrator,
	}, nil
}

// fail unless the caller is the administrator
func (e *Engine) authorise(trx storage.Transaction, caller account.Address) error {
	record, err := e.authority(trx)
	if nil != err {
		return err
	}
	if caller != record.Administrator {
		return fault.ErrUnauthorized
	}
	return nil
}
