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

// RegisterItem - put an item up for sale
//
// creates the escrow holding account of the item, owned by the program
func (e *Engine) RegisterItem(caller account.Address, item account.Address, price uint64) (*ItemRecord, error) {
	if item.IsZero() {
		return nil, fault.ErrZeroAddress
	}

	record := &ItemRecord{
		Price:         price,
		NextEdition:   1,
		Item:          item,
		PaymentTokens: []account.Address{},
	}

	err := e.update(func(trx storage.Transaction) error {
		if err := e.authorise(trx, caller); nil != err {
			return err
		}
		if trx.Has(e.db.Pool.Items, item[:]) {
			return fault.ErrItemExists
		}

		signer, err := e.EscrowSigner(item)
		if nil != err {
			return err
		}
		if e.accounts.Exists(trx, signer.Address) {
			return fault.ErrAccountExists
		}
		err = e.accounts.CreateSystemAccount(trx, signer.Address, e.program)
		if nil != err {
			return err
		}

		e.putItem(trx, record)
		return nil
	})
	if nil != err {
		return nil, err
	}

	e.log.Infof("item: %s registered at price: %d", item, price)
	return record, nil
}

// Item - current sale state of an item
func (e *Engine) Item(item account.Address) (*ItemRecord, error) {
	var record *ItemRecord
	err := e.view(func(trx storage.Transaction) error {
		var err error
		record, err = e.getItem(trx, item)
		return err
	})
	return record, err
}

func (e *Engine) getItem(trx storage.Transaction, item account.Address) (*ItemRecord, error) {
	packed := trx.Get(e.db.Pool.Items, item[:])
	if nil == packed {
		return nil, fault.ErrItemNotFound
	}
	record, err := UnpackItemRecord(packed)
	if nil != err {
		e.log.Criticalf("item: %s corrupt record: %x", item, packed)
		return nil, err
	}
	return record, nil
}

func (e *Engine) putItem(trx storage.Transaction, record *ItemRecord) {
	trx.Put(e.db.Pool.Items, record.Item[:], record.Pack())
}
