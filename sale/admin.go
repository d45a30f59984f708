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

// SetPrice - change the price of an item, zero is allowed
func (e *Engine) SetPrice(caller account.Address, item account.Address, price uint64) error {
	err := e.update(func(trx storage.Transaction) error {
		if err := e.authorise(trx, caller); nil != err {
			return err
		}
		record, err := e.getItem(trx, item)
		if nil != err {
			return err
		}
		record.Price = price
		e.putItem(trx, record)
		return nil
	})
	if nil != err {
		return err
	}

	e.log.Infof("item: %s price: %d", item, price)
	return nil
}

// AddPaymentToken - accept the token type of an escrow payment account
//
// the account must be owned by the escrow address of the item; adding a
// token type that is already accepted changes nothing and when the list
// is full the oldest entry is dropped
func (e *Engine) AddPaymentToken(caller account.Address, item account.Address, paymentAccount account.Address) (*ItemRecord, error) {
	var record *ItemRecord
	err := e.update(func(trx storage.Transaction) error {
		if err := e.authorise(trx, caller); nil != err {
			return err
		}

		var err error
		record, err = e.getItem(trx, item)
		if nil != err {
			return err
		}

		payment, err := e.accounts.Account(trx, paymentAccount)
		if nil != err {
			return err
		}

		signer, err := e.EscrowSigner(item)
		if nil != err {
			return err
		}
		if signer.Address != payment.Owner {
			return fault.ErrIllegalOwner
		}
		if !payment.IsToken() {
			return fault.ErrInvalidPayment
		}

		payments := record.payments()
		if !payments.Add(payment.TokenType) {
			return nil
		}
		record.PaymentTokens = payments.Items()
		e.putItem(trx, record)
		return nil
	})
	if nil != err {
		return nil, err
	}

	e.log.Infof("item: %s payment tokens: %v", item, record.PaymentTokens)
	return record, nil
}
