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

// Buy - pay the price of an item into escrow and print the next edition
// for the buyer
//
// returns the number of the printed edition; on any error nothing is
// paid and no edition is printed
func (e *Engine) Buy(buyer account.Address, item account.Address, buyerAccount account.Address, escrowAccount account.Address) (uint64, error) {
	edition := uint64(0)
	price := uint64(0)

	err := e.update(func(trx storage.Transaction) error {
		record, err := e.getItem(trx, item)
		if nil != err {
			return err
		}

		if buyerAccount == escrowAccount {
			return fault.ErrInvalidPayment
		}

		source, err := e.accounts.Account(trx, buyerAccount)
		if nil != err {
			return err
		}
		destination, err := e.accounts.Account(trx, escrowAccount)
		if nil != err {
			return err
		}
		if source.TokenType != destination.TokenType || !record.IsAllowed(source.TokenType) {
			return fault.ErrInvalidPayment
		}

		signer, err := e.EscrowSigner(item)
		if nil != err {
			return err
		}
		if signer.Address != destination.Owner {
			return fault.ErrIllegalOwner
		}

		// the derived address has no key so it can never be the buyer
		if buyer != source.Owner || buyer == signer.Address {
			return fault.ErrIllegalOwner
		}

		// only the buyer authorises the payment, the escrow signer is
		// reserved for printing
		price = record.Price
		err = e.accounts.Transfer(trx, buyerAccount, escrowAccount, price, buyer)
		if nil != err {
			return err
		}

		edition = record.NextEdition
		next := edition + 1
		if next < edition {
			return fault.ErrCounterOverflow
		}

		err = e.printer.Print(trx, item, edition, buyer, signer)
		if nil != err {
			e.log.Warnf("item: %s print edition: %d error: %s", item, edition, err)
			return err
		}

		record.NextEdition = next
		e.putItem(trx, record)
		return nil
	})
	if nil != err {
		return 0, err
	}

	e.log.Infof("item: %s edition: %d sold to: %s for: %d", item, edition, buyer, price)
	return edition, nil
}
