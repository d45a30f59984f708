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

// Claim - move collected payments out of escrow
//
// a request larger than the balance is reduced to the balance; returns
// the amount actually transferred
func (e *Engine) Claim(caller account.Address, item account.Address, escrowAccount account.Address, destination account.Address, requested uint64) (uint64, error) {
	transferred := uint64(0)

	err := e.update(func(trx storage.Transaction) error {
		if err := e.authorise(trx, caller); nil != err {
			return err
		}
		if _, err := e.getItem(trx, item); nil != err {
			return err
		}

		source, err := e.accounts.Account(trx, escrowAccount)
		if nil != err {
			return err
		}

		signer, err := e.EscrowSigner(item)
		if nil != err {
			return err
		}
		if signer.Address != source.Owner {
			return fault.ErrIllegalOwner
		}

		transferred = requested
		if transferred > source.Amount {
			transferred = source.Amount
		}
		e.log.Debugf("item: %s claim: %d of requested: %d", item, transferred, requested)

		return e.accounts.Transfer(trx, escrowAccount, destination, transferred, signer)
	})
	if nil != err {
		return 0, err
	}

	e.log.Infof("item: %s claimed: %d to: %s", item, transferred, destination)
	return transferred, nil
}
