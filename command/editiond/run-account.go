// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/editiond/ledger"
	"github.com/bitmark-inc/editiond/storage"
)

func runOpenAccount(env *environment, arguments []string) (interface{}, error) {
	a, err := parseAddresses(arguments...)
	if nil != err {
		return nil, err
	}

	var result *ledger.Account
	err = update(env, func(trx storage.Transaction) error {
		if err := env.ledger.OpenTokenAccount(trx, a[0], a[1], a[2]); nil != err {
			return err
		}
		result, err = env.ledger.Account(trx, a[0])
		return err
	})
	return result, err
}

func runDeposit(env *environment, arguments []string) (interface{}, error) {
	address, err := parseAddress(arguments[0])
	if nil != err {
		return nil, err
	}
	amount, err := parseAmount(arguments[1])
	if nil != err {
		return nil, err
	}

	var result *ledger.Account
	err = update(env, func(trx storage.Transaction) error {
		result, err = env.ledger.Deposit(trx, address, amount)
		return err
	})
	return result, err
}

func runAccount(env *environment, arguments []string) (interface{}, error) {
	address, err := parseAddress(arguments[0])
	if nil != err {
		return nil, err
	}

	var result *ledger.Account
	err = view(env, func(trx storage.Transaction) error {
		result, err = env.ledger.Account(trx, address)
		return err
	})
	return result, err
}

// run host side writes as one transaction
func update(env *environment, f func(trx storage.Transaction) error) error {
	trx, err := env.db.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if err := f(trx); nil != err {
		return err
	}
	return trx.Commit()
}

func view(env *environment, f func(trx storage.Transaction) error) error {
	trx, err := env.db.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	return f(trx)
}
