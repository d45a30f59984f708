// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/editiond/edition"
	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/editiond/storage"
)

// the escrow signer of the item becomes the update authority so that
// only a sale can print
func runCreateMaster(env *environment, arguments []string) (interface{}, error) {
	item, err := parseAddress(arguments[0])
	if nil != err {
		return nil, err
	}
	maxSupply, err := parseAmount(arguments[1])
	if nil != err {
		return nil, err
	}
	signer, err := env.engine.EscrowSigner(item)
	if nil != err {
		return nil, err
	}

	var result *edition.Master
	err = update(env, func(trx storage.Transaction) error {
		result, err = env.editions.CreateMaster(trx, item, signer.Address, maxSupply)
		return err
	})
	return result, err
}

func runEdition(env *environment, arguments []string) (interface{}, error) {
	item, err := parseAddress(arguments[0])
	if nil != err {
		return nil, err
	}
	number, err := parseAmount(arguments[1])
	if nil != err {
		return nil, err
	}

	var result *edition.Edition
	err = view(env, func(trx storage.Transaction) error {
		result, err = env.editions.Edition(trx, item, number)
		return err
	})
	return result, err
}

func runEditions(env *environment, arguments []string) (interface{}, error) {
	item, err := parseAddress(arguments[0])
	if nil != err {
		return nil, err
	}
	start, err := parseAmount(arguments[1])
	if nil != err {
		return nil, err
	}
	count, err := strconv.Atoi(arguments[2])
	if nil != err || count <= 0 {
		return nil, fault.ErrInvalidCount
	}
	return env.editions.List(item, start, count)
}
