// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/editiond/escrow"
	"github.com/bitmark-inc/editiond/sale"
)

type itemResult struct {
	*sale.ItemRecord
	Escrow escrow.Signer `json:"escrow"`
}

func runRegister(env *environment, arguments []string) (interface{}, error) {
	a, err := parseAddresses(arguments[0], arguments[1])
	if nil != err {
		return nil, err
	}
	price, err := parseAmount(arguments[2])
	if nil != err {
		return nil, err
	}
	record, err := env.engine.RegisterItem(a[0], a[1], price)
	if nil != err {
		return nil, err
	}
	return withEscrow(env, record)
}

func runSetPrice(env *environment, arguments []string) (interface{}, error) {
	a, err := parseAddresses(arguments[0], arguments[1])
	if nil != err {
		return nil, err
	}
	price, err := parseAmount(arguments[2])
	if nil != err {
		return nil, err
	}
	if err := env.engine.SetPrice(a[0], a[1], price); nil != err {
		return nil, err
	}
	record, err := env.engine.Item(a[1])
	if nil != err {
		return nil, err
	}
	return withEscrow(env, record)
}

func runAddPayment(env *environment, arguments []string) (interface{}, error) {
	a, err := parseAddresses(arguments...)
	if nil != err {
		return nil, err
	}
	record, err := env.engine.AddPaymentToken(a[0], a[1], a[2])
	if nil != err {
		return nil, err
	}
	return withEscrow(env, record)
}

func runItem(env *environment, arguments []string) (interface{}, error) {
	item, err := parseAddress(arguments[0])
	if nil != err {
		return nil, err
	}
	record, err := env.engine.Item(item)
	if nil != err {
		return nil, err
	}
	return withEscrow(env, record)
}

func withEscrow(env *environment, record *sale.ItemRecord) (interface{}, error) {
	signer, err := env.engine.EscrowSigner(record.Item)
	if nil != err {
		return nil, err
	}
	return itemResult{
		ItemRecord: record,
		Escrow:     signer,
	}, nil
}
