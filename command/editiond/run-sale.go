// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/editiond/account"
)

type buyResult struct {
	Item    account.Address `json:"item"`
	Buyer   account.Address `json:"buyer"`
	Edition uint64          `json:"edition"`
}

type claimResult struct {
	Item        account.Address `json:"item"`
	Destination account.Address `json:"destination"`
	Requested   uint64          `json:"requested"`
	Transferred uint64          `json:"transferred"`
}

func runBuy(env *environment, arguments []string) (interface{}, error) {
	a, err := parseAddresses(arguments...)
	if nil != err {
		return nil, err
	}
	buyer, item, buyerAccount, escrowAccount := a[0], a[1], a[2], a[3]

	edition, err := env.engine.Buy(buyer, item, buyerAccount, escrowAccount)
	if nil != err {
		return nil, err
	}
	return buyResult{
		Item:    item,
		Buyer:   buyer,
		Edition: edition,
	}, nil
}

func runClaim(env *environment, arguments []string) (interface{}, error) {
	a, err := parseAddresses(arguments[:4]...)
	if nil != err {
		return nil, err
	}
	requested, err := parseAmount(arguments[4])
	if nil != err {
		return nil, err
	}
	caller, item, escrowAccount, destination := a[0], a[1], a[2], a[3]

	transferred, err := env.engine.Claim(caller, item, escrowAccount, destination, requested)
	if nil != err {
		return nil, err
	}
	return claimResult{
		Item:        item,
		Destination: destination,
		Requested:   requested,
		Transferred: transferred,
	}, nil
}
