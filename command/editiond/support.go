// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/fault"
)

// parse a base58 identity
func parseAddress(s string) (account.Address, error) {
	return account.AddressFromBase58(s)
}

// parse several identities in order
func parseAddresses(arguments ...string) ([]account.Address, error) {
	addresses := make([]account.Address, len(arguments))
	for i, s := range arguments {
		a, err := parseAddress(s)
		if nil != err {
			return nil, err
		}
		addresses[i] = a
	}
	return addresses, nil
}

// parse a decimal amount
func parseAmount(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidAmount
	}
	return n, nil
}
