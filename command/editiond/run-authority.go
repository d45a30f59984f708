// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/editiond/account"
)

type replaceResult struct {
	Previous      account.Address `json:"previous"`
	Administrator account.Address `json:"administrator"`
}

func runInitialiseAuthority(env *environment, arguments []string) (interface{}, error) {
	caller, err := parseAddress(arguments[0])
	if nil != err {
		return nil, err
	}
	return env.engine.InitialiseAuthority(caller)
}

func runReplaceAuthority(env *environment, arguments []string) (interface{}, error) {
	a, err := parseAddresses(arguments...)
	if nil != err {
		return nil, err
	}
	if err := env.engine.ReplaceAuthority(a[0], a[1]); nil != err {
		return nil, err
	}
	return replaceResult{
		Previous:      a[0],
		Administrator: a[1],
	}, nil
}

func runAuthority(env *environment, arguments []string) (interface{}, error) {
	return env.engine.Authority()
}
