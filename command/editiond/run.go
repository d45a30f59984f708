// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/edition"
	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/editiond/ledger"
	"github.com/bitmark-inc/editiond/sale"
	"github.com/bitmark-inc/editiond/storage"
)

// environment - everything a command can operate on
type environment struct {
	db       *storage.Database
	ledger   *ledger.Ledger
	editions *edition.Registry
	engine   *sale.Engine
}

func newEnvironment(db *storage.Database, program account.Address) *environment {
	l := ledger.New(db.Pool.Accounts)
	r := edition.New(db.Pool.Masters, db.Pool.Editions)
	return &environment{
		db:       db,
		ledger:   l,
		editions: r,
		engine:   sale.New(db, program, l, r),
	}
}

type command struct {
	usage       string
	description string
	arguments   int
	query       bool
	run         func(env *environment, arguments []string) (interface{}, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"init-authority": {
			usage:       "CALLER",
			description: "make CALLER the administrator",
			arguments:   1,
			run:         runInitialiseAuthority,
		},
		"replace-authority": {
			usage:       "CALLER NEW",
			description: "hand administration to NEW",
			arguments:   2,
			run:         runReplaceAuthority,
		},
		"authority": {
			description: "show the administrator",
			query:       true,
			run:         runAuthority,
		},
		"register": {
			usage:       "CALLER ITEM PRICE",
			description: "put ITEM up for sale",
			arguments:   3,
			run:         runRegister,
		},
		"set-price": {
			usage:       "CALLER ITEM PRICE",
			description: "change the price of ITEM",
			arguments:   3,
			run:         runSetPrice,
		},
		"add-payment": {
			usage:       "CALLER ITEM ACCOUNT",
			description: "accept the token of escrow ACCOUNT",
			arguments:   3,
			run:         runAddPayment,
		},
		"buy": {
			usage:       "BUYER ITEM BUYER-ACCOUNT ESCROW-ACCOUNT",
			description: "buy the next edition",
			arguments:   4,
			run:         runBuy,
		},
		"claim": {
			usage:       "CALLER ITEM ESCROW-ACCOUNT DESTINATION AMOUNT",
			description: "withdraw from escrow",
			arguments:   5,
			run:         runClaim,
		},
		"item": {
			usage:       "ITEM",
			description: "show the sale state of ITEM",
			arguments:   1,
			query:       true,
			run:         runItem,
		},
		"open-account": {
			usage:       "ADDRESS OWNER TOKEN",
			description: "open a token account",
			arguments:   3,
			run:         runOpenAccount,
		},
		"deposit": {
			usage:       "ADDRESS AMOUNT",
			description: "credit a token account",
			arguments:   2,
			run:         runDeposit,
		},
		"account": {
			usage:       "ADDRESS",
			description: "show an account",
			arguments:   1,
			query:       true,
			run:         runAccount,
		},
		"create-master": {
			usage:       "ITEM MAX-SUPPLY",
			description: "make ITEM printable by its escrow",
			arguments:   2,
			run:         runCreateMaster,
		},
		"edition": {
			usage:       "ITEM NUMBER",
			description: "show one printed edition",
			arguments:   2,
			query:       true,
			run:         runEdition,
		},
		"editions": {
			usage:       "ITEM START COUNT",
			description: "list printed editions",
			arguments:   3,
			query:       true,
			run:         runEditions,
		},
	}
}

// isQuery - true if the command never writes
func isQuery(name string) bool {
	c, ok := commands[name]
	return ok && c.query
}

// runCommand - check the argument count and run one command
func runCommand(env *environment, name string, arguments []string) (interface{}, error) {
	c, ok := commands[name]
	if !ok {
		return nil, fault.ErrInvalidCommand
	}
	if c.arguments != len(arguments) {
		return nil, fault.ErrMissingParameters
	}
	return c.run(env, arguments)
}
