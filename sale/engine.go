// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

//go:generate mockgen -source=engine.go -destination=mocks/mocks.go -package=mocks

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/escrow"
	"github.com/bitmark-inc/editiond/ledger"
	"github.com/bitmark-inc/editiond/storage"
)

// Accounts - the token accounts the engine moves payments between
type Accounts interface {
	Account(storage.Transaction, account.Address) (*ledger.Account, error)
	CreateSystemAccount(storage.Transaction, account.Address, account.Address) error
	Exists(storage.Transaction, account.Address) bool
	Transfer(storage.Transaction, account.Address, account.Address, uint64, ...account.Signer) error
}

// Printer - creates numbered editions of a master item
type Printer interface {
	Print(storage.Transaction, account.Address, uint64, account.Address, account.Signer) error
}

// Engine - sale state of one program
type Engine struct {
	log      *logger.L
	db       *storage.Database
	program  account.Address
	accounts Accounts
	printer  Printer
}

// New - create an engine
//
// the logger must already be initialised
func New(db *storage.Database, program account.Address, accounts Accounts, printer Printer) *Engine {
	return &Engine{
		log:      logger.New("sale"),
		db:       db,
		program:  program,
		accounts: accounts,
		printer:  printer,
	}
}

// Program - identity of the program that owns escrow
func (e *Engine) Program() account.Address {
	return e.program
}

// EscrowSigner - derive the escrow signer of an item
//
// the item need not be registered
func (e *Engine) EscrowSigner(item account.Address) (escrow.Signer, error) {
	return escrow.Derive(e.program, item)
}

// run f inside a transaction, committing only if f succeeds
func (e *Engine) update(f func(trx storage.Transaction) error) error {
	trx, err := e.db.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	if err := f(trx); nil != err {
		return err
	}
	return trx.Commit()
}

// run f inside a transaction that is always discarded
func (e *Engine) view(f func(trx storage.Transaction) error) error {
	trx, err := e.db.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	return f(trx)
}
