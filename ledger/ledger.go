// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/editiond/storage"
)

// Ledger - accounts kept in one storage pool
type Ledger struct {
	pool *storage.PoolHandle
}

// New - ledger over the given pool
func New(pool *storage.PoolHandle) *Ledger {
	return &Ledger{
		pool: pool,
	}
}

// CreateSystemAccount - create a zero balance account with an owner
func (l *Ledger) CreateSystemAccount(trx storage.Transaction, address account.Address, owner account.Address) error {
	return l.create(trx, &Account{
		Address: address,
		Kind:    SystemKind,
		Owner:   owner,
	})
}

// OpenTokenAccount - create an empty account for one token type
func (l *Ledger) OpenTokenAccount(trx storage.Transaction, address account.Address, owner account.Address, tokenType account.Address) error {
	if tokenType.IsZero() {
		return fault.ErrZeroAddress
	}
	return l.create(trx, &Account{
		Address:   address,
		Kind:      TokenKind,
		Owner:     owner,
		TokenType: tokenType,
	})
}

func (l *Ledger) create(trx storage.Transaction, a *Account) error {
	if a.Address.IsZero() || a.Owner.IsZero() {
		return fault.ErrZeroAddress
	}
	if trx.Has(l.pool, a.Address[:]) {
		return fault.ErrAccountExists
	}
	trx.Put(l.pool, a.Address[:], a.pack())
	return nil
}

// Exists - true if any account occupies the address
func (l *Ledger) Exists(trx storage.Transaction, address account.Address) bool {
	return trx.Has(l.pool, address[:])
}

// Account - fetch one account
func (l *Ledger) Account(trx storage.Transaction, address account.Address) (*Account, error) {
	packed := trx.Get(l.pool, address[:])
	if nil == packed {
		return nil, fault.ErrAccountNotFound
	}
	return unpack(address, packed)
}

// Deposit - credit a token account from outside the ledger
func (l *Ledger) Deposit(trx storage.Transaction, address account.Address, amount uint64) (*Account, error) {
	a, err := l.Account(trx, address)
	if nil != err {
		return nil, err
	}
	if !a.IsToken() {
		return nil, fault.ErrNotTokenAccount
	}

	total := a.Amount + amount
	if total < a.Amount {
		return nil, fault.ErrBalanceOverflow
	}
	a.Amount = total

	trx.Put(l.pool, address[:], a.pack())
	return a, nil
}

// Transfer - move an amount between two token accounts of the same type
//
// at least one of the signers must resolve to the owner of the source
// account; a derived signer that fails to recompute its address is
// ignored
//
// source and destination must be distinct accounts
func (l *Ledger) Transfer(trx storage.Transaction, from account.Address, to account.Address, amount uint64, signers ...account.Signer) error {

	if from == to {
		return fault.ErrInvalidPayment
	}

	source, err := l.Account(trx, from)
	if nil != err {
		return err
	}
	destination, err := l.Account(trx, to)
	if nil != err {
		return err
	}

	if !source.IsToken() || !destination.IsToken() {
		return fault.ErrInvalidPayment
	}
	if source.TokenType != destination.TokenType {
		return fault.ErrInvalidPayment
	}

	if !signedBy(source.Owner, signers) {
		return fault.ErrIllegalOwner
	}

	if source.Amount < amount {
		return fault.ErrInsufficientFunds
	}

	total := destination.Amount + amount
	if total < destination.Amount {
		return fault.ErrBalanceOverflow
	}

	source.Amount -= amount
	destination.Amount = total

	trx.Put(l.pool, from[:], source.pack())
	trx.Put(l.pool, to[:], destination.pack())
	return nil
}

func signedBy(owner account.Address, signers []account.Signer) bool {
	for _, signer := range signers {
		if nil == signer {
			continue
		}
		address, err := signer.SignerAddress()
		if nil != err {
			continue
		}
		if owner == address {
			return true
		}
	}
	return false
}
