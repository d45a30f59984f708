// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/editiond/escrow"
	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/editiond/ledger"
	"github.com/bitmark-inc/editiond/sale"
	"github.com/bitmark-inc/editiond/sale/mocks"
	"github.com/bitmark-inc/editiond/storage"
)

// engine with mocked collaborators and an allow-list holding token A
func mocked(t *testing.T, ctl *gomock.Controller) (*storage.Database, *sale.Engine, *mocks.MockAccounts, *mocks.MockPrinter, escrow.Signer) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	accounts := mocks.NewMockAccounts(ctl)
	printer := mocks.NewMockPrinter(ctl)
	engine := sale.New(db, program, accounts, printer)

	signer, _ := escrow.Derive(program, itemX)

	accounts.EXPECT().Exists(gomock.Any(), signer.Address).Return(false).Times(1)
	accounts.EXPECT().CreateSystemAccount(gomock.Any(), signer.Address, program).Return(nil).Times(1)
	accounts.EXPECT().Account(gomock.Any(), escrowXA).Return(&ledger.Account{
		Address:   escrowXA,
		Kind:      ledger.TokenKind,
		Owner:     signer.Address,
		TokenType: tokenA,
		Amount:    50,
	}, nil).AnyTimes()
	accounts.EXPECT().Account(gomock.Any(), buyerA).Return(&ledger.Account{
		Address:   buyerA,
		Kind:      ledger.TokenKind,
		Owner:     buyer,
		TokenType: tokenA,
		Amount:    1000,
	}, nil).AnyTimes()

	_, err = engine.InitialiseAuthority(admin)
	assert.Nil(t, err, "initialise")
	_, err = engine.RegisterItem(admin, itemX, 100)
	assert.Nil(t, err, "register")
	_, err = engine.AddPaymentToken(admin, itemX, escrowXA)
	assert.Nil(t, err, "add payment")

	return db, engine, accounts, printer, signer
}

func TestBuyPassesEscrowSigner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, engine, accounts, printer, signer := mocked(t, ctl)
	defer db.Close()

	gomock.InOrder(
		accounts.EXPECT().Transfer(gomock.Any(), buyerA, escrowXA, uint64(100), buyer).Return(nil).Times(1),
		printer.EXPECT().Print(gomock.Any(), itemX, uint64(1), buyer, signer).Return(nil).Times(1),
	)

	edition, err := engine.Buy(buyer, itemX, buyerA, escrowXA)
	assert.Nil(t, err, "buy")
	assert.Equal(t, uint64(1), edition, "wrong edition")
}

func TestBuyPrintErrorAborts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, engine, accounts, printer, _ := mocked(t, ctl)
	defer db.Close()

	accounts.EXPECT().Transfer(gomock.Any(), buyerA, escrowXA, uint64(100), buyer).Return(nil).Times(1)
	printer.EXPECT().Print(gomock.Any(), itemX, uint64(1), buyer, gomock.Any()).Return(fault.ErrWrongUpdateAuthority).Times(1)

	_, err := engine.Buy(buyer, itemX, buyerA, escrowXA)
	assert.Equal(t, fault.ErrWrongUpdateAuthority, err, "print error not propagated")

	record, _ := engine.Item(itemX)
	assert.Equal(t, uint64(1), record.NextEdition, "counter advanced")
}

func TestBuyTransferErrorSkipsPrint(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, engine, accounts, printer, _ := mocked(t, ctl)
	defer db.Close()

	accounts.EXPECT().Transfer(gomock.Any(), buyerA, escrowXA, uint64(100), buyer).Return(fault.ErrInsufficientFunds).Times(1)
	printer.EXPECT().Print(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := engine.Buy(buyer, itemX, buyerA, escrowXA)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "transfer error not propagated")
}

func TestClaimPassesEscrowSigner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	db, engine, accounts, _, signer := mocked(t, ctl)
	defer db.Close()

	accounts.EXPECT().Transfer(gomock.Any(), escrowXA, treasury, uint64(50), signer).Return(nil).Times(1)

	transferred, err := engine.Claim(admin, itemX, escrowXA, treasury, 70)
	assert.Nil(t, err, "claim")
	assert.Equal(t, uint64(50), transferred, "not capped at balance")
}
