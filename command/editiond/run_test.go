// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/edition"
	"github.com/bitmark-inc/editiond/escrow"
	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/editiond/ledger"
	"github.com/bitmark-inc/editiond/storage"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

var (
	program = account.Address{0x7f, 0x09}
	admin   = account.Address{0x0a, 0x09}
	buyer   = account.Address{0x0b, 0x09}
	item    = account.Address{0x1e, 0x09}
	token   = account.Address{0x70, 0x09}
	paying  = account.Address{0xba, 0x09}
	escrowA = account.Address{0xea, 0x09}
)

func run(t *testing.T, env *environment, name string, arguments ...string) interface{} {
	result, err := runCommand(env, name, arguments)
	if nil != err {
		t.Fatalf("command: %s  arguments: %q  error: %s", name, arguments, err)
	}
	return result
}

func TestCommandSequence(t *testing.T) {
	db, err := storage.OpenMemory()
	assert.Nil(t, err, "open")
	defer db.Close()

	env := newEnvironment(db, program)
	signer, _ := escrow.Derive(program, item)

	run(t, env, "init-authority", admin.String())
	run(t, env, "register", admin.String(), item.String(), "25")
	run(t, env, "create-master", item.String(), "0")
	run(t, env, "open-account", escrowA.String(), signer.Address.String(), token.String())
	run(t, env, "open-account", paying.String(), buyer.String(), token.String())
	run(t, env, "deposit", paying.String(), "60")
	run(t, env, "add-payment", admin.String(), item.String(), escrowA.String())

	result := run(t, env, "buy", buyer.String(), item.String(), paying.String(), escrowA.String())
	assert.Equal(t, uint64(1), result.(buyResult).Edition, "wrong edition")
	result = run(t, env, "buy", buyer.String(), item.String(), paying.String(), escrowA.String())
	assert.Equal(t, uint64(2), result.(buyResult).Edition, "wrong edition")

	_, err = runCommand(env, "buy", []string{buyer.String(), item.String(), paying.String(), escrowA.String()})
	assert.Equal(t, fault.ErrInsufficientFunds, err, "third buy")

	result = run(t, env, "claim", admin.String(), item.String(), escrowA.String(), paying.String(), "1000")
	assert.Equal(t, uint64(50), result.(claimResult).Transferred, "wrong claim")

	result = run(t, env, "account", paying.String())
	assert.Equal(t, uint64(60), result.(*ledger.Account).Amount, "wrong balance")

	result = run(t, env, "edition", item.String(), "2")
	assert.Equal(t, buyer, result.(*edition.Edition).Owner, "wrong owner")

	result = run(t, env, "editions", item.String(), "1", "10")
	assert.Equal(t, 2, len(result.([]edition.Edition)), "wrong edition count")

	result = run(t, env, "item", item.String())
	assert.Equal(t, uint64(3), result.(itemResult).NextEdition, "wrong next edition")
	assert.Equal(t, signer, result.(itemResult).Escrow, "wrong escrow")

	buffer := &bytes.Buffer{}
	assert.Nil(t, printJson(buffer, result), "print")
	assert.Contains(t, buffer.String(), `"nextEdition": 3`, "json output")
}

func TestCommandErrors(t *testing.T) {
	db, err := storage.OpenMemory()
	assert.Nil(t, err, "open")
	defer db.Close()

	env := newEnvironment(db, program)

	_, err = runCommand(env, "no-such-command", nil)
	assert.Equal(t, fault.ErrInvalidCommand, err, "unknown command")

	_, err = runCommand(env, "register", []string{admin.String()})
	assert.Equal(t, fault.ErrMissingParameters, err, "too few arguments")

	_, err = runCommand(env, "deposit", []string{paying.String(), "-1"})
	assert.Equal(t, fault.ErrInvalidAmount, err, "negative amount")

	_, err = runCommand(env, "init-authority", []string{"not-base58-0OIl"})
	assert.Equal(t, fault.ErrCannotDecodeAddress, err, "bad address")

	_, err = runCommand(env, "editions", []string{item.String(), "1", "0"})
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestQueries(t *testing.T) {
	assert.True(t, isQuery("item"), "item")
	assert.True(t, isQuery("authority"), "authority")
	assert.False(t, isQuery("buy"), "buy")
	assert.False(t, isQuery("no-such-command"), "unknown")

	for name, c := range commands {
		assert.NotNil(t, c.run, "command: %s has no handler", name)
		assert.NotEmpty(t, c.description, "command: %s has no description", name)
	}
}
