// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/fault"
)

// seed constants
const (
	AccountPrefix = "editiond_escrow_account"

	MaximumSeeds      = 16
	MaximumSeedLength = 32

	derivationMarker = "ProgramDerivedAddress"
)

// Signer - a derived address together with the proof needed to
// recompute it
type Signer struct {
	Program account.Address `json:"program"`
	Seeds   [][]byte        `json:"seeds"`
	Bump    byte            `json:"bump"`
	Address account.Address `json:"address"`
}

// Derive - the escrow signer for an item
//
// pure and deterministic: the same program and item always produce the
// same signer
func Derive(program account.Address, item account.Address) (Signer, error) {
	seeds := [][]byte{
		[]byte(AccountPrefix),
		item.Bytes(),
	}
	return FindAddress(program, seeds)
}

// FindAddress - search for the smallest bump that gives an off-curve
// address
func FindAddress(program account.Address, seeds [][]byte) (Signer, error) {
	for bump := 0; bump <= 0xff; bump += 1 {
		address, err := CreateAddress(program, seeds, byte(bump))
		if fault.ErrOnCurve == err {
			continue
		}
		if nil != err {
			return Signer{}, err
		}
		return Signer{
			Program: program,
			Seeds:   seeds,
			Bump:    byte(bump),
			Address: address,
		}, nil
	}
	return Signer{}, fault.ErrNoViableBump
}

// CreateAddress - compute the address for one specific bump
func CreateAddress(program account.Address, seeds [][]byte, bump byte) (account.Address, error) {
	if len(seeds) > MaximumSeeds {
		return account.Address{}, fault.ErrInvalidSeeds
	}

	h := sha3.New256()
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return account.Address{}, fault.ErrInvalidSeeds
		}
		h.Write(seed)
	}
	h.Write([]byte{bump})
	h.Write(program[:])
	h.Write([]byte(derivationMarker))

	address, err := account.AddressFromBytes(h.Sum(nil))
	if nil != err {
		return account.Address{}, err
	}
	if IsOnCurve(address) {
		return account.Address{}, fault.ErrOnCurve
	}
	return address, nil
}

// IsOnCurve - true if the address decodes as an ed25519 point
func IsOnCurve(address account.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(address[:])
	return nil == err
}

// SignerAddress - recompute the derived address from the seeds
//
// a signer whose stored address does not match its seeds is rejected
func (s Signer) SignerAddress() (account.Address, error) {
	address, err := CreateAddress(s.Program, s.Seeds, s.Bump)
	if nil != err {
		return account.Address{}, err
	}
	if address != s.Address {
		return account.Address{}, fault.ErrInvalidSeeds
	}
	return address, nil
}
