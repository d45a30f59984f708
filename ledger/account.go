// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/fault"
)

// Kind - type of a ledger account
type Kind byte

// account kinds
const (
	SystemKind Kind = 0x01
	TokenKind  Kind = 0x02
)

const (
	oneByteSize    = 1
	uint64ByteSize = 8
)

// structure of the account record
const (
	kindStart  = 0
	kindFinish = kindStart + oneByteSize

	ownerStart  = kindFinish
	ownerFinish = ownerStart + account.AddressLength

	tokenTypeStart  = ownerFinish
	tokenTypeFinish = tokenTypeStart + account.AddressLength

	amountStart  = tokenTypeFinish
	amountFinish = amountStart + uint64ByteSize

	packLength = amountFinish
)

// Account - a ledger account
type Account struct {
	Address   account.Address `json:"address"`
	Kind      Kind            `json:"kind"`
	Owner     account.Address `json:"owner"`
	TokenType account.Address `json:"tokenType"`
	Amount    uint64          `json:"amount"`
}

// String - name of the kind
func (k Kind) String() string {
	switch k {
	case SystemKind:
		return "system"
	case TokenKind:
		return "token"
	default:
		return "unknown"
	}
}

// MarshalText - kind as its name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// IsToken - true for accounts that hold a balance
func (a *Account) IsToken() bool {
	return TokenKind == a.Kind
}

// pack the account excluding its address, which is the key
func (a *Account) pack() []byte {
	buffer := make([]byte, packLength)
	buffer[kindStart] = byte(a.Kind)
	copy(buffer[ownerStart:ownerFinish], a.Owner[:])
	copy(buffer[tokenTypeStart:tokenTypeFinish], a.TokenType[:])
	binary.BigEndian.PutUint64(buffer[amountStart:amountFinish], a.Amount)
	return buffer
}

func unpack(address account.Address, buffer []byte) (*Account, error) {
	if packLength != len(buffer) {
		return nil, fault.ErrCorruptRecord
	}

	a := &Account{
		Address: address,
		Kind:    Kind(buffer[kindStart]),
		Amount:  binary.BigEndian.Uint64(buffer[amountStart:amountFinish]),
	}
	switch a.Kind {
	case SystemKind, TokenKind:
	default:
		return nil, fault.ErrCorruptRecord
	}

	copy(a.Owner[:], buffer[ownerStart:ownerFinish])
	copy(a.TokenType[:], buffer[tokenTypeStart:tokenTypeFinish])
	return a, nil
}
