// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/editiond/fault"
)

// miscellaneous constants
const (
	AddressLength  = 32
	checksumLength = 4
)

// Address - a ledger identity
//
// either an ed25519 public key held by some external party or a
// program derived address that has no private key at all
type Address [AddressLength]byte

// Signer - anything that can authorise an operation on behalf of an
// address
//
// a plain Address authorises for itself (the key holder signed the
// enclosing transaction); derived signers must prove their address by
// recomputing it
type Signer interface {
	SignerAddress() (Address, error)
}

// AddressFromBytes - convert a 32 byte slice to an address
func AddressFromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if AddressLength != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}
	copy(a[:], buffer)
	return a, nil
}

// AddressFromPublicKey - the address of an ed25519 key holder
func AddressFromPublicKey(publicKey ed25519.PublicKey) (Address, error) {
	return AddressFromBytes(publicKey)
}

// AddressFromBase58 - decode the text form of an address
//
// the text form is base58(address ++ checksum) where checksum is the
// first four bytes of SHA3-256(address)
func AddressFromBase58(s string) (Address, error) {
	a := Address{}

	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(buffer) {
		return a, fault.ErrCannotDecodeAddress
	}
	if AddressLength+checksumLength != len(buffer) {
		return a, fault.ErrInvalidAddressLength
	}

	checksum := sha3.Sum256(buffer[:AddressLength])
	if !bytes.Equal(checksum[:checksumLength], buffer[AddressLength:]) {
		return a, fault.ErrChecksumMismatch
	}
	copy(a[:], buffer[:AddressLength])
	return a, nil
}

// Bytes - copy of the raw address
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// IsZero - true if all bytes are zero
func (a Address) IsZero() bool {
	return a == Address{}
}

// SignerAddress - an address signs for itself
func (a Address) SignerAddress() (Address, error) {
	return a, nil
}

// String - base58 encoding of address and checksum
func (a Address) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, AddressLength+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
