// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/fault"
)

var testAddresses = []string{
	"60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e",
	"731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db",
	"cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e",
	"0000000000000000000000000000000000000000000000000000000000000000",
}

func TestBase58RoundTrip(t *testing.T) {
	for index, h := range testAddresses {
		a, err := account.AddressFromBytes(decodeHex(h))
		assert.Nil(t, err, "%d: from bytes", index)

		s := a.String()
		b, err := account.AddressFromBase58(s)
		assert.Nil(t, err, "%d: from base58: %q", index, s)
		assert.Equal(t, a, b, "%d: round trip", index)
		assert.Equal(t, h == testAddresses[3], a.IsZero(), "%d: zero", index)
	}
}

func TestJSON(t *testing.T) {
	type holder struct {
		Owner account.Address `json:"owner"`
	}

	a, _ := account.AddressFromBytes(decodeHex(testAddresses[0]))
	buffer, err := json.Marshal(holder{Owner: a})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"owner":"`+a.String()+`"}`, string(buffer), "wrong JSON")

	var h holder
	err = json.Unmarshal(buffer, &h)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, a, h.Owner, "wrong owner")

	err = json.Unmarshal([]byte(`{"owner":"not-base58-0OIl"}`), &h)
	assert.Equal(t, fault.ErrCannotDecodeAddress, err, "wrong error")
}

func TestInvalidBase58(t *testing.T) {
	raw := decodeHex(testAddresses[1])

	badChecksum := append(append([]byte{}, raw...), 0, 0, 0, 0)
	short := base58.Encode(raw[:20])

	items := []struct {
		s   string
		err error
	}{
		{"", fault.ErrCannotDecodeAddress},
		{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9", fault.ErrCannotDecodeAddress},
		{short, fault.ErrInvalidAddressLength},
		{base58.Encode(badChecksum), fault.ErrChecksumMismatch},
	}
	for index, item := range items {
		_, err := account.AddressFromBase58(item.s)
		assert.Equal(t, item.err, err, "%d: wrong error for: %q", index, item.s)
	}
}

func TestFromBytesLength(t *testing.T) {
	_, err := account.AddressFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidAddressLength, err, "wrong error")
}

func TestPublicKeySignsForItself(t *testing.T) {
	publicKey, _, err := ed25519.GenerateKey(nil)
	assert.Nil(t, err, "generate key")

	a, err := account.AddressFromPublicKey(publicKey)
	assert.Nil(t, err, "from public key")
	assert.Equal(t, []byte(publicKey), a.Bytes(), "wrong bytes")

	signer, err := a.SignerAddress()
	assert.Nil(t, err, "signer address")
	assert.Equal(t, a, signer, "wrong signer")
}

// Decode the hex string and return []byte.
func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if nil != err {
		panic(err)
	}
	return b
}
