// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/editiond/sale"
)

func TestItemRecordLayout(t *testing.T) {
	r := &sale.ItemRecord{
		Price:         0x0102,
		NextEdition:   3,
		Item:          itemX,
		PaymentTokens: []account.Address{tokenA, tokenB},
	}
	packed := r.Pack()

	assert.Equal(t, 8+8+32+1+2*32, len(packed), "wrong packed length")
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x01, 0x02}, packed[0:8], "wrong price bytes")
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 3}, packed[8:16], "wrong next edition bytes")
	assert.Equal(t, itemX[:], packed[16:48], "wrong item bytes")
	assert.Equal(t, byte(2), packed[48], "wrong count")
	assert.Equal(t, tokenB[:], packed[81:113], "wrong second token")

	unpacked, err := sale.UnpackItemRecord(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, r, unpacked, "record differs")
}

func TestUnpackCorruptItemRecord(t *testing.T) {
	good := (&sale.ItemRecord{
		NextEdition:   1,
		Item:          itemX,
		PaymentTokens: []account.Address{tokenA},
	}).Pack()

	tooMany := make([]byte, 49+6*32)
	tooMany[15] = 1
	tooMany[48] = 6

	zeroEdition := make([]byte, len(good))
	copy(zeroEdition, good)
	zeroEdition[15] = 0

	tests := []struct {
		name   string
		packed []byte
	}{
		{"empty", []byte{}},
		{"truncated header", good[:40]},
		{"truncated token", good[:len(good)-1]},
		{"trailing bytes", append(append([]byte{}, good...), 0)},
		{"count above limit", tooMany},
		{"zero next edition", zeroEdition},
	}

	for _, test := range tests {
		_, err := sale.UnpackItemRecord(test.packed)
		assert.Equal(t, fault.ErrCorruptRecord, err, test.name)
	}
}
