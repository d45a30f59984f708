// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"encoding/binary"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/editiond/limitedset"
)

// MaximumPaymentTokens - size of the allow-list of each item
const MaximumPaymentTokens = 5

const (
	oneByteSize    = 1
	uint64ByteSize = 8
)

// structure of the item record
const (
	priceStart  = 0
	priceFinish = priceStart + uint64ByteSize

	nextEditionStart  = priceFinish
	nextEditionFinish = nextEditionStart + uint64ByteSize

	itemStart  = nextEditionFinish
	itemFinish = itemStart + account.AddressLength

	countStart  = itemFinish
	countFinish = countStart + oneByteSize

	tokensStart = countFinish
)

// ItemRecord - sale state of one item
type ItemRecord struct {
	Price         uint64            `json:"price"`
	NextEdition   uint64            `json:"nextEdition"`
	Item          account.Address   `json:"item"`
	PaymentTokens []account.Address `json:"paymentTokens"`
}

// payments - the allow-list as a limited set
func (r *ItemRecord) payments() *limitedset.LimitedSet {
	ls := limitedset.New(MaximumPaymentTokens)
	for _, token := range r.PaymentTokens {
		ls.Add(token)
	}
	return ls
}

// IsAllowed - true if the token type is accepted as payment
func (r *ItemRecord) IsAllowed(tokenType account.Address) bool {
	return r.payments().Exists(tokenType)
}

// Pack - convert the record to its stored form
func (r *ItemRecord) Pack() []byte {
	n := len(r.PaymentTokens)
	buffer := make([]byte, tokensStart+n*account.AddressLength)

	binary.BigEndian.PutUint64(buffer[priceStart:priceFinish], r.Price)
	binary.BigEndian.PutUint64(buffer[nextEditionStart:nextEditionFinish], r.NextEdition)
	copy(buffer[itemStart:itemFinish], r.Item[:])
	buffer[countStart] = byte(n)

	offset := tokensStart
	for _, token := range r.PaymentTokens {
		copy(buffer[offset:], token[:])
		offset += account.AddressLength
	}
	return buffer
}

// UnpackItemRecord - convert a stored record
func UnpackItemRecord(buffer []byte) (*ItemRecord, error) {
	if len(buffer) < tokensStart {
		return nil, fault.ErrCorruptRecord
	}

	n := int(buffer[countStart])
	if n > MaximumPaymentTokens || len(buffer) != tokensStart+n*account.AddressLength {
		return nil, fault.ErrCorruptRecord
	}

	r := &ItemRecord{
		Price:         binary.BigEndian.Uint64(buffer[priceStart:priceFinish]),
		NextEdition:   binary.BigEndian.Uint64(buffer[nextEditionStart:nextEditionFinish]),
		PaymentTokens: make([]account.Address, n),
	}
	if 0 == r.NextEdition {
		return nil, fault.ErrCorruptRecord
	}
	copy(r.Item[:], buffer[itemStart:itemFinish])

	offset := tokensStart
	for i := 0; i < n; i += 1 {
		copy(r.PaymentTokens[i][:], buffer[offset:offset+account.AddressLength])
		offset += account.AddressLength
	}
	return r, nil
}
