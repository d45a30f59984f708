// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package edition

import (
	"encoding/binary"

	"github.com/bitmark-inc/editiond/account"
	"github.com/bitmark-inc/editiond/fault"
	"github.com/bitmark-inc/editiond/storage"
)

const (
	uint64ByteSize = 8
)

// structure of the master record
const (
	authorityStart  = 0
	authorityFinish = authorityStart + account.AddressLength

	maxSupplyStart  = authorityFinish
	maxSupplyFinish = maxSupplyStart + uint64ByteSize

	supplyStart  = maxSupplyFinish
	supplyFinish = supplyStart + uint64ByteSize

	masterPackLength = supplyFinish
)

// Master - the item that editions are printed from
type Master struct {
	Item            account.Address `json:"item"`
	UpdateAuthority account.Address `json:"updateAuthority"`
	MaxSupply       uint64          `json:"maxSupply"`
	Supply          uint64          `json:"supply"`
}

// Edition - one numbered print of a master
type Edition struct {
	Master account.Address `json:"master"`
	Number uint64          `json:"number"`
	Owner  account.Address `json:"owner"`
}

// Registry - masters and editions kept in two storage pools
type Registry struct {
	masters  *storage.PoolHandle
	editions *storage.PoolHandle
}

// New - registry over the given pools
func New(masters *storage.PoolHandle, editions *storage.PoolHandle) *Registry {
	return &Registry{
		masters:  masters,
		editions: editions,
	}
}

// CreateMaster - make an item printable
func (r *Registry) CreateMaster(trx storage.Transaction, item account.Address, updateAuthority account.Address, maxSupply uint64) (*Master, error) {
	if item.IsZero() || updateAuthority.IsZero() {
		return nil, fault.ErrZeroAddress
	}
	if trx.Has(r.masters, item[:]) {
		return nil, fault.ErrMasterExists
	}
	m := &Master{
		Item:            item,
		UpdateAuthority: updateAuthority,
		MaxSupply:       maxSupply,
	}
	trx.Put(r.masters, item[:], m.pack())
	return m, nil
}

// Master - fetch a master record
func (r *Registry) Master(trx storage.Transaction, item account.Address) (*Master, error) {
	packed := trx.Get(r.masters, item[:])
	if nil == packed {
		return nil, fault.ErrMasterNotFound
	}
	return unpackMaster(item, packed)
}

// Print - create a numbered edition of a master for a recipient
//
// the authority must resolve to the update authority of the master
func (r *Registry) Print(trx storage.Transaction, item account.Address, number uint64, recipient account.Address, authority account.Signer) error {

	m, err := r.Master(trx, item)
	if nil != err {
		return err
	}

	if nil == authority {
		return fault.ErrWrongUpdateAuthority
	}
	signer, err := authority.SignerAddress()
	if nil != err || signer != m.UpdateAuthority {
		return fault.ErrWrongUpdateAuthority
	}

	if 0 == number {
		return fault.ErrInvalidEditionNumber
	}
	if 0 != m.MaxSupply && m.Supply >= m.MaxSupply {
		return fault.ErrMaxSupplyReached
	}

	key := editionKey(item, number)
	if trx.Has(r.editions, key) {
		return fault.ErrEditionExists
	}

	m.Supply += 1
	trx.Put(r.masters, item[:], m.pack())
	trx.Put(r.editions, key, recipient[:])
	return nil
}

// Edition - fetch one printed edition
func (r *Registry) Edition(trx storage.Transaction, item account.Address, number uint64) (*Edition, error) {
	packed := trx.Get(r.editions, editionKey(item, number))
	if nil == packed {
		return nil, fault.ErrEditionNotFound
	}
	owner, err := account.AddressFromBytes(packed)
	if nil != err {
		return nil, fault.ErrCorruptRecord
	}
	return &Edition{
		Master: item,
		Number: number,
		Owner:  owner,
	}, nil
}

// List - committed editions of a master in number order, starting at
// number start
func (r *Registry) List(item account.Address, start uint64, count int) ([]Edition, error) {
	cursor := r.editions.NewFetchCursor(item[:]).Seek(editionKey(item, start))

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	editions := make([]Edition, 0, len(elements))
	for _, e := range elements {
		if account.AddressLength+uint64ByteSize != len(e.Key) {
			return nil, fault.ErrCorruptRecord
		}
		owner, err := account.AddressFromBytes(e.Value)
		if nil != err {
			return nil, fault.ErrCorruptRecord
		}
		editions = append(editions, Edition{
			Master: item,
			Number: binary.BigEndian.Uint64(e.Key[account.AddressLength:]),
			Owner:  owner,
		})
	}
	return editions, nil
}

func editionKey(item account.Address, number uint64) []byte {
	key := make([]byte, account.AddressLength+uint64ByteSize)
	copy(key, item[:])
	binary.BigEndian.PutUint64(key[account.AddressLength:], number)
	return key
}

func (m *Master) pack() []byte {
	buffer := make([]byte, masterPackLength)
	copy(buffer[authorityStart:authorityFinish], m.UpdateAuthority[:])
	binary.BigEndian.PutUint64(buffer[maxSupplyStart:maxSupplyFinish], m.MaxSupply)
	binary.BigEndian.PutUint64(buffer[supplyStart:supplyFinish], m.Supply)
	return buffer
}

func unpackMaster(item account.Address, buffer []byte) (*Master, error) {
	if masterPackLength != len(buffer) {
		return nil, fault.ErrCorruptRecord
	}
	m := &Master{
		Item:      item,
		MaxSupply: binary.BigEndian.Uint64(buffer[maxSupplyStart:maxSupplyFinish]),
		Supply:    binary.BigEndian.Uint64(buffer[supplyStart:supplyFinish]),
	}
	copy(m.UpdateAuthority[:], buffer[authorityStart:authorityFinish])
	return m, nil
}
