// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package limitedset - bounded insertion ordered set of addresses
//
// once the set is full adding a new item evicts the oldest one;
// adding an item that is already present changes nothing
package limitedset

import (
	"github.com/bitmark-inc/editiond/account"
)

// LimitedSet - holds up to 'limit' distinct addresses in insertion order
type LimitedSet struct {
	limit int
	items []account.Address
}

// New - create a new limited set that holds up to 'n' items
func New(n int) *LimitedSet {
	if n <= 0 {
		n = 1
	}
	return &LimitedSet{
		limit: n,
		items: make([]account.Address, 0, n),
	}
}

// Add - add an item to the set
//
// returns false if the item was already present
func (ls *LimitedSet) Add(item account.Address) bool {
	if ls.Exists(item) {
		return false
	}
	if len(ls.items) >= ls.limit {
		copy(ls.items, ls.items[1:])
		ls.items = ls.items[:len(ls.items)-1]
	}
	ls.items = append(ls.items, item)
	return true
}

// Exists - check to see if item is in the set
func (ls *LimitedSet) Exists(item account.Address) bool {
	for _, a := range ls.items {
		if a == item {
			return true
		}
	}
	return false
}

// Items - copy of the items, oldest first
func (ls *LimitedSet) Items() []account.Address {
	result := make([]account.Address, len(ls.items))
	copy(result, ls.items)
	return result
}

// Len - number of items currently held
func (ls *LimitedSet) Len() int {
	return len(ls.items)
}

// Limit - the capacity
func (ls *LimitedSet) Limit() int {
	return ls.limit
}
