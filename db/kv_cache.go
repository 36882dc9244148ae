// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package db

import (
	"github.com/iotexproject/go-pkgs/hash"
)

type (
	// kvCache answers reads of batched <k, v> before they are committed
	kvCache struct {
		entries map[hash.Hash160]cacheEntry
	}

	cacheEntry struct {
		value   []byte
		deleted bool
	}
)

func newKVCache() *kvCache {
	return &kvCache{entries: make(map[hash.Hash160]cacheEntry)}
}

func (c *kvCache) Read(k hash.Hash160) ([]byte, error) {
	e, ok := c.entries[k]
	switch {
	case !ok:
		return nil, ErrNotExist
	case e.deleted:
		return nil, ErrAlreadyDeleted
	default:
		return e.value, nil
	}
}

func (c *kvCache) Write(k hash.Hash160, v []byte) {
	c.entries[k] = cacheEntry{value: v}
}

func (c *kvCache) Evict(k hash.Hash160) {
	c.entries[k] = cacheEntry{deleted: true}
}

func (c *kvCache) Clear() {
	c.entries = make(map[hash.Hash160]cacheEntry)
}

func (c *kvCache) entry(k hash.Hash160) (cacheEntry, bool) {
	e, ok := c.entries[k]
	return e, ok
}

// restore puts back what entry returned, removing k if it was not cached
func (c *kvCache) restore(k hash.Hash160, e cacheEntry, ok bool) {
	if !ok {
		delete(c.entries, k)
		return
	}
	c.entries[k] = e
}
