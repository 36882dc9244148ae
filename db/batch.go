// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package db

import (
	"sync"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-worldsale/pkg/util/byteutil"
)

const (
	// Put indicate the type of write operation to be Put
	Put int32 = iota
	// Delete indicate the type of write operation to be Delete
	Delete
)

type (
	// KVStoreBatch stages Put/Delete entries in order. KVStore.Commit persists the entries and clears the batch, a
	// failed commit leaves the batch intact.
	KVStoreBatch interface {
		// Lock locks the batch
		Lock()
		// Unlock unlocks the batch
		Unlock()
		// ClearAndUnlock clears the write queue and unlocks the batch
		ClearAndUnlock()
		// Put insert or update a record identified by (namespace, key)
		Put(string, []byte, []byte, string, ...interface{})
		// Delete deletes a record by (namespace, key)
		Delete(string, []byte, string, ...interface{})
		// Size returns the size of batch
		Size() int
		// Entry returns the entry at the index
		Entry(int) (*writeInfo, error)
		// Clear clears entries staged in batch
		Clear()
	}

	// CachedBatch is a KVStoreBatch that also answers reads of its pending entries, and can roll them back to a
	// snapshot
	CachedBatch interface {
		KVStoreBatch
		// Get gets a record by (namespace, key)
		Get(string, []byte) ([]byte, error)
		// Snapshot marks the current position of the write queue
		Snapshot() int
		// Revert drops the entries written after the snapshot
		Revert(int) error
	}

	// writeInfo is the struct to store Put/Delete operation info
	writeInfo struct {
		writeType   int32
		namespace   string
		key         []byte
		value       []byte
		errorFormat string
		errorArgs   interface{}
	}

	baseKVStoreBatch struct {
		mutex      sync.Mutex
		writeQueue []writeInfo
	}

	// cachedBatch keeps, for every queued entry, the cache entry it replaced, so a revert walks the queue backwards
	cachedBatch struct {
		baseKVStoreBatch
		cache     *kvCache
		undo      []undoEntry
		snapshots []int // queue length at each snapshot, indexed by tag
	}

	undoEntry struct {
		key    hash.Hash160
		prev   cacheEntry
		cached bool
	}
)

// NewBatch returns a batch
func NewBatch() KVStoreBatch {
	return &baseKVStoreBatch{}
}

func (b *baseKVStoreBatch) Lock() {
	b.mutex.Lock()
}

func (b *baseKVStoreBatch) Unlock() {
	b.mutex.Unlock()
}

func (b *baseKVStoreBatch) ClearAndUnlock() {
	defer b.mutex.Unlock()
	b.writeQueue = nil
}

func (b *baseKVStoreBatch) Put(namespace string, key, value []byte, errorFormat string, errorArgs ...interface{}) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.enqueue(Put, namespace, key, value, errorFormat, errorArgs)
}

func (b *baseKVStoreBatch) Delete(namespace string, key []byte, errorFormat string, errorArgs ...interface{}) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.enqueue(Delete, namespace, key, nil, errorFormat, errorArgs)
}

// Size returns the size of batch, the caller holds the lock while committing
func (b *baseKVStoreBatch) Size() int {
	return len(b.writeQueue)
}

func (b *baseKVStoreBatch) Entry(index int) (*writeInfo, error) {
	if index < 0 || index >= len(b.writeQueue) {
		return nil, errors.Wrap(ErrInvalid, "index out of range")
	}
	return &b.writeQueue[index], nil
}

func (b *baseKVStoreBatch) Clear() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.writeQueue = nil
}

func (b *baseKVStoreBatch) enqueue(op int32, namespace string, key, value []byte, errorFormat string, errorArgs []interface{}) {
	b.writeQueue = append(b.writeQueue, writeInfo{
		writeType:   op,
		namespace:   namespace,
		key:         key,
		value:       value,
		errorFormat: errorFormat,
		errorArgs:   errorArgs,
	})
}

// NewCachedBatch returns a new cached batch buffer
func NewCachedBatch() CachedBatch {
	return &cachedBatch{cache: newKVCache()}
}

func (cb *cachedBatch) ClearAndUnlock() {
	defer cb.mutex.Unlock()
	cb.reset()
}

func (cb *cachedBatch) Put(namespace string, key, value []byte, errorFormat string, errorArgs ...interface{}) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	h := cacheKey(namespace, key)
	cb.record(h)
	cb.cache.Write(h, value)
	cb.enqueue(Put, namespace, key, value, errorFormat, errorArgs)
}

func (cb *cachedBatch) Delete(namespace string, key []byte, errorFormat string, errorArgs ...interface{}) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	h := cacheKey(namespace, key)
	cb.record(h)
	cb.cache.Evict(h)
	cb.enqueue(Delete, namespace, key, nil, errorFormat, errorArgs)
}

func (cb *cachedBatch) Clear() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	cb.reset()
}

func (cb *cachedBatch) Get(namespace string, key []byte) ([]byte, error) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.cache.Read(cacheKey(namespace, key))
}

func (cb *cachedBatch) Snapshot() int {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	cb.snapshots = append(cb.snapshots, len(cb.writeQueue))
	return len(cb.snapshots) - 1
}

// Revert can be called on the same snapshot more than once, snapshots taken after it are dropped
func (cb *cachedBatch) Revert(snapshot int) error {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	if snapshot < 0 || snapshot >= len(cb.snapshots) {
		return errors.Wrapf(ErrInvalid, "invalid snapshot number = %d", snapshot)
	}
	n := cb.snapshots[snapshot]
	for i := len(cb.undo) - 1; i >= n; i-- {
		u := cb.undo[i]
		cb.cache.restore(u.key, u.prev, u.cached)
	}
	cb.writeQueue = cb.writeQueue[:n]
	cb.undo = cb.undo[:n]
	cb.snapshots = cb.snapshots[:snapshot+1]
	return nil
}

func (cb *cachedBatch) record(h hash.Hash160) {
	prev, cached := cb.cache.entry(h)
	cb.undo = append(cb.undo, undoEntry{key: h, prev: prev, cached: cached})
}

func (cb *cachedBatch) reset() {
	cb.writeQueue = nil
	cb.undo = nil
	cb.snapshots = nil
	cb.cache.Clear()
}

func cacheKey(namespace string, key []byte) hash.Hash160 {
	ns := hash.Hash160b([]byte(namespace))
	return hash.Hash160b(byteutil.JoinKey(ns[:], key))
}
