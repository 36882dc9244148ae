// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package db

import (
	"context"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/iotexproject/iotex-worldsale/pkg/lifecycle"
)

const fileMode = 0600

// boltDB keeps every namespace in its own bucket, buckets are created on first write
type boltDB struct {
	lifecycle.Readiness
	db     *bolt.DB
	config Config
}

// NewBoltDB instantiates an BoltDB with implements KVStore
func NewBoltDB(cfg Config) KVStore {
	return &boltDB{config: cfg}
}

// Start opens the BoltDB (creates new file if not existing yet)
func (b *boltDB) Start(_ context.Context) error {
	opts := *bolt.DefaultOptions
	opts.ReadOnly = b.config.ReadOnly
	db, err := bolt.Open(b.config.DbPath, fileMode, &opts)
	if err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	b.db = db
	return b.TurnOn()
}

// Stop closes the BoltDB
func (b *boltDB) Stop(_ context.Context) error {
	if err := b.TurnOff(); err != nil {
		return err
	}
	if err := b.db.Close(); err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	return nil
}

func (b *boltDB) Put(namespace string, key, value []byte) error {
	return b.update(func(tx *bolt.Tx) error {
		return putInTx(tx, &writeInfo{writeType: Put, namespace: namespace, key: key, value: value})
	})
}

func (b *boltDB) Get(namespace string, key []byte) ([]byte, error) {
	if !b.IsReady() {
		return nil, ErrDBNotStarted
	}
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(namespace))
		if bucket == nil {
			return errors.Wrapf(ErrNotExist, "bucket = %s doesn't exist", namespace)
		}
		v := bucket.Get(key)
		if v == nil {
			return errors.Wrapf(ErrNotExist, "key = %x doesn't exist", key)
		}
		// v is only valid within the transaction
		value = append([]byte(nil), v...)
		return nil
	})
	switch {
	case err == nil:
		return value, nil
	case errors.Cause(err) == ErrNotExist:
		return nil, err
	default:
		return nil, errors.Wrap(ErrIO, err.Error())
	}
}

func (b *boltDB) Delete(namespace string, key []byte) error {
	return b.update(func(tx *bolt.Tx) error {
		return putInTx(tx, &writeInfo{writeType: Delete, namespace: namespace, key: key})
	})
}

// Commit writes the whole batch in one bolt transaction
func (b *boltDB) Commit(batch KVStoreBatch) error {
	if !b.IsReady() {
		return ErrDBNotStarted
	}
	batch.Lock()
	err := b.update(func(tx *bolt.Tx) error {
		for i := 0; i < batch.Size(); i++ {
			write, err := batch.Entry(i)
			if err != nil {
				return err
			}
			if err := putInTx(tx, write); err != nil {
				return errors.Wrapf(err, write.errorFormat, write.errorArgs)
			}
		}
		return nil
	})
	if err != nil {
		batch.Unlock()
		return err
	}
	batch.ClearAndUnlock()
	return nil
}

// update runs fn in a read-write transaction, retrying up to NumRetries times
func (b *boltDB) update(fn func(*bolt.Tx) error) error {
	if !b.IsReady() {
		return ErrDBNotStarted
	}
	retries := b.config.NumRetries
	if retries == 0 {
		retries = 1
	}
	var err error
	for c := uint8(0); c < retries; c++ {
		if err = b.db.Update(fn); err == nil {
			return nil
		}
	}
	return errors.Wrap(ErrIO, err.Error())
}

func putInTx(tx *bolt.Tx, write *writeInfo) error {
	switch write.writeType {
	case Put:
		bucket, err := tx.CreateBucketIfNotExists([]byte(write.namespace))
		if err != nil {
			return err
		}
		return bucket.Put(write.key, write.value)
	case Delete:
		bucket := tx.Bucket([]byte(write.namespace))
		if bucket == nil {
			return nil
		}
		return bucket.Delete(write.key)
	}
	return errors.Wrapf(ErrInvalid, "unknown write type %d", write.writeType)
}
