// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package db

import (
	"context"
	"syscall"

	"github.com/cockroachdb/pebble"
	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/pkg/lifecycle"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// namespaces share one pebble keyspace, each key is prefixed by the leading bytes of hash(namespace)
const prefixLength = 8

// PebbleDB is KVStore implementation based on pebble DB
type PebbleDB struct {
	lifecycle.Readiness
	db     *pebble.DB
	config Config
}

// NewPebbleDB creates a new PebbleDB instance
func NewPebbleDB(cfg Config) *PebbleDB {
	return &PebbleDB{config: cfg}
}

// Start opens the DB (creates new file if not existing yet)
func (p *PebbleDB) Start(_ context.Context) error {
	db, err := pebble.Open(p.config.DbPath, &pebble.Options{ReadOnly: p.config.ReadOnly})
	if err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	p.db = db
	return p.TurnOn()
}

// Stop closes the DB
func (p *PebbleDB) Stop(_ context.Context) error {
	if err := p.TurnOff(); err != nil {
		return err
	}
	if err := p.db.Close(); err != nil {
		return errors.Wrap(ErrIO, err.Error())
	}
	return nil
}

func (p *PebbleDB) Get(ns string, key []byte) ([]byte, error) {
	if !p.IsReady() {
		return nil, ErrDBNotStarted
	}
	v, closer, err := p.db.Get(nsKey(ns, key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotExist, "ns %s key = %x doesn't exist, %s", ns, key, err.Error())
	}
	if err != nil {
		return nil, errors.Wrap(ErrIO, err.Error())
	}
	// v is owned by pebble until closer is closed
	value := append([]byte(nil), v...)
	return value, closer.Close()
}

func (p *PebbleDB) Put(ns string, key, value []byte) error {
	if !p.IsReady() {
		return ErrDBNotStarted
	}
	return writeErr("put", p.db.Set(nsKey(ns, key), value, pebble.Sync))
}

func (p *PebbleDB) Delete(ns string, key []byte) error {
	if !p.IsReady() {
		return ErrDBNotStarted
	}
	return writeErr("delete", p.db.Delete(nsKey(ns, key), pebble.Sync))
}

// Commit writes the last entry of every key in the batch as one pebble batch
func (p *PebbleDB) Commit(kvsb KVStoreBatch) error {
	if !p.IsReady() {
		return ErrDBNotStarted
	}
	kvsb.Lock()
	batch, err := p.lastWrites(kvsb)
	if err == nil {
		err = writeErr("commit", batch.Commit(pebble.Sync))
	}
	if err != nil {
		kvsb.Unlock()
		return err
	}
	kvsb.ClearAndUnlock()
	return nil
}

func (p *PebbleDB) lastWrites(kvsb KVStoreBatch) (*pebble.Batch, error) {
	var (
		seen  = make(map[string]struct{}, kvsb.Size())
		batch = p.db.NewBatch()
	)
	for i := kvsb.Size() - 1; i >= 0; i-- {
		write, err := kvsb.Entry(i)
		if err != nil {
			return nil, err
		}
		k := nsKey(write.namespace, write.key)
		if _, ok := seen[string(k)]; ok {
			continue
		}
		seen[string(k)] = struct{}{}
		switch write.writeType {
		case Put:
			err = batch.Set(k, write.value, nil)
		case Delete:
			err = batch.Delete(k, nil)
		}
		if err != nil {
			return nil, errors.Wrapf(err, write.errorFormat, write.errorArgs)
		}
	}
	return batch, nil
}

// writeErr maps a pebble write error to ErrIO, a full disk is fatal
func writeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, syscall.ENOSPC) {
		log.L().Fatal("Failed to write pebble db.", zap.String("op", op), zap.Error(err))
	}
	return errors.Wrapf(ErrIO, "failed to %s: %s", op, err.Error())
}

func nsKey(ns string, key []byte) []byte {
	h := hash.Hash160b([]byte(ns))
	nk := make([]byte, prefixLength, prefixLength+len(key))
	copy(nk, h[:prefixLength])
	return append(nk, key...)
}
