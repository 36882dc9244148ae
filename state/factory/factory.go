// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package factory

import (
	"context"
	"sync"

	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/blockchain/block"
	"github.com/iotexproject/iotex-worldsale/db"
	"github.com/iotexproject/iotex-worldsale/pkg/lifecycle"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
	"github.com/iotexproject/iotex-worldsale/pkg/util/byteutil"
	"github.com/iotexproject/iotex-worldsale/state"
)

const (
	// SystemNamespace is the namespace to store the factory metadata
	SystemNamespace = "System"
	// CurrentHeightKey indicates the key of current factory height in underlying DB
	CurrentHeightKey = "currentHeight"
	// TipHashKey indicates the key of the hash of the last block in underlying DB
	TipHashKey = "tipHash"
)

type (
	// Factory defines an interface for managing states
	Factory interface {
		lifecycle.StartStopper
		protocol.StateReader
		// TipHash returns the hash of the last block applied to the states
		TipHash() (hash.Hash256, error)
		// PutBlock runs the block against the states and commits the result, filling in the block receipts
		PutBlock(context.Context, *block.Block) error
		// Registry returns the protocols the factory dispatches actions to
		Registry() *protocol.Registry
	}

	// factory implements Factory interface, tracks changes to states and batch-commits to DB
	factory struct {
		lifecycle          lifecycle.Lifecycle
		mutex              sync.RWMutex
		currentChainHeight uint64
		registry           *protocol.Registry
		dao                db.KVStore // the underlying DB for state storage
	}
)

// Option sets Factory construction parameter
type Option func(*factory) error

// RegistryOption sets the registry in state db
func RegistryOption(reg *protocol.Registry) Option {
	return func(sf *factory) error {
		if reg == nil {
			return errors.New("invalid empty registry")
		}
		sf.registry = reg
		return nil
	}
}

// NewFactory creates a new state factory on top of the given KV store
func NewFactory(dao db.KVStore, opts ...Option) (Factory, error) {
	if dao == nil {
		return nil, errors.New("invalid empty state db")
	}
	sf := &factory{
		dao:      dao,
		registry: protocol.NewRegistry(),
	}
	for _, opt := range opts {
		if err := opt(sf); err != nil {
			log.S().Errorf("Failed to execute state factory creation option %p: %v", opt, err)
			return nil, err
		}
	}
	sf.lifecycle.Add(sf.dao)
	return sf, nil
}

func (sf *factory) Start(ctx context.Context) error {
	sf.mutex.Lock()
	defer sf.mutex.Unlock()
	if err := sf.lifecycle.OnStart(ctx); err != nil {
		return err
	}
	h, err := sf.dao.Get(SystemNamespace, []byte(CurrentHeightKey))
	switch errors.Cause(err) {
	case nil:
		sf.currentChainHeight = byteutil.BytesToUint64BigEndian(h)
		return nil
	case db.ErrNotExist, db.ErrBucketNotExist:
		return sf.createGenesisStates(ctx)
	default:
		return err
	}
}

func (sf *factory) Stop(ctx context.Context) error {
	sf.mutex.Lock()
	defer sf.mutex.Unlock()
	return sf.lifecycle.OnStop(ctx)
}

func (sf *factory) createGenesisStates(ctx context.Context) error {
	ws := newWorkingSet(0, sf.dao)
	for _, p := range sf.registry.All() {
		if gsc, ok := p.(protocol.GenesisStateCreator); ok {
			if err := gsc.CreateGenesisStates(ctx, ws); err != nil {
				return errors.Wrapf(err, "failed to create genesis states for protocol %s", p.Name())
			}
		}
	}
	// genesis runs no finalizer
	if _, err := ws.Finalize(protocol.WithRegistry(ctx, protocol.NewRegistry()), hash.ZeroHash256); err != nil {
		return err
	}
	if err := ws.Commit(); err != nil {
		return err
	}
	sf.currentChainHeight = 0
	log.L().Info("Created genesis states.", zap.Int("protocols", len(sf.registry.All())))
	return nil
}

// Height returns factory's height
func (sf *factory) Height() (uint64, error) {
	sf.mutex.RLock()
	defer sf.mutex.RUnlock()
	return sf.currentChainHeight, nil
}

// TipHash returns the hash of the last block, zero before the first block
func (sf *factory) TipHash() (hash.Hash256, error) {
	sf.mutex.RLock()
	defer sf.mutex.RUnlock()
	h, err := sf.dao.Get(SystemNamespace, []byte(TipHashKey))
	if err != nil {
		return hash.ZeroHash256, errors.Wrap(err, "failed to get tip hash from underlying DB")
	}
	return hash.BytesToHash256(h), nil
}

// State returns a committed state
func (sf *factory) State(s interface{}, opts ...protocol.StateOption) (uint64, error) {
	sf.mutex.RLock()
	defer sf.mutex.RUnlock()
	cfg, err := protocol.CreateStateConfig(opts...)
	if err != nil {
		return 0, err
	}
	data, err := readState(sf.dao, cfg)
	if err != nil {
		return sf.currentChainHeight, err
	}
	return sf.currentChainHeight, state.Deserialize(s, data)
}

func (sf *factory) Registry() *protocol.Registry {
	return sf.registry
}

// PutBlock runs the actions of the block one by one, then the block finalizers, and commits the states
func (sf *factory) PutBlock(ctx context.Context, blk *block.Block) error {
	sf.mutex.Lock()
	defer sf.mutex.Unlock()
	if blk.Height() != sf.currentChainHeight+1 {
		return errors.Errorf("invalid block height %d, %d expected", blk.Height(), sf.currentChainHeight+1)
	}
	ctx = protocol.WithBlockCtx(protocol.WithRegistry(ctx, sf.registry), protocol.BlockCtx{
		BlockHeight:    blk.Height(),
		BlockTimeStamp: blk.Timestamp(),
	})
	ws := newWorkingSet(blk.Height(), sf.dao)
	receipts, err := ws.RunActions(ctx, blk.Actions)
	if err != nil {
		return errors.Wrapf(err, "failed to run actions of block %d", blk.Height())
	}
	logs, err := ws.Finalize(ctx, blk.HashHeader())
	if err != nil {
		return err
	}
	if err := ws.Commit(); err != nil {
		return err
	}
	sf.currentChainHeight = blk.Height()
	blk.Receipts = receipts
	blk.FinalizeLogs = logs
	return nil
}
