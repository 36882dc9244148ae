// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package blockchain

import (
	"context"
	"sync"

	"github.com/facebookgo/clock"
	"github.com/iotexproject/go-pkgs/hash"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/blockchain/block"
	"github.com/iotexproject/iotex-worldsale/pkg/lifecycle"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
	"github.com/iotexproject/iotex-worldsale/state/factory"
)

var _blockHeightMtc = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "iotex_worldsale_block_height",
		Help: "Height of the last block committed to the states.",
	},
	[]string{},
)

func init() {
	prometheus.MustRegister(_blockHeightMtc)
}

type (
	// BlockCreationSubscriber is an interface which will get notified when a block is created
	BlockCreationSubscriber interface {
		HandleBlock(*block.Block) error
	}

	// Blockchain batches actions into blocks and commits them to the states
	Blockchain interface {
		lifecycle.StartStopper
		// TipHeight returns the height of the last block
		TipHeight() (uint64, error)
		// TipHash returns the hash of the last block
		TipHash() (hash.Hash256, error)
		// MintBlock runs the actions in a new block stamped with the chain clock and commits it
		MintBlock(context.Context, []*action.Envelope) (*block.Block, error)
		// Factory returns the state factory of the chain
		Factory() factory.Factory
		// AddSubscriber registers a listener of committed blocks
		AddSubscriber(BlockCreationSubscriber) error
	}

	blockchain struct {
		mu          sync.Mutex
		sf          factory.Factory
		clk         clock.Clock
		subscribers []BlockCreationSubscriber
		lifecycle   lifecycle.Lifecycle
	}
)

// Option sets blockchain construction parameter
type Option func(*blockchain) error

// ClockOption overrides the default clock
func ClockOption(clk clock.Clock) Option {
	return func(bc *blockchain) error {
		if clk == nil {
			return errors.New("invalid empty clock")
		}
		bc.clk = clk
		return nil
	}
}

// NewBlockchain creates a blockchain on top of the state factory
func NewBlockchain(sf factory.Factory, opts ...Option) (Blockchain, error) {
	if sf == nil {
		return nil, errors.New("invalid empty state factory")
	}
	chain := &blockchain{
		sf:  sf,
		clk: clock.New(),
	}
	for _, opt := range opts {
		if err := opt(chain); err != nil {
			return nil, err
		}
	}
	chain.lifecycle.Add(sf)
	return chain, nil
}

func (bc *blockchain) Start(ctx context.Context) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	if err := bc.lifecycle.OnStart(ctx); err != nil {
		return err
	}
	height, err := bc.sf.Height()
	if err != nil {
		return err
	}
	_blockHeightMtc.WithLabelValues().Set(float64(height))
	log.L().Info("Blockchain started.", zap.Uint64("height", height))
	return nil
}

func (bc *blockchain) Stop(ctx context.Context) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return bc.lifecycle.OnStop(ctx)
}

func (bc *blockchain) TipHeight() (uint64, error) {
	return bc.sf.Height()
}

func (bc *blockchain) TipHash() (hash.Hash256, error) {
	return bc.sf.TipHash()
}

func (bc *blockchain) Factory() factory.Factory {
	return bc.sf
}

func (bc *blockchain) AddSubscriber(s BlockCreationSubscriber) error {
	if s == nil {
		return errors.New("subscriber could not be nil")
	}
	bc.mu.Lock()
	defer bc.mu.Unlock()
	bc.subscribers = append(bc.subscribers, s)
	return nil
}

func (bc *blockchain) MintBlock(ctx context.Context, elps []*action.Envelope) (*block.Block, error) {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	height, err := bc.sf.Height()
	if err != nil {
		return nil, err
	}
	tip, err := bc.sf.TipHash()
	if err != nil {
		return nil, err
	}
	blk, err := block.NewBuilder(height+1, bc.clk.Now(), elps).
		SetPrevBlockHash(tip).
		Build()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create block %d", height+1)
	}
	if err := bc.sf.PutBlock(ctx, blk); err != nil {
		return nil, errors.Wrapf(err, "failed to commit block %d", blk.Height())
	}
	_blockHeightMtc.WithLabelValues().Set(float64(blk.Height()))
	log.L().Debug("Committed a block.",
		zap.Uint64("height", blk.Height()),
		zap.Int("actions", len(blk.Actions)),
		zap.Time("timestamp", blk.Timestamp()))
	for _, s := range bc.subscribers {
		if err := s.HandleBlock(blk); err != nil {
			log.L().Error("Failed to handle new block.", zap.Uint64("height", blk.Height()), zap.Error(err))
		}
	}
	return blk, nil
}
