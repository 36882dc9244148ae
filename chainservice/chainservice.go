// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package chainservice

import (
	"context"

	"github.com/facebookgo/clock"
	"github.com/pkg/errors"

	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/action/protocol/account"
	"github.com/iotexproject/iotex-worldsale/action/protocol/nftsale"
	"github.com/iotexproject/iotex-worldsale/action/protocol/uniques"
	"github.com/iotexproject/iotex-worldsale/blockchain"
	"github.com/iotexproject/iotex-worldsale/config"
	"github.com/iotexproject/iotex-worldsale/db"
	"github.com/iotexproject/iotex-worldsale/pkg/lifecycle"
	"github.com/iotexproject/iotex-worldsale/state/factory"
)

// ChainService is a blockchain service with all blockchain components.
type ChainService struct {
	lifecycle lifecycle.Lifecycle
	chain     blockchain.Blockchain
	factory   factory.Factory
	registry  *protocol.Registry
	account   *account.Protocol
	uniques   *uniques.Protocol
	nftsale   *nftsale.Protocol
}

type optionParams struct {
	isTesting bool
	clk       clock.Clock
}

// Option sets ChainService construction parameter.
type Option func(ops *optionParams) error

// WithTesting is an option to create a testing ChainService on an in-memory state store.
func WithTesting() Option {
	return func(ops *optionParams) error {
		ops.isTesting = true
		return nil
	}
}

// WithClock is an option to stamp blocks with the given clock.
func WithClock(clk clock.Clock) Option {
	return func(ops *optionParams) error {
		if clk == nil {
			return errors.New("invalid empty clock")
		}
		ops.clk = clk
		return nil
	}
}

// New creates a ChainService from config
func New(cfg config.Config, opts ...Option) (*ChainService, error) {
	var ops optionParams
	for _, opt := range opts {
		if err := opt(&ops); err != nil {
			return nil, err
		}
	}
	var (
		kv  db.KVStore
		err error
	)
	if ops.isTesting {
		kv = db.NewMemKVStore()
	} else {
		kv, err = db.CreateKVStore(cfg.Chain.DB)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create state db")
		}
	}

	cs := &ChainService{
		registry: protocol.NewRegistry(),
		account:  account.NewProtocol(cfg.Genesis.Account),
		uniques:  uniques.NewProtocol(),
	}
	cs.nftsale = nftsale.NewProtocol(cfg.Genesis.NftSale, cs.account, cs.uniques)
	// genesis states are created in registration order
	for _, p := range []protocol.Protocol{cs.account, cs.uniques, cs.nftsale} {
		if err := cs.registry.Register(p.Name(), p); err != nil {
			return nil, errors.Wrapf(err, "failed to register protocol %s", p.Name())
		}
	}
	if cs.factory, err = factory.NewFactory(kv, factory.RegistryOption(cs.registry)); err != nil {
		return nil, errors.Wrap(err, "failed to create state factory")
	}
	var chainOpts []blockchain.Option
	if ops.clk != nil {
		chainOpts = append(chainOpts, blockchain.ClockOption(ops.clk))
	}
	if cs.chain, err = blockchain.NewBlockchain(cs.factory, chainOpts...); err != nil {
		return nil, errors.Wrap(err, "failed to create blockchain")
	}
	cs.lifecycle.Add(cs.chain)
	return cs, nil
}

// Start starts the chain service
func (cs *ChainService) Start(ctx context.Context) error {
	return cs.lifecycle.OnStart(ctx)
}

// Stop stops the chain service
func (cs *ChainService) Stop(ctx context.Context) error {
	return cs.lifecycle.OnStop(ctx)
}

// Blockchain returns the blockchain
func (cs *ChainService) Blockchain() blockchain.Blockchain { return cs.chain }

// StateFactory returns the state factory
func (cs *ChainService) StateFactory() factory.Factory { return cs.factory }

// Registry returns the protocols the chain runs
func (cs *ChainService) Registry() *protocol.Registry { return cs.registry }

// AccountProtocol returns the balances ledger
func (cs *ChainService) AccountProtocol() *account.Protocol { return cs.account }

// UniquesProtocol returns the nft registry
func (cs *ChainService) UniquesProtocol() *uniques.Protocol { return cs.uniques }

// NftSaleProtocol returns the world sale protocol
func (cs *ChainService) NftSaleProtocol() *nftsale.Protocol { return cs.nftsale }
