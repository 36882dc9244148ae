// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

// Package nftsale implements the world sale: Spirits are claimed for free by funded or whitelisted accounts, and
// Origins of Shell are sold in rarity tiers, directly or through a preorder lottery. An overlord account runs the sale
// phases and is itself appointed by governance.
package nftsale

import (
	"context"
	"math/big"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/blockchain/genesis"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// protocolID is the protocol ID
const protocolID = "nftsale"

// Protocol defines the protocol of the world sale
type Protocol struct {
	addr                    address.Address
	cfg                     genesis.NftSale
	balances                Balances
	assets                  AssetRegistry
	minBalanceToClaimSpirit *big.Int
	prices                  map[action.OriginOfShellType]*big.Int
}

// NewProtocol instantiates the protocol of the world sale
func NewProtocol(cfg genesis.NftSale, balances Balances, assets AssetRegistry) *Protocol {
	return &Protocol{
		addr:                    protocol.Address(protocolID),
		cfg:                     cfg,
		balances:                balances,
		assets:                  assets,
		minBalanceToClaimSpirit: cfg.MinBalanceToClaimSpirit(),
		prices: map[action.OriginOfShellType]*big.Int{
			action.Legendary: cfg.LegendaryOriginOfShellPrice(),
			action.Magic:     cfg.MagicOriginOfShellPrice(),
			action.Prime:     cfg.PrimeOriginOfShellPrice(),
		},
	}
}

// ProtocolAddr returns the address generated from protocol id
func ProtocolAddr() address.Address {
	return protocol.Address(protocolID)
}

// Name returns the name of protocol
func (p *Protocol) Name() string {
	return protocolID
}

// CreateGenesisStates seeds the sale states configured in genesis
func (p *Protocol) CreateGenesisStates(_ context.Context, sm protocol.StateManager) error {
	if overlord := p.cfg.Overlord(); overlord != nil {
		if err := putState(sm, []byte(_overlordKey), &accountRecord{Addr: overlord.Bytes()}); err != nil {
			return err
		}
	}
	if p.cfg.ZeroDay != nil || p.cfg.Era > 0 {
		wc := worldClock{Era: p.cfg.Era}
		if p.cfg.ZeroDay != nil {
			wc.ZeroDay = *p.cfg.ZeroDay
			wc.HasZeroDay = true
		}
		if err := putState(sm, []byte(_worldClockKey), &wc); err != nil {
			return err
		}
	}
	for st, on := range p.cfg.Statuses() {
		if err := putState(sm, statusKey(st), &flag{Value: on}); err != nil {
			return err
		}
	}
	if cid := p.cfg.SpiritCollectionID; cid != nil {
		if err := putState(sm, []byte(_spiritCollectionKey), &counter{Value: uint32(*cid)}); err != nil {
			return err
		}
	}
	if cid := p.cfg.OriginOfShellCollectionID; cid != nil {
		if err := putState(sm, []byte(_originOfShellCollectionKey), &counter{Value: uint32(*cid)}); err != nil {
			return err
		}
	}
	if p.cfg.IsOriginOfShellsInventorySet {
		return writeInitialInventory(sm)
	}
	return nil
}

// Handle handles the sale actions
func (p *Protocol) Handle(ctx context.Context, act action.Action, sm protocol.StateManager) (*action.Receipt, error) {
	var (
		logs []*action.Log
		err  error
	)
	switch act := act.(type) {
	case *action.SetOverlord:
		var overlord address.Address
		if overlord, err = address.FromString(act.NewOverlord()); err != nil {
			err = errors.Wrapf(action.ErrInvalidAddress, "%s: %v", act.NewOverlord(), err)
			break
		}
		logs, err = p.SetOverlord(ctx, sm, overlord)
	case *action.InitializeWorldClock:
		logs, err = p.InitializeWorldClock(ctx, sm)
	case *action.SetStatusType:
		logs, err = p.SetStatusType(ctx, sm, act.StatusType(), act.Status())
	case *action.InitOriginOfShellInventory:
		logs, err = p.InitOriginOfShellInventory(ctx, sm)
	case *action.UpdateOriginOfShellInventory:
		logs, err = p.UpdateOriginOfShellInventory(ctx, sm, act.OriginOfShellType(), act.ForSaleCount(), act.GiveawayCount())
	case *action.SetSpiritCollectionID:
		logs, err = p.SetSpiritCollectionID(ctx, sm, act.CollectionID())
	case *action.SetOriginOfShellCollectionID:
		logs, err = p.SetOriginOfShellCollectionID(ctx, sm, act.CollectionID())
	case *action.ClaimSpirit:
		logs, err = p.ClaimSpirit(ctx, sm)
	case *action.RedeemSpirit:
		logs, err = p.RedeemSpirit(ctx, sm, act.Signature())
	case *action.BuyRareOriginOfShell:
		logs, err = p.BuyRareOriginOfShell(ctx, sm, act.OriginOfShellType(), act.Race(), act.Career())
	case *action.BuyPrimeOriginOfShell:
		logs, err = p.BuyPrimeOriginOfShell(ctx, sm, act.Signature(), act.Race(), act.Career())
	case *action.PreorderOriginOfShell:
		_, logs, err = p.PreorderOriginOfShell(ctx, sm, act.Race(), act.Career())
	case *action.MintChosenPreorders:
		_, logs, err = p.ResolvePreorders(ctx, sm, act.Preorders(), MintChosen)
	case *action.RefundNotChosenPreorders:
		_, logs, err = p.ResolvePreorders(ctx, sm, act.Preorders(), RefundNotChosen)
	default:
		return nil, nil
	}
	name := action.Name(act)
	if err != nil {
		_actionMtc.WithLabelValues(name, "failure").Inc()
		log.L().Debug("Sale action rejected.", zap.String("action", name), zap.Error(err))
		return nil, err
	}
	_actionMtc.WithLabelValues(name, "success").Inc()
	return protocol.NewReceipt(ctx, action.SuccessReceiptStatus, p.addr.String(), logs), nil
}

func (p *Protocol) price(t action.OriginOfShellType) *big.Int {
	return new(big.Int).Set(p.prices[t])
}

func (p *Protocol) logs(events ...action.Event) []*action.Log {
	logs := make([]*action.Log, 0, len(events))
	for _, evt := range events {
		logs = append(logs, protocol.NewLog(p.addr.String(), evt))
	}
	return logs
}
