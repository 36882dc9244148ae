// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"
	"math"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// PreorderDecision is the lottery outcome applied to a batch of preorders
type PreorderDecision uint8

const (
	// MintChosen mints the Origin of Shell of a drawn preorder
	MintChosen PreorderDecision = iota
	// RefundNotChosen releases the escrow of a preorder that was not drawn
	RefundNotChosen
)

func (d PreorderDecision) String() string {
	switch d {
	case MintChosen:
		return "MintChosen"
	case RefundNotChosen:
		return "RefundNotChosen"
	default:
		return "PreorderDecision(unknown)"
	}
}

// PreorderOriginOfShell queues a Prime Origin of Shell preorder for the caller and escrows its price
func (p *Protocol) PreorderOriginOfShell(
	ctx context.Context,
	sm protocol.StateManager,
	race action.RaceType,
	career action.CareerType,
) (action.PreorderID, []*action.Log, error) {
	if err := requireStatus(sm, action.PreorderOriginOfShells, ErrPreorderOriginOfShellNotAvailable); err != nil {
		return 0, nil, err
	}
	sender := protocol.MustGetActionCtx(ctx).Caller
	spiritCID, ok, err := loadCollectionID(sm, _spiritCollectionKey)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return 0, nil, ErrSpiritCollectionNotSet
	}
	spirits, err := p.assets.OwnedCount(ctx, sm, spiritCID, sender)
	if err != nil {
		return 0, nil, err
	}
	if spirits == 0 {
		return 0, nil, ErrMustOwnSpiritToPurchase
	}
	shellCID, ok, err := loadCollectionID(sm, _originOfShellCollectionKey)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return 0, nil, ErrOriginOfShellCollectionNotSet
	}
	shells, err := p.assets.OwnedCount(ctx, sm, shellCID, sender)
	if err != nil {
		return 0, nil, err
	}
	if shells > 0 {
		return 0, nil, ErrOriginOfShellAlreadyPurchased
	}

	var index counter
	if _, err := getState(sm, []byte(_preorderIndexKey), &index); err != nil {
		return 0, nil, err
	}
	if index.Value == math.MaxUint32 {
		return 0, nil, ErrNoAvailablePreorderID
	}
	id := action.PreorderID(index.Value)
	price := p.price(action.Prime)
	if err := p.balances.Reserve(ctx, sm, sender, price); err != nil {
		return 0, nil, errors.Wrap(err, "failed to escrow preorder")
	}
	if err := putState(sm, preorderKey(id), &PreorderInfo{
		Owner:  sender.Bytes(),
		Race:   race,
		Career: career,
		Escrow: price,
	}); err != nil {
		return 0, nil, err
	}
	index.Value++
	if err := putState(sm, []byte(_preorderIndexKey), &index); err != nil {
		return 0, nil, err
	}
	log.L().Debug("Origin of shell preordered.", zap.String("owner", sender.String()), zap.Uint32("preorder", uint32(id)))
	return id, p.logs(OriginOfShellPreordered{Owner: sender, PreorderID: id, Race: race, Career: career}), nil
}

// ResolvePreorders applies a lottery decision to the preorders in the given order. At most IterLimit ids are
// processed, the returned slice holds those that were, and the caller resubmits the rest. Every processed preorder is
// removed and its escrow released before it is minted or refunded.
func (p *Protocol) ResolvePreorders(
	ctx context.Context,
	sm protocol.StateManager,
	ids []action.PreorderID,
	decision PreorderDecision,
) ([]action.PreorderID, []*action.Log, error) {
	overlord, err := p.assertOverlord(ctx, sm)
	if err != nil {
		return nil, nil, err
	}
	if decision != MintChosen && decision != RefundNotChosen {
		return nil, nil, errors.Errorf("unknown preorder decision %d", decision)
	}
	batch := ids
	if len(batch) > int(p.cfg.IterLimit) {
		batch = batch[:p.cfg.IterLimit]
	}
	var logs []*action.Log
	for _, id := range batch {
		info, err := loadPreorder(sm, id)
		if err != nil {
			return nil, nil, err
		}
		if err := delState(sm, preorderKey(id)); err != nil {
			return nil, nil, err
		}
		owner, err := info.OwnerAddress()
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to decode owner of preorder %d", id)
		}
		if info.Escrow != nil && info.Escrow.Sign() > 0 {
			short, err := p.balances.Unreserve(ctx, sm, owner, info.Escrow)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "failed to release escrow of preorder %d", id)
			}
			if short.Sign() > 0 {
				log.L().Warn("Preorder escrow was not fully reserved.",
					zap.Uint32("preorder", uint32(id)),
					zap.String("missing", short.String()))
			}
		}
		switch decision {
		case MintChosen:
			// the owner pays what was escrowed, even if the Prime price changed since
			payment := p.price(action.Prime)
			if info.Escrow != nil {
				payment = new(big.Int).Set(info.Escrow)
			}
			minted, err := p.mintOriginOfShell(ctx, sm, overlord, owner, action.Prime, info.Race, info.Career, payment, false)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "failed to mint preorder %d", id)
			}
			logs = append(logs, minted...)
			logs = append(logs, p.logs(ChosenPreorderMinted{PreorderID: id, Owner: owner})...)
		case RefundNotChosen:
			logs = append(logs, p.logs(NotChosenPreorderRefunded{PreorderID: id, Owner: owner})...)
		}
	}
	log.L().Info("Preorders resolved.",
		zap.Stringer("decision", decision),
		zap.Int("processed", len(batch)),
		zap.Int("remaining", len(ids)-len(batch)))
	return batch, logs, nil
}

// Preorder returns a pending preorder
func (p *Protocol) Preorder(_ context.Context, sr protocol.StateReader, id action.PreorderID) (*PreorderInfo, error) {
	return loadPreorder(sr, id)
}

// PreorderIndex returns the id the next preorder will get
func (p *Protocol) PreorderIndex(_ context.Context, sr protocol.StateReader) (action.PreorderID, error) {
	var index counter
	if _, err := getState(sr, []byte(_preorderIndexKey), &index); err != nil {
		return 0, err
	}
	return action.PreorderID(index.Value), nil
}

func loadPreorder(sr protocol.StateReader, id action.PreorderID) (*PreorderInfo, error) {
	var info PreorderInfo
	exist, err := getState(sr, preorderKey(id), &info)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errors.Wrapf(ErrNoAvailablePreorderID, "preorder %d", id)
	}
	return &info, nil
}
