// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// BuyRareOriginOfShell sells a Legendary or Magic Origin of Shell to the caller. On the last day of sale an account may
// buy more than one.
func (p *Protocol) BuyRareOriginOfShell(
	ctx context.Context,
	sm protocol.StateManager,
	t action.OriginOfShellType,
	race action.RaceType,
	career action.CareerType,
) ([]*action.Log, error) {
	if err := requireStatus(sm, action.PurchaseRareOriginOfShells, ErrRareOriginOfShellPurchaseNotAvailable); err != nil {
		return nil, err
	}
	overlord, err := loadOverlord(sm)
	if err != nil {
		return nil, err
	}
	if t != action.Legendary && t != action.Magic {
		return nil, errors.Wrapf(ErrInvalidPurchase, "%s is not rare", t)
	}
	lastDay, err := loadFlag(sm, statusKey(action.LastDayOfSale))
	if err != nil {
		return nil, err
	}
	sender := protocol.MustGetActionCtx(ctx).Caller
	return p.mintOriginOfShell(ctx, sm, overlord, sender, t, race, career, p.price(t), !lastDay)
}

// BuyPrimeOriginOfShell sells a Prime Origin of Shell to a whitelisted caller. On the last day of sale the whitelist
// is lifted and an account may buy more than one.
func (p *Protocol) BuyPrimeOriginOfShell(
	ctx context.Context,
	sm protocol.StateManager,
	signature []byte,
	race action.RaceType,
	career action.CareerType,
) ([]*action.Log, error) {
	prime, err := loadFlag(sm, statusKey(action.PurchasePrimeOriginOfShells))
	if err != nil {
		return nil, err
	}
	lastDay, err := loadFlag(sm, statusKey(action.LastDayOfSale))
	if err != nil {
		return nil, err
	}
	if !prime && !lastDay {
		return nil, ErrPrimeOriginOfShellPurchaseNotAvailable
	}
	overlord, err := loadOverlord(sm)
	if err != nil {
		return nil, err
	}
	sender := protocol.MustGetActionCtx(ctx).Caller
	if !lastDay && !VerifyClaim(overlord, sender, signature, action.PurposeBuyPrimeOriginOfShells) {
		return nil, ErrWhitelistVerificationFailed
	}
	return p.mintOriginOfShell(ctx, sm, overlord, sender, action.Prime, race, career, p.price(action.Prime), !lastDay)
}

// SetOriginOfShellCollectionID binds the Origin of Shell collection, it can only be set once
func (p *Protocol) SetOriginOfShellCollectionID(ctx context.Context, sm protocol.StateManager, cid action.CollectionID) ([]*action.Log, error) {
	if _, err := p.assertOverlord(ctx, sm); err != nil {
		return nil, err
	}
	_, ok, err := loadCollectionID(sm, _originOfShellCollectionKey)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, ErrOriginOfShellCollectionIDAlreadySet
	}
	if err := putState(sm, []byte(_originOfShellCollectionKey), &counter{Value: uint32(cid)}); err != nil {
		return nil, err
	}
	log.L().Info("Origin of shell collection set.", zap.Uint32("collection", uint32(cid)))
	return p.logs(OriginOfShellCollectionIDSet{CollectionID: cid}), nil
}

// OriginOfShellCollectionID returns the Origin of Shell collection, and false if it is not set
func (p *Protocol) OriginOfShellCollectionID(_ context.Context, sr protocol.StateReader) (action.CollectionID, bool, error) {
	return loadCollectionID(sr, _originOfShellCollectionKey)
}
