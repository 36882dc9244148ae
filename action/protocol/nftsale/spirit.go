// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"

	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// ClaimSpirit mints a Spirit to the caller if its free balance reaches the claim threshold
func (p *Protocol) ClaimSpirit(ctx context.Context, sm protocol.StateManager) ([]*action.Log, error) {
	if err := requireStatus(sm, action.ClaimSpirits, ErrSpiritClaimNotAvailable); err != nil {
		return nil, err
	}
	overlord, err := loadOverlord(sm)
	if err != nil {
		return nil, err
	}
	sender := protocol.MustGetActionCtx(ctx).Caller
	ok, err := p.balances.CanReserve(ctx, sm, sender, p.minBalanceToClaimSpirit)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBelowMinimumBalanceThreshold
	}
	return p.mintSpirit(ctx, sm, overlord, sender)
}

// RedeemSpirit mints a Spirit to the caller holding an overlord signature
func (p *Protocol) RedeemSpirit(ctx context.Context, sm protocol.StateManager, signature []byte) ([]*action.Log, error) {
	if err := requireStatus(sm, action.ClaimSpirits, ErrSpiritClaimNotAvailable); err != nil {
		return nil, err
	}
	overlord, err := loadOverlord(sm)
	if err != nil {
		return nil, err
	}
	sender := protocol.MustGetActionCtx(ctx).Caller
	if !VerifyClaim(overlord, sender, signature, action.PurposeRedeemSpirit) {
		return nil, ErrInvalidSpiritClaim
	}
	return p.mintSpirit(ctx, sm, overlord, sender)
}

// SetSpiritCollectionID binds the Spirit collection, it can only be set once
func (p *Protocol) SetSpiritCollectionID(ctx context.Context, sm protocol.StateManager, cid action.CollectionID) ([]*action.Log, error) {
	if _, err := p.assertOverlord(ctx, sm); err != nil {
		return nil, err
	}
	_, ok, err := loadCollectionID(sm, _spiritCollectionKey)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, ErrSpiritCollectionIDAlreadySet
	}
	if err := putState(sm, []byte(_spiritCollectionKey), &counter{Value: uint32(cid)}); err != nil {
		return nil, err
	}
	log.L().Info("Spirit collection set.", zap.Uint32("collection", uint32(cid)))
	return p.logs(SpiritCollectionIDSet{CollectionID: cid}), nil
}

// SpiritCollectionID returns the Spirit collection, and false if it is not set
func (p *Protocol) SpiritCollectionID(_ context.Context, sr protocol.StateReader) (action.CollectionID, bool, error) {
	return loadCollectionID(sr, _spiritCollectionKey)
}
