// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"context"
	"math/big"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/action/protocol"
	"github.com/iotexproject/iotex-worldsale/pkg/log"
)

// attribute names set on every Origin of Shell
const (
	AttributeOriginOfShellType = "origin_of_shell_type"
	AttributeRace              = "race"
	AttributeCareer            = "career"
)

// mintSpirit mints a frozen Spirit to sender, an account holds at most one
func (p *Protocol) mintSpirit(ctx context.Context, sm protocol.StateManager, overlord, sender address.Address) ([]*action.Log, error) {
	cid, ok, err := loadCollectionID(sm, _spiritCollectionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSpiritCollectionNotSet
	}
	owned, err := p.assets.OwnedCount(ctx, sm, cid, sender)
	if err != nil {
		return nil, err
	}
	if owned > 0 {
		return nil, ErrSpiritAlreadyClaimed
	}
	nid, err := p.assets.NextNftID(ctx, sm, cid)
	if err != nil {
		return nil, err
	}
	if err := p.assets.Mint(ctx, sm, overlord, cid, nid, sender); err != nil {
		return nil, errors.Wrap(err, "failed to mint spirit")
	}
	if err := p.assets.Freeze(ctx, sm, overlord, cid, nid); err != nil {
		return nil, errors.Wrap(err, "failed to freeze spirit")
	}
	log.L().Debug("Spirit claimed.", zap.String("owner", sender.String()), zap.Uint32("nft", uint32(nid)))
	return p.logs(SpiritClaimed{Owner: sender, CollectionID: cid, NftID: nid}), nil
}

// mintOriginOfShell charges sender the price and mints a frozen Origin of Shell. The payment goes first, so a sender
// that cannot pay never touches the registry or the inventory.
func (p *Protocol) mintOriginOfShell(
	ctx context.Context,
	sm protocol.StateManager,
	overlord address.Address,
	sender address.Address,
	t action.OriginOfShellType,
	race action.RaceType,
	career action.CareerType,
	price *big.Int,
	checkOwned bool,
) ([]*action.Log, error) {
	spiritCID, ok, err := loadCollectionID(sm, _spiritCollectionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSpiritCollectionNotSet
	}
	spirits, err := p.assets.OwnedCount(ctx, sm, spiritCID, sender)
	if err != nil {
		return nil, err
	}
	if spirits == 0 {
		return nil, ErrMustOwnSpiritToPurchase
	}
	cid, ok, err := loadCollectionID(sm, _originOfShellCollectionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOriginOfShellCollectionNotSet
	}
	if checkOwned {
		shells, err := p.assets.OwnedCount(ctx, sm, cid, sender)
		if err != nil {
			return nil, err
		}
		if shells > 0 {
			return nil, ErrOriginOfShellAlreadyPurchased
		}
	}
	nid, err := p.assets.NextNftID(ctx, sm, cid)
	if err != nil {
		return nil, err
	}
	if err := hasRaceTypeLeft(sm, t, race); err != nil {
		return nil, err
	}
	if err := p.balances.Transfer(ctx, sm, sender, overlord, price, true); err != nil {
		return nil, errors.Wrapf(err, "failed to pay %s for %s origin of shell", price, t)
	}
	if err := p.assets.Mint(ctx, sm, overlord, cid, nid, sender); err != nil {
		return nil, errors.Wrap(err, "failed to mint origin of shell")
	}
	for _, attr := range []struct{ name, value string }{
		{AttributeOriginOfShellType, t.String()},
		{AttributeRace, race.String()},
		{AttributeCareer, career.String()},
	} {
		if err := p.assets.SetAttribute(ctx, sm, overlord, cid, nid, attr.name, attr.value); err != nil {
			return nil, errors.Wrapf(err, "failed to set attribute %s", attr.name)
		}
	}
	if err := allocate(sm, t, race); err != nil {
		return nil, err
	}
	if err := incrementCareer(sm, career); err != nil {
		return nil, err
	}
	if err := p.assets.Freeze(ctx, sm, overlord, cid, nid); err != nil {
		return nil, errors.Wrap(err, "failed to freeze origin of shell")
	}
	log.L().Debug("Origin of shell minted.",
		zap.String("owner", sender.String()),
		zap.Stringer("type", t),
		zap.Stringer("race", race),
		zap.Stringer("career", career),
		zap.Uint32("nft", uint32(nid)))
	return p.logs(OriginOfShellMinted{
		OriginOfShellType: t,
		Race:              race,
		Career:            career,
		CollectionID:      cid,
		NftID:             nid,
		Owner:             sender,
	}), nil
}
