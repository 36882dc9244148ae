// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package nftsale

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/iotexproject/iotex-worldsale/action"
	"github.com/iotexproject/iotex-worldsale/blockchain/genesis"
	"github.com/iotexproject/iotex-worldsale/test/identityset"
)

func TestBuyRareOriginOfShell(t *testing.T) {
	require := require.New(t)
	f := newSaleFixture(t, genesis.TestDefault())
	alice, bob, carol := identityset.Address(1), identityset.Address(2), identityset.Address(3)
	f.open(t, action.ClaimSpirits)

	_, err := f.p.BuyRareOriginOfShell(f.signed(alice), f.sm, action.Legendary, action.Cyborg, action.Web3Monk)
	require.Equal(ErrRareOriginOfShellPurchaseNotAvailable, errors.Cause(err))
	f.setStatus(t, action.PurchaseRareOriginOfShells, true)
	_, err = f.p.BuyRareOriginOfShell(f.signed(alice), f.sm, action.Legendary, action.Cyborg, action.Web3Monk)
	require.Equal(ErrMustOwnSpiritToPurchase, errors.Cause(err))
	f.claim(t, alice, bob, carol)
	_, err = f.p.BuyRareOriginOfShell(f.signed(alice), f.sm, action.Prime, action.Cyborg, action.Web3Monk)
	require.Equal(ErrInvalidPurchase, errors.Cause(err))

	logs, err := f.p.BuyRareOriginOfShell(f.signed(alice), f.sm, action.Legendary, action.Cyborg, action.Web3Monk)
	require.NoError(err)
	require.Len(logs, 1)
	evt := logs[0].Event.(OriginOfShellMinted)
	require.Equal(action.Legendary, evt.OriginOfShellType)
	require.Equal(action.Cyborg, evt.Race)
	require.Equal(action.Web3Monk, evt.Career)
	require.Equal(_shellCID, evt.CollectionID)
	require.Equal(action.NftID(0), evt.NftID)
	require.Equal(alice.String(), evt.Owner.String())
	require.Equal("99000000", f.balance(t, alice))
	require.Equal("101000000", f.balance(t, f.overlord))
	for name, value := range map[string]string{
		AttributeOriginOfShellType: "Legendary",
		AttributeRace:              "Cyborg",
		AttributeCareer:            "Web3Monk",
	} {
		attr, err := f.uq.Attribute(f.blk, f.sm, _shellCID, 0, name)
		require.NoError(err)
		require.Equal(value, attr)
	}
	frozen, err := f.uq.IsFrozen(f.blk, f.sm, _shellCID, 0)
	require.NoError(err)
	require.True(frozen)
	info, err := f.p.OriginOfShellInventory(f.blk, f.sm, action.Legendary, action.Cyborg)
	require.NoError(err)
	require.Equal(NftSaleInfo{RaceCount: 1, RaceReservedCount: 1}, *info)
	cnt, err := f.p.CareerTypeCount(f.blk, f.sm, action.Web3Monk)
	require.NoError(err)
	require.Equal(uint32(1), cnt)

	// one legendary per race is for sale, a rejected buyer pays nothing
	_, err = f.p.BuyRareOriginOfShell(f.signed(bob), f.sm, action.Legendary, action.Cyborg, action.HackerWizard)
	require.Equal(ErrRaceMintMaxReached, errors.Cause(err))
	require.Equal("100000000", f.balance(t, bob))
	_, err = f.p.BuyRareOriginOfShell(f.signed(bob), f.sm, action.Legendary, action.AISpectre, action.HackerWizard)
	require.NoError(err)

	// one origin of shell per account until the last day of sale
	_, err = f.p.BuyRareOriginOfShell(f.signed(alice), f.sm, action.Magic, action.XGene, action.RoboWarrior)
	require.Equal(ErrOriginOfShellAlreadyPurchased, errors.Cause(err))
	f.setStatus(t, action.LastDayOfSale, true)
	_, err = f.p.BuyRareOriginOfShell(f.signed(alice), f.sm, action.Magic, action.XGene, action.RoboWarrior)
	require.NoError(err)
	require.Equal(uint32(2), f.owned(t, _shellCID, alice))
	require.Equal("98900000", f.balance(t, alice))
	require.Equal("102100000", f.balance(t, f.overlord))
}

func TestBuyPrimeOriginOfShell(t *testing.T) {
	require := require.New(t)
	f := newSaleFixture(t, genesis.TestDefault())
	alice, bob := identityset.Address(1), identityset.Address(2)
	f.open(t, action.ClaimSpirits)
	f.claim(t, alice, bob)
	sig, err := SignClaim(identityset.PrivateKey(0), alice, action.PurposeBuyPrimeOriginOfShells)
	require.NoError(err)
	redeemSig, err := SignClaim(identityset.PrivateKey(0), alice, action.PurposeRedeemSpirit)
	require.NoError(err)

	_, err = f.p.BuyPrimeOriginOfShell(f.signed(alice), f.sm, sig, action.Pandroid, action.TradeNegotiator)
	require.Equal(ErrPrimeOriginOfShellPurchaseNotAvailable, errors.Cause(err))
	f.setStatus(t, action.PurchasePrimeOriginOfShells, true)

	for _, c := range []struct {
		caller int
		sig    []byte
	}{
		{1, nil},
		{1, redeemSig},
		{2, sig},
	} {
		_, err = f.p.BuyPrimeOriginOfShell(f.signed(identityset.Address(c.caller)), f.sm, c.sig, action.Pandroid, action.TradeNegotiator)
		require.Equal(ErrWhitelistVerificationFailed, errors.Cause(err))
	}

	logs, err := f.p.BuyPrimeOriginOfShell(f.signed(alice), f.sm, sig, action.Pandroid, action.TradeNegotiator)
	require.NoError(err)
	evt := logs[0].Event.(OriginOfShellMinted)
	require.Equal(action.Prime, evt.OriginOfShellType)
	require.Equal("99999000", f.balance(t, alice))
	_, err = f.p.BuyPrimeOriginOfShell(f.signed(alice), f.sm, sig, action.Pandroid, action.TradeNegotiator)
	require.Equal(ErrOriginOfShellAlreadyPurchased, errors.Cause(err))

	// the last day of sale lifts the whitelist and the one per account limit
	f.setStatus(t, action.PurchasePrimeOriginOfShells, false)
	f.setStatus(t, action.LastDayOfSale, true)
	_, err = f.p.BuyPrimeOriginOfShell(f.signed(alice), f.sm, nil, action.Cyborg, action.HardwareDruid)
	require.NoError(err)
	_, err = f.p.BuyPrimeOriginOfShell(f.signed(bob), f.sm, nil, action.Cyborg, action.HardwareDruid)
	require.NoError(err)
	require.Equal(uint32(2), f.owned(t, _shellCID, alice))
	require.Equal(uint32(1), f.owned(t, _shellCID, bob))
	info, err := f.p.OriginOfShellInventory(f.blk, f.sm, action.Prime, action.Cyborg)
	require.NoError(err)
	require.Equal(uint32(1248), info.RaceForSaleCount)
	require.Equal(uint32(2), info.RaceCount)
}

func TestOriginOfShellCollection(t *testing.T) {
	require := require.New(t)
	g := genesis.TestDefault()
	spirit := _spiritCID
	g.OverlordAddrStr = identityset.Address(0).String()
	g.SpiritCollectionID = &spirit
	g.StatusMap = map[string]bool{"ClaimSpirits": true, "PurchaseRareOriginOfShells": true}
	g.IsOriginOfShellsInventorySet = true
	f := newSaleFixture(t, g)
	alice := identityset.Address(1)
	_, err := f.uq.CreateCollection(f.signed(f.overlord), f.sm, f.overlord)
	require.NoError(err)
	f.claim(t, alice)

	_, err = f.p.BuyRareOriginOfShell(f.signed(alice), f.sm, action.Magic, action.Cyborg, action.Web3Monk)
	require.Equal(ErrOriginOfShellCollectionNotSet, errors.Cause(err))

	_, err = f.p.SetOriginOfShellCollectionID(f.signed(alice), f.sm, _shellCID)
	require.Equal(ErrRequireOverlordAccount, errors.Cause(err))
	logs, err := f.p.SetOriginOfShellCollectionID(f.signed(f.overlord), f.sm, _shellCID)
	require.NoError(err)
	require.Equal(OriginOfShellCollectionIDSet{CollectionID: _shellCID}, logs[0].Event)
	_, err = f.p.SetOriginOfShellCollectionID(f.signed(f.overlord), f.sm, _shellCID)
	require.Equal(ErrOriginOfShellCollectionIDAlreadySet, errors.Cause(err))

	_, err = f.uq.CreateCollection(f.signed(f.overlord), f.sm, f.overlord)
	require.NoError(err)
	_, err = f.p.BuyRareOriginOfShell(f.signed(alice), f.sm, action.Magic, action.Cyborg, action.Web3Monk)
	require.NoError(err)
}
